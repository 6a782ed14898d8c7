package keymap

// Command is a named operation on an owner of type T. Run reports whether
// the triggering key event was consumed.
type Command[T any] struct {
	ID   string
	Name string
	Run  func(owner *T, key string) bool
}

// Set is the command registry of a single owner namespace.
type Set[T any] struct {
	owner    string
	commands []Command[T]
}

// NewSet builds the registry for an owner namespace.
func NewSet[T any](owner string, commands []Command[T]) Set[T] {
	return Set[T]{owner: owner, commands: commands}
}

// Owner returns the namespace this set dispatches in.
func (s Set[T]) Owner() string { return s.owner }

// Dispatch resolves key within the set's namespace and invokes the matching
// command on owner. A missing binding or command is an unhandled event, not
// an error.
func (s Set[T]) Dispatch(table *Table, key string, owner *T) bool {
	id, ok := table.Resolve(s.owner, key)
	if !ok {
		return false
	}
	for _, c := range s.commands {
		if c.ID == id {
			return c.Run(owner, key)
		}
	}
	return false
}

// LegendEntry is one command's display data for the legend bar.
type LegendEntry struct {
	Keys []string
	Name string
}

// Legend returns the set's commands paired with their bound keys.
func (s Set[T]) Legend(table *Table) []LegendEntry {
	entries := make([]LegendEntry, 0, len(s.commands))
	for _, c := range s.commands {
		entries = append(entries, LegendEntry{
			Keys: table.KeysFor(c.ID),
			Name: c.Name,
		})
	}
	return entries
}
