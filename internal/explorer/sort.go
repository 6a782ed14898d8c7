package explorer

import (
	"sort"

	"github.com/pkaramon/fex/internal/fsys"
)

// SortCriterion orders a directory listing in place.
type SortCriterion struct {
	Name string
	sort func(entries []fsys.Entry)
}

// SortCriteria is the fixed set offered by the sort_entries options modal,
// in menu order. Index 0 is the default after every re-seed.
var SortCriteria = []SortCriterion{
	{Name: "Name", sort: sortByName},
	{Name: "Size", sort: sortBySize},
	{Name: "Modified Date", sort: sortByModified},
}

func sortByName(entries []fsys.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

func sortBySize(entries []fsys.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})
}

func sortByModified(entries []fsys.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
}
