package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS opened_files (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL UNIQUE,
    opened_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_opened_files_opened_at ON opened_files(opened_at);
`

// Store keeps the recently opened files in a SQLite database.
type Store struct {
	conn *sql.DB
}

// Open opens or creates the database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// OpenMemory opens an in-memory database (for testing).
func OpenMemory() (*Store, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Record marks path as opened now, moving it to the front of the recent
// list if already present.
func (s *Store) Record(path string) error {
	_, err := s.conn.Exec(`
		INSERT INTO opened_files (path, opened_at)
		VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET opened_at = excluded.opened_at
	`, path, time.Now().UnixNano())
	return err
}

// Recent returns the most recently opened paths, newest first.
func (s *Store) Recent(limit int) ([]string, error) {
	rows, err := s.conn.Query(`
		SELECT path FROM opened_files
		ORDER BY opened_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Forget removes a path from the history (e.g. after it was deleted).
func (s *Store) Forget(path string) error {
	_, err := s.conn.Exec(`DELETE FROM opened_files WHERE path = ?`, path)
	return err
}
