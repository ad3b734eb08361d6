package rename

import (
	"database/sql"
	"fmt"

	"github.com/spf13/afero"
	_ "modernc.org/sqlite"
)

// Journal is a durable per-step record of a queue's progress, backed by a
// SQLite database on the real filesystem. It implements Observer: attach it
// to a queue and every applied or reverted step is checkpointed before the
// next one runs, so an interrupted process can reload the journal and
// resume or revert from the exact step it stopped at.
type Journal struct {
	db   *sql.DB
	path string
}

// OpenJournal opens (creating if needed) the journal database at path.
func OpenJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", path))
	if err != nil {
		return nil, err
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS steps (
			position INTEGER PRIMARY KEY,
			src      TEXT NOT NULL,
			dst      TEXT NOT NULL,
			renamed  INTEGER NOT NULL DEFAULT 0
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &Journal{db: db, path: path}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Begin records the queue's full step sequence and cursor. It refuses to
// overwrite a journal that still holds steps from another run; Clear such a
// journal explicitly once its batch is resolved.
func (j *Journal) Begin(q *Queue) error {
	var count int
	if err := j.db.QueryRow("SELECT COUNT(*) FROM steps").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("journal %s already holds %d steps from an unfinished run", j.path, count)
	}
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for i, m := range q.steps {
		applied := 0
		if i < q.renamed {
			applied = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO steps (position, src, dst, renamed) VALUES (?, ?, ?, ?)",
			i, m.Src, m.Dst, applied,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Applied marks a step as done. Part of the Observer interface.
func (j *Journal) Applied(index int, _ Mapping) error {
	return j.mark(index, 1)
}

// Reverted marks a step as undone. Part of the Observer interface.
func (j *Journal) Reverted(index int, _ Mapping) error {
	return j.mark(index, 0)
}

func (j *Journal) mark(index, applied int) error {
	res, err := j.db.Exec("UPDATE steps SET renamed = ? WHERE position = ?", applied, index)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("journal %s has no step at position %d", j.path, index)
	}
	return nil
}

// Load reconstructs the journaled queue. The renamed flags must form a
// contiguous prefix of the sequence; anything else means the journal was
// edited or corrupted, and resuming from it would not be meaningful.
func (j *Journal) Load(fsys afero.Fs, policy Policy) (*Queue, error) {
	rows, err := j.db.Query("SELECT position, src, dst, renamed FROM steps ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []Mapping
	cursor := 0
	inPrefix := true
	for rows.Next() {
		var pos, applied int
		var m Mapping
		if err := rows.Scan(&pos, &m.Src, &m.Dst, &applied); err != nil {
			return nil, err
		}
		if pos != len(steps) {
			return nil, fmt.Errorf("journal %s has a gap at position %d", j.path, pos)
		}
		switch {
		case applied == 1 && inPrefix:
			cursor++
		case applied == 1:
			return nil, fmt.Errorf("journal %s is not contiguous: step %d is renamed after a pending step", j.path, pos)
		default:
			inPrefix = false
		}
		steps = append(steps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &Queue{fsys: fsys, steps: steps, renamed: cursor, policy: policy}, nil
}

// Clear removes all journaled steps, retiring the batch.
func (j *Journal) Clear() error {
	_, err := j.db.Exec("DELETE FROM steps")
	return err
}
