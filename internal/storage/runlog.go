package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// RunLog records each generation run of the number demos in a SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
type RunLog struct {
	db *sql.DB
}

// Run is one logged generation run.
type Run struct {
	ID        int64
	ProgramID string
	Terms     int
	MaxTerm   int64
	CreatedAt time.Time
}

// OpenRunLog creates or opens the run log database at the given path,
// creating parent directories and the schema as needed. A leading ~ is
// expanded to the user's home directory.
func OpenRunLog(dbPath string) (*RunLog, error) {
	expanded, err := expandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(expanded)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", expanded)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &RunLog{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

// migrate creates the schema if it doesn't exist.
func (l *RunLog) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			program_id TEXT NOT NULL,
			terms INTEGER NOT NULL,
			max_term INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_program_id ON runs(program_id);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (l *RunLog) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Append logs one generation run and returns the inserted record's ID.
func (l *RunLog) Append(programID string, terms int, maxTerm int64) (int64, error) {
	result, err := l.db.Exec(
		"INSERT INTO runs (program_id, terms, max_term) VALUES (?, ?, ?)",
		programID, terms, maxTerm,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot append run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Recent retrieves the most recent runs for a program, newest first.
func (l *RunLog) Recent(programID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, program_id, terms, max_term, created_at
		 FROM runs
		 WHERE program_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		programID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.ProgramID, &r.Terms, &r.MaxTerm, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
