// Package storage provides SQLite persistence for the cube viewer's turn journal.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// journalFile is the database file kept under ~/.gocube_viewer.
const journalFile = "cubeview.db"

// Journal is an open turn journal with its schema brought up to date.
type Journal struct {
	Sessions *SessionRepository
	Turns    *TurnRepository

	db   *sql.DB
	path string
}

// DefaultJournalPath returns where the journal lives when no path is given.
func DefaultJournalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gocube_viewer", journalFile), nil
}

// OpenJournal opens the journal at path, or at DefaultJournalPath when path is
// empty, creating the file and its directory on first use. Pending migrations
// are applied before the journal is returned.
func OpenJournal(path string) (*Journal, error) {
	if path == "" {
		var err error
		if path, err = DefaultJournalPath(); err != nil {
			return nil, err
		}
	}

	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate journal %s: %w", path, err)
	}

	return &Journal{
		Sessions: &SessionRepository{db: db},
		Turns:    &TurnRepository{db: db},
		db:       db,
		path:     path,
	}, nil
}

// openSQLite opens the database file without touching its schema.
func openSQLite(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// Pragmas in the DSN apply to every connection the pool opens.
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
	}
	return db, nil
}

// Path returns the journal's database file.
func (j *Journal) Path() string {
	return j.path
}

// SchemaVersion returns the highest migration applied to the journal.
func (j *Journal) SchemaVersion() (int, error) {
	return schemaVersion(j.db)
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// inTx runs fn inside a transaction, committing only when fn succeeds.
func inTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback after Commit is a no-op.
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
