// Package store persists character records in SQLite.
//
// Persistence is optional: Open with an empty path returns a nil
// *Store, and a nil Store is a valid no-op receiver, so the game
// never needs to check whether a database was configured.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS characters (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT    NOT NULL UNIQUE,
	class      TEXT    NOT NULL,
	hp         INTEGER NOT NULL,
	stamina    INTEGER NOT NULL,
	attack     INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);`

// Character is a persisted character record.
type Character struct {
	Name    string
	Class   string
	HP      int
	Stamina int
	Attack  int
}

// Store wraps a SQLite database holding character records.
// A nil Store is safe to use; all methods become no-ops.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path, creating the schema if
// needed.  An empty path disables persistence and returns (nil, nil).
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// SaveCharacter inserts or updates the record for c.Name.
func (s *Store) SaveCharacter(ctx context.Context, c Character) error {
	if s == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO characters (name, class, hp, stamina, attack, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			class   = excluded.class,
			hp      = excluded.hp,
			stamina = excluded.stamina,
			attack  = excluded.attack`,
		c.Name, c.Class, c.HP, c.Stamina, c.Attack, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save character %q: %w", c.Name, err)
	}
	return nil
}

// LoadCharacter returns the record for name, or (nil, nil) when no
// record exists or persistence is disabled.
func (s *Store) LoadCharacter(ctx context.Context, name string) (*Character, error) {
	if s == nil {
		return nil, nil
	}
	var c Character
	err := s.db.QueryRowContext(ctx, `
		SELECT name, class, hp, stamina, attack
		FROM characters WHERE name = ?`, name).
		Scan(&c.Name, &c.Class, &c.HP, &c.Stamina, &c.Attack)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load character %q: %w", name, err)
	}
	return &c, nil
}

// CharacterCount returns the number of persisted characters.
func (s *Store) CharacterCount(ctx context.Context) (int, error) {
	if s == nil {
		return 0, nil
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count characters: %w", err)
	}
	return n, nil
}
