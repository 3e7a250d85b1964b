// File: internal/session/store_sqlite.go
// Brief: Single-row sqlite persistence for session state.

package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite"
)

const (
	sessionRelPath = ".uxs/session.sqlite"
	stateKey       = "current"
)

// DefaultPath returns the per-user session database path.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, sessionRelPath), nil
}

// Store persists session state in sqlite. A single open connection
// plus the busy timeout serializes concurrent CLI invocations.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the session store at path. An empty path uses
// the per-user default.
func Open(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &Store{db: db, path: path}
	if err := s.initSchema(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file the store is backed by.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA synchronous=NORMAL;`,
		`PRAGMA busy_timeout=5000;`,
		`
CREATE TABLE IF NOT EXISTS uxs_session (
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at_ns INTEGER NOT NULL
);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Load reads the current state. A missing row is a fresh session, not
// an error.
func (s *Store) Load(ctx context.Context) (State, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM uxs_session WHERE key = ?`, stateKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("load session: %w", err)
	}
	var st State
	if err := json.Unmarshal([]byte(payload), &st); err != nil {
		return State{}, fmt.Errorf("decode session: %w", err)
	}
	return st, nil
}

// Save upserts the current state.
func (s *Store) Save(ctx context.Context, st State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO uxs_session (key, payload, updated_at_ns) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at_ns = excluded.updated_at_ns
`, stateKey, string(payload), time.Now().UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Reset drops the current state row.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM uxs_session WHERE key = ?`, stateKey); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}
