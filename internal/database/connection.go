package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connection is a single live database handle owned by one logical
// operation. It is never shared between calls.
type Connection struct {
	db        *sqlx.DB
	backend   Backend
	onRelease func()
	closed    bool
}

// Acquire opens a fresh connection to the configured backend. There is no
// pooling and no retry: a failure is returned immediately as *ConnectionError.
func (a *Adapter) Acquire() (*Connection, error) {
	if err := ensureDatabaseDir(a.backend); err != nil {
		return nil, &ConnectionError{Backend: a.backend.Kind(), Err: err}
	}

	db, err := sqlx.Open(a.backend.DriverName(), a.backend.DSN())
	if err != nil {
		return nil, &ConnectionError{Backend: a.backend.Kind(), Err: err}
	}
	// One physical connection per handle, so transactions and cursors never
	// hop between sessions.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ConnectionError{Backend: a.backend.Kind(), Err: err}
	}

	a.acquired.Add(1)
	return &Connection{
		db:        db,
		backend:   a.backend,
		onRelease: func() { a.released.Add(1) },
	}, nil
}

// Backend returns the backend this connection was opened against.
func (c *Connection) Backend() Backend {
	return c.backend
}

// Close releases the connection. Calling it more than once is a no-op.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.onRelease != nil {
		c.onRelease()
	}
	return c.db.Close()
}

func ensureDatabaseDir(b Backend) error {
	if b.Kind() != BackendEmbedded {
		return nil
	}
	path := b.DSN()
	if path == "" {
		return fmt.Errorf("sqlite database path is not set")
	}
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	return nil
}
