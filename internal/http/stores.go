package http

import "github.com/santhiya0507/Shakespeare/internal/database"

// DatabaseProber is what the health endpoints need from the adapter.
type DatabaseProber interface {
	FetchOne(query string, args ...any) (database.Row, error)
	Backend() database.Backend
	Stats() database.Stats
}

// SchemaInitializer re-applies the idempotent schema bootstrap.
type SchemaInitializer interface {
	InitSchema() (*database.BootstrapReport, error)
}

// Store combines the interfaces above; *database.Adapter satisfies it.
type Store interface {
	DatabaseProber
	SchemaInitializer
}

var _ Store = (*database.Adapter)(nil)
