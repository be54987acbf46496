package database

import (
	"database/sql"
	"slices"
	"strings"
)

// BackendKind identifies which relational backend an Adapter talks to.
type BackendKind string

const (
	BackendEmbedded  BackendKind = "sqlite"   // local file, no server process
	BackendNetworked BackendKind = "postgres" // client/server over a connection string
)

const (
	legacyURLScheme    = "postgres://"
	canonicalURLScheme = "postgresql://"
)

// Backend is one of the two supported database targets. It knows how to open
// itself and how to turn a canonical (SQLite dialect) query into its own syntax.
type Backend interface {
	Kind() BackendKind
	DriverName() string
	DSN() string
	// Rewrite translates a canonical query template. It must be pure.
	Rewrite(query string) string
	Markers() SchemaMarkers
}

// SchemaMarkers are the DDL fragments that differ between backends.
type SchemaMarkers struct {
	AutoIncrement    string
	TimestampDefault string
}

type embeddedBackend struct {
	path string
}

func (b embeddedBackend) Kind() BackendKind  { return BackendEmbedded }
func (b embeddedBackend) DriverName() string { return "sqlite3" }
func (b embeddedBackend) DSN() string        { return b.path }

// Rewrite returns the template unchanged: the canonical dialect is SQLite's.
func (b embeddedBackend) Rewrite(query string) string { return query }

func (b embeddedBackend) Markers() SchemaMarkers {
	return SchemaMarkers{
		AutoIncrement:    autoIncrementFragment,
		TimestampDefault: "TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
	}
}

type networkedBackend struct {
	url string
}

func (b networkedBackend) Kind() BackendKind  { return BackendNetworked }
func (b networkedBackend) DriverName() string { return "postgres" }
func (b networkedBackend) DSN() string        { return b.url }

func (b networkedBackend) Rewrite(query string) string { return RewriteForNetworked(query) }

func (b networkedBackend) Markers() SchemaMarkers {
	return SchemaMarkers{
		AutoIncrement:    serialFragment,
		TimestampDefault: "TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
	}
}

// NewEmbeddedBackend returns a backend for the SQLite file at path.
func NewEmbeddedBackend(path string) Backend {
	return embeddedBackend{path: path}
}

// NewNetworkedBackend returns a PostgreSQL backend. The URL is normalized.
func NewNetworkedBackend(databaseURL string) Backend {
	return networkedBackend{url: NormalizeDatabaseURL(databaseURL)}
}

// ResolveBackend picks the backend once. The networked backend wins when a
// connection string is configured and the postgres driver is registered;
// everything else falls back to the SQLite file.
func ResolveBackend(databaseURL, sqlitePath string) Backend {
	if databaseURL != "" && networkedDriverAvailable() {
		return NewNetworkedBackend(databaseURL)
	}
	return NewEmbeddedBackend(sqlitePath)
}

func networkedDriverAvailable() bool {
	return slices.Contains(sql.Drivers(), "postgres")
}

// NormalizeDatabaseURL rewrites the legacy "postgres://" scheme used by some
// hosting providers to "postgresql://". Other strings are returned as is.
func NormalizeDatabaseURL(databaseURL string) string {
	if strings.HasPrefix(databaseURL, legacyURLScheme) {
		return canonicalURLScheme + strings.TrimPrefix(databaseURL, legacyURLScheme)
	}
	return databaseURL
}
