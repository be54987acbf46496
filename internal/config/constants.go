package config

// Default paths for databases
const (
	// DefaultDatabasePath is the SQLite file used when DATABASE_URL is not set
	DefaultDatabasePath = "./shakespeare.db"
)
