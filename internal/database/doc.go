// Package database provides the persistence adapter for the application.
//
// # Architecture
//
// Callers write every query once, in SQLite syntax with "?" placeholders.
// The Adapter decides at construction time whether it talks to a local
// SQLite file or to PostgreSQL, and translates queries on the fly:
//
//	database/
//	├── backend.go     # Backend selection and DATABASE_URL normalization
//	├── dialect.go     # SQLite -> PostgreSQL query rewriting
//	├── connection.go  # Per-call connection acquisition
//	├── adapter.go     # Execute with fetch/commit modes
//	├── schema.go      # Idempotent schema bootstrap
//	├── tables.go      # Table definitions
//	└── admins/        # Administrator accounts
//
// # Usage
//
//	db := database.New(os.Getenv("DATABASE_URL"), "./shakespeare.db")
//	if _, err := db.InitSchema(); err != nil {
//		log.Fatal(err)
//	}
//
//	err := db.Exec("INSERT INTO admins (username, password_hash) VALUES (?, ?)", "admin", hash)
//	row, err := db.FetchOne("SELECT * FROM admins WHERE username = ?", "admin")
//	fmt.Println(row.String("username"))
//
// # Errors
//
// Connection failures come back as *ConnectionError and statement failures as
// *ExecutionError. Both wrap the driver error unchanged, so errors.As against
// *pq.Error or sqlite3.Error still works.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/quotes/
//  2. Define a Repository struct with a Querier field
//  3. Add NewRepository(db Querier) constructor
//  4. Write queries in SQLite syntax with "?" placeholders
package database
