package database

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

const (
	markerAutoIncrement    = "{pk}"
	markerTimestampDefault = "{timestamp}"
)

// TableDef is a backend-neutral CREATE TABLE statement. The {pk} and
// {timestamp} markers are filled in from the backend's SchemaMarkers.
type TableDef struct {
	Name string
	DDL  string
}

// Resolve renders the definition for the given markers.
func (t TableDef) Resolve(m SchemaMarkers) string {
	return strings.NewReplacer(
		markerAutoIncrement, m.AutoIncrement,
		markerTimestampDefault, m.TimestampDefault,
	).Replace(t.DDL)
}

// TableResult is the outcome of one table statement during bootstrap.
type TableResult struct {
	Table string
	Err   error
}

// BootstrapReport lists every table statement attempted, in order.
type BootstrapReport struct {
	Backend BackendKind
	Results []TableResult
}

// Created returns the tables whose statement succeeded.
func (r *BootstrapReport) Created() []string {
	var names []string
	for _, res := range r.Results {
		if res.Err == nil {
			names = append(names, res.Table)
		}
	}
	return names
}

// Failed returns the per-table errors.
func (r *BootstrapReport) Failed() []*BootstrapTableError {
	var failed []*BootstrapTableError
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, &BootstrapTableError{Table: res.Table, Err: res.Err})
		}
	}
	return failed
}

// Err joins every per-table failure, or returns nil.
func (r *BootstrapReport) Err() error {
	var errs []error
	for _, f := range r.Failed() {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

// InitSchema creates the application schema if it does not exist yet. It is
// safe to call on every startup.
func (a *Adapter) InitSchema() (*BootstrapReport, error) {
	return a.ApplySchema(DefaultTables())
}

// ApplySchema runs each table definition in order on one connection and
// commits once at the end. Each statement gets its own savepoint, so a
// rejected table is rolled back and logged while the rest still get created.
// An error is returned only if the connection or commit fails, or if every
// table failed.
func (a *Adapter) ApplySchema(tables []TableDef) (*BootstrapReport, error) {
	conn, err := a.Acquire()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	markers := a.backend.Markers()
	report := &BootstrapReport{Backend: a.backend.Kind()}

	tx, err := conn.db.Beginx()
	if err != nil {
		return nil, &ExecutionError{Query: "BEGIN", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	for i, table := range tables {
		savepoint := fmt.Sprintf("bootstrap_%d", i)
		if _, err := tx.Exec("SAVEPOINT " + savepoint); err != nil {
			return nil, &ExecutionError{Query: "SAVEPOINT " + savepoint, Err: err}
		}

		_, execErr := tx.Exec(table.Resolve(markers))
		if execErr != nil {
			log.Printf("Error creating table %s: %v", table.Name, execErr)
			if _, err := tx.Exec("ROLLBACK TO SAVEPOINT " + savepoint); err != nil {
				return nil, &ExecutionError{Query: "ROLLBACK TO SAVEPOINT " + savepoint, Err: err}
			}
		}
		if _, err := tx.Exec("RELEASE SAVEPOINT " + savepoint); err != nil {
			return nil, &ExecutionError{Query: "RELEASE SAVEPOINT " + savepoint, Err: err}
		}

		report.Results = append(report.Results, TableResult{Table: table.Name, Err: execErr})
	}

	if err := tx.Commit(); err != nil {
		return report, &ExecutionError{Query: "COMMIT", Err: err}
	}

	if len(tables) > 0 && len(report.Created()) == 0 {
		return report, fmt.Errorf("schema bootstrap failed for every table: %w", report.Err())
	}

	log.Printf("Database schema ready on %s backend (%d/%d tables)", report.Backend, len(report.Created()), len(tables))
	return report, nil
}
