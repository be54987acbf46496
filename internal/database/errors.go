package database

import "fmt"

// ConnectionError is returned when a backend cannot be opened or reached.
// The driver error is kept intact and is reachable through errors.As / errors.Is.
type ConnectionError struct {
	Backend BackendKind
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s database: %v", e.Backend, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ExecutionError is returned when the driver rejects a statement, a constraint
// is violated or the commit fails.
type ExecutionError struct {
	Query string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to execute query: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// BootstrapTableError records a single CREATE TABLE statement that failed
// during schema initialization. It is logged and reported, never fatal on its own.
type BootstrapTableError struct {
	Table string
	Err   error
}

func (e *BootstrapTableError) Error() string {
	return fmt.Sprintf("failed to create table %s: %v", e.Table, e.Err)
}

func (e *BootstrapTableError) Unwrap() error { return e.Err }
