package database

import (
	"sync/atomic"

	"github.com/jmoiron/sqlx"
)

// FetchMode declares how many rows the caller wants back from a statement.
type FetchMode int

const (
	FetchNone FetchMode = iota
	FetchOne
	FetchAll
)

// Query is a statement written in the canonical SQLite dialect with "?"
// placeholders. Args are bound positionally.
type Query struct {
	SQL    string
	Args   []any
	Fetch  FetchMode
	Commit bool
}

// Result holds whatever the fetch mode asked for. Row is nil when FetchOne
// matched nothing; Rows is non-nil (possibly empty) for FetchAll.
type Result struct {
	Row  Row
	Rows []Row
}

// Stats counts connections handed out and given back by an Adapter.
type Stats struct {
	Acquired int64
	Released int64
}

// Adapter lets callers write one style of SQL and run it against either the
// embedded SQLite file or a PostgreSQL server. Each call acquires and releases
// its own connection, so an Adapter is safe for concurrent use.
type Adapter struct {
	backend  Backend
	acquired atomic.Int64
	released atomic.Int64
}

// New resolves the backend from configuration. databaseURL may be empty.
func New(databaseURL, sqlitePath string) *Adapter {
	return NewWithBackend(ResolveBackend(databaseURL, sqlitePath))
}

func NewWithBackend(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

func (a *Adapter) Backend() Backend {
	return a.backend
}

func (a *Adapter) Stats() Stats {
	return Stats{
		Acquired: a.acquired.Load(),
		Released: a.released.Load(),
	}
}

// Execute runs q on a fresh connection and releases it before returning,
// whether the statement succeeded or not.
func (a *Adapter) Execute(q Query) (Result, error) {
	conn, err := a.Acquire()
	if err != nil {
		return Result{}, err
	}
	defer conn.Close()

	return conn.Execute(q)
}

// FetchOne returns the first matching row, or nil when there is none.
func (a *Adapter) FetchOne(query string, args ...any) (Row, error) {
	res, err := a.Execute(Query{SQL: query, Args: args, Fetch: FetchOne})
	return res.Row, err
}

// FetchAll returns every matching row in order.
func (a *Adapter) FetchAll(query string, args ...any) ([]Row, error) {
	res, err := a.Execute(Query{SQL: query, Args: args, Fetch: FetchAll})
	return res.Rows, err
}

// Exec runs a mutating statement and commits it.
func (a *Adapter) Exec(query string, args ...any) error {
	_, err := a.Execute(Query{SQL: query, Args: args, Commit: true})
	return err
}

// ExecReturning commits a statement with a RETURNING clause and hands back
// the returned row.
func (a *Adapter) ExecReturning(query string, args ...any) (Row, error) {
	res, err := a.Execute(Query{SQL: query, Args: args, Fetch: FetchOne, Commit: true})
	return res.Row, err
}

// Execute runs q inside a transaction on this connection. The transaction is
// committed only when q.Commit is set; otherwise it is rolled back.
func (c *Connection) Execute(q Query) (Result, error) {
	query := c.backend.Rewrite(q.SQL)

	tx, err := c.db.Beginx()
	if err != nil {
		return Result{}, &ExecutionError{Query: query, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var result Result
	switch q.Fetch {
	case FetchOne, FetchAll:
		rows, err := tx.Queryx(query, q.Args...)
		if err != nil {
			return Result{}, &ExecutionError{Query: query, Err: err}
		}
		limit := 0
		if q.Fetch == FetchOne {
			limit = 1
		}
		scanned, err := scanRows(rows, limit)
		if err != nil {
			return Result{}, &ExecutionError{Query: query, Err: err}
		}
		if q.Fetch == FetchOne {
			if len(scanned) > 0 {
				result.Row = scanned[0]
			}
		} else {
			result.Rows = scanned
		}
	default:
		if _, err := tx.Exec(query, q.Args...); err != nil {
			return Result{}, &ExecutionError{Query: query, Err: err}
		}
	}

	if q.Commit {
		if err := tx.Commit(); err != nil {
			return Result{}, &ExecutionError{Query: query, Err: err}
		}
	}

	return result, nil
}

// scanRows reads up to limit rows (all rows when limit is 0) and closes the
// cursor, which must happen before the transaction is committed.
func scanRows(rows *sqlx.Rows, limit int) ([]Row, error) {
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		values := make(map[string]any)
		if err := rows.MapScan(values); err != nil {
			return nil, err
		}
		out = append(out, normalizeRow(values))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
