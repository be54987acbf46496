package database

import (
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
)

const (
	autoIncrementFragment = "INTEGER PRIMARY KEY AUTOINCREMENT"
	serialFragment        = "SERIAL PRIMARY KEY"
)

var standaloneAutoIncrement = regexp.MustCompile(`\s*\bAUTOINCREMENT\b`)

// RewriteForNetworked translates a query written in the canonical SQLite
// dialect into PostgreSQL syntax:
//
//   - "INTEGER PRIMARY KEY AUTOINCREMENT" becomes "SERIAL PRIMARY KEY"
//   - any leftover AUTOINCREMENT keyword is dropped
//   - each "?" becomes $1, $2, ... in left-to-right order
//
// BOOLEAN DEFAULT TRUE/FALSE and DATE(...) are valid in both dialects and are
// left alone.
//
// Placeholders are replaced naively, so a literal "?" inside a quoted string
// is rewritten as well. Callers never embed "?" in query text; data goes
// through bind parameters.
func RewriteForNetworked(query string) string {
	rewritten := strings.ReplaceAll(query, autoIncrementFragment, serialFragment)
	rewritten = standaloneAutoIncrement.ReplaceAllString(rewritten, "")
	return sqlx.Rebind(sqlx.DOLLAR, rewritten)
}
