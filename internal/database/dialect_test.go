package database

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var dollarPlaceholder = regexp.MustCompile(`\$(\d+)`)

func TestRewriteForNetworked(t *testing.T) {
	t.Run("replaces autoincrement primary key with serial", func(t *testing.T) {
		got := RewriteForNetworked("CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT)")
		assert.Equal(t, "CREATE TABLE t (id SERIAL PRIMARY KEY, name TEXT)", got)
	})

	t.Run("drops standalone AUTOINCREMENT", func(t *testing.T) {
		got := RewriteForNetworked("CREATE TABLE t (id INTEGER AUTOINCREMENT, name TEXT)")
		assert.Equal(t, "CREATE TABLE t (id INTEGER, name TEXT)", got)
		assert.NotContains(t, got, "AUTOINCREMENT")
	})

	t.Run("leaves boolean defaults and DATE untouched", func(t *testing.T) {
		query := "CREATE TABLE t (a BOOLEAN DEFAULT FALSE, b BOOLEAN DEFAULT TRUE, d DATE)"
		assert.Equal(t, query, RewriteForNetworked(query))

		query = "SELECT * FROM user_streaks WHERE streak_date = DATE('now')"
		assert.Equal(t, query, RewriteForNetworked(query))
	})

	t.Run("replaces placeholders in order", func(t *testing.T) {
		got := RewriteForNetworked("INSERT INTO admins (username, password_hash) VALUES (?, ?)")
		assert.Equal(t, "INSERT INTO admins (username, password_hash) VALUES ($1, $2)", got)
	})

	t.Run("query without placeholders is unchanged", func(t *testing.T) {
		assert.Equal(t, "SELECT 1", RewriteForNetworked("SELECT 1"))
	})

	t.Run("rewrites question marks inside literals too", func(t *testing.T) {
		// Known limitation: callers never put "?" in query text.
		got := RewriteForNetworked("SELECT '?' WHERE id = ?")
		assert.Equal(t, "SELECT '$1' WHERE id = $2", got)
	})
}

func TestRewriteForNetworked_PreservesPlaceholderCount(t *testing.T) {
	templates := []string{
		"SELECT * FROM users WHERE id = ?",
		"UPDATE users SET total_points = total_points + ?, current_streak = ? WHERE id = ?",
		"INSERT INTO user_completions (user_id, module_type, content_id, score, points_earned) VALUES (?, ?, ?, ?, ?)",
		"SELECT * FROM tasks WHERE department IN (?, 'ALL') AND is_active = TRUE AND due_date >= DATE(?)",
		"DELETE FROM user_streaks WHERE user_id=? AND streak_date<?",
		strings.Repeat("?,", 25) + "?",
	}

	for _, tmpl := range templates {
		t.Run(tmpl, func(t *testing.T) {
			got := RewriteForNetworked(tmpl)

			assert.NotContains(t, got, "?")
			matches := dollarPlaceholder.FindAllStringSubmatch(got, -1)
			assert.Len(t, matches, strings.Count(tmpl, "?"))
			for i, m := range matches {
				assert.Equal(t, strconv.Itoa(i+1), m[1], "placeholder %d out of order", i)
			}
		})
	}
}

func TestBackendRewrite(t *testing.T) {
	query := "CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT, flag BOOLEAN DEFAULT FALSE) -- ?"

	t.Run("embedded backend keeps the template verbatim", func(t *testing.T) {
		assert.Equal(t, query, NewEmbeddedBackend("x.db").Rewrite(query))
	})

	t.Run("networked backend translates", func(t *testing.T) {
		assert.Equal(t, RewriteForNetworked(query), NewNetworkedBackend("postgresql://localhost/db").Rewrite(query))
	})
}
