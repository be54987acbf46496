// Package admins provides database operations for administrator accounts.
//
// # Usage
//
//	repo := admins.NewRepository(db)
//	admin, err := repo.GetByUsername("admin")
package admins

import (
	"errors"
	"fmt"

	"github.com/santhiya0507/Shakespeare/internal/database"
	"github.com/santhiya0507/Shakespeare/internal/entities"
)

// ErrNotFound is returned when no administrator matches.
var ErrNotFound = errors.New("admin not found")

// Querier is the part of *database.Adapter the repository uses.
type Querier interface {
	FetchOne(query string, args ...any) (database.Row, error)
	FetchAll(query string, args ...any) ([]database.Row, error)
	Exec(query string, args ...any) error
}

var _ Querier = (*database.Adapter)(nil)

// Repository handles all administrator database operations.
type Repository struct {
	db Querier
}

// NewRepository creates a new admins repository.
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// Create stores a new administrator with an already hashed password.
func (r *Repository) Create(username, passwordHash string) (*entities.Admin, error) {
	if err := r.db.Exec("INSERT INTO admins (username, password_hash) VALUES (?, ?)", username, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to create admin %s: %w", username, err)
	}
	return r.GetByUsername(username)
}

// GetByUsername retrieves an administrator by username.
func (r *Repository) GetByUsername(username string) (*entities.Admin, error) {
	row, err := r.db.FetchOne("SELECT id, username, password_hash, created_at FROM admins WHERE username = ?", username)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return toAdmin(row)
}

// List returns all administrators ordered by id.
func (r *Repository) List() ([]entities.Admin, error) {
	rows, err := r.db.FetchAll("SELECT id, username, password_hash, created_at FROM admins ORDER BY id")
	if err != nil {
		return nil, err
	}

	admins := make([]entities.Admin, 0, len(rows))
	for _, row := range rows {
		admin, err := toAdmin(row)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *admin)
	}
	return admins, nil
}

// UpdatePassword replaces the stored hash for username.
func (r *Repository) UpdatePassword(username, passwordHash string) error {
	if _, err := r.GetByUsername(username); err != nil {
		return err
	}
	return r.db.Exec("UPDATE admins SET password_hash = ? WHERE username = ?", passwordHash, username)
}

func toAdmin(row database.Row) (*entities.Admin, error) {
	id, err := row.Int64("id")
	if err != nil {
		return nil, fmt.Errorf("invalid admin row: %w", err)
	}
	createdAt, _ := row.Time("created_at")
	return &entities.Admin{
		ID:           id,
		Username:     row.String("username"),
		PasswordHash: row.String("password_hash"),
		CreatedAt:    createdAt,
	}, nil
}
