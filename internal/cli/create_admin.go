package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/santhiya0507/Shakespeare/internal/config"
	"github.com/santhiya0507/Shakespeare/internal/database"
	"github.com/santhiya0507/Shakespeare/internal/database/admins"
)

// CreateAdminCommand adds an administrator account, or resets its password
// when -reset is given.
type CreateAdminCommand struct {
	DatabaseURL  string
	DatabasePath string
	Username     string
	Password     string
	Reset        bool
	BcryptCost   int

	db *database.Adapter
}

func NewCreateAdminCommand() *CreateAdminCommand {
	return &CreateAdminCommand{}
}

func (cmd *CreateAdminCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)

	fs.StringVar(&cmd.DatabaseURL, "url", cfg.Database.URL, "PostgreSQL connection string (defaults to $DATABASE_URL)")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the SQLite database file, used when no connection string is set")
	fs.StringVar(&cmd.Username, "username", "admin", "Administrator username")
	fs.StringVar(&cmd.Password, "password", "", "Administrator password (required)")
	fs.BoolVar(&cmd.Reset, "reset", false, "Replace the password if the administrator already exists")
	fs.IntVar(&cmd.BcryptCost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-admin -password <password> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create an administrator account. The schema is created first if needed.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Password == "" {
		return fmt.Errorf("required flag -password not provided")
	}
	if cmd.Username == "" {
		return fmt.Errorf("username must not be empty")
	}

	return nil
}

func (cmd *CreateAdminCommand) Run() error {
	if cmd.db == nil {
		cmd.db = database.New(cmd.DatabaseURL, cmd.DatabasePath)
	}
	if _, err := cmd.db.InitSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), cmd.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	repo := admins.NewRepository(cmd.db)
	existing, err := repo.GetByUsername(cmd.Username)
	switch {
	case err == nil && cmd.Reset:
		if err := repo.UpdatePassword(cmd.Username, string(hash)); err != nil {
			return fmt.Errorf("failed to reset password: %w", err)
		}
		fmt.Printf("Password updated for admin %q (id %d)\n", existing.Username, existing.ID)
		return nil
	case err == nil:
		fmt.Printf("Admin %q already exists (id %d), nothing to do\n", existing.Username, existing.ID)
		return nil
	case !errors.Is(err, admins.ErrNotFound):
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	admin, err := repo.Create(cmd.Username, string(hash))
	if err != nil {
		return err
	}
	fmt.Printf("Created admin %q (id %d)\n", admin.Username, admin.ID)
	return nil
}
