package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/santhiya0507/Shakespeare/internal/config"
	"github.com/santhiya0507/Shakespeare/internal/database"
)

// InitDBCommand creates the application schema and prints a per-table report.
type InitDBCommand struct {
	DatabaseURL  string
	DatabasePath string
}

func NewInitDBCommand() *InitDBCommand {
	return &InitDBCommand{}
}

func (cmd *InitDBCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("init-db", flag.ExitOnError)

	fs.StringVar(&cmd.DatabaseURL, "url", cfg.Database.URL, "PostgreSQL connection string (defaults to $DATABASE_URL)")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the SQLite database file, used when no connection string is set")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s init-db [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create all application tables. Safe to run repeatedly.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *InitDBCommand) Run() error {
	db := database.New(cmd.DatabaseURL, cmd.DatabasePath)

	fmt.Println("Schema Bootstrap")
	fmt.Println("================")
	fmt.Printf("Backend: %s\n\n", db.Backend().Kind())

	report, err := db.InitSchema()
	if report != nil {
		printReport(report)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

func printReport(report *database.BootstrapReport) {
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Printf("  FAIL %-20s %v\n", res.Table, res.Err)
		} else {
			fmt.Printf("  ok   %s\n", res.Table)
		}
	}
	fmt.Printf("\n%d tables ready, %d failed\n", len(report.Created()), len(report.Failed()))
}
