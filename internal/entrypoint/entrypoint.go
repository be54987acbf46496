package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santhiya0507/Shakespeare/internal/config"
	"github.com/santhiya0507/Shakespeare/internal/database"
	http_controllers "github.com/santhiya0507/Shakespeare/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -2 is SIGINT, plain kill sends SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Setup builds the adapter, bootstraps the schema and wires the router.
// Per-table bootstrap failures are logged but do not stop startup.
func Setup(cfg *config.Config, version string) (*gin.Engine, *database.Adapter, error) {
	db := database.New(cfg.Database.URL, cfg.Database.Path)
	if db.Backend().Kind() == database.BackendEmbedded {
		log.Printf("Using SQLite database at %s", cfg.Database.Path)
		if cfg.Database.URL != "" {
			log.Printf("WARNING: DATABASE_URL is set but the postgres driver is unavailable, falling back to SQLite")
		}
	} else {
		log.Printf("Using PostgreSQL database from DATABASE_URL")
	}

	report, err := db.InitSchema()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	for _, f := range report.Failed() {
		log.Printf("WARNING: %v", f)
	}

	if cfg.Global.GinMode != "" {
		gin.SetMode(cfg.Global.GinMode)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database: db,
		Version:  version,
	})
	return router, db, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Shakespeare v%s", version)

	router, _, err := Setup(cfg, version)
	if err != nil {
		log.Fatalf("%v", err)
	}

	Serve(router, cfg)
}
