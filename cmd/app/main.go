package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/abuhisan/coffee-backend/internal/config"
	"github.com/abuhisan/coffee-backend/internal/database"
	"github.com/abuhisan/coffee-backend/internal/logger"
	"github.com/abuhisan/coffee-backend/internal/product"
)

func main() {
	cfg := config.Load()

	log := logger.NewZapLogger(cfg.LogFilePath, cfg.IsProduction())
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Error("main", "invalid configuration", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	repo, closeDB := mustCatalog(cfg, log)
	defer closeDB()

	app, err := newApp(cfg, log, repo)
	if err != nil {
		log.Error("main", "failed to build app", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("main", "shutting down", nil)
		_ = app.Shutdown()
	}()

	log.Info("main", "listening", map[string]interface{}{"addr": cfg.Addr, "env": cfg.Environment})
	if err := app.Listen(cfg.Addr); err != nil {
		log.Error("main", "server stopped", map[string]interface{}{"error": err.Error()})
	}
}

// mustCatalog picks the Postgres catalog when DATABASE_URL is set and the
// compiled-in menu otherwise.
func mustCatalog(cfg config.Config, log logger.Logger) (product.Repository, func()) {
	if cfg.DatabaseURL == "" {
		log.Info("main", "using in-memory catalog", nil)
		return product.NewInMemoryRepository(product.DefaultCatalog()), func() {}
	}

	db, err := database.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("main", "database unavailable", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	repo := product.NewPostgresRepository(db)
	if err := repo.Migrate(product.DefaultCatalog()); err != nil {
		log.Error("main", "catalog migration failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	return repo, func() { db.Close() }
}
