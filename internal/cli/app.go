// Package cli provides the command-line interface for navkit.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/navkit/internal/config"
	"github.com/bnema/navkit/internal/domain/repository"
	"github.com/bnema/navkit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/navkit/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	Visits repository.VisitRepository

	db  *sql.DB
	ctx context.Context
}

// NewApp loads configuration, sets up logging and opens the visit database.
func NewApp() (*App, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	})
	ctx := logging.WithContext(context.Background(), logger)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open visit database: %w", err)
	}

	return &App{
		Config: cfg,
		Visits: sqlite.NewVisitRepository(db),
		db:     db,
		ctx:    ctx,
	}, nil
}

// Context returns the app context carrying the configured logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Close releases the database connection.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}
