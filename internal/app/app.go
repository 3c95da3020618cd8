// Package app wires the report pipeline and runs it end to end:
// load both sources, index companies, aggregate users, sort, write.
// Stages run strictly in sequence; the first error aborts the run and
// the caller decides the process exit code.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/topup/internal/aggregator"
	"github.com/dmitrijs2005/topup/internal/config"
	"github.com/dmitrijs2005/topup/internal/formatter"
	"github.com/dmitrijs2005/topup/internal/indexer"
	"github.com/dmitrijs2005/topup/internal/loader"
	"github.com/dmitrijs2005/topup/internal/logging"
	"github.com/dmitrijs2005/topup/internal/models"
	"github.com/dmitrijs2005/topup/internal/reporter"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func New(cfg *config.Config) *App {
	l := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	return NewWithLogger(cfg, l)
}

// NewWithLogger is New with an injected logger. Each app tags its logger
// with a fresh run id.
func NewWithLogger(cfg *config.Config, logger logging.Logger) *App {
	return &App{
		config: cfg,
		logger: logger.With("run_id", uuid.NewString()),
	}
}

func (app *App) Run(ctx context.Context) error {

	app.logger.Info(ctx, "starting top-up run",
		"users", app.config.UsersFile,
		"companies", app.config.CompaniesFile,
		"output", app.config.OutputFile,
	)

	users, err := loader.Load[*models.User](app.config.UsersFile)
	if err != nil {
		return fmt.Errorf("loading users: %w", err)
	}
	companies, err := loader.Load[*models.Company](app.config.CompaniesFile)
	if err != nil {
		return fmt.Errorf("loading companies: %w", err)
	}
	app.logger.Debug(ctx, "sources loaded", "users", len(users), "companies", len(companies))

	accounts, err := indexer.Build(companies)
	if err != nil {
		return fmt.Errorf("indexing companies: %w", err)
	}

	if err := aggregator.Apply(users, accounts); err != nil {
		return fmt.Errorf("aggregating users: %w", err)
	}

	sorted, err := formatter.Sort(accounts)
	if err != nil {
		return fmt.Errorf("sorting report: %w", err)
	}

	if err := reporter.Write(app.config.OutputFile, sorted); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	app.logger.Info(ctx, "report written", "path", app.config.OutputFile, "companies", len(sorted))
	return nil
}
