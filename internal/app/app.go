// Package app wires the loaded notebook to its outputs: the chart-feed
// REST server when one is configured, or a one-shot printed report.
package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/tmsennott/velolog/internal/controllers/restserver"
	"github.com/tmsennott/velolog/internal/log"
	"github.com/tmsennott/velolog/internal/notebook"
	"github.com/tmsennott/velolog/pkg/config"
)

// App represents the main application
type App struct {
	cfg    *config.ConfigData
	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run parses the inputs and either serves or reports. It blocks until
// shutdown when serving.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	nb, err := notebook.Load(a.cfg)
	if err != nil {
		return err
	}

	if a.cfg.REST == nil {
		// No server configured: print the report and exit.
		return WriteReport(os.Stdout, nb)
	}

	ctrl, err := restserver.NewController(ctx, &wg, nb, *a.cfg.REST, a.logger)
	if err != nil {
		return err
	}
	if err := ctrl.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
