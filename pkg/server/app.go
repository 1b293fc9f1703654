package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CapitolPulse/internal/dataset"
	"CapitolPulse/pkg/config"
	xhttp "CapitolPulse/pkg/http"
	applogger "CapitolPulse/pkg/logger"
)

// App encapsulates the application lifecycle: load the dataset, serve the
// API, shut down on signal.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	store      *dataset.Store
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates an App with all dependencies injected.
func New(cfg *config.Config, logger *applogger.Logger, store *dataset.Store, handler xhttp.Handler) *App {
	return &App{cfg: cfg, logger: logger, store: store, handler: handler}
}

// Run starts the application and blocks until interrupted. The HTTP server
// comes up immediately and answers 503 on dataset routes until the initial
// load finishes.
func (a *App) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.logger),
	}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}
	a.httpServer = xhttp.NewServer(a.handler, opts...)

	go a.loadDataset(ctx)

	if err := a.httpServer.Start(); err != nil {
		return err
	}
	a.logger.Info("server started", applogger.Int("port", a.cfg.Server.Port))

	<-ctx.Done()
	a.logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	return a.httpServer.Stop(shutdownCtx)
}

// loadDataset runs the initial load, retrying with a fixed delay until it
// succeeds or the app is stopping.
func (a *App) loadDataset(ctx context.Context) {
	const retryDelay = 10 * time.Second

	for {
		start := time.Now()
		err := a.store.Load(ctx)
		if err == nil {
			a.logger.Info("dataset loaded", applogger.Duration("took", time.Since(start)))
			return
		}
		a.logger.Error("dataset load failed", applogger.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay):
		}
	}
}
