package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"blind75-generator/internal/domain/ports"
	"blind75-generator/internal/usecase"
)

// Options controls the optional lifecycle behaviour.
type Options struct {
	// Schedule is a cron spec for archiving exports. Empty disables it.
	Schedule        string
	ShutdownTimeout time.Duration
	JobTimeout      time.Duration
}

// App manages the lifecycle of the HTTP server and the export scheduler.
type App struct {
	cron     *cron.Cron
	server   *http.Server
	archiver *usecase.Archiver
	logger   ports.Logger
	opts     Options
}

// New constructs an App instance.
func New(server *http.Server, archiver *usecase.Archiver, logger ports.Logger, opts Options) *App {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = 2 * time.Minute
	}
	return &App{
		cron:     cron.New(),
		server:   server,
		archiver: archiver,
		logger:   logger,
		opts:     opts,
	}
}

// Run serves HTTP until ctx is canceled, archiving exports on schedule when configured.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if a.opts.Schedule != "" {
		if err := a.scheduleJob(); err != nil {
			return fmt.Errorf("schedule exports: %w", err)
		}

		a.logger.Info(ctx, "archiving first export immediately")
		a.archive()

		a.logger.Info(ctx, "starting scheduler", "cron", a.opts.Schedule)
		a.cron.Start()

		g.Go(func() error {
			<-gctx.Done()
			stopCtx := a.cron.Stop()
			select {
			case <-stopCtx.Done():
			case <-time.After(5 * time.Second):
			}
			a.logger.Info(context.Background(), "scheduler stopped")
			return nil
		})
	}

	g.Go(func() error {
		a.logger.Info(gctx, "starting server", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.opts.ShutdownTimeout)
		defer cancel()

		a.logger.Info(shutdownCtx, "shutting down server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error(shutdownCtx, "server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	return g.Wait()
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.opts.Schedule, a.archive)
	if err != nil {
		return err
	}
	return nil
}

func (a *App) archive() {
	ctx, cancel := context.WithTimeout(context.Background(), a.opts.JobTimeout)
	defer cancel()
	if _, err := a.archiver.Run(ctx, usecase.ExportRequest{}); err != nil {
		a.logger.Error(ctx, "scheduled export failed", "error", err)
	}
}
