package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carrierdash/internal/app"
	"carrierdash/internal/appconf"
	"carrierdash/internal/carriers"
	"carrierdash/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := appconf.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewLogger(os.Stdout, cfg.IsDevelopment(), cfg.Verbose)
	slog.SetDefault(logger)

	manager, err := carriers.InitManager(carriers.Config{DataPath: cfg.DataPath, Verbose: cfg.Verbose}, logger)
	if err != nil {
		logging.LogError(logger, "failed to load carrier data", err,
			slog.String("data_path", cfg.DataPath))
		os.Exit(1)
	}

	manager.PrintStatistics(os.Stdout)

	application := app.New(cfg, logger, manager)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, application); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// serve runs the dashboard until ctx is cancelled or the listener fails
func serve(ctx context.Context, application *app.Application) error {
	handler, api := routes(application)
	defer api.Close()

	cfg := application.Config
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(application.Logger.Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)
	go func() {
		application.Logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	application.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serverErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
