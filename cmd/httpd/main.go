// Command httpd runs the job-normalizer HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonesrussell/job-normalizer/internal/bootstrap"
	"github.com/jonesrussell/job-normalizer/internal/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting HTTP server",
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug))

	components := bootstrap.NewHTTPComponents(context.Background(), cfg, log)
	defer components.Pipeline.Close()

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- components.Server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case serveErr := <-serverErrors:
		if serveErr != nil {
			log.Fatal("server error", logger.Error(serveErr))
		}
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := components.Server.Shutdown(ctx); shutdownErr != nil {
			log.Fatal("graceful shutdown failed", logger.Error(shutdownErr))
		}

		log.Info("server stopped gracefully")
	}
}
