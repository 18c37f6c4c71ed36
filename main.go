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

	"golang.org/x/sync/errgroup"

	"docker-content-demo/internal/content"
	"docker-content-demo/internal/filesystem"
	demohttp "docker-content-demo/internal/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("docker-content-demo", flag.ContinueOnError)
	port := flags.String(
		"port",
		getenvDefault("DEMO_PORT", "5000"),
		"port the HTTP server listens on",
	)
	dataDir := flags.String(
		"data-dir",
		getenvDefault("DEMO_DATA_DIR", "/data"),
		"directory holding the content file, expected to be a volume mount",
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	storage := filesystem.NewContentStorage(*dataDir)
	if err := storage.Init(); err != nil {
		return fmt.Errorf("init content storage: %w", err)
	}

	contentSvc := content.NewService(storage, logger)

	srv := demohttp.NewServer(ctx, ":"+*port, contentSvc, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server listening",
			slog.String("addr", srv.Addr),
			slog.String("dataDir", *dataDir),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		logger.Info("Server shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
