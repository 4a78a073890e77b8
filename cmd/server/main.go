// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Validation logic lives in the internal packages.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"sepalint/internal/platform/config"
	"sepalint/internal/platform/httpserver"
	"sepalint/internal/platform/logger"
	"sepalint/internal/profile"
	"sepalint/internal/schema"
	httptransport "sepalint/internal/transport/http"
	"sepalint/internal/validator"
	"sepalint/internal/validator/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	sch, err := schema.Compile()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	registry := profile.NewRegistry()
	for _, p := range []profile.Profile{&profile.Base{}, &profile.HVB{}, &profile.CoBa{}} {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("register profile: %w", err)
		}
	}

	svc, err := validator.New(sch, registry,
		validator.WithLogger(log),
		validator.WithMetrics(metrics.New()),
	)
	if err != nil {
		return fmt.Errorf("build validator: %w", err)
	}

	handler := httptransport.New(svc, log, cfg.MaxBodyBytes, cfg.DefaultProfile)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler, log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting sepalint", "addr", cfg.Addr, "default_profile", cfg.DefaultProfile)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
