// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command akhdar runs the content API for the akhdar site: a unified
// persistence facade over MySQL with a SQLite-backed fallback store,
// exposed as a JSON REST service.
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
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/akhdar/akhdar-go/internal/config"
	"github.com/akhdar/akhdar-go/internal/db"
	"github.com/akhdar/akhdar-go/internal/handler"
	"github.com/akhdar/akhdar-go/internal/logging"
	"github.com/akhdar/akhdar-go/internal/middleware"
	"github.com/akhdar/akhdar-go/internal/store"
	"github.com/akhdar/akhdar-go/internal/store/local"
	"github.com/akhdar/akhdar-go/internal/store/mysql"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Content API server for the akhdar site.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showHelp {
		flag.Usage()
		return
	}
	if *showVersion {
		fmt.Printf("akhdar %s (%s)\n", appVersion, appGitCommit)
		return
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	events := setupLogging(cfg)

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	sqlDB, err := local.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := local.Migrate(sqlDB); err != nil {
		return err
	}
	fallback := local.New(sqlDB)

	if cfg.DoSeed {
		if err := fallback.SeedSampleData(context.Background()); err != nil {
			return fmt.Errorf("seeding sample data: %w", err)
		}
	}

	var relational store.Relational
	if cfg.MySQLConfigured() {
		relational = mysql.New(mysql.Config{
			Host:     cfg.MySQLHost,
			Port:     cfg.MySQLPort,
			User:     cfg.MySQLUser,
			Password: cfg.MySQLPassword,
			Database: cfg.MySQLDatabase,
		})
	}

	manager := db.New(relational, fallback, slog.Default())
	defer manager.Close()

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := manager.Initialize(initCtx); err != nil {
		cancel()
		return fmt.Errorf("initializing database facade: %w", err)
	}
	cancel()

	api := handler.NewServer(manager, events, slog.Default())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))

	rateLimiter := middleware.NewGlobalRateLimiter(50, 100)
	r.Use(rateLimiter.Middleware())

	r.Mount("/api", api.Routes())

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// setupLogging installs the default logger: a text handler at the
// configured level, teeing WARN+ records into the in-memory event log.
func setupLogging(cfg *config.Config) *logging.EventHandler {
	level := parseLevel(cfg.LogLevel)
	text := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	events := logging.NewEventHandler(text)
	slog.SetDefault(slog.New(events))
	return events
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
