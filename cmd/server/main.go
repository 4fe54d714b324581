package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/p-n-ai/edupilot/internal/api"
	"github.com/p-n-ai/edupilot/internal/curriculum"
	"github.com/p-n-ai/edupilot/internal/events"
	"github.com/p-n-ai/edupilot/internal/platform/cache"
	"github.com/p-n-ai/edupilot/internal/platform/config"
	"github.com/p-n-ai/edupilot/internal/platform/database"
	"github.com/p-n-ai/edupilot/internal/roadmap"
	"github.com/p-n-ai/edupilot/internal/skillgap"
	"github.com/p-n-ai/edupilot/internal/usage"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log, os.Stdout))

	// Graceful shutdown on SIGTERM/SIGINT.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	deps, cleanup, err := buildDeps(ctx, cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.New(deps).Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newLogger builds the process logger from config. Validate has already
// checked the level and format.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.AddSource}

	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// buildDeps wires the API services. Without a database URL events only go
// to the log; without a cache URL usage is counted in memory.
func buildDeps(ctx context.Context, cfg *config.Config) (api.Deps, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	classifier := skillgap.ThresholdClassifier{
		BeginnerBelow:  cfg.SkillGap.BeginnerBelow,
		ProficientFrom: cfg.SkillGap.ProficientFrom,
	}
	if err := classifier.Validate(); err != nil {
		return api.Deps{}, cleanup, fmt.Errorf("skill-gap classifier: %w", err)
	}

	deps := api.Deps{
		Generator: roadmap.NewGenerator(roadmap.GeneratorConfig{
			HardKeywords: cfg.Planner.HardKeywords,
		}),
		Analyzer: skillgap.NewAnalyzer(classifier),
		Events:   events.NopEventLogger{},
		Checks:   map[string]api.HealthChecker{},
	}

	loader, err := curriculum.NewLoader(cfg.CurriculumPath)
	if err != nil {
		return deps, cleanup, fmt.Errorf("loading syllabi: %w", err)
	}
	deps.Syllabi = loader

	if cfg.HasDatabase() {
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			return deps, cleanup, fmt.Errorf("connecting to database: %w", err)
		}
		closers = append(closers, db.Close)

		logger := events.NewPostgresEventLogger(db.Pool)
		if err := logger.EnsureSchema(ctx); err != nil {
			cleanup()
			return deps, func() {}, err
		}
		deps.Events = logger
		deps.Checks["database"] = db
		slog.Info("event storage enabled")
	}

	var tracker usage.Tracker = usage.NewMemoryTracker()
	if cfg.HasCache() {
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			cleanup()
			return deps, func() {}, fmt.Errorf("connecting to cache: %w", err)
		}
		closers = append(closers, func() {
			if err := c.Close(); err != nil {
				slog.Warn("cache close error", "error", err)
			}
		})
		tracker = usage.NewRedisTracker(c.Client)
		deps.Checks["cache"] = c
		slog.Info("shared usage tracking enabled")
	}
	deps.Quota = usage.NewQuota(tracker, cfg.Usage.DailyLimit)

	return deps, cleanup, nil
}
