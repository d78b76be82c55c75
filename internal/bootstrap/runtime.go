// Package bootstrap wires configuration, persistence, and observability
// for the application binaries.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"ripple/internal/cache"
	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/middleware"
	"ripple/internal/observability"
	"ripple/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates an empty database with generated demo content.
	SeedDemoData bool
}

// Runtime holds the initialized shared dependencies.
type Runtime struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client

	shutdownTracing func(context.Context) error
}

// InitRuntime loads configuration, structures logging, connects to the
// database and Redis, and starts the tracer. Redis being unreachable is
// not fatal; dependent features degrade.
func InitRuntime(opts Options) (*Runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	middleware.InitLogging(cfg.Env)

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "ripple-api",
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplerRatio: cfg.SamplerRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	rdb := cache.GetClient()
	if rdb == nil {
		slog.Warn("redis unavailable, realtime notifications and refresh tokens disabled")
	}

	if opts.SeedDemoData {
		if err := seedIfEmpty(db); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	return &Runtime{
		Config:          cfg,
		DB:              db,
		Redis:           rdb,
		shutdownTracing: shutdownTracing,
	}, nil
}

// Shutdown flushes the tracer. DB and Redis connections are owned by the
// server and closed through its shutdown path.
func (r *Runtime) Shutdown(ctx context.Context) {
	if r.shutdownTracing != nil {
		if err := r.shutdownTracing(ctx); err != nil {
			slog.Error("error shutting down tracing", "error", err)
		}
	}
}

// seedIfEmpty runs demo seeding only when no users exist yet, so restarts
// of a dev stack never double-populate.
func seedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Table("users").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("database already populated, skipping demo seed", "users", count)
		return nil
	}
	return seed.Run(db, seed.Options{NumUsers: 12, PostsPerUser: 4})
}
