// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Marquee comments API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Build storage for the selected driver:
//     postgres connects the pool, runs migrations and optionally Redis;
//     memory seeds a demo movie.
//  4. Load the access token verifier.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"

	"github.com/taibuivan/marquee/internal/api"
	"github.com/taibuivan/marquee/internal/catalog/movie"
	"github.com/taibuivan/marquee/internal/platform/config"
	"github.com/taibuivan/marquee/internal/platform/constants"
	"github.com/taibuivan/marquee/internal/platform/migration"
	pgstore "github.com/taibuivan/marquee/internal/platform/postgres"
	redisstore "github.com/taibuivan/marquee/internal/platform/redis"
	"github.com/taibuivan/marquee/internal/platform/sec"
	"github.com/taibuivan/marquee/internal/social/comment"
	"github.com/taibuivan/marquee/internal/social/memstore"
	"github.com/taibuivan/marquee/internal/social/moviereaction"
	"github.com/taibuivan/marquee/internal/social/reaction"
	"github.com/taibuivan/marquee/internal/users/profile"
	"github.com/taibuivan/marquee/pkg/uuid"
)

// backend is everything the domain services need from storage.
type backend struct {
	movies   movie.Repository
	profiles profile.Source
	cache    profile.Cache
	comments comment.Store
	ledger   reaction.Ledger
	tx       reaction.Transactor
	verdicts moviereaction.Store
	probes   []api.Probe
	close    func()
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// ── 3. Storage ────────────────────────────────────────────────────────
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	var store *backend
	switch cfg.StorageDriver {
	case config.DriverMemory:
		store = memoryBackend(log)
	default:
		store = postgresBackend(startupCtx, cfg, log)
	}
	startupCancel()
	defer store.close()

	// ── 4. Identity ───────────────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "load token verifier")

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	movieService := movie.NewService(store.movies)
	directory := profile.NewDirectory(store.profiles, store.cache, log)
	commentService := comment.NewService(store.comments, movieService, directory, cfg.CommentMaxLength, log)
	reactionService := reaction.NewService(store.ledger, store.comments, store.tx, cfg.ReactionMaxAttempts, log)
	movieReactionService := moviereaction.NewService(store.verdicts, movieService, log)

	liveness, readiness := api.NewHealthHandlers(log, store.probes...)

	server := api.NewServer(rootCtx, cfg, log, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Movie:     movie.NewHandler(movieService),
		Comment:   comment.NewHandler(commentService),
		Reaction:  reaction.NewHandler(reactionService),

		MovieReaction: moviereaction.NewHandler(movieReactionService),
	})

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

func postgresBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) *backend {
	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	commentStore := comment.NewPostgresStore(pool, trmpgx.DefaultCtxGetter)

	store := &backend{
		movies:   movie.NewPostgresRepository(pool),
		profiles: profile.NewPostgresSource(pool),
		comments: commentStore,
		ledger:   reaction.NewPostgresLedger(pool, trmpgx.DefaultCtxGetter),
		tx:       pgstore.NewTxManager(pool),
		verdicts: moviereaction.NewPostgresStore(pool),
		probes: []api.Probe{{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		}},
	}

	closers := []func(){func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}}

	if cfg.RedisURL != "" {
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		must(log, err, "connect to redis")

		store.cache = profile.NewRedisCache(client, cfg.ProfileCacheTTL)
		store.probes = append(store.probes, api.Probe{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisstore.Ping(ctx, client) },
		})
		closers = append(closers, func() {
			log.Info("closing_redis_client")
			if err := client.Close(); err != nil {
				log.Error("redis_close_error", slog.Any("error", err))
			}
		})
	}

	store.close = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	return store
}

func memoryBackend(log *slog.Logger) *backend {
	demo := movie.Movie{
		ID:          uuid.New(),
		ExternalID:  "demo",
		Genre:       "Drama",
		ReleaseYear: 1994,
		CreatedAt:   time.Now().UTC(),
	}
	social := memstore.New()

	log.Warn("memory_storage_enabled",
		slog.String("demo_movie_id", demo.ID),
		slog.String("demo_external_id", demo.ExternalID),
	)

	return &backend{
		movies:   movie.NewMemoryRepository(demo),
		profiles: profile.NewMemorySource(nil),
		comments: social,
		ledger:   social,
		tx:       social,
		verdicts: moviereaction.NewMemoryStore(),
		close:    func() {},
	}
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Reserved for startup wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
