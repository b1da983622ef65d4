package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/glinthive/site-backend/internal/broker"
	"github.com/glinthive/site-backend/internal/cache"
	"github.com/glinthive/site-backend/internal/config"
	"github.com/glinthive/site-backend/internal/database"
	"github.com/glinthive/site-backend/internal/handler"
	"github.com/glinthive/site-backend/internal/logger"
	"github.com/glinthive/site-backend/internal/repository"
	"github.com/glinthive/site-backend/internal/router"
	"github.com/glinthive/site-backend/internal/service"
	"github.com/glinthive/site-backend/internal/validator"
	"github.com/glinthive/site-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting site backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	adviceRepo := repository.NewAdviceRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// ─── Redis-backed Plumbing ─────────────────────────────────────────
	blogCache := cache.NewRedisStore(rdb)
	inbox := broker.NewInbox(rdb, log)
	viewQueue := broker.NewViewQueue(rdb)

	// ─── Initialize Services ──────────────────────────────────────────
	tokens := service.NewTokenIssuer(cfg.JWTSecret)
	authService, err := service.NewAuthService(adminRepo, service.NewBcryptHasher(cfg.BcryptCost), tokens, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	blogService := service.NewBlogService(blogRepo, blogCache, viewQueue, cfg.BlogCacheTTL, log)
	contactService := service.NewContactService(contactRepo, inbox, log)
	adviceService := service.NewAdviceService(adviceRepo, inbox, log)
	dashboardService := service.NewDashboardService(statsRepo)
	mediaService := service.NewMediaService(cfg.UploadDir, cfg.MaxUploadBytes)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Blog:       handler.NewBlogHandler(blogService),
		Submission: handler.NewSubmissionHandler(contactService, adviceService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Media:      handler.NewMediaHandler(mediaService),
		WS:         handler.NewWSHandler(inbox, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	var workers sync.WaitGroup

	viewWorker := worker.NewViewWorker(viewQueue, blogRepo, log)
	workers.Go(func() { viewWorker.Start(workerCtx) })

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(tokens, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for the view buffer to flush.
	workerCancel()
	workers.Wait()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
