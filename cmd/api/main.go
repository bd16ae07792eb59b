package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"guess-the-number/internal/config"
	"guess-the-number/internal/handlers"
	"guess-the-number/internal/middleware"
	"guess-the-number/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer store.Close()

	jwtService := services.NewJWTService(cfg)
	gameService := services.NewGameService(store)
	wsHandler := handlers.NewWebSocketHandler(gameService)
	gameService.SetBroadcaster(wsHandler)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				gameService.CleanupStaleSessions(ctx, cfg.SessionTTL)
				rateLimiter.Cleanup(10 * time.Minute)
			case <-ctx.Done():
				return
			}
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		GameService: gameService,
		JWTService:  jwtService,
		RateLimiter: rateLimiter,
		WebSocket:   wsHandler,
		Debug:       !cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Number Guessing Game API server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newSessionStore(cfg *config.Config) (services.SessionStore, error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, keeping sessions in memory")
		return services.NewMemoryStore(), nil
	}
	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		return nil, err
	}
	return redisService, nil
}
