package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"english-tutor/internal/config"
	"english-tutor/internal/content"
	apihttp "english-tutor/internal/http"
	"english-tutor/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	table := content.Default()
	if cfg.ContentFile != "" {
		table, err = content.LoadFile(cfg.ContentFile)
		if err != nil {
			logger.Fatal("content file", zap.Error(err), zap.String("path", cfg.ContentFile))
		}
	}
	logger.Info("content table loaded", zap.Int("entries", table.Len()))

	responder := service.NewResponder(table)
	registry := service.NewSessionRegistry(logger, responder, service.ConversationOptions{Delay: cfg.ReplyDelay}, cfg.SessionTTL, cfg.MaxSessions)
	transcripts := service.NewTranscriptService(cfg.TranscriptLimit)

	var limiter service.SessionLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisSessionLimiter(redisClient, cfg.RateLimitWindow, cfg.RateLimitMax)
		}
		cancel()
	}

	chatHandler := apihttp.NewChatHandler(logger, registry, transcripts)
	catalogHandler := apihttp.NewCatalogHandler(table)
	router := apihttp.NewRouter(logger, chatHandler, catalogHandler, limiter, cfg.TrustedProxies)

	go sweepSessions(ctx, registry, cfg.SessionTTL)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func sweepSessions(ctx context.Context, registry *service.SessionRegistry, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			registry.Sweep()
		}
	}
}
