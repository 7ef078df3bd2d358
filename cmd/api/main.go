package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"bigfive-api/internal/config"
	"bigfive-api/internal/db"
	"bigfive-api/internal/email"
	apihttp "bigfive-api/internal/http"
	"bigfive-api/internal/llm"
	"bigfive-api/internal/repository"
	"bigfive-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	answerRepo := repository.NewPgAnswerRepository(pool)
	resultRepo := repository.NewPgResultRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		narrativeLimiter service.NarrativeRateLimiter
		tokenStore       service.RefreshTokenStore
		sessionLocker    service.SessionLocker
		redisClient      *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			narrativeLimiter = service.NewRedisNarrativeRateLimiter(redisClient, 10*time.Minute, 5)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			sessionLocker = service.NewRedisSessionLocker(redisClient, 30*time.Second)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userSvc := service.NewUserService(logger, userRepo)
	answerSvc := service.NewAnswerService(logger, sessionRepo, answerRepo, resultRepo, userRepo, emailSender)
	recalcSvc := service.NewRecalculationService(logger, answerRepo, resultRepo, sessionLocker)
	narrativeSvc := service.NewNarrativeService(logger, llmClient, resultRepo, narrativeLimiter)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	testHandler := apihttp.NewTestHandler(logger, sessionRepo, resultRepo, answerSvc, recalcSvc, narrativeSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, testHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
