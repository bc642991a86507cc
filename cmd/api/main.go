package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"mood-analyzer/internal/config"
	"mood-analyzer/internal/db"
	"mood-analyzer/internal/extractor"
	apihttp "mood-analyzer/internal/http"
	"mood-analyzer/internal/llm"
	"mood-analyzer/internal/repository"
	"mood-analyzer/internal/sentiment"
	"mood-analyzer/internal/service"

	"github.com/gin-gonic/gin"
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

	var logger *zap.Logger
	if cfg.IsDevelopment() {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
		gin.SetMode(gin.ReleaseMode)
	}
	defer logger.Sync()

	// Catálogo de preguntas: Postgres (opcional) -> archivo -> defaults.
	var sources []repository.QuestionRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()

		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := db.Ping(ctxPing, pool); err != nil {
			logger.Warn("db ping failed", zap.Error(err))
		} else if err := db.EnsureSchema(ctxPing, pool); err != nil {
			logger.Warn("ensure schema failed", zap.Error(err))
		}
		cancel()
		sources = append(sources, repository.NewPgQuestionRepository(pool))
	}
	sources = append(sources, repository.NewFileQuestionRepository(cfg.QuestionsFile))
	questions := repository.NewQuestionCatalog(logger, sources...)

	vader := sentiment.NewVaderAnalyzer()
	general, closeGeneral := newGeneralSentiment(ctx, cfg, vader, logger)
	defer closeGeneral()

	textAnalyzer := service.NewTextAnalyzer(vader, general, logger)
	voiceAnalyzer := service.NewVoiceAnalyzer(logger)
	facialAnalyzer := service.NewFacialAnalyzer(logger)
	extractorClient := extractor.NewHTTPClient(cfg.ExtractorBaseURL, cfg.ExtractorTimeout(), logger)
	analysisSvc := service.NewAnalysisService(logger, textAnalyzer, voiceAnalyzer, facialAnalyzer, extractorClient)

	limiter := service.NewMemoryRateLimiter(time.Minute, cfg.RateLimitPerMinute)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMinute)
		}
		cancel()
	}

	analysisHandler := apihttp.NewAnalysisHandler(logger, analysisSvc, cfg.MaxUploadBytes())
	questionHandler := apihttp.NewQuestionHandler(logger, questions)
	router := apihttp.NewRouter(logger, analysisHandler, questionHandler, limiter)
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("sentiment_provider", cfg.SentimentProvider),
		zap.String("extractor", cfg.ExtractorBaseURL),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newGeneralSentiment elige el proveedor de polaridad/subjetividad. Los remotos caen a VADER si fallan.
func newGeneralSentiment(ctx context.Context, cfg *config.Config, vader *sentiment.VaderAnalyzer, logger *zap.Logger) (sentiment.General, func()) {
	noop := func() {}

	switch cfg.SentimentProvider {
	case config.SentimentLLM:
		client := llm.NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
		return sentiment.NewFallbackGeneral(sentiment.NewLLMAnalyzer(client, logger), vader, logger), noop
	case config.SentimentGoogle:
		creds, err := cfg.GoogleCredentialsJSON()
		if err != nil {
			logger.Fatal("google credentials", zap.Error(err))
		}
		google, err := sentiment.NewGoogleAnalyzer(ctx, creds)
		if err != nil {
			logger.Fatal("google nl client", zap.Error(err))
		}
		closeFn := func() {
			if err := google.Close(); err != nil {
				logger.Warn("google nl close", zap.Error(err))
			}
		}
		return sentiment.NewFallbackGeneral(google, vader, logger), closeFn
	default:
		return sentiment.NewLexiconGeneral(vader), noop
	}
}
