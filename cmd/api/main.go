package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-translator/internal/application/history"
	"github.com/go-translator/internal/application/language"
	"github.com/go-translator/internal/application/translate"
	"github.com/go-translator/internal/config"
	"github.com/go-translator/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-translator/internal/infrastructure/jwt"
	s3infra "github.com/go-translator/internal/infrastructure/s3"
	"github.com/go-translator/internal/infrastructure/translateapi"
	"github.com/go-translator/internal/pkg/flag"
	"github.com/go-translator/internal/pkg/logger"
	transporthttp "github.com/go-translator/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "translator"})
	if envErr != nil {
		log.Info().Msg("no .env file found, reading from environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	awsCfg, err := dynamo.LoadAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("aws config")
	}

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(awsCfg, cfg)
	dynamo.Bootstrap(ctx, dynamoClient, cfg.DynamoTables, logger.Component(log, "dynamo"))
	historyRepo := dynamo.NewHistoryRepo(dynamoClient, cfg.DynamoTables.History)

	s3Store := s3infra.NewStore(s3infra.NewClient(awsCfg, cfg), cfg.S3BucketName)

	// JWT provider (optional: without keys every caller shares the anonymous history).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Warn().Err(err).Msg("jwt provider not available, authentication disabled")
	}

	backend := translateapi.NewClient(cfg, logger.Component(log, "translateapi"))

	deps := &transporthttp.Deps{
		Translate:   translate.NewService(backend, historyRepo, logger.Component(log, "translate")),
		Languages:   language.NewService(flag.CountryCodeEmojiMapper{}),
		History:     history.NewService(historyRepo, s3Store, cfg.ExportURLTTL, logger.Component(log, "history")),
		JWTProvider: jwtProvider,
		Logger:      logger.Component(log, "http"),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      transporthttp.NewRouter(ctx, cfg, deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.TranslateTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.AppPort).Str("env", cfg.AppEnv).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
