package main

import (
	"context"
	"os"
	"time"

	"github.com/CodeRohanDev/FastSubmit-sub004/config"
	"github.com/CodeRohanDev/FastSubmit-sub004/db"
	keyhandler "github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/handler"
	keyrepo "github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/repository/postgres"
	keyservice "github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/service"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/cache"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/dnsverify"
	domainhandler "github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/handler"
	domainrepo "github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/repository/postgres"
	domainservice "github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/service"
	formhandler "github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/handler"
	formrepo "github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/repository/postgres"
	formservice "github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/service"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/identity"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/notify"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/ratelimit"
	subhandler "github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/handler"
	subrepo "github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/repository/postgres"
	subservice "github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/service"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	redisClient, err := db.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	var keyCache cache.Cache
	var limiter ratelimit.Limiter
	rateWindow := time.Duration(cfg.SubmitRateWindowS) * time.Second
	if redisClient != nil {
		keyCache = cache.NewRedis(redisClient, "fs:")
		limiter = ratelimit.NewRedis(redisClient, "fs:", cfg.SubmitRateLimit, rateWindow)
		log.Info().Msg("using redis for api key cache and rate limiting")
	} else {
		keyCache = cache.NewMemory()
		limiter = ratelimit.NewMemory(cfg.SubmitRateLimit, rateWindow)
		log.Info().Msg("REDIS_URL not set, using in-process cache and rate limiting")
	}

	var notifier notify.Notifier
	if cfg.ResendAPIKey != "" {
		notifier = notify.NewResendNotifier(cfg.ResendAPIKey, cfg.NotifyFromAddress, log.Logger)
	} else {
		notifier = notify.LogNotifier{Log: log.Logger}
	}

	domainRepo := domainrepo.NewPostgresDomainRepository(dbPool)
	keyRepo := keyrepo.NewPostgresKeyRepository(dbPool)
	formRepo := formrepo.NewPostgresFormRepository(dbPool)
	submissionRepo := subrepo.NewPostgresSubmissionRepository(dbPool)

	registryService := domainservice.NewRegistryService(domainRepo,
		domainservice.RandomTokenGenerator{}, dnsverify.New(nil), log.Logger)
	keyService := keyservice.NewKeyService(keyRepo, keyCache, log.Logger)
	formService := formservice.NewFormService(formRepo, domainRepo)
	submitService := subservice.NewSubmitService(formRepo, submissionRepo, limiter, notifier, log.Logger)

	tokenService := identity.NewTokenService(cfg.SessionTokenSecret)
	requireSession := identity.RequireSession(tokenService)
	requireKey := keyhandler.RequireKey(keyService)

	app := fiber.New()
	domainhandler.RegisterRoutes(app, domainhandler.NewDomainHandler(registryService), requireSession)
	keyhandler.RegisterRoutes(app, keyhandler.NewKeyHandler(keyService), requireSession)
	formhandler.RegisterRoutes(app, formhandler.NewFormHandler(formService), requireKey)
	subhandler.RegisterRoutes(app, subhandler.NewSubmissionHandler(submitService), requireKey)

	log.Info().Str("port", cfg.Port).Msg("starting FastSubmit API")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
