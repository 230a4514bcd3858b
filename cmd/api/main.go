package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-vault/config"
	httpHandler "expense-vault/internal/adapter/http/handler"
	memStorage "expense-vault/internal/adapter/storage/memory"
	pgStorage "expense-vault/internal/adapter/storage/postgres"
	redisStorage "expense-vault/internal/adapter/storage/redis"
	"expense-vault/internal/adapter/strategy"
	"expense-vault/internal/core/domain"
	"expense-vault/internal/core/ports"
	"expense-vault/internal/service"
	"expense-vault/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("asset_backend", cfg.Vault.AssetBackend).
		Msg("Starting Agent Expense Vault")

	ctx := context.Background()

	vaultAcct, err := domain.ParseAddress(cfg.Vault.Account)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid vault account address")
	}
	strategyAcct, err := domain.ParseAddress(cfg.Vault.StrategyAccount)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid strategy account address")
	}
	venueAcct, err := domain.ParseAddress(cfg.Vault.VenueAccount)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid venue account address")
	}

	// Asset ledger and event trail, per configured backend
	var (
		assets    ports.AssetLedger
		simLedger strategy.SimLedger
		eventRepo ports.EventRepository
		checkers  []ports.HealthChecker
	)
	switch cfg.Vault.AssetBackend {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure PostgreSQL schema")
		}
		log.Info().Msg("PostgreSQL connected")

		ledger := pgStorage.NewAssetLedger(pool)
		assets, simLedger = ledger, ledger
		eventRepo = pgStorage.NewEventRepo(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	default:
		ledger := memStorage.NewAssetLedger()
		assets, simLedger = ledger, ledger
		log.Info().Msg("In-memory asset ledger active; state is not persisted")
	}

	// Redis backs rate limiting only. A missing Redis degrades the API to
	// unlimited rather than refusing to start.
	var rateLimitStore *redisStorage.RateLimitStore
	if rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
	} else {
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	// Core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	sink := service.NewEventService(eventRepo, log)

	vault := service.NewVaultService(service.VaultParams{
		Account:   vaultAcct,
		Assets:    assets,
		Signer:    service.NewEd25519Recoverer(),
		Sink:      sink,
		DayLength: cfg.Vault.DayLength,
		Logger:    log,
	})

	// Liquidity strategy over the simulated yield venue
	venue := strategy.NewSimVenue(simLedger, venueAcct, strategyAcct)
	strat := strategy.NewVenueStrategy(venue, assets, vaultAcct, strategyAcct, log)
	if err := vault.WireStrategy(ctx, strat); err != nil {
		log.Fatal().Err(err).Msg("Failed to wire strategy adapter")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Vault:             vault,
		Policy:            vault,
		Events:            eventRepo,
		HashSvc:           hashSvc,
		TokenSvc:          tokenSvc,
		AdminUsername:     cfg.Admin.Username,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		RateLimitStore:    rateLimitStore,
		HealthCheckers:    checkers,
		Logger:            log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
