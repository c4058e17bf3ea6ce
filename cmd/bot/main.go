// Command bot runs the currency-conversion Telegram bot: a webhook HTTP
// server in front of the update router, backed by SQLite for per-chat
// preferences and a cached, circuit-broken exchange-rate client.
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
	"gorm.io/gorm"

	"github.com/649000/currency-coinverter-bot/internal/bot"
	"github.com/649000/currency-coinverter-bot/internal/config"
	"github.com/649000/currency-coinverter-bot/internal/domain"
	"github.com/649000/currency-coinverter-bot/internal/geo"
	httpapi "github.com/649000/currency-coinverter-bot/internal/http"
	"github.com/649000/currency-coinverter-bot/internal/observability"
	"github.com/649000/currency-coinverter-bot/internal/rates"
	"github.com/649000/currency-coinverter-bot/internal/repo"
	"github.com/649000/currency-coinverter-bot/internal/services"
	"github.com/649000/currency-coinverter-bot/internal/sysutil"
	"github.com/649000/currency-coinverter-bot/internal/telegram"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// userRepoShim adapts the repository free functions to the services.UserRepo
// interface. This keeps services decoupled from the concrete repo package
// while reusing existing functions.
type userRepoShim struct{}

func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, chatID int64, username string) (*domain.UserPreference, error) {
	return repo.CreateUser(ctx, db, chatID, username)
}

func (userRepoShim) GetUser(ctx context.Context, db *gorm.DB, chatID int64) (*domain.UserPreference, error) {
	return repo.GetUser(ctx, db, chatID)
}

func (userRepoShim) UpdateUser(ctx context.Context, db *gorm.DB, u *domain.UserPreference) error {
	return repo.UpdateUser(ctx, db, u)
}

func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database failed")
	}

	rateClient := rates.NewClient(rates.Options{
		BaseURL:          cfg.Rates.APIBase,
		Timeout:          cfg.Rates.Timeout,
		Retries:          cfg.Rates.Retries,
		RetryDelay:       cfg.Rates.RetryDelay,
		CacheTTL:         cfg.Rates.CacheTTL,
		CacheMaxEntries:  cfg.Rates.CacheMaxEntries,
		BreakerThreshold: cfg.Rates.BreakerThreshold,
		BreakerCooldown:  cfg.Rates.BreakerCooldown,
	})

	userSvc := services.NewUserService(db, userRepoShim{})
	convSvc := services.NewConversionService(rateClient)

	sender := telegram.NewBotClient(cfg.Telegram.Token, cfg.Telegram.APIBase, cfg.Telegram.Timeout)
	geocoder := geo.NewHTTPGeocoder(cfg.GeocodeAPIBase, cfg.Telegram.Timeout)

	registry := bot.NewRegistry(
		&bot.StartCommand{Users: userSvc, Sender: sender},
		&bot.HelpCommand{Sender: sender},
		&bot.FromCommand{Users: userSvc, Sender: sender, Popular: cfg.Keyboard.PopularInputs},
		&bot.ToCommand{Users: userSvc, Sender: sender, Popular: cfg.Keyboard.PopularOutputs},
		&bot.ConvertCommand{
			Users:             userSvc,
			Conversions:       convSvc,
			Sender:            sender,
			CommonAmounts:     cfg.Keyboard.CommonAmounts,
			PopularInputs:     cfg.Keyboard.PopularInputs,
			PopularOutputs:    cfg.Keyboard.PopularOutputs,
			Multipliers:       cfg.Keyboard.Multipliers,
			MultiplierSymbols: cfg.Keyboard.MultiplierSymbols,
		},
		&bot.GetCurrenciesCommand{Users: userSvc, Sender: sender},
		&bot.DeleteCurrencyCommand{Users: userSvc, Sender: sender, Popular: cfg.Keyboard.PopularOutputs},
	)
	router := bot.NewRouter(registry, sender, geocoder)

	engine := gin.New()
	httpapi.RegisterRoutes(engine, db, router, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("webhook server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	rateClient.Clear()
	if err := otelShutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("bye")
}
