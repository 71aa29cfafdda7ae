package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"grocerystore/internal/auth"
	"grocerystore/internal/config"
	"grocerystore/internal/db"
	"grocerystore/internal/handlers"
	"grocerystore/internal/logger"
	"grocerystore/internal/repo"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

func main() {
	fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fallback.Fatal().Err(err).Msg("config load failed")
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fallback.Fatal().Err(err).Msg("logger init failed")
	}

	if err := cfg.BotEnabled(); err != nil {
		log.Fatal().Err(err).Msg("bot is not configured")
	}

	//инициализация бд
	conn, err := db.NewPostgresDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer conn.Close()

	//создание бота
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("bot init failed")
	}
	bot.Debug = cfg.LogLevel == "debug"
	log.Info().Str("bot", bot.Self.UserName).Msg("authorized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newHandler(cfg, conn, log).HandleUpdates(ctx, bot)

	log.Info().Msg("bot stopped")
}

// newHandler builds the repositories over conn and the bot handler on top of them.
func newHandler(cfg *config.Config, conn *sql.DB, log *zerolog.Logger) *handlers.Handler {
	orderRepo := repo.NewOrderRepo(conn, log)
	productRepo := repo.NewProductRepo(conn, log)
	unitRepo := repo.NewUnitRepo(conn)

	return handlers.NewHandler(orderRepo, productRepo, unitRepo,
		auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL), cfg.AdminPasswordHash, log)
}
