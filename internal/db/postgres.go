package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"grocerystore/internal/config"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// PingTimeout bounds the startup connectivity check.
const PingTimeout = 10 * time.Second

func NewPostgresDB(cfg *config.Config, log *zerolog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), PingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("postgres is unreachable")
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	log.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("connected to postgres")
	return db, nil
}
