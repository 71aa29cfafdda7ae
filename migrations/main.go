package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"grocerystore/internal/config"
	"grocerystore/internal/db"
	"grocerystore/internal/logger"

	"github.com/rs/zerolog"
)

var migrations = []string{
	"001_create_unit_convert.sql",
	"002_create_product.sql",
	"003_create_orders.sql",
	"004_create_order_details.sql",
	"100_data.sql",
}

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

	conn, err := db.NewPostgresDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer conn.Close()

	projectRoot, err := getProjectRoot()
	if err != nil {
		log.Fatal().Err(err).Msg("project root not found")
	}

	applied := Run(context.Background(), conn, filepath.Join(projectRoot, "migrations"), migrations, log)
	log.Info().Int("applied", applied).Int("total", len(migrations)).Msg("migrations finished")
}

// Run executes every file in order and reports how many succeeded.
// A failed file is logged and skipped so reruns over an existing schema keep going.
func Run(ctx context.Context, conn *sql.DB, dir string, files []string, log *zerolog.Logger) int {
	successes := 0
	for _, name := range files {
		if err := apply(ctx, conn, filepath.Join(dir, name)); err != nil {
			log.Error().Err(err).Str("migration", name).Msg("migration failed")
			continue
		}
		log.Info().Str("migration", name).Msg("migration applied")
		successes++
	}
	return successes
}

func apply(ctx context.Context, conn *sql.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if _, err := conn.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("exec %s: %w", filepath.Base(path), err)
	}
	return nil
}

func getProjectRoot() (string, error) {
	// Ищем корень проекта по наличию go.mod
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd, nil
		}

		parent := filepath.Dir(wd)
		if parent == wd {
			return "", os.ErrNotExist
		}
		wd = parent
	}
}
