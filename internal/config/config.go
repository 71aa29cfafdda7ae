package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every environment variable read into Config.
const EnvPrefix = "GROCERY_"

type Config struct {
	Env      string `koanf:"env" validate:"required,oneof=local development production"`
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	DBHost    string `koanf:"db_host" validate:"required"`
	DBPort    int    `koanf:"db_port" validate:"required,min=1,max=65535"`
	DBUser    string `koanf:"db_user" validate:"required"`
	DBPass    string `koanf:"db_password"`
	DBName    string `koanf:"db_name" validate:"required"`
	DBSSLMode string `koanf:"db_sslmode" validate:"required"`

	BotToken          string        `koanf:"bot_token"`
	AdminPasswordHash string        `koanf:"admin_password_hash"`
	JWTSecret         string        `koanf:"jwt_secret"`
	TokenTTL          time.Duration `koanf:"token_ttl" validate:"min=1s"`
}

func defaults() Config {
	return Config{
		Env:       "local",
		LogLevel:  "info",
		DBHost:    "localhost",
		DBPort:    5432,
		DBSSLMode: "disable",
		TokenTTL:  10 * time.Minute,
	}
}

// Load reads the project .env (if present) and then the GROCERY_* environment.
func Load() (*Config, error) {
	_, filename, _, _ := runtime.Caller(0) // корневая папка проекта
	rootDir := filepath.Join(filepath.Dir(filename), "..", "..")

	err := godotenv.Load(filepath.Join(rootDir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// DSN returns the lib/pq keyword/value connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName, c.DBSSLMode,
	)
}

// BotEnabled reports whether enough is configured to run the admin bot.
func (c *Config) BotEnabled() error {
	switch {
	case c.BotToken == "":
		return errors.New("GROCERY_BOT_TOKEN is not set")
	case c.AdminPasswordHash == "":
		return errors.New("GROCERY_ADMIN_PASSWORD_HASH is not set")
	case c.JWTSecret == "":
		return errors.New("GROCERY_JWT_SECRET is not set")
	}
	return nil
}
