// Package logger builds the zerolog logger shared by the bot, the
// repositories and the migration runner.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr. Local runs get the human readable
// console writer, everything else gets JSON lines.
func New(env, level string) (*zerolog.Logger, error) {
	return NewWithWriter(os.Stderr, env, level)
}

func NewWithWriter(w io.Writer, env, level string) (*zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	if env == "local" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	l := zerolog.New(w).Level(lvl).With().Timestamp().Str("env", env).Logger()
	return &l, nil
}
