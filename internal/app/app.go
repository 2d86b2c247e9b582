package app

import (
	"io"
	"os"
	"time"

	"connect4/internal/game"
	"connect4/internal/repl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config holds the shell and logging settings
type Config struct {
	LogLevel string // zerolog level name, e.g. "warn" or "debug"
	LogJSON  bool   // emit JSON lines instead of console output
	Prompt   string
}

// DefaultConfig logs warnings and above to the console
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Prompt:   "> ",
	}
}

// Boot builds the logger, the rules engine and a shell session, and returns
// the shell ready to run. Diagnostics go to logOut, never to the shell output.
func Boot(cfg Config, logOut io.Writer) (*repl.Shell, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.LogLevel)
	}
	if logOut == nil {
		logOut = os.Stderr
	}
	if !cfg.LogJSON {
		logOut = zerolog.ConsoleWriter{Out: logOut, TimeFormat: time.Kitchen}
	}
	logger := zerolog.New(logOut).Level(level).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()

	// The engine reports why boards and moves are refused
	engine := game.NewEngine(game.WithLogger(logger))
	session := game.NewSession(engine)

	return repl.New(engine, session, cfg.Prompt, logger), nil
}
