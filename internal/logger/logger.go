// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init routes the global logger through a console writer. Called once at
// process start by each entrypoint.
func Init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// Get returns a logger annotated with caller information.
func Get() zerolog.Logger {
	return log.With().Caller().Logger()
}
