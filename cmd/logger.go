package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger creates the structured logger of the CLI: human readable, on
// stderr, leveled by the -log-level flag.
func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch *logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
