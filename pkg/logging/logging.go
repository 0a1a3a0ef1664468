package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the process. Logs go to stderr so reports on stdout stay clean.
func Setup(environment string) zerolog.Logger {
	return SetupWithWriter(environment, zerolog.ConsoleWriter{Out: os.Stderr})
}

// SetupWithWriter is Setup with a caller-provided sink
func SetupWithWriter(environment string, writer io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	switch environment {
	case "development":
		level = zerolog.DebugLevel
	case "quiet":
		level = zerolog.WarnLevel
	}

	logger := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	return logger
}
