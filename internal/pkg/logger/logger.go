package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// New creates the application logger. Development output is human readable.
func New(appName, environment, level string) *Logger {
	var output io.Writer = os.Stdout
	if environment == "development" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("app", appName).
		Logger()

	return &Logger{Logger: l}
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithComponent returns a logger with the component name attached
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}

// WithCompanyID returns a logger with the company ID attached
func (l *Logger) WithCompanyID(companyID string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("company_id", companyID).Logger(),
	}
}
