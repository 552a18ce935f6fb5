package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

// Init configures the global logger. Level comes from LOG_LEVEL and
// defaults to info.
func Init() {
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

// AttachWriter tees log output to an additional writer alongside the
// console, for shipping logs to an external collector.
func AttachWriter(w io.Writer) {
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, w)).With().Timestamp().Logger()
}
