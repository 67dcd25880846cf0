package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// NewLogger builds the process logger. Console output is human-readable and meant for
// stderr; JSON output is one event per line.
func NewLogger(out io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer
	switch strings.ToLower(format) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	case FormatJSON:
		w = out
	default:
		return zerolog.Logger{}, fmt.Errorf("invalid log format %q: must be %s or %s", format, FormatConsole, FormatJSON)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
