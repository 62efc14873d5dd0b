// Package logging builds the logr.Logger used across neoexport, backed by
// zerolog.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
}

// Options selects the level and output shape.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Empty means info.
	Level   string
	JSON    bool
	NoColor bool
}

// New returns a logger writing to w. logr V(1) maps to debug and V(2) to trace.
func New(w io.Writer, opts Options) (logr.Logger, error) {
	lvl := zerolog.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return logr.Discard(), fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}
	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000", NoColor: opts.NoColor}
	}
	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return zerologr.New(&zl).WithName("neoexport"), nil
}
