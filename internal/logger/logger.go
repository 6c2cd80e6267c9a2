// Package logger configures zerolog for the command line tools. Logs go to
// stderr so stdout stays free for the tools' output.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var root = newRoot(os.Stderr, levelFromEnv())

// New returns the process logger tagged with component.
func New(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}

// DEBUG wins over LOG_LEVEL. Unknown levels fall back to info.
func levelFromEnv() zerolog.Level {
	if _, ok := os.LookupEnv("DEBUG"); ok {
		return zerolog.DebugLevel
	}
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.InfoLevel
}

func newRoot(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out.NoColor = false
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
