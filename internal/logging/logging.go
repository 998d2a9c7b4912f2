// Package logging configures the global zerolog logger for diagnostic
// output on standard error.
package logging

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger from the -v count: 0 warns
// only, 1 adds info, 2 adds debug, 3 and up adds trace. Output goes to
// standard error so the path list on standard output stays clean.
func SetupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(os.Stderr),
	}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

// GetLogger returns a contextualized logger with the given name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
