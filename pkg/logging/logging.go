// Package logging configures the process-wide zerolog logger and hands out
// component loggers to the rest of fontproxy.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levels is indexed by the -v count. Counts past the end select trace.
var levels = []zerolog.Level{zerolog.WarnLevel, zerolog.InfoLevel, zerolog.DebugLevel}

// LevelFor returns the level selected by a verbosity count
func LevelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity < len(levels) {
		return levels[verbosity]
	}
	return zerolog.TraceLevel
}

// Options configures Setup
type Options struct {
	Verbosity int

	// Console receives human readable output. Nil means stderr.
	Console io.Writer

	// LogFile receives JSON lines in append mode. Empty disables it.
	LogFile string
}

// Setup replaces the global logger. A log file that cannot be opened is
// reported on the console and otherwise ignored.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(console),
	}}

	var fileErr error
	if opts.LogFile != "" {
		var f *os.File
		f, fileErr = openLogFile(opts.LogFile)
		if fileErr == nil {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.LogFile).Msg("Log file unavailable, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", opts.LogFile).Msg("Logger initialized")
}

// GetLogger returns a logger tagged with the component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
