// Package logging configures the zerolog logger shared by the patc commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFile is the file the global logger currently copies to, if any.
var (
	logFileMu sync.Mutex
	logFile   *os.File
)

// LevelFor maps a -v count to a level: 0 WARN, 1 INFO, 2 DEBUG, 3+ TRACE.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	}

	return zerolog.TraceLevel
}

// New returns a console logger writing to w at the level for verbosity.
// Debug and trace levels include the caller.
func New(w io.Writer, verbosity int, noColor bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
	logger := zerolog.New(console).Level(LevelFor(verbosity)).With().Timestamp().Logger()
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// SetupLogger installs the global logger: console output on stderr and,
// when logPath is not empty, a copy appended to that file. A log file that
// cannot be opened is reported and skipped. The file of a previous call is
// closed once the new logger is installed.
func SetupLogger(verbosity int, noColor bool, logPath string) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	var writers []io.Writer
	writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: noColor})

	var (
		f       *os.File
		fileErr error
	)
	if logPath != "" {
		f, fileErr = openLogFile(logPath)
		if fileErr == nil {
			writers = append(writers, f)
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Failed to open log file, logging to console only")
	}
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}
	if prev := swapLogFile(f); prev != nil {
		_ = prev.Close()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// Close closes the log file opened by SetupLogger, if any. Call it once the
// program is done logging.
func Close() error {
	if f := swapLogFile(nil); f != nil {
		return f.Close()
	}

	return nil
}

func swapLogFile(f *os.File) *os.File {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	prev := logFile
	logFile = f

	return prev
}

// GetLogger returns the global logger tagged with component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// openLogFile creates the file's parent directories and opens it for append.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return f, nil
}
