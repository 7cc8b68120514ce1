// Package logging sets up the termcube log file.
//
// The interactive TUI owns stdout, so logs always go to a file under
// the termcube home directory. Entries are zerolog's structured JSON.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultPath returns the standard log location, ~/.termcube/termcube.log.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".termcube", "termcube.log"), nil
}

// Init opens (or creates) the log file at path and installs a zerolog
// logger writing to it. The caller closes the returned file when done.
// Verbose lowers the level from info to debug.
func Init(path string, verbose bool) (zerolog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(file).
		Level(level).
		With().
		Timestamp().
		Str("app", "termcube").
		Logger()

	// Make the package-level logger match so stray log calls land in
	// the same file instead of on the TUI's screen.
	log.Logger = logger

	return logger, file, nil
}
