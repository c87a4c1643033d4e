// Package logging builds the diagnostic logger handed to components that
// shell out to svn. The logger is passed in explicitly so components stay
// testable; nothing in this repo logs through a package-level singleton.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Nop returns a disabled logger, the default when --debug is off
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ToFile returns a logger appending to the given file, plus a close func.
// Writing to a file keeps diagnostics out of the terminal the TUI owns.
func ToFile(path string) (zerolog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, f.Close, nil
}

// DefaultDebugPath returns where --debug writes its log file
func DefaultDebugPath() string {
	return filepath.Join(os.TempDir(), "tixview-debug.log")
}
