// Package logging builds the colored slog logger used by every command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// New returns a tint logger writing to w
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

// Setup builds the logger from a level name and installs it as the default
func Setup(w io.Writer, levelName string, noColor bool) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	logger := New(w, level, noColor)
	slog.SetDefault(logger)
	return logger, err
}
