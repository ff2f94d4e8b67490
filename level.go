package logscope

import (
	"fmt"
	"strings"
)

// Level is the severity of a log message and, when set on a Scope, the
// threshold below which messages are suppressed.
type Level int

// Severity levels, ordered from least to most severe. LevelNone is a
// threshold-only sentinel: a scope set to LevelNone emits nothing, and no
// message ever carries it.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = []string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelNone:  "none",
}

// String returns the lowercase name of the level, e.g. "warn".
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel converts a textual level name into a Level. Matching is
// case-insensitive and accepts the aliases "warning", "err" and "off".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "none", "off":
		return LevelNone, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
