package logging

import (
	"fmt"
	"strings"
)

// LogLevel defines the severity of a log message.
type LogLevel int

// Enum for log levels. The order carries no meaning; there is no filtering.
const (
	LevelInfo LogLevel = iota
	LevelDebug
	LevelWarning
	LevelError
)

// String returns the canonical uppercase name of a LogLevel. Every rendering
// of a level, including fmt verbs, goes through this method.
func (l LogLevel) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name (case-insensitive). "warn" is accepted as a
// shorthand for "warning".
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
