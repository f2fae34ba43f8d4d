package hooklog

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is a log severity. Record levels run from LevelTrace (most verbose)
// to LevelError (most severe). LevelOff is only meaningful as a ceiling.
type Level int

// Log level constants
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	// LevelOff disables a scope entirely. Records never carry it.
	LevelOff
)

// numLevels is the number of levels a record can carry.
const numLevels = int(LevelOff)

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is a level a record can carry.
func (l Level) Valid() bool {
	return l >= LevelTrace && l < LevelOff
}

// Allows reports whether a record at level r passes the ceiling l.
func (l Level) Allows(r Level) bool {
	return r.Valid() && r >= l
}

// ParseLevel parses a level name (case-insensitive, surrounding whitespace
// ignored). "warning" is accepted as an alias of "warn".
//
// Example:
//
//	level, err := hooklog.ParseLevel("Debug")
//	if err != nil {
//	    // err wraps hooklog.ErrInvalidLevel
//	}
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off":
		return LevelOff, nil
	default:
		return LevelOff, errors.Wrapf(ErrInvalidLevel, "%q", s)
	}
}

// Levels returns the record levels from most verbose to most severe.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}
