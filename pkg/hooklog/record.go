package hooklog

import (
	"fmt"
	"log/slog"
	"time"
)

// Record is a single log event handed to callbacks.
//
// The message is formatted lazily: Format and Args are kept as given and
// Message renders them on demand.
type Record struct {
	Target string
	Level  Level
	Time   time.Time
	Format string
	Args   []any
	// Attrs carries slog attributes when the record came through Handler.
	Attrs []slog.Attr
}

// LogFunc handles a record. Once a logger is installed, a LogFunc may be
// called from many goroutines at once and must be safe for that.
type LogFunc func(r *Record)

// Message returns the rendered message.
func (r *Record) Message() string {
	if len(r.Args) == 0 {
		return r.Format
	}
	return fmt.Sprintf(r.Format, r.Args...)
}

// String renders the record as "LEVEL target: message".
func (r *Record) String() string {
	return fmt.Sprintf("%s %s: %s", r.Level, r.Target, r.Message())
}

func noopLogFunc(*Record) {}
