package testing

import (
	"os"
	"sync"
	"testing"

	"github.com/wayneeseguin/hooklog/pkg/hooklog"
)

// Unit returns true if running in unit test mode.
// Unit tests should be fast and not require external services.
// This is determined by checking if the -short flag is set or
// if HOOKLOG_UNIT_TESTS_ONLY environment variable is set.
func Unit() bool {
	// Check if explicitly running unit tests only (highest priority)
	if os.Getenv("HOOKLOG_UNIT_TESTS_ONLY") == "true" {
		return true
	}

	if os.Getenv("HOOKLOG_RUN_INTEGRATION_TESTS") == "true" {
		return false
	}

	if os.Getenv("HOOKLOG_RUN_INTEGRATION_TESTS") == "false" {
		return true
	}

	if testing.Short() {
		return true
	}

	// Default to unit mode if not explicitly running integration tests
	return true
}

// Integration returns true if running in integration test mode.
// Integration tests may require external services such as a NATS server.
func Integration() bool {
	return !Unit()
}

// SkipIfUnit skips the test if running in unit test mode.
func SkipIfUnit(t *testing.T, message ...string) {
	t.Helper()
	if Unit() {
		msg := "Skipping integration test in unit mode"
		if len(message) > 0 {
			msg = message[0]
		}
		t.Skip(msg)
	}
}

// SkipIfIntegration skips the test if running in integration test mode.
func SkipIfIntegration(t *testing.T, message ...string) {
	t.Helper()
	if Integration() {
		msg := "Skipping unit-only test in integration mode"
		if len(message) > 0 {
			msg = message[0]
		}
		t.Skip(msg)
	}
}

// Recorder collects records and diagnostics. Its methods are safe for
// concurrent use, so Func and Handler can be handed to loggers shared
// between goroutines.
type Recorder struct {
	mu      sync.Mutex
	records []hooklog.Record
	errors  []hooklog.LogError
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Func returns a callback that stores every record it receives.
func (r *Recorder) Func() hooklog.LogFunc {
	return func(rec *hooklog.Record) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.records = append(r.records, *rec)
	}
}

// Handler returns an ErrorHandler that stores every diagnostic.
func (r *Recorder) Handler() hooklog.ErrorHandler {
	return func(err hooklog.LogError) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.errors = append(r.errors, err)
	}
}

// Records returns a copy of the stored records.
func (r *Recorder) Records() []hooklog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]hooklog.Record, len(r.records))
	copy(out, r.records)
	return out
}

// Errors returns a copy of the stored diagnostics.
func (r *Recorder) Errors() []hooklog.LogError {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]hooklog.LogError, len(r.errors))
	copy(out, r.errors)
	return out
}

// Count returns the number of stored records.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// CountLevel returns the number of stored records at level.
func (r *Recorder) CountLevel(level hooklog.Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.Level == level {
			n++
		}
	}
	return n
}

// Messages returns the rendered messages of the stored records.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.records))
	for i := range r.records {
		out = append(out, r.records[i].Message())
	}
	return out
}

// Reset drops everything stored so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	r.errors = nil
}
