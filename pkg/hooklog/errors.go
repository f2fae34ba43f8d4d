package hooklog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrAlreadyInstalled is returned when a process-wide logger is already set.
	ErrAlreadyInstalled = errors.New("a logger is already installed")
	// ErrDuplicateFilter reports a second filter for the same module.
	ErrDuplicateFilter = errors.New("level filter already exists")
	// ErrEmptyModule reports a module filter with no name.
	ErrEmptyModule = errors.New("module name cannot be empty")
	// ErrInvalidLevel reports an unparseable level name.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidDirective reports a malformed directive.
	ErrInvalidDirective = errors.New("invalid logging directive")
	// ErrEnvNotPresent reports a missing configuration variable.
	ErrEnvNotPresent = errors.New("environment variable not present")
	// ErrOffCallback reports a callback registered for LevelOff.
	ErrOffCallback = errors.New("a log fn for LevelOff is never called")
)

// LogError describes a configuration anomaly. None of these stop the
// builder; they are reported through an ErrorHandler and configuration
// carries on without the offending piece.
type LogError struct {
	Operation string // The builder operation that reported the problem
	Message   string // Human readable message
	Err       error  // The underlying error, matches one of the Err* sentinels
}

// Error implements the error interface
func (e LogError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e LogError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives configuration diagnostics.
type ErrorHandler func(err LogError)

// SilentErrorHandler discards all diagnostics (used in tests)
var SilentErrorHandler ErrorHandler = func(err LogError) {}

// StderrErrorHandler writes diagnostics to stderr
var StderrErrorHandler ErrorHandler = func(err LogError) {
	fmt.Fprintf(os.Stderr, "warning: %s\n", err.Message)
}

func newLogError(op string, err error) LogError {
	return LogError{
		Operation: op,
		Message:   err.Error(),
		Err:       err,
	}
}

// isTestMode detects if we're running under go test
func isTestMode() bool {
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, "-test.") {
			return true
		}
	}

	if exe, err := os.Executable(); err == nil {
		if strings.HasSuffix(filepath.Base(exe), ".test") {
			return true
		}
	}

	return false
}

// getDefaultErrorHandler returns the appropriate error handler based on environment
func getDefaultErrorHandler() ErrorHandler {
	if isTestMode() {
		return SilentErrorHandler
	}
	return StderrErrorHandler
}
