package hooklog

import (
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

var (
	// installed holds the process-wide logger. It is set at most once.
	installed atomic.Pointer[Logger]

	// maxLevel is the facade fast-path hint. Nothing passes until a
	// logger is installed through Init or the hint is set explicitly.
	maxLevel atomic.Int32
)

func init() {
	maxLevel.Store(int32(LevelOff))
}

// SetLogger installs l as the process-wide logger. Only the first call
// succeeds; later calls return ErrAlreadyInstalled and leave the installed
// logger untouched. SetLogger does not change the level hint.
func SetLogger(l *Logger) error {
	if l == nil || !installed.CompareAndSwap(nil, l) {
		return ErrAlreadyInstalled
	}
	return nil
}

// Installed returns the process-wide logger, or nil before installation.
func Installed() *Logger {
	return installed.Load()
}

// SetMaxLevel sets the facade hint: records below level are dropped
// before the installed logger is consulted.
func SetMaxLevel(level Level) {
	maxLevel.Store(int32(level))
}

// MaxLevel returns the facade hint.
func MaxLevel() Level {
	return Level(maxLevel.Load())
}

// Flush flushes the installed logger, if any.
func Flush() error {
	if l := installed.Load(); l != nil {
		return l.Flush()
	}
	return nil
}

// Target logs through the installed logger with a fixed target.
type Target struct {
	name string
}

// For returns a Target logging as name.
//
// Example:
//
//	hooklog.For("db::pool").Debugf("acquired conn %d", id)
func For(name string) Target {
	return Target{name: name}
}

// Name returns the target name.
func (t Target) Name() string { return t.name }

// Enabled reports whether a record at level from t would be logged.
func (t Target) Enabled(level Level) bool {
	if !MaxLevel().Allows(level) {
		return false
	}
	l := installed.Load()
	return l != nil && l.Enabled(t.name, level)
}

func (t Target) Tracef(format string, args ...any) { t.logf(LevelTrace, format, args) }
func (t Target) Debugf(format string, args ...any) { t.logf(LevelDebug, format, args) }
func (t Target) Infof(format string, args ...any) { t.logf(LevelInfo, format, args) }
func (t Target) Warnf(format string, args ...any) { t.logf(LevelWarn, format, args) }
func (t Target) Errorf(format string, args ...any) { t.logf(LevelError, format, args) }

// Logf logs at an arbitrary level.
func (t Target) Logf(level Level, format string, args ...any) { t.logf(level, format, args) }

func (t Target) logf(level Level, format string, args []any) {
	if !MaxLevel().Allows(level) {
		return
	}
	emit(t.name, level, format, args)
}

// Tracef logs at trace level with the calling package as target.
func Tracef(format string, args ...any) { logf(LevelTrace, format, args) }

// Debugf logs at debug level with the calling package as target.
func Debugf(format string, args ...any) { logf(LevelDebug, format, args) }

// Infof logs at info level with the calling package as target.
func Infof(format string, args ...any) { logf(LevelInfo, format, args) }

// Warnf logs at warn level with the calling package as target.
func Warnf(format string, args ...any) { logf(LevelWarn, format, args) }

// Errorf logs at error level with the calling package as target.
func Errorf(format string, args ...any) { logf(LevelError, format, args) }

// logf must be called directly from an exported facade function so the
// caller lookup lands on user code.
func logf(level Level, format string, args []any) {
	if !MaxLevel().Allows(level) {
		return
	}
	emit(callerTarget(3), level, format, args)
}

func emit(target string, level Level, format string, args []any) {
	l := installed.Load()
	if l == nil || !l.Enabled(target, level) {
		return
	}
	l.Log(&Record{
		Target: target,
		Level:  level,
		Time:   time.Now(),
		Format: format,
		Args:   args,
	})
}

// callerTarget returns the import path of the package skip frames up,
// counted as for runtime.Caller.
func callerTarget(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+1, pcs[:]) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return packagePath(frame.Function)
}

// packagePath trims a qualified function name such as
// "github.com/acme/app/net.(*Server).Serve" to "github.com/acme/app/net".
// The linker escapes dots in the last path element as %2e, so
// "gopkg.in/yaml%2ev3.Unmarshal" becomes "gopkg.in/yaml.v3".
func packagePath(funcName string) string {
	path := funcName
	slash := strings.LastIndex(funcName, "/")
	if dot := strings.Index(funcName[slash+1:], "."); dot >= 0 {
		path = funcName[:slash+1+dot]
	}
	return strings.ReplaceAll(path, "%2e", ".")
}
