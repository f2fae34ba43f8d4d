package hooklog

import (
	"github.com/pkg/errors"
)

// Builder accumulates levels, module filters and callbacks, and produces
// a Logger. A Builder is meant to be used from a single goroutine.
//
// Example:
//
//	err := hooklog.New().
//		GlobalLevel(hooklog.LevelInfo).
//		LogFn(hooklog.LevelInfo, func(r *hooklog.Record) {
//			fmt.Println("info", r.Message())
//		}).
//		RawFn(func(r *hooklog.Record) {
//			fmt.Println("raw", r.Message())
//		}).
//		Level("github.com/acme/noisy", hooklog.LevelError).
//		Init()
type Builder struct {
	globalLevel  Level
	filters      filterSet
	raw          LogFunc
	fns          [numLevels]LogFunc
	errorHandler ErrorHandler
}

// New creates an unconfigured builder: every level enabled, no filters,
// all callbacks no-ops.
func New() *Builder {
	b := &Builder{
		globalLevel:  LevelTrace,
		raw:          noopLogFunc,
		errorHandler: getDefaultErrorHandler(),
	}
	for i := range b.fns {
		b.fns[i] = noopLogFunc
	}
	return b
}

// WithErrorHandler sets where configuration diagnostics go. A nil handler
// silences them.
func (b *Builder) WithErrorHandler(handler ErrorHandler) *Builder {
	if handler == nil {
		handler = SilentErrorHandler
	}
	b.errorHandler = handler
	return b
}

// GlobalLevel sets the level for targets no module filter matches. The
// last call wins. Module filters are not affected.
func (b *Builder) GlobalLevel(level Level) *Builder {
	b.globalLevel = level
	return b
}

// Level sets the level for module and everything whose name starts with
// it. A module can only be registered once; later registrations are
// reported and dropped.
func (b *Builder) Level(module string, level Level) *Builder {
	if err := b.filters.add(module, level); err != nil {
		b.report("level", err)
	}
	return b
}

// LogFn sets the callback for records at exactly level. Setting it for
// LevelOff does nothing. A nil fn resets the slot.
func (b *Builder) LogFn(level Level, fn LogFunc) *Builder {
	if !level.Valid() {
		b.report("log_fn", errors.Wrapf(ErrOffCallback, "level %s", level))
		return b
	}
	if fn == nil {
		fn = noopLogFunc
	}
	b.fns[level] = fn
	return b
}

// RawFn sets a callback that runs for every logged record, before the
// level specific callback.
func (b *Builder) RawFn(fn LogFunc) *Builder {
	if fn == nil {
		fn = noopLogFunc
	}
	b.raw = fn
	return b
}

// Build finalizes the configuration into a Logger without installing it.
// The builder may keep being used; later changes do not affect the
// returned Logger.
func (b *Builder) Build() *Logger {
	filters := b.filters.finalize()

	mostVerbose := b.globalLevel
	for _, f := range filters {
		if f.Level < mostVerbose {
			mostVerbose = f.Level
		}
	}

	return &Logger{
		globalLevel: b.globalLevel,
		filters:     filters,
		mostVerbose: mostVerbose,
		raw:         b.raw,
		fns:         b.fns,
	}
}

// Init builds the Logger, installs it as the process-wide logger and sets
// the facade level hint to the global level.
//
// The hint only reflects the global level. A module filter more verbose
// than the global level is therefore cut short by the facade before the
// filter is consulted.
func (b *Builder) Init() error {
	l := b.Build()
	if err := SetLogger(l); err != nil {
		return err
	}
	SetMaxLevel(l.globalLevel)
	return nil
}

func (b *Builder) report(op string, err error) {
	b.errorHandler(newLogError(op, err))
}
