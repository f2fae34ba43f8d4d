package hooklog

// Logger is a finalized filter-and-dispatch engine produced by Builder.Build.
//
// A Logger never changes after it is built, so it is safe to share across
// goroutines without locking. Callbacks run synchronously on the goroutine
// that logs. The zero Logger enables everything and dispatches nowhere.
type Logger struct {
	globalLevel Level
	filters     []Filter // ascending prefix length
	mostVerbose Level

	raw LogFunc
	fns [numLevels]LogFunc
}

// Enabled reports whether a record from target at level should be logged.
//
// The most specific matching module filter decides. When no filter matches,
// the global level decides.
//
// Example:
//
//	l := hooklog.New().Level("net", hooklog.LevelInfo).Build()
//	l.Enabled("net::http", hooklog.LevelDebug) // false
func (l *Logger) Enabled(target string, level Level) bool {
	if f, ok := lookup(l.filters, target); ok {
		return f.Level.Allows(level)
	}
	return l.globalLevel.Allows(level)
}

// Log dispatches r. The raw callback always runs first, then the callback
// registered for r.Level. No level check happens here; callers are expected
// to consult Enabled before building the record.
func (l *Logger) Log(r *Record) {
	if r == nil {
		return
	}

	if l.raw != nil {
		l.raw(r)
	}
	if r.Level.Valid() && l.fns[r.Level] != nil {
		l.fns[r.Level](r)
	}
}

// Flush is a no-op; nothing is buffered.
func (l *Logger) Flush() error {
	return nil
}

// GlobalLevel returns the level applied to targets no filter matches.
func (l *Logger) GlobalLevel() Level {
	return l.globalLevel
}

// MostVerbose returns the lowest ceiling across the global level and every
// module filter. No target is enabled below it.
func (l *Logger) MostVerbose() Level {
	return l.mostVerbose
}

// Filters returns a copy of the module filters, most general first.
func (l *Logger) Filters() []Filter {
	out := make([]Filter, len(l.filters))
	copy(out, l.filters)
	return out
}

// ModuleLevel returns the ceiling that governs target and whether it came
// from a module filter rather than the global level.
func (l *Logger) ModuleLevel(target string) (Level, bool) {
	if f, ok := lookup(l.filters, target); ok {
		return f.Level, true
	}
	return l.globalLevel, false
}
