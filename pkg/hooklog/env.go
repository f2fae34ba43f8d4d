package hooklog

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DefaultEnv is the environment variable read by NewFromDefaultEnv.
const DefaultEnv = "GO_LOG"

// NewFromDefaultEnv creates a builder configured from DefaultEnv.
func NewFromDefaultEnv() *Builder {
	return NewWithEnv(DefaultEnv)
}

// NewWithEnv creates a builder configured from the directives in the
// environment variable name. A missing variable is reported and leaves
// the builder unconfigured.
func NewWithEnv(name string) *Builder {
	return NewWithEnvHandler(name, getDefaultErrorHandler())
}

// NewWithEnvHandler is NewWithEnv with diagnostics sent to handler,
// including those raised while parsing.
func NewWithEnvHandler(name string, handler ErrorHandler) *Builder {
	b := New().WithErrorHandler(handler)

	value, ok := os.LookupEnv(name)
	if !ok {
		b.report("env", errors.Wrapf(ErrEnvNotPresent, "%s", name))
		return b
	}

	return b.Parse(value)
}

// Parse applies a directive string of the form
//
//	DIRECTIVE(,DIRECTIVE)*[/FILTER]
//
// where a directive is a bare level ("info", sets the global level), a
// bare module ("net", enables every level for it), "module=" (same) or
// "module=level". Anything after the first '/' is reserved and ignored.
// Malformed directives are reported and skipped.
func (b *Builder) Parse(value string) *Builder {
	directives, _, _ := strings.Cut(value, "/")

	for _, d := range strings.Split(directives, ",") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}

		parts := strings.Split(d, "=")
		switch len(parts) {
		case 1:
			if level, err := ParseLevel(parts[0]); err == nil {
				b.GlobalLevel(level)
			} else {
				b.Level(parts[0], LevelTrace)
			}
		case 2:
			name := strings.TrimSpace(parts[0])
			rhs := strings.TrimSpace(parts[1])
			if rhs == "" {
				b.Level(name, LevelTrace)
				continue
			}
			level, err := ParseLevel(rhs)
			if err != nil {
				b.report("parse", errors.Wrapf(err, "directive %q, ignoring", d))
				continue
			}
			b.Level(name, level)
		default:
			b.report("parse", errors.Wrapf(ErrInvalidDirective, "%q, ignoring", d))
		}
	}

	return b
}
