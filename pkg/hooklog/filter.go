package hooklog

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Filter caps the level of every target starting with Module.
//
// Matching is a plain string prefix test: a filter for "net" also governs
// "net::http", "net/http" and "network". It is not aware of path segments.
type Filter struct {
	Module string
	Level  Level
}

// matches reports whether the filter governs target.
func (f Filter) matches(target string) bool {
	return strings.HasPrefix(target, f.Module)
}

// filterSet is the per-module override list. It is only mutated while a
// Builder owns it; a finalized set is shared read-only by a Logger.
type filterSet struct {
	filters []Filter
}

// add registers a filter. The first registration for a module wins.
func (s *filterSet) add(module string, level Level) error {
	if module == "" {
		return ErrEmptyModule
	}

	for _, f := range s.filters {
		if f.Module == module {
			return errors.Wrapf(ErrDuplicateFilter, "module %q", module)
		}
	}

	s.filters = append(s.filters, Filter{Module: module, Level: level})
	return nil
}

// finalize orders filters by ascending prefix length and returns the
// ordered copy. Equal lengths keep insertion order.
func (s *filterSet) finalize() []Filter {
	out := make([]Filter, len(s.filters))
	copy(out, s.filters)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Module) < len(out[j].Module)
	})
	return out
}

// lookup scans from the most specific filter to the most general one and
// returns the first that matches target.
func lookup(filters []Filter, target string) (Filter, bool) {
	for i := len(filters) - 1; i >= 0; i-- {
		if filters[i].matches(target) {
			return filters[i], true
		}
	}
	return Filter{}, false
}
