// Package hooklog is a thin logging backend that hands log records to
// user-supplied functions. It does not format or deliver anything itself.
//
// Examples where this might be useful:
//
//   - Logging logic needs to be different across log levels
//   - Another application's logger has to receive the records
//   - An existing library is too opinionated in how it handles logging
//
// Key Features:
//
//   - A callback per log level plus a raw callback for every level
//   - A global level with per-module overrides
//   - Configuration from an environment variable (GO_LOG by default)
//   - A log/slog Handler bridge
//
// Basic Usage:
//
//	err := hooklog.New().
//		GlobalLevel(hooklog.LevelInfo).
//		LogFn(hooklog.LevelInfo, func(r *hooklog.Record) {
//			fmt.Println("info", r.Message())
//		}).
//		RawFn(func(r *hooklog.Record) {
//			fmt.Println("raw", r.Message())
//		}).
//		Level("github.com/acme/app/noisy", hooklog.LevelError).
//		Init()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	hooklog.Infof("this is an info log!")
//
// Environment Configuration:
//
// NewFromDefaultEnv reads GO_LOG, a comma separated list of directives:
//
//	GO_LOG="debug,github.com/acme/app/db=info,github.com/acme/app/cache=off"
//
// A bare level sets the global level, "module=level" sets a module level
// and a bare module enables every level for it. Anything after a '/' is
// ignored. Bad directives are reported and skipped.
//
// Targets:
//
// The package level functions (Infof, Debugf, ...) use the calling
// package's import path as target. For picks an explicit target. Module
// filters match by plain string prefix, so "github.com/acme/app/net"
// also matches "github.com/acme/app/network".
//
// Level Hint:
//
// Init sets a process-wide hint to the global level so disabled records
// are dropped before any filter runs. The hint ignores module filters: a
// module configured more verbosely than the global level does not get its
// extra records through the package level functions.
//
// Thread Safety:
//
// A built Logger is immutable and safe for concurrent use. Callbacks are
// called from whatever goroutine logs and must be safe for concurrent use.
package hooklog
