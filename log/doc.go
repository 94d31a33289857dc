// Package log provides a small structured logging layer over [log/slog].
//
// A [Logger] is an immutable value built with [Make] and functional options
// such as [WithLevel], [WithFormat], [WithTimeLayout], [WithCaller] and
// [WithPretty]. The zero Logger discards everything, so library types can
// embed one and log unconditionally.
//
// # Levels
//
// In addition to the slog levels, [LevelTrace] sits below [LevelDebug] and
// is used for fine-grained tracing of parameter resolution and catalog
// loading.
//
//	logger := log.Make(os.Stderr, log.WithLevel(log.LevelTrace))
//	logger.Trace("scope pushed", slog.Int("depth", 2))
//
// # Package Logger
//
// The package-level functions ([Info], [DebugContext], ...) write through a
// default logger configured once by the command line with [Config].
package log
