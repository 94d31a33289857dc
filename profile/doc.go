// Package profile provides optional runtime profiling for scenic.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// pprof build tag:
//
//	go build -tags pprof -o scenic .
//
// Without the tag, [Modes] is empty and [Profiler.Start] does nothing.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// # Command-Line Usage
//
//	# resolve a scenario while profiling CPU
//	scenic --pprof-mode cpu resolve cutin.xosc
//
//	# heap profile written to ./profiles
//	scenic --pprof-mode heap --pprof-dir ./profiles validate cutin.xosc
//
// Profiles land in the cache directory by default, for example
// $XDG_CACHE_HOME/scenic/pprof, and are read with go tool pprof:
//
//	go tool pprof -http=: ~/.cache/scenic/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
