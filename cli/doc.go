// Package cli contains the command line interface for scenic.
//
// # Usage
//
//	scenic [flags] <command> [args]
//
// Commands resolve, validate, format and inspect scenario and catalog
// documents:
//
//	scenic resolve -p EgoSpeed=25 cut-in.xosc
//	scenic validate cut-in.xosc
//	scenic eval -s cut-in.xosc '$EgoSpeed / 3.6'
//	scenic catalog list catalogs/vehicles
//	scenic fmt --format yaml cut-in.xosc
//	scenic watch cut-in.xosc
//	scenic repl cut-in.xosc
//	scenic init
//
// # Catalog Search Path
//
// Catalog directories given with --catalog-path (repeatable) are searched for
// catalogs of every category, ahead of the entries of SCENIC_CATALOG_PATH.
// Directories that do not exist are ignored.
//
// # Configuration File
//
// Flags may also be set in config.yaml under the user configuration
// directory, for example ~/.config/scenic/config.yaml. Keys name flags;
// nested mappings join their keys with hyphens:
//
//	log:
//	  level: debug
//	  pretty: false
//	catalog-path:
//	  - /opt/scenarios/catalogs
//
// Command-line flags override the file. The init command writes the file
// from the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o scenic .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/scenic/pprof)
package cli
