// Package cmd implements the scenic subcommands.
//
// Commands read their shared state from the context.Context kong binds:
// the parsed kong context ([WithContext]), the writer results go to
// ([WithOutput]) and the catalog search path ([WithSearchPath]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
