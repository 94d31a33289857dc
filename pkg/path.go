package pkg

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/mung"
)

// CatalogPathEnv names the environment variable holding extra catalog
// directories, separated by [os.PathListSeparator].
var CatalogPathEnv = EnvPrefix + "CATALOG_PATH"

// DirMode is the permission mode of directories created for the CLI.
const DirMode os.FileMode = 0o700

// Prefix returns the base name used for the configuration and cache
// directories.
//
// It is the base name of the executable without extension, except that the
// default output of the dlv debugger is replaced with [Name] and leading dots
// are removed.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		id = regexp.MustCompile(`^__debug_bin\d*$`).ReplaceAllString(id, Name)
		id = strings.TrimLeft(id, ".")

		if id == "" {
			return Name
		}

		return id
	},
)

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserConfigDir, ".config"), Prefix())
	},
)

// CacheDir returns the directory path used for transient files such as the
// REPL history and profiles.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(
	func() string {
		return filepath.Join(userDir(os.UserCacheDir, ".cache"), Prefix())
	},
)

// userDir returns the directory reported by base, falling back to hidden
// under the home directory and then to the working directory.
func userDir(base func() (string, error), hidden string) string {
	if dir, err := base(); err == nil {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, hidden)
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}

// ConfigPath joins elem to [ConfigDir].
func ConfigPath(elem ...string) string {
	return filepath.Join(append([]string{ConfigDir()}, elem...)...)
}

// MkdirAll creates the configuration and cache directories.
func MkdirAll() error {
	for _, dir := range []string{ConfigDir(), CacheDir()} {
		if err := os.MkdirAll(dir, DirMode); err != nil {
			return WrapError(err).With(slog.String("path", dir))
		}
	}

	return nil
}

// SearchPath returns the catalog directories searched for every category:
// dirs first, then the entries of [CatalogPathEnv] not already listed.
// Empty entries are dropped.
func SearchPath(dirs ...string) []string {
	merged := mung.Make(
		mung.WithSubjectItems(os.Getenv(CatalogPathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
	).String()

	var out []string

	seen := make(map[string]struct{})

	for _, dir := range filepath.SplitList(merged) {
		dir = strings.TrimSpace(dir)
		if _, dup := seen[dir]; dup || dir == "" {
			continue
		}

		seen[dir] = struct{}{}
		out = append(out, dir)
	}

	return out
}
