package catalog

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/pkg"
)

// Location is a directory declared for one catalog category.
type Location struct {
	Category document.Category
	Dir      string
}

// LogValue implements slog.LogValuer.
func (l Location) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("category", l.Category.String()),
		slog.String("dir", l.Dir),
	)
}

// Option configures a [Loader] or [Resolver].
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Loader finds and parses catalog files through a [Cache].
type Loader struct {
	cache     *Cache
	locations []Location
	search    []string
	logger    log.Logger
}

// NewLoader returns a Loader reading through cache. A nil cache gives the
// Loader a private one.
func NewLoader(cache *Cache, opts ...Option) *Loader {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if cache == nil {
		cache = NewCache()
	}

	return &Loader{cache: cache, logger: o.logger}
}

// Cache returns the cache the Loader reads through.
func (l *Loader) Cache() *Cache { return l.cache }

// RegisterLocation declares a directory for a category. Directories of one
// category are searched in registration order.
func (l *Loader) RegisterLocation(loc Location) {
	l.locations = append(l.locations, loc)
	l.logger.Debug("register catalog location", slog.Any("location", loc))
}

// RegisterLocations declares the locations of a document's
// CatalogLocations, resolving relative directories against base.
func (l *Loader) RegisterLocations(locs *document.CatalogLocations, base string) error {
	for _, c := range locs.Declared() {
		dir, ok := locs.Get(c).Directory.Path.AsLiteral()
		if !ok {
			return ErrInvalidReference.With(
				slog.String("category", c.String()),
				slog.String("path", locs.Get(c).Directory.Path.String()),
			)
		}

		if !filepath.IsAbs(dir) && base != "" {
			dir = filepath.Join(base, dir)
		}

		l.RegisterLocation(Location{Category: c, Dir: dir})
	}

	return nil
}

// AddSearchPath appends directories searched for every category after the
// registered locations.
func (l *Loader) AddSearchPath(dirs ...string) {
	l.search = append(l.search, dirs...)
}

// Registered reports whether a location was registered for c.
func (l *Loader) Registered(c document.Category) bool {
	return slices.ContainsFunc(l.locations, func(loc Location) bool {
		return loc.Category == c
	})
}

// Dirs returns the directories searched for c, in search order.
func (l *Loader) Dirs(c document.Category) []string {
	var out []string

	for _, loc := range l.locations {
		if loc.Category == c {
			out = append(out, loc.Dir)
		}
	}

	return append(out, l.search...)
}

// LoadIfAbsent returns the catalog file at path, parsing it only if no
// earlier call through the same cache parsed the same canonical path.
func (l *Loader) LoadIfAbsent(path string) (*document.File, error) {
	canon, err := canonical(path)
	if err != nil {
		return nil, err
	}

	doc, hit, err := l.cache.load(canon, parseCatalog)
	if err != nil {
		return nil, err
	}

	if hit {
		l.logger.Trace("catalog cache hit", slog.String("path", canon))
	} else {
		l.logger.Debug("catalog parsed",
			slog.String("path", canon),
			slog.String("catalog", doc.Catalog.Name),
			slog.Int("entries", len(doc.Catalog.Entries)),
		)
	}

	return doc, nil
}

// Load is [Loader.LoadIfAbsent] followed by a check that every entry of the
// catalog belongs to want.
func (l *Loader) Load(path string, want document.Category) (*document.File, error) {
	doc, err := l.LoadIfAbsent(path)
	if err != nil {
		return nil, err
	}

	if err := checkCategory(doc, want); err != nil {
		return nil, pkg.WrapError(err).With(slog.String("path", path))
	}

	return doc, nil
}

// Find returns the file defining the catalog named name for category c,
// with its path.
//
// Each directory searched for c is tried in order. Within a directory the
// file named after the catalog is tried first, then the other catalog files
// by name. The first file whose catalog has the requested name wins.
func (l *Loader) Find(c document.Category, name string) (*document.File, string, error) {
	var seen []string

	for _, dir := range l.Dirs(c) {
		for _, path := range candidates(dir, name) {
			primary := isPrimary(path, name)

			doc, err := l.LoadIfAbsent(path)
			if err != nil {
				if primary {
					return nil, "", err
				}

				l.logger.Debug("skip catalog file", slog.String("path", path), slog.Any("error", err))

				continue
			}

			if doc.Catalog.Name != name {
				seen = append(seen, doc.Catalog.Name)

				continue
			}

			if err := checkCategory(doc, c); err != nil {
				return nil, "", pkg.WrapError(err).With(slog.String("path", path))
			}

			return doc, path, nil
		}
	}

	return nil, "", ErrCatalogFileNotFound.With(
		slog.String("catalog", name),
		slog.String("category", c.String()),
		slog.Any("dirs", l.Dirs(c)),
		slog.Any("suggestions", pkg.Suggest(name, seen, pkg.MaxSuggestions)),
	)
}

// Info summarizes one catalog file.
type Info struct {
	Path     string
	Name     string
	Category document.Category
	Entries  []string
}

// List parses every catalog file in dir, sorted by path. Files that fail to
// parse are reported together after the others are listed.
func (l *Loader) List(dir string) ([]Info, error) {
	var (
		out  []Info
		errs pkg.Errors
	)

	for _, path := range candidates(dir, "") {
		doc, err := l.LoadIfAbsent(path)
		if err != nil {
			errs.Append(err)

			continue
		}

		out = append(out, Info{
			Path:     path,
			Name:     doc.Catalog.Name,
			Category: doc.Catalog.Category(),
			Entries:  doc.Catalog.Names(),
		})
	}

	return out, errs.Err()
}

// candidates returns the document files of dir with the file named after
// name first and the rest sorted. A missing directory has no candidates.
func candidates(dir, name string) []string {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []string

	for _, e := range ents {
		if e.IsDir() || !document.IsDocument(e.Name()) {
			continue
		}

		out = append(out, filepath.Join(dir, e.Name()))
	}

	slices.Sort(out)

	slices.SortStableFunc(out, func(a, b string) int {
		switch pa, pb := isPrimary(a, name), isPrimary(b, name); {
		case pa && !pb:
			return -1
		case pb && !pa:
			return 1
		default:
			return 0
		}
	})

	return out
}

func isPrimary(path, name string) bool {
	if name == "" {
		return false
	}

	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base)) == name
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrFileNotFound.Wrap(err).With(slog.String("path", path))
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrFileNotFound.With(slog.String("path", path))
		}

		return "", ErrFileNotFound.Wrap(err).With(slog.String("path", path))
	}

	return resolved, nil
}

func parseCatalog(path string) (*document.File, error) {
	doc, err := document.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound.With(slog.String("path", path))
		}

		return nil, ErrMalformedDocument.With(
			slog.String("path", path),
			slog.String("reason", err.Error()),
		)
	}

	if !doc.IsCatalog() {
		return nil, ErrMalformedDocument.With(
			slog.String("path", path),
			slog.String("reason", "document has no Catalog element"),
		)
	}

	return doc, nil
}

func checkCategory(doc *document.File, want document.Category) error {
	for _, e := range doc.Catalog.Entries {
		if got := e.Category(); got != want {
			return ErrWrongCatalogCategory.With(
				slog.String("catalog", doc.Catalog.Name),
				slog.String("expected", want.String()),
				slog.String("found", got.String()),
			)
		}
	}

	return nil
}
