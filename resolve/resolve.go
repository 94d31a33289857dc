package resolve

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ardnew/scenic/catalog"
	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/param"
)

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithOverrides replaces the defaults of the document's own parameters.
// Override values are literal.
func WithOverrides(overrides map[string]string) Option {
	return func(r *Resolver) { r.overrides = overrides }
}

// WithSearchPath adds directories searched for catalogs of every category
// after the document's own catalog locations.
func WithSearchPath(dirs ...string) Option {
	return func(r *Resolver) { r.search = append(r.search, dirs...) }
}

// Resolver resolves documents. Catalogs are parsed once per canonical path
// in the shared cache, across every document the Resolver handles.
type Resolver struct {
	cache     *catalog.Cache
	search    []string
	overrides map[string]string
	logger    log.Logger
}

// New returns a Resolver reading catalogs through cache. A nil cache is
// replaced by a new one.
func New(cache *catalog.Cache, opts ...Option) *Resolver {
	if cache == nil {
		cache = catalog.NewCache()
	}

	r := &Resolver{cache: cache}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Cache returns the catalog cache of r.
func (r *Resolver) Cache() *catalog.Cache { return r.cache }

// Provenance records one inlined catalog reference.
type Provenance struct {
	// Path locates the reference in the document.
	Path       string
	Category   document.Category
	Catalog    string
	Entry      string
	SourceFile string
	Parameters []param.Binding
}

// LogValue implements slog.LogValuer.
func (p Provenance) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", p.Path),
		slog.String("category", p.Category.String()),
		slog.String("catalog", p.Catalog),
		slog.String("entry", p.Entry),
		slog.String("file", p.SourceFile),
	)
}

// Result is a resolved document.
type Result struct {
	// ID identifies the resolution run in logs.
	ID uuid.UUID
	// Document is a deep copy of the input with every catalog reference
	// inlined and every parameter reference replaced by its value.
	Document *document.File
	// Parameters are the effective values of the document's own parameters.
	Parameters []param.Binding
	// Catalogs lists the inlined references in document order.
	Catalogs []Provenance
}

// LogValue implements slog.LogValuer.
func (r *Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", r.ID.String()),
		slog.Any("parameters", r.Parameters),
		slog.Int("catalogs", len(r.Catalogs)),
	)
}

// File reads and resolves the document at path. Relative catalog locations
// are resolved against the directory of path.
func (r *Resolver) File(ctx context.Context, path string) (*Result, error) {
	doc, err := document.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return r.resolve(ctx, doc, filepath.Dir(path))
}

// Document resolves doc. Relative catalog locations are resolved against the
// working directory.
//
// The document's own parameters must declare cleanly for anything else to
// resolve, so a failure there is returned alone. Otherwise every
// independent failure is returned in one [pkg.Errors] and no result is
// produced.
func (r *Resolver) Document(ctx context.Context, doc *document.File) (*Result, error) {
	return r.resolve(ctx, doc, "")
}

func (r *Resolver) resolve(ctx context.Context, doc *document.File, base string) (*Result, error) {
	res := &Result{ID: uuid.New(), Document: document.Clone(doc)}
	logger := r.logger.With(slog.String("run", res.ID.String()))

	params := param.New(param.WithLogger(logger))

	root := params.Push()
	defer root.Release()

	out := res.Document
	if err := params.Declare(out.ParameterDeclarations, r.overrides); err != nil {
		return nil, ErrResolve.Wrap(err)
	}

	res.Parameters = root.Bindings()
	out.SetDeclarations(bind(out.ParameterDeclarations, res.Parameters))

	loader := catalog.NewLoader(r.cache, catalog.WithLogger(logger))
	loader.AddSearchPath(r.search...)

	if out.CatalogLocations != nil {
		if err := document.Walk(out.CatalogLocations, literalizer(params)); err != nil {
			return nil, ErrResolve.Wrap(err)
		}

		if err := loader.RegisterLocations(out.CatalogLocations, base); err != nil {
			return nil, ErrResolve.Wrap(err)
		}
	}

	a := &assembler{
		root:     out,
		params:   params,
		resolver: catalog.NewResolver(loader, catalog.WithLogger(logger)),
		result:   res,
	}

	if err := document.Walk(out, a); err != nil {
		a.errs.Append(ErrResolve.Wrap(err))
	}

	a.release()

	if err := a.errs.Err(); err != nil {
		logger.DebugContext(ctx, "document resolution failed", slog.Any("errors", a.errs))

		return nil, err
	}

	logger.DebugContext(ctx, "resolved document", slog.Any("result", res))

	return res, nil
}

// bind returns decls with each default replaced by its effective value.
func bind(decls []document.ParameterDeclaration, effective []param.Binding) []document.ParameterDeclaration {
	if len(decls) == 0 {
		return decls
	}

	values := make(map[string]string, len(effective))
	for _, b := range effective {
		values[b.Name] = b.Value
	}

	out := make([]document.ParameterDeclaration, len(decls))
	for i, d := range decls {
		d.Value = escape(values[d.Name])
		out[i] = d
	}

	return out
}
