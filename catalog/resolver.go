package catalog

import (
	"errors"
	"log/slog"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/param"
	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/value"
)

// Resolved is a private copy of a catalog entry with its parameters bound.
type Resolved[T document.CatalogEntry] struct {
	// Entry is a deep copy of the cached entry. Its parameter declarations
	// hold the effective values, so it resolves on its own.
	Entry T
	// SourceFile is the path of the catalog file that defined the entry.
	SourceFile string
	Catalog    string
	EntryName  string
	// Parameters are the effective parameter values in declaration order.
	Parameters []param.Binding
}

// LogValue implements slog.LogValuer.
func (r *Resolved[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("catalog", r.Catalog),
		slog.String("entry", r.EntryName),
		slog.String("file", r.SourceFile),
		slog.Any("parameters", r.Parameters),
	)
}

// Bind runs fn in a new scope of ctx holding the effective parameters.
func (r *Resolved[T]) Bind(ctx *param.Context, fn func() error) error {
	return ctx.Scoped(func() error {
		for _, b := range r.Parameters {
			if err := ctx.Define(b.Name, b.Value); err != nil {
				return err
			}
		}

		return fn()
	})
}

// Resolver resolves catalog references through a [Loader].
type Resolver struct {
	loader *Loader
	logger log.Logger
}

// NewResolver returns a Resolver using loader.
func NewResolver(loader *Loader, opts ...Option) *Resolver {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Resolver{loader: loader, logger: o.logger}
}

// Loader returns the loader the Resolver reads catalogs through.
func (r *Resolver) Loader() *Loader { return r.loader }

// Resolve resolves ref to an entry of type T. The categories searched are
// those whose entries are assignable to T.
func Resolve[T document.CatalogEntry](
	r *Resolver,
	ref *document.CatalogReference,
	caller eval.Lookup,
) (*Resolved[T], error) {
	var cats []document.Category

	for _, c := range document.Categories() {
		if _, ok := c.NewEntry().(T); ok {
			cats = append(cats, c)
		}
	}

	res, err := r.ResolveEntry(ref, cats, caller)
	if err != nil {
		return nil, err
	}

	entry, ok := res.Entry.(T)
	if !ok {
		return nil, ErrWrongCatalogCategory.With(
			slog.String("catalog", res.Catalog),
			slog.String("entry", res.EntryName),
			slog.String("found", res.Entry.Category().String()),
		)
	}

	return &Resolved[T]{
		Entry:      entry,
		SourceFile: res.SourceFile,
		Catalog:    res.Catalog,
		EntryName:  res.EntryName,
		Parameters: res.Parameters,
	}, nil
}

// ResolveEntry resolves ref to an entry of one of categories.
//
// The catalog and entry names are resolved against caller. The catalog file
// is searched in each category's directories. The entry found is deep copied
// so the cached catalog is never modified. Its declared parameters are seeded
// in a fresh scope and overridden by the reference's assignments, each
// resolved against caller rather than against the entry.
//
// No partial entry is returned on failure.
func (r *Resolver) ResolveEntry(
	ref *document.CatalogReference,
	categories []document.Category,
	caller eval.Lookup,
) (*Resolved[document.CatalogEntry], error) {
	catalogName, err := ref.CatalogName.Resolve(caller)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("field", "catalogName"))
	}

	entryName, err := ref.EntryName.Resolve(caller)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("field", "entryName"))
	}

	doc, path, err := r.find(categories, catalogName)
	if err != nil {
		return nil, err
	}

	cached, ok := doc.Catalog.Entry(entryName)
	if !ok {
		return nil, ErrEntryNotFound.With(
			slog.String("catalog", catalogName),
			slog.String("entry", entryName),
			slog.Any("available", pkg.Nearest(entryName, doc.Catalog.Names(), pkg.MaxSuggestions)),
		)
	}

	overrides, err := assignments(ref, caller, catalogName, entryName)
	if err != nil {
		return nil, err
	}

	entry := document.Clone(cached)

	ctx := param.New(param.WithLogger(r.logger))

	frame := ctx.Push()
	defer frame.Release()

	if err := ctx.Declare(entry.Declarations(), overrides); err != nil {
		if name, ok := pkg.AttrOf(err, "name"); ok {
			if _, assigned := overrides[name.String()]; assigned {
				err = ErrAssignmentResolution.Wrap(err)
			}
		}

		return nil, pkg.WrapError(err).With(
			slog.String("catalog", catalogName),
			slog.String("entry", entryName),
		)
	}

	effective := frame.Bindings()
	entry.SetDeclarations(bindDeclarations(entry.Declarations(), effective))

	res := &Resolved[document.CatalogEntry]{
		Entry:      entry,
		SourceFile: path,
		Catalog:    catalogName,
		EntryName:  entryName,
		Parameters: effective,
	}

	r.logger.Debug("resolved catalog reference", slog.Any("resolved", res))

	return res, nil
}

// find tries each category in turn. A catalog of the requested name holding
// entries of another category is reported only if no category matches.
func (r *Resolver) find(categories []document.Category, name string) (*document.File, string, error) {
	var (
		wrong    error
		notFound error
		searched bool
	)

	for _, c := range categories {
		if len(r.loader.Dirs(c)) == 0 {
			continue
		}

		searched = true

		doc, path, err := r.loader.Find(c, name)

		switch {
		case err == nil:
			return doc, path, nil
		case errors.Is(err, ErrWrongCatalogCategory):
			if wrong == nil {
				wrong = err
			}
		case errors.Is(err, ErrCatalogFileNotFound):
			notFound = err
		default:
			return nil, "", err
		}
	}

	switch {
	case !searched:
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = c.String()
		}

		return nil, "", ErrUnregisteredCategory.With(
			slog.String("catalog", name),
			slog.Any("categories", names),
		)
	case wrong != nil:
		return nil, "", wrong
	default:
		return nil, "", notFound
	}
}

// assignments resolves every assignment value against caller.
func assignments(
	ref *document.CatalogReference,
	caller eval.Lookup,
	catalogName, entryName string,
) (map[string]string, error) {
	out := make(map[string]string, len(ref.ParameterAssignments))

	for _, a := range ref.ParameterAssignments {
		attrs := []slog.Attr{
			slog.String("catalog", catalogName),
			slog.String("entry", entryName),
			slog.String("parameter", a.ParameterRef),
		}

		if _, dup := out[a.ParameterRef]; dup {
			return nil, ErrAssignmentResolution.With(attrs...).With(slog.String("reason", "assigned twice"))
		}

		v, err := a.Value.Resolve(caller)
		if err != nil {
			return nil, ErrAssignmentResolution.Wrap(err).With(attrs...)
		}

		out[a.ParameterRef] = v
	}

	return out, nil
}

// bindDeclarations returns decls with each default replaced by its effective
// value in wire form.
func bindDeclarations(decls []document.ParameterDeclaration, effective []param.Binding) []document.ParameterDeclaration {
	values := make(map[string]string, len(effective))
	for _, b := range effective {
		values[b.Name] = b.Value
	}

	out := make([]document.ParameterDeclaration, len(decls))
	for i, d := range decls {
		d.Value = value.Literal(values[d.Name]).String()
		out[i] = d
	}

	return out
}
