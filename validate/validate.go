package validate

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/param"
	"github.com/ardnew/scenic/registry"
	"github.com/ardnew/scenic/value"
)

// Option configures [Document].
type Option func(*options)

type options struct {
	logger     log.Logger
	failFast   bool
	categories []document.Category
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// FailFast stops validation at the first issue.
func FailFast() Option {
	return func(o *options) { o.failFast = true }
}

// WithCategories treats categories as declared in addition to those the
// document's CatalogLocations declare, for catalogs found on a search path.
func WithCategories(categories ...document.Category) Option {
	return func(o *options) { o.categories = append(o.categories, categories...) }
}

// errStop ends the walk early in fail-fast mode.
var errStop = errors.New("stop")

// Document validates doc and returns the report. It never modifies doc.
//
// The schema rules are applied first. Entities and catalog locations are
// registered before the walk so references may precede declarations.
// Parameters are registered per declaring node as the walk enters it, so a
// parameter is visible in the subtree of the node declaring it, and a
// default may refer only to parameters declared before it.
func Document(ctx context.Context, doc *document.File, opts ...Option) *Report {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &checker{
		options: o,
		report: &Report{
			ID:       uuid.New(),
			Entities: registry.NewEntities(),
			Catalogs: registry.NewCatalogs(),
		},
		params: registry.NewParameters(),
	}

	c.run(ctx, doc)

	o.logger.DebugContext(ctx, "validated document", slog.Any("report", c.report))

	return c.report
}

type checker struct {
	options

	report *Report
	params *registry.Parameters
	nodes  []any
}

func (c *checker) run(ctx context.Context, doc *document.File) {
	for _, i := range schema(ctx, doc) {
		if c.add(i.Path, i.Err) != nil {
			return
		}
	}

	if c.registerEntities(doc.Entities) != nil {
		return
	}

	c.registerCatalogs(doc.CatalogLocations)

	err := document.Walk(doc, c)
	if err != nil && !errors.Is(err, errStop) {
		_ = c.add("", err)
	}
}

// add records an issue. In fail-fast mode it returns errStop.
func (c *checker) add(path string, err error) error {
	c.report.Issues = append(c.report.Issues, Issue{Path: path, Err: err})

	c.logger.Trace("validation issue", slog.String("path", path), slog.Any("error", err))

	if c.failFast {
		return errStop
	}

	return nil
}

func (c *checker) registerEntities(e *document.Entities) error {
	if e == nil {
		return nil
	}

	for i, o := range e.ScenarioObjects {
		path := "Entities.ScenarioObjects[" + strconv.Itoa(i) + "]"
		if err := c.report.Entities.Add(o.Name, registry.Entity{Kind: o.EntityObject.Tag(), Path: path}); err != nil {
			if c.add(path, err) != nil {
				return errStop
			}
		}
	}

	for i, s := range e.EntitySelections {
		path := "Entities.EntitySelections[" + strconv.Itoa(i) + "]"
		if err := c.report.Entities.Add(s.Name, registry.Entity{Kind: "EntitySelection", Path: path}); err != nil {
			if c.add(path, err) != nil {
				return errStop
			}
		}
	}

	return nil
}

func (c *checker) registerCatalogs(l *document.CatalogLocations) {
	for _, cat := range l.Declared() {
		_ = c.report.Catalogs.Add(cat.String(), registry.Catalog{
			Category: cat,
			Dir:      l.Get(cat).Directory.Path.String(),
		})
	}

	for _, cat := range c.categories {
		if !c.report.Catalogs.Contains(cat.String()) {
			_ = c.report.Catalogs.Add(cat.String(), registry.Catalog{Category: cat})
		}
	}
}

// Enter implements [document.Visitor].
func (c *checker) Enter(path string, node any) error {
	parent := c.parent()
	c.nodes = append(c.nodes, node)

	if d, ok := node.(document.Declarer); ok {
		c.params = c.params.Child()

		if err := c.declare(path, d.Declarations()); err != nil {
			return err
		}

		if _, root := node.(*document.File); root {
			c.report.Parameters = c.params
		}
	}

	if ref, ok := node.(*document.CatalogReference); ok {
		return c.catalogReference(path, ref, parent)
	}

	return nil
}

// Leave implements [document.Visitor].
func (c *checker) Leave(_ string, node any) error {
	c.nodes = c.nodes[:len(c.nodes)-1]

	if _, ok := node.(document.Declarer); ok {
		c.params = c.params.Parent()
	}

	return nil
}

func (c *checker) parent() any {
	if len(c.nodes) == 0 {
		return nil
	}

	return c.nodes[len(c.nodes)-1]
}

// Field implements [document.Visitor].
func (c *checker) Field(path string, f value.Field) (value.Field, error) {
	if f.IsParameter() {
		if err := c.references(path, f); err != nil {
			return nil, err
		}
	}

	switch v := f.(type) {
	case value.Value[document.EntityName]:
		if name, ok := v.AsLiteral(); ok && !c.report.Entities.Contains(string(name)) {
			return nil, c.add(path, ErrUnknownEntityReference.With(
				slog.String("path", path),
				slog.String("name", string(name)),
				slog.Any("suggestions", c.report.Entities.Suggest(string(name))),
			))
		}

	case value.Value[document.ParameterName]:
		if name, ok := v.AsLiteral(); ok {
			return nil, c.parameter(path, string(name))
		}
	}

	return nil, nil
}

// references checks every parameter a reference or expression depends on.
func (c *checker) references(path string, f value.Field) error {
	names, err := f.References()
	if err != nil {
		return c.add(path, err)
	}

	for _, name := range names {
		if err := c.parameter(path, name); err != nil {
			return err
		}
	}

	return nil
}

func (c *checker) parameter(path, name string) error {
	if c.params.Contains(name) {
		return nil
	}

	return c.add(path, ErrUnknownParameterReference.With(
		slog.String("path", path),
		slog.String("name", name),
		slog.Any("suggestions", c.params.Suggest(name)),
	))
}

// declare registers decls in the current scope. Each default is checked
// before its own name is registered.
func (c *checker) declare(path string, decls []document.ParameterDeclaration) error {
	for i, d := range decls {
		p := join(path, "ParameterDeclarations["+strconv.Itoa(i)+"]")

		if err := c.checkDefault(p, d); err != nil {
			return err
		}

		if err := c.params.Add(d.Name, registry.Parameter{Type: d.ParameterType, Path: p}); err != nil {
			if err := c.add(p, err); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *checker) checkDefault(path string, d document.ParameterDeclaration) error {
	def, err := value.Parse[string](d.Value)
	if err != nil {
		return c.add(path, ErrInvalidDefault.Wrap(err).With(slog.String("name", d.Name)))
	}

	if def.IsParameter() {
		return c.references(path, def)
	}

	lit, _ := def.AsLiteral()

	if !d.ParameterType.Valid() {
		// Reported by the schema rules.
		return nil
	}

	if err := d.ParameterType.Check(lit); err != nil {
		return c.add(path, ErrInvalidDefault.Wrap(err).With(slog.String("name", d.Name)))
	}

	if err := param.CheckConstraints(d, lit); err != nil {
		return c.add(path, ErrInvalidDefault.Wrap(err).With(slog.String("name", d.Name)))
	}

	return nil
}

func (c *checker) catalogReference(path string, ref *document.CatalogReference, parent any) error {
	categories := document.ReferenceCategories(parent)
	if len(categories) == 0 {
		categories = document.Categories()
	}

	names := make([]string, 0, len(categories))

	for _, cat := range categories {
		if c.report.Catalogs.Contains(cat.String()) {
			return nil
		}

		names = append(names, cat.String())
	}

	return c.add(path, ErrUnregisteredCatalogCategory.With(
		slog.String("path", path),
		slog.String("catalog", ref.CatalogName.String()),
		slog.Any("categories", names),
	))
}

func join(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}
