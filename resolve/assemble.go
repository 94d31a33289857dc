package resolve

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/scenic/catalog"
	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/param"
	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/value"
)

// assembler is the visitor that inlines catalog references and literalizes
// fields. It mirrors every declaring node with a scope of params.
type assembler struct {
	root     *document.File
	params   *param.Context
	resolver *catalog.Resolver
	result   *Result

	frames []*param.Frame
	failed map[*document.CatalogReference]struct{}
	errs   pkg.Errors
}

func (a *assembler) fail(path string, err error) {
	a.errs.Append(ErrResolve.Wrap(err).With(slog.String("path", path)))
}

// Enter implements [document.Visitor].
func (a *assembler) Enter(path string, node any) error {
	if ref, ok := node.(*document.CatalogReference); ok {
		if _, failed := a.failed[ref]; failed {
			return document.SkipChildren
		}
	}

	a.inline(path, node)

	d, ok := node.(document.Declarer)
	if !ok || node == any(a.root) {
		return nil
	}

	f := a.params.Push()
	a.frames = append(a.frames, f)

	if err := a.params.Declare(d.Declarations(), nil); err != nil {
		a.fail(path, err)

		return document.SkipChildren
	}

	d.SetDeclarations(bind(d.Declarations(), f.Bindings()))

	return nil
}

// release closes every scope still open below the root, innermost first.
func (a *assembler) release() {
	for i := len(a.frames) - 1; i >= 0; i-- {
		a.frames[i].Release()
	}

	a.frames = nil
}

// Leave implements [document.Visitor].
func (a *assembler) Leave(_ string, node any) error {
	if _, ok := node.(document.Declarer); ok && node != any(a.root) {
		n := len(a.frames) - 1
		a.frames[n].Release()
		a.frames = a.frames[:n]
	}

	return nil
}

// Field implements [document.Visitor].
func (a *assembler) Field(path string, f value.Field) (value.Field, error) {
	if !f.IsParameter() {
		return nil, nil
	}

	lit, err := f.Literalize(a.params)
	if err != nil {
		a.fail(path, err)

		return nil, nil
	}

	return lit, nil
}

// inline replaces the catalog references held by node with the entries they
// name. The walk then descends into the inlined entries.
func (a *assembler) inline(path string, node any) {
	switch n := node.(type) {
	case *document.ScenarioObject:
		if ref, ok := n.EntityObject.Value.(*document.CatalogReference); ok {
			if v, ok := inlineAs[document.EntityObjectKind](a, join(path, ref.Tag()), n, ref); ok {
				n.EntityObject.Value = v
			}
		}

	case *document.ObjectController:
		if ref, ok := n.Controller.Value.(*document.CatalogReference); ok {
			if v, ok := inlineAs[document.ControllerObjectKind](a, join(path, ref.Tag()), n, ref); ok {
				n.Controller.Value = v
			}
		}

	case *document.AssignControllerAction:
		if ref, ok := n.Controller.Value.(*document.CatalogReference); ok {
			if v, ok := inlineAs[document.ControllerObjectKind](a, join(path, ref.Tag()), n, ref); ok {
				n.Controller.Value = v
			}
		}

	case *document.EnvironmentAction:
		if ref, ok := n.Environment.Value.(*document.CatalogReference); ok {
			if v, ok := inlineAs[document.EnvironmentObjectKind](a, join(path, ref.Tag()), n, ref); ok {
				n.Environment.Value = v
			}
		}

	case *document.ManeuverGroup:
		var (
			maneuvers []document.Maneuver
			failed    bool
		)

		for i := range n.CatalogReferences {
			p := join(path, "CatalogReferences["+strconv.Itoa(i)+"]")

			m, ok := inlineAs[*document.Maneuver](a, p, n, &n.CatalogReferences[i])
			if !ok {
				failed = true

				continue
			}

			maneuvers = append(maneuvers, *m)
		}

		if !failed && len(maneuvers) > 0 {
			n.Maneuvers = append(maneuvers, n.Maneuvers...)
			n.CatalogReferences = nil
		}
	}
}

// inlineAs resolves ref in the current scope to an entry of type V.
func inlineAs[V document.Variant](a *assembler, path string, parent any, ref *document.CatalogReference) (V, bool) {
	var zero V

	res, err := a.resolver.ResolveEntry(ref, document.ReferenceCategories(parent), a.params)
	if err == nil {
		v, ok := res.Entry.(V)
		if ok {
			a.result.Catalogs = append(a.result.Catalogs, Provenance{
				Path:       path,
				Category:   res.Entry.Category(),
				Catalog:    res.Catalog,
				Entry:      res.EntryName,
				SourceFile: res.SourceFile,
				Parameters: res.Parameters,
			})

			return v, true
		}

		err = catalog.ErrWrongCatalogCategory.With(
			slog.String("catalog", res.Catalog),
			slog.String("entry", res.EntryName),
			slog.String("found", res.Entry.Category().String()),
		)
	}

	a.fail(path, err)

	if a.failed == nil {
		a.failed = make(map[*document.CatalogReference]struct{})
	}

	a.failed[ref] = struct{}{}

	return zero, false
}

// literalizer replaces every parameter reference under a node, stopping at
// the first failure.
func literalizer(lookup *param.Context) document.Visitor {
	return document.VisitorFuncs{
		FieldFunc: func(path string, f value.Field) (value.Field, error) {
			if !f.IsParameter() {
				return nil, nil
			}

			lit, err := f.Literalize(lookup)
			if err != nil {
				return nil, pkg.WrapError(err).With(slog.String("path", path))
			}

			return lit, nil
		},
	}
}

// escape returns s in wire form as a literal string.
func escape(s string) string { return value.Literal(s).String() }

func join(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}
