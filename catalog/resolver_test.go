package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/param"
	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/value"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()

	dir := writeFiles(t, map[string]string{
		"VehicleCatalog.xosc":    vehicleCatalog,
		"PedestrianCatalog.xosc": pedestrianCatalog,
		"ControllerCatalog.yaml": controllerCatalogYAML,
	})

	l := NewLoader(NewCache())
	for _, c := range document.Categories() {
		l.RegisterLocation(Location{Category: c, Dir: dir})
	}

	return NewResolver(l)
}

func reference(catalog, entry string, assign ...document.ParameterAssignment) *document.CatalogReference {
	return &document.CatalogReference{
		CatalogName:          value.Literal(catalog),
		EntryName:            value.Literal(entry),
		ParameterAssignments: assign,
	}
}

func assign(name, raw string) document.ParameterAssignment {
	v, err := value.Parse[string](raw)
	if err != nil {
		panic(err)
	}

	return document.ParameterAssignment{ParameterRef: name, Value: v}
}

func TestResolve_CallerContextAssignment(t *testing.T) {
	r := newResolver(t)
	caller := eval.MapLookup{"CallerSpeed": "42"}

	res, err := Resolve[*document.Vehicle](r, reference("VehicleCatalog", "car", assign("Speed", "${CallerSpeed}")), caller)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := []param.Binding{{Name: "Speed", Value: "42"}, {Name: "Accel", Value: "8.4"}}
	if diff := cmp.Diff(want, res.Parameters); diff != "" {
		t.Errorf("effective parameters mismatch (-want +got):\n%s", diff)
	}

	if res.Entry.Name != "car" || res.Catalog != "VehicleCatalog" || res.EntryName != "car" {
		t.Errorf("resolved = %+v", res)
	}

	if got := res.Entry.ParameterDeclarations[0].Value; got != "42" {
		t.Errorf("clone declaration Speed = %q, want 42", got)
	}
}

func TestResolve_DefaultsAndIsolation(t *testing.T) {
	r := newResolver(t)

	a, err := Resolve[*document.Vehicle](r, reference("VehicleCatalog", "car", assign("Speed", "20")), nil)
	if err != nil {
		t.Fatal(err)
	}

	b, err := Resolve[*document.Vehicle](r, reference("VehicleCatalog", "car"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if a.Entry == b.Entry {
		t.Fatal("two resolutions share an entry")
	}

	if a.Parameters[0].Value != "20" || b.Parameters[0].Value != "10" {
		t.Errorf("Speed = %q, %q; want 20, 10", a.Parameters[0].Value, b.Parameters[0].Value)
	}

	doc, err := r.Loader().LoadIfAbsent(a.SourceFile)
	if err != nil {
		t.Fatal(err)
	}

	cached, _ := doc.Catalog.Entry("car")
	if got := cached.Declarations()[0].Value; got != "10" {
		t.Errorf("cached entry default = %q after resolution, want 10", got)
	}

	if n := r.Loader().Cache().Parses(); n != 1 {
		t.Errorf("Parses() = %d, want 1", n)
	}
}

func TestResolve_Bind(t *testing.T) {
	r := newResolver(t)

	res, err := Resolve[*document.Vehicle](r, reference("VehicleCatalog", "car"), nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := param.New()

	err = res.Bind(ctx, func() error {
		got, err := res.Entry.Performance.MaxAcceleration.Resolve(ctx)
		if err != nil {
			return err
		}

		if got != 2 {
			t.Errorf("MaxAcceleration = %v, want 2", got)
		}

		return nil
	})
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	if ctx.Depth() != 0 {
		t.Errorf("Depth() after Bind = %d", ctx.Depth())
	}
}

func TestResolve_AnyEntry(t *testing.T) {
	r := newResolver(t)

	res, err := Resolve[document.CatalogEntry](r, reference("ControllerCatalog", "driver", assign("Aggression", "0.9")), nil)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if res.Entry.Category() != document.CategoryController {
		t.Errorf("category = %v", res.Entry.Category())
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		ref    *document.CatalogReference
		caller eval.Lookup
		want   error
	}{
		{"entry", reference("VehicleCatalog", "cra"), nil, ErrEntryNotFound},
		{"catalog", reference("VehicleCatalogs", "car"), nil, ErrCatalogFileNotFound},
		{"assignment", reference("VehicleCatalog", "car", assign("Speed", "$Missing")), eval.MapLookup{}, ErrAssignmentResolution},
		{"undeclared", reference("VehicleCatalog", "car", assign("Sped", "1")), nil, ErrAssignmentResolution},
		{"type", reference("VehicleCatalog", "car", assign("Speed", "fast")), nil, ErrAssignmentResolution},
		{"twice", reference("VehicleCatalog", "car", assign("Speed", "1"), assign("Speed", "2")), nil, ErrAssignmentResolution},
		{
			"name parameter",
			&document.CatalogReference{CatalogName: value.Parameter[string]("Cat"), EntryName: value.Literal("car")},
			eval.MapLookup{},
			value.ErrUnknownParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve[*document.Vehicle](newResolver(t), tt.ref, tt.caller)
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.want)
			}

			if res != nil {
				t.Errorf("Resolve() returned a partial result: %+v", res)
			}
		})
	}
}

func TestResolve_EntryNotFoundSuggestions(t *testing.T) {
	_, err := Resolve[*document.Vehicle](newResolver(t), reference("VehicleCatalog", "cra"), nil)

	v, ok := pkg.AttrOf(err, "available")
	if !ok {
		t.Fatalf("error %v has no available names", err)
	}

	if s, _ := v.Any().([]string); len(s) == 0 || s[0] != "car" {
		t.Errorf("available = %v, want car first", v)
	}
}

func TestResolve_EntryNotFoundListsDistantNames(t *testing.T) {
	_, err := Resolve[*document.Vehicle](newResolver(t), reference("VehicleCatalog", "zzzzzzzz"), nil)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("Resolve() error = %v, want %v", err, ErrEntryNotFound)
	}

	v, ok := pkg.AttrOf(err, "available")
	if !ok {
		t.Fatalf("error %v has no available names", err)
	}

	got, _ := v.Any().([]string)
	if diff := cmp.Diff([]string{"car", "truck"}, got); diff != "" {
		t.Errorf("available mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_WrongCategory(t *testing.T) {
	_, err := Resolve[*document.Vehicle](newResolver(t), reference("PedestrianCatalog", "walker"), nil)
	if !errors.Is(err, ErrWrongCatalogCategory) {
		t.Errorf("Resolve() error = %v, want %v", err, ErrWrongCatalogCategory)
	}

	_, err = Resolve[*document.Route](NewResolver(NewLoader(nil)), reference("RouteCatalog", "r"), nil)
	if !errors.Is(err, ErrUnregisteredCategory) {
		t.Errorf("Resolve() error = %v, want %v", err, ErrUnregisteredCategory)
	}
}
