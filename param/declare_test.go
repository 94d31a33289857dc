package param

import (
	"errors"
	"testing"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/value"
)

func decl(name string, t value.Type, def string, groups ...document.ValueConstraintGroup) document.ParameterDeclaration {
	return document.ParameterDeclaration{Name: name, ParameterType: t, Value: def, ConstraintGroups: groups}
}

func group(cs ...document.ValueConstraint) document.ValueConstraintGroup {
	return document.ValueConstraintGroup{Constraints: cs}
}

func rule(r document.Rule, v string) document.ValueConstraint {
	return document.ValueConstraint{Rule: r, Value: v}
}

func TestDeclare(t *testing.T) {
	c := New()

	f := c.Push()
	defer f.Release()

	decls := []document.ParameterDeclaration{
		decl("Speed", value.TypeDouble, "30"),
		decl("Half", value.TypeDouble, "${Speed / 2}"),
		decl("Alias", value.TypeDouble, "$Half"),
		decl("Name", value.TypeString, "$$literal"),
		decl("Lanes", value.TypeInt, "2"),
	}

	if err := c.Declare(decls, map[string]string{"Lanes": "3"}); err != nil {
		t.Fatalf("Declare() error: %v", err)
	}

	want := map[string]string{
		"Speed": "30",
		"Half":  "15",
		"Alias": "15",
		"Name":  "$literal",
		"Lanes": "3",
	}

	for name, v := range want {
		if got, _ := c.Lookup(name); got != v {
			t.Errorf("Lookup(%s) = %q, want %q", name, got, v)
		}
	}
}

func TestDeclare_OverrideIsLiteral(t *testing.T) {
	c := New()

	f := c.Push()
	defer f.Release()

	err := c.Declare(
		[]document.ParameterDeclaration{decl("Label", value.TypeString, "x")},
		map[string]string{"Label": "$NotAReference"},
	)
	if err != nil {
		t.Fatalf("Declare() error: %v", err)
	}

	if got, _ := c.Lookup("Label"); got != "$NotAReference" {
		t.Errorf("Lookup(Label) = %q", got)
	}
}

func TestDeclare_Errors(t *testing.T) {
	tests := []struct {
		name      string
		decls     []document.ParameterDeclaration
		overrides map[string]string
		want      error
	}{
		{
			"duplicate",
			[]document.ParameterDeclaration{decl("A", value.TypeInt, "1"), decl("A", value.TypeInt, "2")},
			nil,
			ErrDuplicateParameter,
		},
		{
			"undeclared override",
			[]document.ParameterDeclaration{decl("Speed", value.TypeDouble, "1")},
			map[string]string{"Sped": "2"},
			ErrUndeclaredParameter,
		},
		{
			"type mismatch",
			[]document.ParameterDeclaration{decl("N", value.TypeUnsignedShort, "-1")},
			nil,
			value.ErrTypeConversion,
		},
		{
			"forward reference",
			[]document.ParameterDeclaration{decl("A", value.TypeDouble, "$B"), decl("B", value.TypeDouble, "1")},
			nil,
			ErrUnknownParameter,
		},
		{
			"invalid type",
			[]document.ParameterDeclaration{decl("A", value.TypeInvalid, "1")},
			nil,
			ErrInvalidDeclaration,
		},
		{
			"constraint",
			[]document.ParameterDeclaration{
				decl("Speed", value.TypeDouble, "70", group(rule(document.RuleLessOrEqual, "60"))),
			},
			nil,
			ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()

			f := c.Push()
			defer f.Release()

			if err := c.Declare(tt.decls, tt.overrides); !errors.Is(err, tt.want) {
				t.Errorf("Declare() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDeclare_UndeclaredSuggestion(t *testing.T) {
	c := New()

	f := c.Push()
	defer f.Release()

	err := c.Declare(
		[]document.ParameterDeclaration{decl("Speed", value.TypeDouble, "1")},
		map[string]string{"Sped": "2"},
	)

	v, ok := pkg.AttrOf(err, "suggestions")
	if !ok {
		t.Fatalf("error %v has no suggestions", err)
	}

	if s, _ := v.Any().([]string); len(s) == 0 || s[0] != "Speed" {
		t.Errorf("suggestions = %v, want Speed first", v)
	}
}

func TestCheckConstraints(t *testing.T) {
	speed := decl("Speed", value.TypeDouble, "0",
		group(rule(document.RuleGreaterThan, "0"), rule(document.RuleLessOrEqual, "60")),
		group(rule(document.RuleEqualTo, "-1")),
	)

	tests := []struct {
		v    string
		want error
	}{
		{"30", nil},
		{"60", nil},
		{"-1", nil},
		{"0", ErrConstraintViolation},
		{"60.5", ErrConstraintViolation},
		{"fast", ErrInvalidDeclaration},
	}

	for _, tt := range tests {
		if err := CheckConstraints(speed, tt.v); !errors.Is(err, tt.want) {
			t.Errorf("CheckConstraints(%q) = %v, want %v", tt.v, err, tt.want)
		}
	}

	if err := CheckConstraints(decl("Free", value.TypeString, ""), "anything"); err != nil {
		t.Errorf("unconstrained CheckConstraints() = %v", err)
	}

	bad := decl("X", value.TypeInt, "1", group(rule("between", "1")))
	if err := CheckConstraints(bad, "1"); !errors.Is(err, ErrInvalidDeclaration) {
		t.Errorf("invalid rule error = %v, want %v", err, ErrInvalidDeclaration)
	}
}

func TestDeclare_Rebind(t *testing.T) {
	speed := value.Parameter[float64]("A")

	c := New()

	f := c.Push()
	defer f.Release()

	if err := c.Declare([]document.ParameterDeclaration{decl("A", value.TypeDouble, "10.0")}, nil); err != nil {
		t.Fatalf("Declare() error: %v", err)
	}

	if got, err := speed.Resolve(c); err != nil || got != 10 {
		t.Fatalf("Resolve() = %v, %v; want 10", got, err)
	}

	err := c.Scoped(func() error {
		if err := c.Define("A", "25.0"); err != nil {
			return err
		}

		got, err := speed.Resolve(c)
		if err != nil || got != 25 {
			t.Errorf("rebound Resolve() = %v, %v; want 25", got, err)
		}

		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
