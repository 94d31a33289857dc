package param

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/value"
)

// Declare defines every declaration in the innermost scope, in order.
//
// The value of each parameter is its override when one is given and its
// declared default otherwise. Overrides are literal text. A default may be a
// parameter reference or expression, resolved against everything visible so
// far, including parameters declared earlier in decls. Each value must be in
// the lexical space of the declared type and satisfy the constraint groups.
//
// Declare stops at the first failure: later defaults may depend on the
// failed one. Names declared twice in decls fail with
// [ErrDuplicateParameter], and overrides naming no declaration fail with
// [ErrUndeclaredParameter].
func (c *Context) Declare(decls []document.ParameterDeclaration, overrides map[string]string) error {
	if len(c.scopes) == 0 {
		return ErrNoScope
	}

	names := make([]string, 0, len(decls))

	for _, d := range decls {
		if slices.Contains(names, d.Name) {
			return ErrDuplicateParameter.With(slog.String("name", d.Name))
		}

		names = append(names, d.Name)
	}

	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		if !slices.Contains(names, name) {
			return ErrUndeclaredParameter.With(
				slog.String("name", name),
				slog.Any("suggestions", pkg.Suggest(name, names, pkg.MaxSuggestions)),
			)
		}
	}

	for _, d := range decls {
		v, err := c.effective(d, overrides)
		if err != nil {
			return err
		}

		if err := c.Define(d.Name, v); err != nil {
			return err
		}
	}

	c.logger.Trace("declared parameters",
		slog.Int("count", len(decls)),
		slog.Int("overrides", len(overrides)),
		slog.Int("depth", len(c.scopes)),
	)

	return nil
}

func (c *Context) effective(d document.ParameterDeclaration, overrides map[string]string) (string, error) {
	if d.Name == "" || !d.ParameterType.Valid() {
		return "", ErrInvalidDeclaration.With(
			slog.String("name", d.Name),
			slog.String("type", d.ParameterType.String()),
		)
	}

	raw, ok := overrides[d.Name]
	if !ok {
		def, err := value.Parse[string](d.Value)
		if err != nil {
			return "", ErrInvalidDeclaration.Wrap(err).With(slog.String("name", d.Name))
		}

		raw, err = def.Resolve(c)
		if err != nil {
			return "", pkg.WrapError(err).With(slog.String("parameter", d.Name))
		}
	}

	if err := d.ParameterType.Check(raw); err != nil {
		return "", pkg.WrapError(err).With(slog.String("name", d.Name))
	}

	if err := CheckConstraints(d, raw); err != nil {
		return "", err
	}

	return raw, nil
}

// CheckConstraints reports whether v satisfies the constraint groups of d. A
// value satisfies d when it has no groups or satisfies every constraint of
// at least one group.
func CheckConstraints(d document.ParameterDeclaration, v string) error {
	if len(d.ConstraintGroups) == 0 {
		return nil
	}

	for _, g := range d.ConstraintGroups {
		ok, err := holds(d.ParameterType, g, v)
		if err != nil {
			return ErrInvalidDeclaration.Wrap(err).With(slog.String("name", d.Name))
		}

		if ok {
			return nil
		}
	}

	return ErrConstraintViolation.With(
		slog.String("name", d.Name),
		slog.String("value", v),
		slog.String("constraints", describe(d.ConstraintGroups)),
	)
}

func holds(t value.Type, g document.ValueConstraintGroup, v string) (bool, error) {
	for _, c := range g.Constraints {
		if !c.Rule.Valid() {
			return false, ErrInvalidDeclaration.With(slog.String("rule", string(c.Rule)))
		}

		cmp, err := t.Compare(v, c.Value)
		if err != nil {
			return false, err
		}

		if !c.Rule.Holds(cmp) {
			return false, nil
		}
	}

	return true, nil
}

// describe renders groups as "(greaterThan 0 && lessOrEqual 60) || (...)".
func describe(groups []document.ValueConstraintGroup) string {
	parts := make([]string, len(groups))

	for i, g := range groups {
		cs := make([]string, len(g.Constraints))
		for j, c := range g.Constraints {
			cs[j] = string(c.Rule) + " " + c.Value
		}

		parts[i] = "(" + strings.Join(cs, " && ") + ")"
	}

	return strings.Join(parts, " || ")
}
