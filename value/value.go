package value

import (
	"log/slog"
	"strings"
	"time"

	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/pkg"
)

type state uint8

const (
	absent state = iota
	literal
	parameter
)

// Value is either a literal of type T or a reference to a parameter whose
// value is converted to T on resolution. The zero Value is absent.
//
// Values are immutable; resolution never modifies the receiver.
type Value[T Scalar] struct {
	lit   T
	ref   string
	state state
}

// Literal returns a Value holding v.
func Literal[T Scalar](v T) Value[T] {
	return Value[T]{lit: v, state: literal}
}

// Parameter returns a Value referring to the parameter or expression ref.
// ref must be bare, without "$" or "${...}" delimiters.
func Parameter[T Scalar](ref string) Value[T] {
	return Value[T]{ref: strings.TrimSpace(ref), state: parameter}
}

// IsZero reports whether v is absent.
func (v Value[T]) IsZero() bool { return v.state == absent }

// IsParameter reports whether v is a parameter reference.
func (v Value[T]) IsParameter() bool { return v.state == parameter }

// AsLiteral returns the literal held by v. It reports false for absent
// values and parameter references, which are not resolved.
func (v Value[T]) AsLiteral() (T, bool) {
	return v.lit, v.state == literal
}

// Ref returns the bare parameter name or expression held by v.
func (v Value[T]) Ref() (string, bool) {
	return v.ref, v.state == parameter
}

// Or returns v, or def when v is absent.
func (v Value[T]) Or(def T) Value[T] {
	if v.state == absent {
		return Literal(def)
	}

	return v
}

// Equal reports whether v and w hold the same variant and content.
func (v Value[T]) Equal(w Value[T]) bool {
	if v.state != w.state {
		return false
	}

	switch v.state {
	case literal:
		if a, ok := any(v.lit).(time.Time); ok {
			return a.Equal(any(w.lit).(time.Time))
		}

		return v.lit == w.lit

	case parameter:
		return v.ref == w.ref

	default:
		return true
	}
}

// Resolve returns the literal held by v or, for a parameter reference, the
// referenced value converted to T.
//
// A reference that is a bare name is looked up directly; any other reference
// is evaluated with [eval.Evaluate]. Resolve fails with [ErrUnknownParameter]
// when a name is not found, [ErrTypeConversion] when the value is not in T's
// lexical space and [ErrAbsent] when v is absent.
func (v Value[T]) Resolve(lookup eval.Lookup) (T, error) {
	var zero T

	switch v.state {
	case literal:
		return v.lit, nil

	case absent:
		return zero, ErrAbsent.With(slog.String("target", typeName[T]()))
	}

	raw, err := Lookup(v.ref, lookup)
	if err != nil {
		return zero, err
	}

	out, err := ParseLiteral[T](raw)
	if err != nil {
		return zero, ErrTypeConversion.Wrap(err).With(
			slog.String("name", v.ref),
			slog.String("raw", raw),
			slog.String("target", typeName[T]()),
		)
	}

	return out, nil
}

// Lookup resolves a bare reference string to the text it denotes: the value
// of a named parameter or the result of an expression.
func Lookup(ref string, lookup eval.Lookup) (string, error) {
	if lookup == nil {
		lookup = eval.MapLookup(nil)
	}

	if eval.IsExpression(ref) {
		return eval.Evaluate(ref, lookup)
	}

	name := strings.TrimSpace(ref)

	raw, ok := lookup.Lookup(name)
	if !ok {
		var names []string
		if n, ok := lookup.(eval.Namer); ok {
			names = n.Names()
		}

		return "", ErrUnknownParameter.With(
			slog.String("name", name),
			slog.Any("suggestions", pkg.Suggest(name, names, pkg.MaxSuggestions)),
		)
	}

	return raw, nil
}

// References returns the parameter names v depends on.
func (v Value[T]) References() ([]string, error) {
	if v.state != parameter {
		return nil, nil
	}

	if !eval.IsExpression(v.ref) {
		return []string{v.ref}, nil
	}

	return eval.References(v.ref)
}

// LogValue implements slog.LogValuer.
func (v Value[T]) LogValue() slog.Value {
	switch v.state {
	case literal:
		return slog.StringValue(FormatLiteral(v.lit))
	case parameter:
		return slog.GroupValue(slog.String("parameter", v.ref))
	default:
		return slog.StringValue("<absent>")
	}
}
