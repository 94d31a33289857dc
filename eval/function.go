package eval

import (
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
)

// Names of the functions that replace the arithmetic operators.
const (
	fnAdd      = "add"
	fnSubtract = "sub"
	fnMultiply = "mul"
	fnDivide   = "div"
	fnModulo   = "mod"
)

// builtins are the expr-lang builtin functions an expression may call.
var builtins = []string{"abs", "ceil", "floor", "max", "min", "round"}

// functions returns the expression functions for one evaluation. Errors are
// also stored in *fault so they survive however the VM wraps them.
func functions(fault *error) []expr.Option {
	fail := func(err error) (any, error) {
		if *fault == nil {
			*fault = err
		}

		return nil, err
	}

	unary := func(name string, fn func(float64) float64) expr.Option {
		return expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return fail(ErrSyntax.With(
					slog.String("function", name),
					slog.Int("arguments", len(params)),
				))
			}

			x, ok := toFloat(params[0])
			if !ok {
				return fail(ErrResultType.With(
					slog.String("function", name),
					slog.Any("argument", params[0]),
				))
			}

			return fn(x), nil
		})
	}

	binary := func(name string, fn func(a, b any) (any, error)) expr.Option {
		return expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 2 {
				return fail(ErrSyntax.With(
					slog.String("function", name),
					slog.Int("arguments", len(params)),
				))
			}

			v, err := fn(params[0], params[1])
			if err != nil {
				return fail(err)
			}

			return v, nil
		})
	}

	opts := []expr.Option{
		expr.DisableAllBuiltins(),
		unary("sqrt", math.Sqrt),
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("tan", math.Tan),
		binary(fnAdd, add),
		binary(fnSubtract, subtract),
		binary(fnMultiply, multiply),
		binary(fnDivide, divide),
		binary(fnModulo, modulo),
	}

	for _, name := range builtins {
		opts = append(opts, expr.EnableBuiltin(name))
	}

	return opts
}

// add, subtract and multiply keep int operands integral and switch to
// float64 when the exact result does not fit in an int.
func add(a, b any) (any, error) {
	return arith("+", a, b,
		func(x, y int) (int, bool) {
			z := x + y

			return z, (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z >= 0)
		},
		func(x, y float64) float64 { return x + y },
	)
}

func subtract(a, b any) (any, error) {
	return arith("-", a, b,
		func(x, y int) (int, bool) {
			z := x - y

			return z, (x >= 0 && y < 0 && z < 0) || (x < 0 && y > 0 && z >= 0)
		},
		func(x, y float64) float64 { return x - y },
	)
}

func multiply(a, b any) (any, error) {
	return arith("*", a, b,
		func(x, y int) (int, bool) {
			if x == 0 || y == 0 {
				return 0, false
			}

			z := x * y

			return z, z/y != x ||
				(x == -1 && y == math.MinInt) || (y == -1 && x == math.MinInt)
		},
		func(x, y float64) float64 { return x * y },
	)
}

func arith(
	op string,
	a, b any,
	ints func(x, y int) (int, bool),
	floats func(x, y float64) float64,
) (any, error) {
	if x, ok := a.(int); ok {
		if y, ok := b.(int); ok {
			if z, overflow := ints(x, y); !overflow {
				return z, nil
			}
		}
	}

	x, okx := toFloat(a)
	y, oky := toFloat(b)

	if !okx || !oky {
		return nil, ErrResultType.With(
			slog.String("operator", op),
			slog.Any("left", a),
			slog.Any("right", b),
		)
	}

	return floats(x, y), nil
}

// divide always yields a float, matching the "/" operator.
func divide(a, b any) (any, error) {
	x, okx := toFloat(a)
	y, oky := toFloat(b)

	if !okx || !oky {
		return nil, ErrResultType.With(
			slog.String("operator", "/"),
			slog.Any("left", a),
			slog.Any("right", b),
		)
	}

	if y == 0 {
		return nil, ErrDivisionByZero.With(slog.String("operator", "/"))
	}

	return x / y, nil
}

// modulo keeps integer operands integral and falls back to [math.Mod].
func modulo(a, b any) (any, error) {
	if x, ok := a.(int); ok {
		if y, ok := b.(int); ok {
			if y == 0 {
				return nil, ErrDivisionByZero.With(slog.String("operator", "%"))
			}

			return x % y, nil
		}
	}

	x, okx := toFloat(a)
	y, oky := toFloat(b)

	if !okx || !oky {
		return nil, ErrResultType.With(
			slog.String("operator", "%"),
			slog.Any("left", a),
			slog.Any("right", b),
		)
	}

	if y == 0 {
		return nil, ErrDivisionByZero.With(slog.String("operator", "%"))
	}

	return math.Mod(x, y), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Signature describes a function callable from an expression.
type Signature struct {
	Name   string
	Params []string
}

// String returns the signature in call form, for example "sqrt(x)".
func (s Signature) String() string {
	return s.Name + "(" + strings.Join(s.Params, ", ") + ")"
}

// Functions returns the functions an expression may call, sorted by name.
// The operator helpers are not included.
func Functions() []Signature {
	return []Signature{
		{"abs", []string{"x"}},
		{"ceil", []string{"x"}},
		{"cos", []string{"x"}},
		{"floor", []string{"x"}},
		{"max", []string{"x", "...y"}},
		{"min", []string{"x", "...y"}},
		{"round", []string{"x"}},
		{"sin", []string{"x"}},
		{"sqrt", []string{"x"}},
		{"tan", []string{"x"}},
	}
}

// Constants returns the names of the predefined constants, sorted.
func Constants() []string {
	return slices.Sorted(maps.Keys(constants))
}
