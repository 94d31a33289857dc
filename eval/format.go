package eval

import (
	"log/slog"
	"math"
	"reflect"
	"strconv"
)

// Format renders an evaluation result in canonical form.
//
// Booleans become "true" or "false". Integers use base 10. Floats use the
// shortest decimal that parses back to the same float64, never an exponent,
// and no fractional part when the value is integral (2.0 becomes "2", -0.0
// becomes "0"). Strings are returned unchanged. NaN and infinities fail with
// [ErrNotFinite].
func Format(v any) (string, error) {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x), nil

	case string:
		return x, nil

	case float32:
		return formatFloat(float64(x))

	case float64:
		return formatFloat(x)
	}

	if f, ok := toFloat(v); ok {
		switch x := v.(type) {
		case int:
			return strconv.Itoa(x), nil
		case int64:
			return strconv.FormatInt(x, 10), nil
		case uint64:
			return strconv.FormatUint(x, 10), nil
		default:
			return strconv.FormatFloat(f, 'f', -1, 64), nil
		}
	}

	return "", ErrResultType.With(slog.String("type", typeName(v)))
}

func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrNotFinite.With(slog.Float64("value", f))
	}

	if f == 0 {
		return "0", nil
	}

	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return reflect.TypeOf(v).String()
}
