package value

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/ardnew/scenic/eval"
)

// Scalar is the set of types a [Value] may hold. Named string types are
// enumerations; when they implement [Enum], parsed literals must be valid.
type Scalar interface {
	~bool | ~int | ~uint16 | ~uint32 | ~float64 | ~string | time.Time
}

// Enum is implemented by enumerated string types to reject unknown literals.
type Enum interface {
	Valid() bool
}

// DateTimeLayout is the lexical form of dateTime values.
const DateTimeLayout = time.RFC3339Nano

var errNotInEnum = errors.New("not a member of the enumeration")

// ParseLiteral parses raw in the lexical space of T. Surrounding whitespace
// is ignored for every type except strings.
func ParseLiteral[T Scalar](raw string) (T, error) {
	var v T

	if _, ok := any(v).(time.Time); ok {
		t, err := time.Parse(DateTimeLayout, strings.TrimSpace(raw))
		if err != nil {
			return v, err
		}

		return any(t).(T), nil
	}

	rv := reflect.ValueOf(&v).Elem()

	switch rv.Kind() {
	case reflect.Bool:
		switch strings.TrimSpace(raw) {
		case "true", "1":
			rv.SetBool(true)
		case "false", "0":
			rv.SetBool(false)
		default:
			return v, strconv.ErrSyntax
		}

	case reflect.Int:
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return v, unwrapNum(err)
		}

		rv.SetInt(i)

	case reflect.Uint16, reflect.Uint32:
		u, err := strconv.ParseUint(strings.TrimSpace(raw), 10, rv.Type().Bits())
		if err != nil {
			return v, unwrapNum(err)
		}

		rv.SetUint(u)

	case reflect.Float64:
		f, err := parseDouble(strings.TrimSpace(raw))
		if err != nil {
			return v, err
		}

		rv.SetFloat(f)

	case reflect.String:
		rv.SetString(raw)

		if e, ok := any(v).(Enum); ok && !e.Valid() {
			return v, errNotInEnum
		}
	}

	return v, nil
}

// FormatLiteral renders v in the lexical space of T.
func FormatLiteral[T Scalar](v T) string {
	if t, ok := any(v).(time.Time); ok {
		return t.Format(DateTimeLayout)
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint16, reflect.Uint32:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float64:
		return formatDouble(rv.Float())
	default:
		return rv.String()
	}
}

// parseDouble accepts the decimal forms of ParseFloat plus INF, -INF and NaN.
func parseDouble(s string) (float64, error) {
	switch s {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, unwrapNum(err)
	}

	return f, nil
}

func formatDouble(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	}

	s, _ := eval.Format(f)

	return s
}

func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}

	return err
}

// typeName names T for diagnostics.
func typeName[T Scalar]() string {
	return reflect.TypeFor[T]().String()
}
