package value

//go:generate go tool stringer --linecomment --type Type --output type_string.go

import (
	"cmp"
	"log/slog"
	"strings"
	"time"
)

// Type is the declared type of a parameter.
type Type uint8

// Declared parameter types. The string form of each is its schema name.
const (
	TypeInvalid       Type = iota // invalid
	TypeDouble                    // double
	TypeInt                       // int
	TypeUnsignedInt               // unsignedInt
	TypeUnsignedShort             // unsignedShort
	TypeBoolean                   // boolean
	TypeString                    // string
	TypeDateTime                  // dateTime
)

// Types returns every valid [Type].
func Types() []Type {
	return []Type{
		TypeDouble, TypeInt, TypeUnsignedInt, TypeUnsignedShort,
		TypeBoolean, TypeString, TypeDateTime,
	}
}

// ParseType returns the [Type] named s. Matching ignores case.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}

	return TypeInvalid, ErrInvalidType.With(slog.String("type", s))
}

// Valid reports whether t names a declared parameter type.
func (t Type) Valid() bool { return t > TypeInvalid && t <= TypeDateTime }

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, ErrInvalidType.With(slog.Int("type", int(t)))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// Check reports whether raw is in the lexical space of t.
func (t Type) Check(raw string) error {
	_, err := t.key(raw)

	return err
}

// Compare orders two values of type t. Numbers and date-times compare by
// value, booleans with false before true, strings lexically.
func (t Type) Compare(a, b string) (int, error) {
	x, err := t.key(a)
	if err != nil {
		return 0, err
	}

	y, err := t.key(b)
	if err != nil {
		return 0, err
	}

	switch x := x.(type) {
	case float64:
		return cmp.Compare(x, y.(float64)), nil
	case int64:
		return cmp.Compare(x, y.(int64)), nil
	case uint64:
		return cmp.Compare(x, y.(uint64)), nil
	case bool:
		return cmpBool(x, y.(bool)), nil
	case time.Time:
		return x.Compare(y.(time.Time)), nil
	default:
		return strings.Compare(x.(string), y.(string)), nil
	}
}

// key parses raw into a comparable representation for t.
func (t Type) key(raw string) (any, error) {
	var (
		out any
		err error
	)

	switch t {
	case TypeDouble:
		out, err = ParseLiteral[float64](raw)
	case TypeInt:
		var i int
		i, err = ParseLiteral[int](raw)
		out = int64(i)
	case TypeUnsignedInt:
		var u uint32
		u, err = ParseLiteral[uint32](raw)
		out = uint64(u)
	case TypeUnsignedShort:
		var u uint16
		u, err = ParseLiteral[uint16](raw)
		out = uint64(u)
	case TypeBoolean:
		out, err = ParseLiteral[bool](raw)
	case TypeString:
		out = raw
	case TypeDateTime:
		out, err = ParseLiteral[time.Time](raw)
	default:
		return nil, ErrInvalidType.With(slog.Int("type", int(t)))
	}

	if err != nil {
		return nil, ErrTypeConversion.Wrap(err).With(
			slog.String("raw", raw),
			slog.String("target", t.String()),
		)
	}

	return out, nil
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
