package value

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml/ast"

	"github.com/ardnew/scenic/eval"
)

// Parse decodes the wire form of a Value.
//
//	$Name   parameter Name
//	${expr} parameter expression expr
//	$$text  literal "$text"
//	text    literal in T's lexical space
//
// The empty string is never decoded as absent. It is a valid literal only for
// string types and a conversion failure for every other type.
func Parse[T Scalar](raw string) (Value[T], error) {
	switch {
	case strings.HasPrefix(raw, "$$"):
		return parseLiteral[T](raw[1:])

	case strings.HasPrefix(raw, "${"):
		end := strings.IndexByte(raw, '}')
		inner := ""

		if end == len(raw)-1 {
			inner = strings.TrimSpace(raw[2:end])
		}

		if inner == "" {
			return Value[T]{}, ErrMalformedReference.With(slog.String("raw", raw))
		}

		return Parameter[T](inner), nil

	case strings.HasPrefix(raw, "$"):
		name := raw[1:]
		if !eval.IsIdentifier(name) {
			return Value[T]{}, ErrMalformedReference.With(slog.String("raw", raw))
		}

		return Parameter[T](name), nil
	}

	return parseLiteral[T](raw)
}

func parseLiteral[T Scalar](raw string) (Value[T], error) {
	if raw == "" && reflect.TypeFor[T]().Kind() != reflect.String {
		return Value[T]{}, ErrTypeConversion.With(
			slog.String("raw", raw),
			slog.String("target", typeName[T]()),
		)
	}

	v, err := ParseLiteral[T](raw)
	if err != nil {
		return Value[T]{}, ErrTypeConversion.Wrap(err).With(
			slog.String("raw", raw),
			slog.String("target", typeName[T]()),
		)
	}

	return Literal(v), nil
}

// String returns the wire form of v, or "" when v is absent.
func (v Value[T]) String() string {
	switch v.state {
	case literal:
		s := FormatLiteral(v.lit)
		if strings.HasPrefix(s, "$") {
			return "$" + s
		}

		return s

	case parameter:
		if eval.IsIdentifier(v.ref) {
			return "$" + v.ref
		}

		return "${" + v.ref + "}"

	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Value[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value[T]) UnmarshalText(text []byte) error {
	out, err := Parse[T](string(text))
	if err != nil {
		return err
	}

	*v = out

	return nil
}

// MarshalXMLAttr implements xml.MarshalerAttr. Absent values produce no
// attribute.
func (v Value[T]) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if v.state == absent {
		return xml.Attr{}, nil
	}

	return xml.Attr{Name: name, Value: v.String()}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (v *Value[T]) UnmarshalXMLAttr(attr xml.Attr) error {
	out, err := Parse[T](attr.Value)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", attr.Name.Local, err)
	}

	*v = out

	return nil
}

// MarshalYAML encodes literals as native YAML scalars and references as
// strings in wire form.
func (v Value[T]) MarshalYAML() (any, error) {
	switch v.state {
	case absent:
		return nil, nil

	case parameter:
		return v.String(), nil
	}

	if t, ok := any(v.lit).(time.Time); ok {
		return t.Format(DateTimeLayout), nil
	}

	rv := reflect.ValueOf(v.lit)

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int:
		return rv.Int(), nil
	case reflect.Uint16, reflect.Uint32:
		return rv.Uint(), nil
	case reflect.Float64:
		if f := rv.Float(); !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f, nil
		}

		return v.String(), nil
	default:
		return v.String(), nil
	}
}

// UnmarshalYAML decodes a scalar YAML node. A null node is absent.
func (v *Value[T]) UnmarshalYAML(node ast.Node) error {
	var raw string

	switch n := node.(type) {
	case *ast.NullNode:
		*v = Value[T]{}

		return nil

	case *ast.StringNode:
		raw = n.Value

	case *ast.LiteralNode:
		raw = n.Value.Value

	case ast.ScalarNode:
		raw = scalarText(n.GetValue())

	default:
		return ErrTypeConversion.With(
			slog.String("node", node.Type().String()),
			slog.String("target", typeName[T]()),
		)
	}

	out, err := Parse[T](raw)
	if err != nil {
		return err
	}

	*v = out

	return nil
}

func scalarText(x any) string {
	switch s := x.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return formatDouble(s)
	default:
		return fmt.Sprint(x)
	}
}
