package value

import (
	"reflect"

	"github.com/ardnew/scenic/eval"
)

// Field is the type-erased view of a [Value] used by code that walks whole
// documents without knowing each field's type parameter.
type Field interface {
	IsZero() bool
	IsParameter() bool
	String() string
	// Kind returns the type a literal of this field holds.
	Kind() reflect.Type
	// References returns the parameter names the field depends on.
	References() ([]string, error)
	// Literalize returns the field with any parameter reference resolved.
	// The dynamic type of the result is always the type of the receiver.
	Literalize(lookup eval.Lookup) (Field, error)
}

var _ Field = Value[string]{}

// Kind implements [Field].
func (v Value[T]) Kind() reflect.Type { return reflect.TypeFor[T]() }

// Literalize implements [Field]. Absent values and literals are returned
// unchanged.
func (v Value[T]) Literalize(lookup eval.Lookup) (Field, error) {
	if v.state != parameter {
		return v, nil
	}

	lit, err := v.Resolve(lookup)
	if err != nil {
		return v, err
	}

	return Literal(lit), nil
}

// FieldType is the reflect type of the [Field] interface.
var FieldType = reflect.TypeFor[Field]()
