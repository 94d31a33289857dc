package document

import (
	"encoding/xml"
	"errors"
	"log/slog"
	"reflect"
	"strconv"

	"github.com/ardnew/scenic/value"
)

// SkipChildren may be returned by [Visitor.Enter] to skip the children of a
// node. Leave is still called for it.
var SkipChildren = errors.New("skip children")

// Visitor receives the nodes and fields of a document in document order.
//
// Enter and Leave receive a pointer to every struct node in the tree, so a
// visitor may modify the node in Enter and the walk descends into the
// modified children. Field receives every [value.Field]; a non-nil result
// replaces the field in place and must have the same dynamic type.
type Visitor interface {
	Enter(path string, node any) error
	Field(path string, f value.Field) (value.Field, error)
	Leave(path string, node any) error
}

// VisitorFuncs adapts optional functions to [Visitor].
type VisitorFuncs struct {
	EnterFunc func(path string, node any) error
	FieldFunc func(path string, f value.Field) (value.Field, error)
	LeaveFunc func(path string, node any) error
}

// Enter implements [Visitor].
func (v VisitorFuncs) Enter(path string, node any) error {
	if v.EnterFunc == nil {
		return nil
	}

	return v.EnterFunc(path, node)
}

// Field implements [Visitor].
func (v VisitorFuncs) Field(path string, f value.Field) (value.Field, error) {
	if v.FieldFunc == nil {
		return nil, nil
	}

	return v.FieldFunc(path, f)
}

// Leave implements [Visitor].
func (v VisitorFuncs) Leave(path string, node any) error {
	if v.LeaveFunc == nil {
		return nil
	}

	return v.LeaveFunc(path, node)
}

// Walk visits root, which must be a non-nil pointer, depth first. It stops
// at the first error returned by the visitor.
//
// Paths join Go field names with "." and slice indexes with "[i]". The
// alternative held by a [Choice] appears under its tag instead of the
// field name.
func Walk(root any, v Visitor) error {
	rv := reflect.ValueOf(root)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotAddressable.With(slog.String("type", rv.Type().String()))
	}

	return walk(rv.Elem(), "", v)
}

// chooser is implemented by every Choice instantiation.
type chooser interface {
	Tag() string
	IsZero() bool
	choice()
}

func (Choice[V, K]) choice() {}

var (
	chooserType = reflect.TypeFor[chooser]()
	xmlNameType = reflect.TypeFor[xml.Name]()
)

func walk(rv reflect.Value, path string, v Visitor) error {
	if rv.Type().Implements(value.FieldType) {
		return visitField(rv, path, v)
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}

		return walk(rv.Elem(), path, v)

	case reflect.Slice:
		for i := range rv.Len() {
			if err := walk(rv.Index(i), path+"["+strconv.Itoa(i)+"]", v); err != nil {
				return err
			}
		}

		return nil

	case reflect.Struct:
		if rv.Type().Implements(chooserType) {
			c := rv.Interface().(chooser)
			if c.IsZero() {
				return nil
			}

			return walk(rv.Field(0), join(parent(path), c.Tag()), v)
		}

		return walkStruct(rv, path, v)

	default:
		return nil
	}
}

func walkStruct(rv reflect.Value, path string, v Visitor) error {
	node := rv.Addr().Interface()

	err := v.Enter(path, node)
	switch {
	case errors.Is(err, SkipChildren):
	case err != nil:
		return err
	default:
		t := rv.Type()

		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() || f.Type == xmlNameType {
				continue
			}

			if err := walk(rv.Field(i), join(path, f.Name), v); err != nil {
				return err
			}
		}
	}

	return v.Leave(path, node)
}

func visitField(rv reflect.Value, path string, v Visitor) error {
	repl, err := v.Field(path, rv.Interface().(value.Field))
	if err != nil {
		return err
	}

	if repl == nil {
		return nil
	}

	nv := reflect.ValueOf(repl)
	if !rv.CanSet() || nv.Type() != rv.Type() {
		return ErrNotAddressable.With(
			slog.String("path", path),
			slog.String("type", rv.Type().String()),
		)
	}

	rv.Set(nv)

	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}

// parent drops the last field name of path. A Choice field's own name is
// replaced by the tag of its alternative.
func parent(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return path[:i]
		case ']':
			return path
		}
	}

	return ""
}
