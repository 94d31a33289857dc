package eval

import (
	"maps"
	"slices"
)

// Lookup resolves a parameter name to its current string value.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// Namer is implemented by lookups that can list the names they know. It is
// used to attach near-match suggestions to [ErrUnknownParameter].
type Namer interface {
	Names() []string
}

// MapLookup adapts a map to [Lookup].
type MapLookup map[string]string

// Lookup implements [Lookup].
func (m MapLookup) Lookup(name string) (string, bool) {
	v, ok := m[name]

	return v, ok
}

// Names implements [Namer].
func (m MapLookup) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// LookupFunc adapts a function to [Lookup].
type LookupFunc func(name string) (string, bool)

// Lookup implements [Lookup].
func (f LookupFunc) Lookup(name string) (string, bool) { return f(name) }

func namesOf(l Lookup) []string {
	if n, ok := l.(Namer); ok {
		return n.Names()
	}

	return nil
}
