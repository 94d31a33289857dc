package registry

import (
	"log/slog"

	"github.com/ardnew/scenic/pkg"
)

// Registry is an ordered set of names with metadata of type M.
type Registry[M any] struct {
	kind   string
	parent *Registry[M]
	order  []string
	meta   map[string]M
}

// New returns an empty root registry.
func New[M any]() *Registry[M] {
	return &Registry[M]{meta: make(map[string]M)}
}

// Named returns an empty root registry whose errors name kind, for example
// "entity".
func Named[M any](kind string) *Registry[M] {
	r := New[M]()
	r.kind = kind

	return r
}

// Kind returns the label the registry was created with.
func (r *Registry[M]) Kind() string { return r.kind }

// Child returns an empty registry nested in r.
func (r *Registry[M]) Child() *Registry[M] {
	c := New[M]()
	c.kind = r.kind
	c.parent = r

	return c
}

// Parent returns the registry r is nested in, or nil for a root.
func (r *Registry[M]) Parent() *Registry[M] { return r.parent }

// Add registers name with meta in r. A name already registered in r fails
// with [ErrDuplicateEntity]; a name registered only in an ancestor is
// shadowed.
func (r *Registry[M]) Add(name string, meta M) error {
	if _, ok := r.meta[name]; ok {
		err := ErrDuplicateEntity.With(slog.String("name", name))
		if r.kind != "" {
			err = err.With(slog.String("registry", r.kind))
		}

		return err
	}

	r.order = append(r.order, name)
	r.meta[name] = meta

	return nil
}

// Contains reports whether name is visible from r.
func (r *Registry[M]) Contains(name string) bool {
	_, ok := r.Get(name)

	return ok
}

// Get returns the metadata of the innermost registration of name.
func (r *Registry[M]) Get(name string) (M, bool) {
	for s := r; s != nil; s = s.parent {
		if m, ok := s.meta[name]; ok {
			return m, true
		}
	}

	var zero M

	return zero, false
}

// Names returns every visible name, outermost scope first, each once.
func (r *Registry[M]) Names() []string {
	var chain []*Registry[M]
	for s := r; s != nil; s = s.parent {
		chain = append(chain, s)
	}

	var out []string

	seen := make(map[string]struct{})

	for i := len(chain) - 1; i >= 0; i-- {
		for _, name := range chain[i].order {
			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	return out
}

// Own returns the names registered in r itself, in registration order.
func (r *Registry[M]) Own() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of names registered in r itself.
func (r *Registry[M]) Len() int { return len(r.order) }

// Suggest returns the visible names closest to name.
func (r *Registry[M]) Suggest(name string) []string {
	return pkg.Suggest(name, r.Names(), pkg.MaxSuggestions)
}
