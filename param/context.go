package param

import (
	"fmt"
	"log/slog"

	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/pkg"
)

// Binding is a parameter name and its current value.
type Binding struct {
	Name  string
	Value string
}

// LogValue implements slog.LogValuer.
func (b Binding) LogValue() slog.Value {
	return slog.GroupValue(slog.String("name", b.Name), slog.String("value", b.Value))
}

// Context is an ordered stack of parameter scopes. It implements
// [eval.Lookup] and [eval.Namer] so values and expressions resolve against
// it directly.
//
// A Context is not safe for concurrent use.
type Context struct {
	scopes []*scope
	logger log.Logger
}

type scope struct {
	order  []string
	values map[string]string
	frame  *Frame
}

var (
	_ eval.Lookup = (*Context)(nil)
	_ eval.Namer  = (*Context)(nil)
)

// Option configures a [Context].
type Option func(*Context)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *Context) { c.logger = logger }
}

// New returns a Context with no scopes.
func New(opts ...Option) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Frame is the guard of one scope returned by [Context.Push].
type Frame struct {
	ctx      *Context
	depth    int
	released bool
}

// Push opens a new innermost scope.
func (c *Context) Push() *Frame {
	f := &Frame{ctx: c, depth: len(c.scopes) + 1}
	c.scopes = append(c.scopes, &scope{values: make(map[string]string), frame: f})

	c.logger.Trace("push scope", slog.Int("depth", f.depth))

	return f
}

// Release closes the frame's scope. Releasing a frame twice does nothing.
// Releasing a frame that is not the innermost open scope is a programming
// error and panics.
func (f *Frame) Release() {
	if f == nil || f.released {
		return
	}

	c := f.ctx
	if len(c.scopes) != f.depth || c.scopes[f.depth-1].frame != f {
		panic(fmt.Sprintf(
			"param: release of scope at depth %d while depth is %d",
			f.depth, len(c.scopes),
		))
	}

	c.scopes[f.depth-1] = nil
	c.scopes = c.scopes[:f.depth-1]
	f.released = true

	c.logger.Trace("release scope", slog.Int("depth", f.depth))
}

// Depth returns the depth of the frame's scope, outermost being 1.
func (f *Frame) Depth() int { return f.depth }

// Bindings returns the definitions made in the frame's own scope, in
// definition order. It returns nil once the frame is released.
func (f *Frame) Bindings() []Binding {
	if f.released {
		return nil
	}

	return f.ctx.scopes[f.depth-1].bindings()
}

// Scoped runs fn in a new scope and closes the scope when fn returns or
// panics.
func (c *Context) Scoped(fn func() error) error {
	f := c.Push()
	defer f.Release()

	return fn()
}

// Depth returns the number of open scopes.
func (c *Context) Depth() int { return len(c.scopes) }

// Define binds name to value in the innermost scope, replacing an earlier
// definition of name in that scope and shadowing any in outer scopes.
func (c *Context) Define(name, value string) error {
	if len(c.scopes) == 0 {
		return ErrNoScope.With(slog.String("name", name))
	}

	s := c.scopes[len(c.scopes)-1]
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}

	s.values[name] = value

	c.logger.Trace("define parameter",
		slog.String("name", name),
		slog.String("value", value),
		slog.Int("depth", len(c.scopes)),
	)

	return nil
}

// Lookup returns the value of the innermost definition of name.
func (c *Context) Lookup(name string) (string, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i].values[name]; ok {
			return v, true
		}
	}

	return "", false
}

// Names returns every visible name, outermost definitions first.
func (c *Context) Names() []string {
	bs := c.Bindings()
	out := make([]string, len(bs))

	for i, b := range bs {
		out[i] = b.Name
	}

	return out
}

// Bindings returns every visible name with its effective value. A name keeps
// the position of its outermost definition and the value of its innermost.
func (c *Context) Bindings() []Binding {
	var out []Binding

	index := make(map[string]int)

	for _, s := range c.scopes {
		for _, b := range s.bindings() {
			if i, ok := index[b.Name]; ok {
				out[i].Value = b.Value

				continue
			}

			index[b.Name] = len(out)
			out = append(out, b)
		}
	}

	return out
}

// Suggest returns the visible names closest to name.
func (c *Context) Suggest(name string) []string {
	return pkg.Suggest(name, c.Names(), pkg.MaxSuggestions)
}

// Map returns the effective bindings as a map.
func (c *Context) Map() eval.MapLookup {
	out := make(eval.MapLookup)
	for _, b := range c.Bindings() {
		out[b.Name] = b.Value
	}

	return out
}

func (s *scope) bindings() []Binding {
	out := make([]Binding, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Binding{Name: name, Value: s.values[name]})
	}

	return out
}
