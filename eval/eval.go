package eval

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/parser"

	"github.com/ardnew/scenic/log"
)

// Option configures a single evaluation.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Evaluate evaluates expression, substituting each parameter from lookup
// exactly once, and returns the result in the canonical form of [Format].
//
// It fails with [ErrUnknownParameter] for a name lookup cannot resolve,
// [ErrDivisionByZero] for a zero divisor of "/" or "%", and [ErrSyntax]
// (with a "position" attribute holding the byte offset into expression) when
// the text cannot be parsed or type checked, uses an operator or function
// outside the expression language, or applies arithmetic to a string or
// boolean literal. Integer "+", "-" and "*" whose result does not fit in an
// int yield a float instead of wrapping. Evaluate never modifies lookup.
func Evaluate(expression string, lookup Lookup, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if lookup == nil {
		lookup = MapLookup(nil)
	}

	src, err := normalize(expression)
	if err != nil {
		return "", err
	}

	var fault error

	marker := &calleeMarker{callee: make(map[*ast.IdentifierNode]struct{})}
	subst := &substituter{
		lookup: lookup,
		marker: marker,
		logger: o.logger,
		src:    src,
	}

	compileOpts := append(functions(&fault),
		expr.Patch(marker),
		expr.Patch(subst),
	)

	program, err := expr.Compile(src.text, compileOpts...)

	// A missing parameter also surfaces as a type error on the untouched
	// identifier, so report the substitution failure first.
	if subst.err != nil {
		return "", subst.err
	}

	if err != nil {
		return "", syntaxError(src, err)
	}

	result, err := expr.Run(program, nil)
	if fault != nil {
		return "", fault
	}

	if err != nil {
		return "", syntaxError(src, err)
	}

	out, err := Format(result)
	if err != nil {
		return "", err
	}

	o.logger.Trace("evaluate",
		slog.String("expression", expression),
		slog.String("result", out))

	return out, nil
}

// References returns the distinct parameter names expression refers to, in
// order of first appearance. Function names and constants are excluded.
func References(expression string) ([]string, error) {
	src, err := normalize(expression)
	if err != nil {
		return nil, err
	}

	tree, err := parser.Parse(src.text)
	if err != nil {
		return nil, syntaxError(src, err)
	}

	c := &collector{callee: make(map[*ast.IdentifierNode]struct{})}
	ast.Walk(&tree.Node, c)

	var names []string

	for _, id := range c.idents {
		if _, ok := c.callee[id]; ok {
			continue
		}

		if _, ok := constants[id.Value]; ok {
			continue
		}

		if !slices.Contains(names, id.Value) {
			names = append(names, id.Value)
		}
	}

	return names, nil
}

// collector gathers identifiers in source order together with the set of
// identifiers that name a called function.
type collector struct {
	idents []*ast.IdentifierNode
	callee map[*ast.IdentifierNode]struct{}
}

// Visit implements ast.Visitor for collector.
func (c *collector) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		c.idents = append(c.idents, n)

	case *ast.CallNode:
		if id, ok := n.Callee.(*ast.IdentifierNode); ok {
			c.callee[id] = struct{}{}
		}
	}
}

func syntaxError(src source, err error) error {
	position := len(src.orig)

	var fe *file.Error
	if errors.As(err, &fe) {
		position = src.offset(fe.From)
		err = errors.New(fe.Message)
	}

	return ErrSyntax.Wrap(err).With(
		slog.String("expression", src.orig),
		slog.Int("position", position),
	)
}
