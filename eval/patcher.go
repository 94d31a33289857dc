package eval

import (
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/expr-lang/expr/ast"

	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/pkg"
)

// constants are the named values that take precedence over parameters.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// calleeMarker records identifier nodes naming a called function so the
// substituter leaves them alone. It must run before [substituter] because
// [ast.Walk] visits children before their parents.
type calleeMarker struct {
	callee map[*ast.IdentifierNode]struct{}
}

// Visit implements ast.Visitor for calleeMarker.
func (m *calleeMarker) Visit(node *ast.Node) {
	call, ok := (*node).(*ast.CallNode)
	if !ok {
		return
	}

	if id, ok := call.Callee.(*ast.IdentifierNode); ok {
		m.callee[id] = struct{}{}
	}
}

// operators are the binary operators an expression may use.
var operators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"&&": true, "||": true, "and": true, "or": true,
}

// arithmetic maps each arithmetic operator to the function that replaces it.
var arithmetic = map[string]string{
	"+": fnAdd,
	"-": fnSubtract,
	"*": fnMultiply,
	"/": fnDivide,
	"%": fnModulo,
}

// substituter replaces every parameter identifier by a literal node holding
// its value and routes arithmetic through checked functions.
// Replacement nodes are never visited again, so a value containing operator
// or identifier text is always treated as data.
type substituter struct {
	lookup Lookup
	marker *calleeMarker
	logger log.Logger
	src    source
	err    error
}

// Visit implements ast.Visitor for substituter.
func (s *substituter) Visit(node *ast.Node) {
	if s.err != nil {
		return
	}

	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		if _, ok := s.marker.callee[n]; ok {
			return
		}

		s.substitute(node, n)

	case *ast.BinaryNode:
		if !operators[n.Operator] {
			s.err = s.syntax(n, "unsupported operator")

			return
		}

		if fn, ok := arithmetic[n.Operator]; ok {
			if !isNumeric(n.Left) || !isNumeric(n.Right) {
				s.err = s.syntax(n, "non-numeric operand")

				return
			}

			s.guard(node, n, fn)
		}
	}
}

func (s *substituter) syntax(n *ast.BinaryNode, msg string) error {
	return ErrSyntax.Wrap(errors.New(msg)).With(
		slog.String("operator", n.Operator),
		slog.String("expression", s.src.orig),
		slog.Int("position", s.src.offset(n.Location().From)),
	)
}

// isNumeric is false only for operands known to be strings or booleans.
// Other operands are checked when the expression runs.
func isNumeric(n ast.Node) bool {
	switch n.(type) {
	case *ast.StringNode, *ast.BoolNode:
		return false
	}

	return true
}

func (s *substituter) substitute(node *ast.Node, id *ast.IdentifierNode) {
	if c, ok := constants[id.Value]; ok {
		ast.Patch(node, &ast.FloatNode{Value: c})

		return
	}

	raw, ok := s.lookup.Lookup(id.Value)
	if !ok {
		s.err = ErrUnknownParameter.With(
			slog.String("name", id.Value),
			slog.String("expression", s.src.orig),
			slog.Int("position", s.src.offset(id.Location().From)),
			slog.Any("suggestions",
				pkg.Suggest(id.Value, namesOf(s.lookup), pkg.MaxSuggestions)),
		)

		return
	}

	lit := literalNode(raw)
	ast.Patch(node, lit)

	s.logger.Trace("substitute parameter",
		slog.String("name", id.Value),
		slog.String("value", raw))
}

// guard rewrites "a op b" to "fn(a, b)".
func (s *substituter) guard(node *ast.Node, bin *ast.BinaryNode, fn string) {
	ast.Patch(node, &ast.CallNode{
		Callee:    &ast.IdentifierNode{Value: fn},
		Arguments: []ast.Node{bin.Left, bin.Right},
	})
}

// literalNode converts a parameter value to the most specific literal node:
// integer, then finite float, then boolean, otherwise string.
func literalNode(raw string) ast.Node {
	if i, err := strconv.ParseInt(raw, 10, strconv.IntSize); err == nil {
		return &ast.IntegerNode{Value: int(i)}
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil &&
		!math.IsInf(f, 0) && !math.IsNaN(f) && isDecimal(raw) {
		return &ast.FloatNode{Value: f}
	}

	switch raw {
	case "true":
		return &ast.BoolNode{Value: true}
	case "false":
		return &ast.BoolNode{Value: false}
	}

	return &ast.StringNode{Value: raw}
}

// isDecimal rejects the hexadecimal and underscore forms ParseFloat accepts.
func isDecimal(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}

	return true
}
