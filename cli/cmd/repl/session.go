package repl

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/param"
)

// session holds the document a REPL evaluates against. Its parameter
// context has two scopes: the document's declarations, and above them the
// names defined with the set command.
type session struct {
	path      string
	overrides map[string]string
	logger    log.Logger

	doc    *document.File
	params *param.Context
	user   *param.Frame
}

// origin tells where a visible binding comes from.
type origin string

const (
	originDocument origin = "document"
	originSet      origin = "set"
)

// binding is a visible parameter with its origin and declared type.
type binding struct {
	param.Binding

	origin origin
	typ    string
}

// openSession reads the document at path and declares its parameters with
// overrides applied.
func openSession(path string, overrides map[string]string, logger log.Logger) (*session, error) {
	doc, err := document.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := &session{path: path, overrides: overrides, logger: logger}

	return s, s.load(doc)
}

// load replaces the session's document. Names defined with set survive.
// On failure the session is left unchanged.
func (s *session) load(doc *document.File) error {
	var kept []param.Binding
	if s.user != nil {
		kept = s.user.Bindings()
	}

	params := param.New(param.WithLogger(s.logger))
	params.Push()

	if err := params.Declare(doc.Declarations(), s.overrides); err != nil {
		return err
	}

	user := params.Push()

	for _, b := range kept {
		if err := params.Define(b.Name, b.Value); err != nil {
			return err
		}
	}

	s.doc, s.params, s.user = doc, params, user

	s.logger.Debug("repl session loaded",
		slog.String("path", s.path),
		slog.Int("parameters", len(doc.Declarations())),
		slog.Int("kept", len(kept)),
	)

	return nil
}

// reload reads the document from disk again.
func (s *session) reload() error {
	doc, err := document.ReadFile(s.path)
	if err != nil {
		return err
	}

	return s.load(doc)
}

// eval evaluates an expression against the visible parameters.
func (s *session) eval(expression string) (string, error) {
	return eval.Evaluate(expression, s.params, eval.WithLogger(s.logger))
}

// set evaluates expression and defines name with the result, shadowing a
// document parameter of the same name.
func (s *session) set(name, expression string) (string, error) {
	if !eval.IsIdentifier(name) {
		return "", ErrName.With(slog.String("name", name))
	}

	v, err := s.eval(expression)
	if err != nil {
		return "", err
	}

	return v, s.params.Define(name, v)
}

// reset drops every name defined with set.
func (s *session) reset() {
	s.user.Release()
	s.user = s.params.Push()
}

// names returns every visible parameter name.
func (s *session) names() []string { return s.params.Names() }

// bindings returns every visible parameter, document declarations first.
func (s *session) bindings() []binding {
	types := make(map[string]string)
	for _, d := range s.doc.Declarations() {
		types[d.Name] = d.ParameterType.String()
	}

	user := s.user.Bindings()

	var out []binding

	for _, b := range s.params.Bindings() {
		o := originDocument
		if slices.ContainsFunc(user, func(u param.Binding) bool { return u.Name == b.Name }) {
			o = originSet
		}

		out = append(out, binding{Binding: b, origin: o, typ: types[b.Name]})
	}

	return out
}

// parseSet splits the argument of the set command, "NAME = EXPR".
func parseSet(arg string) (name, expression string, err error) {
	name, expression, ok := strings.Cut(arg, "=")

	name = strings.TrimSpace(name)
	expression = strings.TrimSpace(expression)

	if !ok || name == "" || expression == "" {
		return "", "", ErrUsage.With(slog.String("command", "set NAME = EXPR"))
	}

	return name, expression, nil
}
