package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/param"
	"github.com/ardnew/scenic/pkg"
)

// Eval evaluates a parameter expression.
type Eval struct {
	Params map[string]string `help:"Define a parameter (repeatable). Overrides a declaration of --source." mapsep:";" placeholder:"NAME=VALUE" short:"p"`
	Source string            `help:"Seed parameters from the declarations of this document."              short:"s"   type:"existingfile"`

	Expr string `arg:"" help:"Expression, for example '$Speed / 3.6'." name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	params := param.New(param.WithLogger(log.Default()))

	frame := params.Push()
	defer frame.Release()

	if err := e.seed(params); err != nil {
		return err
	}

	result, err := eval.Evaluate(e.Expr, params, eval.WithLogger(log.Default()))
	if err != nil {
		return pkg.WrapError(err).With(slog.String("expr", e.Expr))
	}

	_, err = fmt.Fprintln(outputFrom(ctx), result)

	return err
}

// seed defines the parameters the expression is evaluated against in the
// innermost scope of params.
func (e *Eval) seed(params *param.Context) error {
	if e.Source == "" {
		for name, v := range e.Params {
			if err := params.Define(name, v); err != nil {
				return err
			}
		}

		return nil
	}

	doc, err := document.ReadFile(e.Source)
	if err != nil {
		return err
	}

	if err := params.Declare(doc.Declarations(), e.Params); err != nil {
		return pkg.WrapError(err).With(slog.String("source", e.Source))
	}

	return nil
}
