package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/validate"
)

// Validate checks a scenario without resolving it.
type Validate struct {
	FailFast bool `help:"Stop at the first issue." short:"x"`

	File string `arg:"" help:"Scenario document (.xosc, .xml, .yaml or .yml)." type:"existingfile"`
}

// Run executes the validate command. It fails with [ErrInvalid] when the
// document has issues, after printing them.
func (v *Validate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	return check(ctx, outputFrom(ctx), v.File, v.options(ctx)...)
}

func (v *Validate) options(ctx context.Context) []validate.Option {
	opts := []validate.Option{validate.WithLogger(log.Default())}

	if v.FailFast {
		opts = append(opts, validate.FailFast())
	}

	// Catalogs on the search path serve every category.
	if len(searchPathFrom(ctx)) > 0 {
		opts = append(opts, validate.WithCategories(document.Categories()...))
	}

	return opts
}

// check validates the document at path and prints the report to w.
func check(ctx context.Context, w io.Writer, path string, opts ...validate.Option) error {
	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	rep := validate.Document(ctx, doc, opts...)

	if err := printReport(w, path, rep); err != nil {
		return err
	}

	if !rep.OK() {
		return ErrInvalid.With(
			slog.String("file", path),
			slog.Int("issues", len(rep.Issues)),
		)
	}

	return nil
}
