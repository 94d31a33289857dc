package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/resolve"
)

// Resolve writes the literal-only form of a scenario.
type Resolve struct {
	Params map[string]string `help:"Override a parameter of the scenario (repeatable)." mapsep:";" placeholder:"NAME=VALUE" short:"p"`
	Format formatFlag        `help:"Output format (default: the input's)."                enum:",xml,yaml" default:""`

	File string `arg:"" help:"Scenario document (.xosc, .xml, .yaml or .yml)." type:"existingfile"`
}

// Run executes the resolve command.
func (r *Resolve) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	format, err := r.Format.of(r.File)
	if err != nil {
		return err
	}

	res, err := resolve.New(nil,
		resolve.WithLogger(log.Default()),
		resolve.WithOverrides(r.Params),
		resolve.WithSearchPath(searchPathFrom(ctx)...),
	).File(ctx, r.File)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "resolved document",
		slog.String("file", r.File),
		slog.Any("result", res),
	)

	return writeDocument(outputFrom(ctx), format, res.Document)
}
