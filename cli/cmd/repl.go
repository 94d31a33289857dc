package cmd

import (
	"context"

	"github.com/ardnew/scenic/cli/cmd/repl"
	"github.com/ardnew/scenic/log"
)

// Repl starts an interactive session on a scenario's parameters.
type Repl struct {
	Params map[string]string `help:"Override a declared parameter (repeatable)." mapsep:";" placeholder:"NAME=VALUE" short:"p"`

	File string `arg:"" help:"Scenario whose parameters are in scope." name:"file" type:"existingfile"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var cacheDir string
	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	logger := log.Default()

	logger.DebugContext(ctx, "starting repl")

	return repl.Run(ctx, r.File, r.Params, cacheDir, logger)
}
