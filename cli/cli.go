package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scenic/cli/cmd"
	"github.com/ardnew/scenic/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config.yaml"

// CLI is the top-level command-line interface for scenic.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	CatalogPath []string         `help:"Directory searched for catalogs of every category (repeatable). Entries of ${catalogPathEnv} follow." name:"catalog-path" placeholder:"DIR" short:"C" type:"path"`
	Version     kong.VersionFlag `help:"Print version and exit."`

	Resolve  cmd.Resolve  `cmd:"" help:"Resolve a scenario into a literal-only document."`
	Validate cmd.Validate `cmd:"" help:"Check a scenario without resolving it."`
	Eval     cmd.Eval     `cmd:"" help:"Evaluate a parameter expression."`
	Catalog  cmd.Catalog  `cmd:"" help:"Inspect catalog files."`
	Fmt      cmd.Fmt      `cmd:"" help:"Reformat a document or convert it between XML and YAML."`
	Watch    cmd.Watch    `cmd:"" help:"Validate a scenario again whenever it changes."`
	Repl     cmd.Repl     `cmd:"" help:"Evaluate expressions interactively against a scenario's parameters."`
	Init     cmd.Init     `cmd:"" help:"Write the configuration file from the current flag values."`
}

// Run executes the scenic CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(ctx context.Context, exit func(code int), args ...string) error {
	return run(ctx, os.Stdout, exit, pkg.ConfigPath(baseConfig), args...)
}

func run(
	ctx context.Context,
	out io.Writer,
	exit func(code int),
	configPath string,
	args ...string,
) error {
	var cli CLI

	if err := pkg.MkdirAll(); err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.ConfigIdentifier: configPath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"catalogPathEnv":     pkg.CatalogPathEnv,
		"version":            pkg.Name + " " + pkg.Version(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logging flags take effect before kong reports anything.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(out, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(load, configPath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOutput(ctx, out)
	ctx = cmd.WithSearchPath(ctx, pkg.SearchPath(cli.CatalogPath...))

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
