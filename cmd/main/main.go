package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/maxbolgarin/addheader/internal/app"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	configPath = kingpin.Flag("config", "path to config file").Short('c').String()
	root       = kingpin.Flag("root", "repository root to process").Short('r').String()
	base       = kingpin.Flag("base", "base revision marker").String()
	head       = kingpin.Flag("head", "head revision marker").String()
	dryRun     = kingpin.Flag("dry-run", "report edits without writing files").Bool()
	verbose    = kingpin.Flag("verbose", "enable per-file debug logs").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()

	err = run(ctx)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context) error {
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}
	applyFlags(&cfg)

	logze.Init(logze.C().WithConsole().WithLevel(
		lang.If(cfg.Engine.Verbose, logze.LevelDebug, logze.LevelInfo)))

	addheader, err := app.New(ctx, cfg)
	if err != nil {
		return erro.Wrap(err, "new app")
	}

	if err := addheader.Run(ctx); err != nil {
		return erro.Wrap(err, "run")
	}

	return nil
}

// applyFlags lets command line flags override file and environment values.
func applyFlags(cfg *app.Config) {
	if *root != "" {
		cfg.Root = *root
	}
	if *base != "" {
		cfg.Base = *base
	}
	if *head != "" {
		cfg.Head = *head
	}
	if *dryRun {
		cfg.Engine.DryRun = true
	}
	if *verbose {
		cfg.Engine.Verbose = true
	}
}
