package app

import (
	"context"

	"github.com/maxbolgarin/addheader/internal/engine"
	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/addheader/internal/model/interfaces"
	"github.com/maxbolgarin/addheader/internal/provider"
	"github.com/maxbolgarin/addheader/internal/rewriter"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

// App wires the change source, the optional rewriter and the engine.
type App struct {
	engine *engine.Engine

	cfg Config
	log logze.Logger
}

func New(ctx contem.Context, cfg Config) (*App, error) {
	source, err := provider.New(cfg.Provider)
	if err != nil {
		return nil, errm.Wrap(err, "failed to create change source")
	}

	// The rewrite collaborator requires both the enable flag and a
	// credential, anything less means deterministic-only processing.
	var rw interfaces.Rewriter
	if cfg.Rewriter.Enabled && cfg.Rewriter.APIKey != "" {
		r, err := rewriter.New(ctx, cfg.Rewriter)
		if err != nil {
			return nil, errm.Wrap(err, "failed to create rewriter")
		}
		rw = r
	}

	return &App{
		engine: engine.New(cfg.Engine, source, rw),
		cfg:    cfg,
		log:    logze.With("component", "app"),
	}, nil
}

// Run processes the change set between the configured revisions.
func (a *App) Run(ctx context.Context) error {
	edited, err := a.engine.Run(ctx, model.RunRequest{
		Root: a.cfg.Root,
		Base: a.cfg.Base,
		Head: a.cfg.Head,
	})
	if err != nil {
		return errm.Wrap(err, "failed to process change set")
	}

	if edited == 0 {
		a.log.Info("no files needed a header")
	} else {
		a.log.Info("headers added", "files", edited)
	}

	return nil
}
