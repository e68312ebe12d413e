package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/addheader/internal/header"
	"github.com/maxbolgarin/addheader/internal/ignore"
	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/addheader/internal/model/interfaces"
	"github.com/maxbolgarin/addheader/internal/rules"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

const defaultFileMode os.FileMode = 0o644

// Config controls engine behavior.
type Config struct {
	// DryRun computes edits without writing or staging anything.
	DryRun bool `yaml:"dry_run" env:"ADDHEADER_DRY_RUN"`
	// Verbose enables per-file debug logs.
	Verbose bool `yaml:"verbose" env:"ADDHEADER_VERBOSE"`
}

// Engine is the transform pipeline: it enumerates changed files, filters them
// through the ignore predicate and inserts missing path headers one file at a
// time, in input order.
type Engine struct {
	vcs      interfaces.ChangeSource
	rewriter interfaces.Rewriter // nil means deterministic-only
	rules    *rules.Cache

	cfg Config
	log logze.Logger
}

func New(cfg Config, vcs interfaces.ChangeSource, rewriter interfaces.Rewriter) *Engine {
	return &Engine{
		vcs:      vcs,
		rewriter: rewriter,
		rules:    rules.NewCache(),
		cfg:      cfg,
		log:      logze.With("component", "engine"),
	}
}

// Run processes one change set and returns the number of files edited. Zero
// is a legitimate outcome. The first failing step aborts the run, files
// already written stay in place.
func (e *Engine) Run(ctx context.Context, req model.RunRequest) (int, error) {
	timer := abstract.StartTimer()

	cfg, err := e.rules.Load(req.Root)
	if err != nil {
		return 0, errm.Wrap(err, "load header rules")
	}

	ignored, err := ignore.Load(req.Root)
	if err != nil {
		return 0, errm.Wrap(err, "load ignore patterns")
	}

	files := req.ChangedFiles
	if files == nil {
		files, err = e.vcs.ListChangedFiles(ctx, model.DiffRequest{
			Root: req.Root,
			Base: req.Base,
			Head: req.Head,
		})
		if err != nil {
			return 0, errm.Wrap(err, "list changed files")
		}
	}

	var edited, skipped, unchanged int
	for _, file := range files {
		rel := filepath.ToSlash(strings.TrimSpace(file))
		if rel == "" {
			continue
		}
		if ignored(rel) {
			e.log.DebugIf(e.cfg.Verbose, "skipping ignored file", "file", rel)
			skipped++
			continue
		}

		changed, err := e.processFile(ctx, cfg, req.Root, rel)
		if err != nil {
			return edited, errm.Wrap(err, "process file", "file", rel)
		}
		if changed {
			edited++
		} else {
			unchanged++
		}
	}

	e.log.Info("run finished",
		"total_files", len(files),
		"ignored", skipped,
		"unchanged", unchanged,
		"edited", edited,
		"dry_run", e.cfg.DryRun,
		"elapsed_time", timer.ElapsedTime().String(),
	)

	return edited, nil
}

// processFile handles a single changed path and reports whether the file was
// edited. Paths missing on disk are treated as a benign race with concurrent
// repository mutation and skipped.
func (e *Engine) processFile(ctx context.Context, cfg *rules.Config, root, rel string) (bool, error) {
	fullPath := filepath.Join(root, filepath.FromSlash(rel))

	raw, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			e.log.DebugIf(e.cfg.Verbose, "skipping missing file", "file", rel)
			return false, nil
		}
		return false, errm.Wrap(err, "read file")
	}
	content := string(raw)

	rule, err := cfg.Resolve(rel)
	if err != nil {
		return false, errm.Wrap(err, "resolve rule")
	}

	prepared := header.Prepare(rel, content, rule)

	applied, err := header.Applied(content, prepared)
	if err != nil {
		return false, errm.Wrap(err, "check header")
	}
	if applied {
		e.log.DebugIf(e.cfg.Verbose, "header already present", "file", rel)
		return false, nil
	}

	final := e.rewrite(ctx, rel, content, prepared)
	if final == content {
		return false, nil
	}

	if e.cfg.DryRun {
		e.log.Info("would add header", "file", rel)
		return true, nil
	}

	if err := e.write(fullPath, final); err != nil {
		return false, errm.Wrap(err, "write file")
	}
	if err := e.vcs.StageFile(ctx, root, rel); err != nil {
		return false, errm.Wrap(err, "stage file")
	}

	e.log.Info("added header", "file", rel)

	return true, nil
}

// rewrite offers the deterministic target to the optional rewrite
// collaborator. A failure or an empty result never propagates, the
// deterministic target is the guaranteed minimum edit.
func (e *Engine) rewrite(ctx context.Context, rel, content string, prepared model.PreparedHeader) string {
	target := header.Splice(content, prepared)
	if e.rewriter == nil {
		return target
	}

	out, err := e.rewriter.Rewrite(ctx, model.RewriteRequest{
		Path:     rel,
		Original: content,
		Proposed: target,
		Header:   prepared.Header,
	})
	if err != nil {
		e.log.Warn("rewrite failed, using deterministic result", "file", rel, "error", err)
		return target
	}
	if strings.TrimSpace(out) == "" {
		e.log.Warn("empty rewrite response, using deterministic result", "file", rel)
		return target
	}

	return out
}

// write overwrites the file preserving its mode.
func (e *Engine) write(path, content string) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}
