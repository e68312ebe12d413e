package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/addheader/internal/model/interfaces"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

var _ interfaces.ChangeSource = (*Provider)(nil)

// Only added, copied, modified, renamed and type-changed files get a header,
// deletions have nothing to edit.
const diffFilter = "ACMRT"

// Provider enumerates and stages changed files with the local git binary.
type Provider struct {
	logger logze.Logger
}

func New() *Provider {
	return &Provider{
		logger: logze.With("provider", "git"),
	}
}

// ListChangedFiles returns the paths changed between base and head, relative
// to the repository root, in git's output order.
func (p *Provider) ListChangedFiles(ctx context.Context, req model.DiffRequest) ([]string, error) {
	if req.Base == "" || req.Head == "" {
		return nil, errm.New("base and head revisions are required")
	}

	out, err := p.run(ctx, req.Root, "diff", "--name-only", "--diff-filter="+diffFilter, req.Base, req.Head)
	if err != nil {
		return nil, errm.Wrap(err, "git diff")
	}

	return splitPaths(out), nil
}

// StageFile adds the edited file to the git index.
func (p *Provider) StageFile(ctx context.Context, root, path string) error {
	if _, err := p.run(ctx, root, "add", "--", path); err != nil {
		return errm.Wrap(err, "git add")
	}
	return nil
}

func (p *Provider) run(ctx context.Context, root string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", root}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		p.logger.Debug("git command failed", "args", strings.Join(args, " "), "stderr", stderr.String())
		return "", errm.Errorf("git %s: %s", args[0], strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

func splitPaths(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}
