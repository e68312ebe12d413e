package gitlab

import (
	"context"

	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/addheader/internal/model/interfaces"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const defaultBaseURL = "https://gitlab.com"

var _ interfaces.ChangeSource = (*Provider)(nil)

// Provider enumerates changed files by comparing revisions through the GitLab
// API. Staging is a no-op, hosted mode has no local index.
type Provider struct {
	client *gitlab.Client
	config model.SourceConfig
	logger logze.Logger
}

func New(config model.SourceConfig) (*Provider, error) {
	if config.Token == "" {
		return nil, errm.New("GitLab token is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client, err := gitlab.NewClient(config.Token, gitlab.WithBaseURL(baseURL))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create GitLab client")
	}

	return &Provider{
		client: client,
		config: config,
		logger: logze.With("provider", "gitlab"),
	}, nil
}

// ListChangedFiles compares base and head and returns the paths of files that
// still exist at head.
func (p *Provider) ListChangedFiles(ctx context.Context, req model.DiffRequest) ([]string, error) {
	compare, _, err := p.client.Repositories.Compare(p.config.ProjectID, &gitlab.CompareOptions{
		From: gitlab.Ptr(req.Base),
		To:   gitlab.Ptr(req.Head),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, errm.Wrap(err, "failed to compare revisions on GitLab")
	}

	var paths []string
	for _, diff := range compare.Diffs {
		if diff.DeletedFile {
			continue
		}
		paths = append(paths, diff.NewPath)
	}

	return paths, nil
}

// StageFile is a no-op for the hosted provider.
func (p *Provider) StageFile(ctx context.Context, root, path string) error {
	return nil
}
