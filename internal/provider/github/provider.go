package github

import (
	"context"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/addheader/internal/model/interfaces"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"golang.org/x/oauth2"
)

var _ interfaces.ChangeSource = (*Provider)(nil)

// Provider enumerates changed files by comparing commits through the GitHub
// API. Staging is a no-op, hosted mode has no local index.
type Provider struct {
	client *github.Client
	config model.SourceConfig
	logger logze.Logger
}

func New(config model.SourceConfig) (*Provider, error) {
	if config.Token == "" {
		return nil, errm.New("GitHub token is required")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: config.Token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	// Set base URL if provided (for GitHub Enterprise)
	if config.BaseURL != "" {
		var err error
		client, err = github.NewClient(tc).WithEnterpriseURLs(config.BaseURL, config.BaseURL)
		if err != nil {
			return nil, errm.Wrap(err, "failed to create GitHub Enterprise client")
		}
	}

	return &Provider{
		client: client,
		config: config,
		logger: logze.With("provider", "github"),
	}, nil
}

// ListChangedFiles compares base and head and returns the paths of files that
// still exist at head.
func (p *Provider) ListChangedFiles(ctx context.Context, req model.DiffRequest) ([]string, error) {
	owner, repo, err := splitProjectID(p.config.ProjectID)
	if err != nil {
		return nil, err
	}

	opts := &github.ListOptions{PerPage: 100}
	var paths []string

	for {
		cmp, resp, err := p.client.Repositories.CompareCommits(ctx, owner, repo, req.Base, req.Head, opts)
		if err != nil {
			return nil, errm.Wrap(err, "failed to compare commits on GitHub")
		}

		for _, file := range cmp.Files {
			if isProcessable(file.GetStatus()) {
				paths = append(paths, file.GetFilename())
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return paths, nil
}

// StageFile is a no-op for the hosted provider.
func (p *Provider) StageFile(ctx context.Context, root, path string) error {
	return nil
}

// isProcessable keeps added, copied, modified, renamed and type-changed
// files, matching git's ACMRT diff filter.
func isProcessable(status string) bool {
	switch status {
	case "added", "copied", "modified", "renamed", "changed":
		return true
	}
	return false
}

func splitProjectID(projectID string) (owner, repo string, err error) {
	parts := strings.Split(projectID, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errm.New("invalid GitHub project ID format, expected 'owner/repo'")
	}
	return parts[0], parts[1], nil
}
