package provider

import (
	"slices"

	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/lang"
)

// SourceType represents the type of change source.
type SourceType string

const (
	// Git enumerates and stages files with the local git binary.
	Git SourceType = "git"
	// GitHub enumerates files by comparing commits through the GitHub API.
	GitHub SourceType = "github"
	// GitLab enumerates files by comparing commits through the GitLab API.
	GitLab SourceType = "gitlab"
)

var supportedSourceTypes = []SourceType{Git, GitHub, GitLab}

// Config represents change source configuration.
type Config struct {
	Type    SourceType `yaml:"type" env:"PROVIDER_TYPE"`
	BaseURL string     `yaml:"base_url" env:"PROVIDER_BASE_URL"`
	Token   string     `yaml:"token" env:"PROVIDER_TOKEN"`
	// ProjectID is "owner/repo" for GitHub, a numeric ID or a path for GitLab.
	ProjectID string `yaml:"project_id" env:"PROVIDER_PROJECT_ID"`
}

func (c *Config) PrepareAndValidate() error {
	c.Type = lang.Check(c.Type, Git)
	if !slices.Contains(supportedSourceTypes, c.Type) {
		return erro.New("invalid provider type: %s", c.Type)
	}
	if c.Type != Git && c.Token == "" {
		return erro.New("provider token is required for %s", c.Type)
	}
	if c.Type != Git && c.ProjectID == "" {
		return erro.New("provider project_id is required for %s", c.Type)
	}
	return nil
}
