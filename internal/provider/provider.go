package provider

import (
	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/addheader/internal/model/interfaces"
	"github.com/maxbolgarin/addheader/internal/provider/git"
	"github.com/maxbolgarin/addheader/internal/provider/github"
	"github.com/maxbolgarin/addheader/internal/provider/gitlab"
	"github.com/maxbolgarin/erro"
)

// New creates a new change source based on the configuration.
func New(cfg Config) (interfaces.ChangeSource, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}

	cfgForSource := model.SourceConfig{
		BaseURL:   cfg.BaseURL,
		Token:     cfg.Token,
		ProjectID: cfg.ProjectID,
	}

	var source interfaces.ChangeSource
	var err error

	switch cfg.Type {
	case Git:
		source = git.New()
	case GitHub:
		source, err = github.New(cfgForSource)
	case GitLab:
		source, err = gitlab.New(cfgForSource)
	default:
		return nil, erro.New("unsupported provider type: %s", cfg.Type)
	}
	if err != nil {
		return nil, erro.Wrap(err, "failed to create change source")
	}

	return source, nil
}
