package app

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/addheader/internal/engine"
	"github.com/maxbolgarin/addheader/internal/provider"
	"github.com/maxbolgarin/addheader/internal/rewriter"
	"github.com/maxbolgarin/erro"
)

// Config represents the main application configuration. It is read from an
// optional YAML file and from the environment, the environment wins.
type Config struct {
	// Root is the working copy whose changed files get headers.
	Root string `yaml:"root" env:"ADDHEADER_ROOT" env-default:"."`
	// Base and Head are the revision markers of the processed change set.
	Base string `yaml:"base" env:"BASE_REF" env-default:"HEAD~1"`
	Head string `yaml:"head" env:"HEAD_REF" env-default:"HEAD"`

	Engine   engine.Config   `yaml:"engine"`
	Provider provider.Config `yaml:"provider"`
	Rewriter rewriter.Config `yaml:"rewriter"`
}

// LoadConfig loads the application configuration from the optional file path
// and the environment.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	var err error

	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return cfg, erro.Wrap(err, "read config")
	}

	return cfg, nil
}
