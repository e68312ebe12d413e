package rewriter

import (
	"slices"
	"time"

	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/lang"
)

const (
	defaultTemperature = 0.1
	defaultMaxTokens   = 16000
	defaultTimeout     = 60 * time.Second
	defaultUserAgent   = "addheader/0.1.0 (https://github.com/maxbolgarin/addheader)"
)

// BackendType represents the type of LLM backend.
type BackendType string

const (
	OpenAI BackendType = "openai"
	Claude BackendType = "claude"
	Gemini BackendType = "gemini"
)

var supportedBackendTypes = []BackendType{OpenAI, Claude, Gemini}

// Config represents rewrite collaborator configuration. The collaborator is
// used only when Enabled is set and APIKey is present, otherwise the engine
// stays deterministic.
type Config struct {
	Enabled bool        `yaml:"enabled" env:"REWRITER_ENABLED"`
	Type    BackendType `yaml:"type" env:"REWRITER_TYPE"`
	APIKey  string      `yaml:"api_key" env:"REWRITER_API_KEY"`
	Model   string      `yaml:"model" env:"REWRITER_MODEL"`

	Temperature float32       `yaml:"temperature" env:"REWRITER_TEMPERATURE"`
	MaxTokens   int           `yaml:"max_tokens" env:"REWRITER_MAX_TOKENS"`
	BaseURL     string        `yaml:"base_url" env:"REWRITER_BASE_URL"`
	ProxyURL    string        `yaml:"proxy_url" env:"REWRITER_PROXY_URL"`
	Timeout     time.Duration `yaml:"timeout" env:"REWRITER_TIMEOUT"`
	UserAgent   string        `yaml:"user_agent" env:"REWRITER_USER_AGENT"`
	IsTest      bool          `yaml:"is_test" env:"REWRITER_IS_TEST"`
}

func (c *Config) PrepareAndValidate() error {
	if c.APIKey == "" {
		return erro.New("api key is required")
	}
	c.Type = lang.Check(c.Type, OpenAI)
	if !slices.Contains(supportedBackendTypes, c.Type) {
		return erro.New("invalid rewriter type: %s", c.Type)
	}

	c.Temperature = lang.Check(c.Temperature, defaultTemperature)
	c.MaxTokens = lang.Check(c.MaxTokens, defaultMaxTokens)
	c.Timeout = lang.Check(c.Timeout, defaultTimeout)
	c.UserAgent = lang.Check(c.UserAgent, defaultUserAgent)

	return nil
}
