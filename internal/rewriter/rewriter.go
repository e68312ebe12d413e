package rewriter

import (
	"context"
	"strings"

	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/addheader/internal/model/interfaces"
	"github.com/maxbolgarin/addheader/internal/rewriter/claude"
	"github.com/maxbolgarin/addheader/internal/rewriter/gemini"
	"github.com/maxbolgarin/addheader/internal/rewriter/openai"
	"github.com/maxbolgarin/addheader/internal/rewriter/prompts"
	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

var _ interfaces.Rewriter = (*Rewriter)(nil)

// Rewriter asks an LLM backend to produce the final file content for a header
// insertion. Callers must treat errors and empty results as "rewrite
// unavailable" and keep the deterministic target.
type Rewriter struct {
	cfg Config
	api interfaces.RewriterAPI
	pb  *prompts.Builder
	log logze.Logger
}

func New(ctx context.Context, cfg Config) (*Rewriter, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}

	cli, err := cliex.NewWithConfig(cliex.Config{
		UserAgent:      cfg.UserAgent,
		ProxyAddress:   cfg.ProxyURL,
		RequestTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, errm.Wrap(err, "failed to create HTTP client")
	}

	rw := &Rewriter{
		cfg: cfg,
		pb:  prompts.NewBuilder(),
		log: logze.With("component", "rewriter", "backend", string(cfg.Type)),
	}

	modelCfg := model.ModelConfig{
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		URL:      cfg.BaseURL,
		ProxyURL: cfg.ProxyURL,
		IsTest:   cfg.IsTest,
	}

	switch cfg.Type {
	case OpenAI:
		rw.api, err = openai.New(ctx, cli, modelCfg)
	case Claude:
		rw.api, err = claude.New(ctx, cli, modelCfg)
	case Gemini:
		rw.api, err = gemini.New(ctx, modelCfg)
	default:
		return nil, errm.Errorf("unsupported rewriter type: %s", cfg.Type)
	}
	if err != nil {
		return nil, errm.Wrap(err, "failed to create rewriter backend")
	}

	return rw, nil
}

// Rewrite returns the backend's candidate replacement for the file, with
// Markdown code fences stripped. An empty candidate is returned as an empty
// string, the caller decides the fallback.
func (r *Rewriter) Rewrite(ctx context.Context, req model.RewriteRequest) (string, error) {
	prompt := r.pb.BuildRewritePrompt(req)

	resp, err := r.api.CallAPI(ctx, model.APIRequest{
		Prompt:       prompt.UserPrompt,
		SystemPrompt: prompt.SystemPrompt,
		Temperature:  r.cfg.Temperature,
		MaxTokens:    r.cfg.MaxTokens,
		ResponseType: "text/plain",
	})
	if err != nil {
		return "", errm.Wrap(err, "failed to call rewrite API")
	}

	return stripCodeFence(resp.Content), nil
}

// stripCodeFence removes a wrapping Markdown code fence that models add
// despite instructions to return raw file content.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return content
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return content
	}
	lines = lines[1:] // drop opening fence with optional language tag
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}

	out := strings.Join(lines, "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
