package interfaces

import (
	"context"

	"github.com/maxbolgarin/addheader/internal/model"
)

// ChangeSource enumerates changed files between two revision markers and
// stages files after they are edited (local git) or skips staging entirely
// (hosted providers).
type ChangeSource interface {
	ListChangedFiles(ctx context.Context, req model.DiffRequest) ([]string, error)
	StageFile(ctx context.Context, root, path string) error
}

// Rewriter optionally transforms the deterministic target. The engine treats
// an error or an empty result as "rewrite unavailable" and falls back to the
// deterministic target.
type Rewriter interface {
	Rewrite(ctx context.Context, req model.RewriteRequest) (string, error)
}

// RewriterAPI defines the interface for calling LLM AI models.
type RewriterAPI interface {
	CallAPI(ctx context.Context, req model.APIRequest) (model.APIResponse, error)
}
