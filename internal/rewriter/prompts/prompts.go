package prompts

import (
	"fmt"

	"github.com/maxbolgarin/addheader/internal/model"
)

var rewriteSystemPromptTemplate = `
You are a precise code formatting assistant.

Your task is to return the COMPLETE content of the given file with one change applied: the relative path comment must be present at the top of the file.

RULES:
- The path comment is exactly: %q
- The comment must be the first line of the file. If the file starts with a shebang line (#!), keep the shebang as the first line and place the comment immediately after it.
- Do not change anything else: no reformatting, no fixing, no trailing whitespace changes.
- If the comment is already present, return the file unchanged.
- Return ONLY the raw file content. No explanations, no Markdown code fences.

A reference result with the comment inserted mechanically is provided below. Prefer it unless it breaks the shebang rule:

%s
`

const rewriteUserPromptTemplate = "path=%s\n%s"

// Builder builds prompts for the rewrite collaborator.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// BuildRewritePrompt builds the prompt pair for one file rewrite.
func (b *Builder) BuildRewritePrompt(req model.RewriteRequest) model.Prompt {
	return model.Prompt{
		SystemPrompt: fmt.Sprintf(rewriteSystemPromptTemplate, req.Header, req.Proposed),
		UserPrompt:   fmt.Sprintf(rewriteUserPromptTemplate, req.Path, req.Original),
	}
}
