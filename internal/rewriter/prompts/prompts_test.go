package prompts

import (
	"testing"

	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildRewritePrompt(t *testing.T) {
	b := NewBuilder()

	prompt := b.BuildRewritePrompt(model.RewriteRequest{
		Path:     "src/app.ts",
		Original: "console.log(1);\n",
		Proposed: "// src/app.ts\nconsole.log(1);\n",
		Header:   "// src/app.ts\n",
	})

	assert.Equal(t, "path=src/app.ts\nconsole.log(1);\n", prompt.UserPrompt)
	assert.Contains(t, prompt.SystemPrompt, `"// src/app.ts\n"`)
	assert.Contains(t, prompt.SystemPrompt, "// src/app.ts\nconsole.log(1);\n")
	assert.Contains(t, prompt.SystemPrompt, "shebang")
}
