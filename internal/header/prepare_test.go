package header

import (
	"testing"

	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/stretchr/testify/assert"
)

func addRule(template string, insert model.InsertMode) model.ResolvedRule {
	return model.ResolvedRule{
		Template: template,
		Insert:   insert,
		Action:   model.ActionAdd,
	}
}

func TestPrepareRendersTemplate(t *testing.T) {
	rule := addRule("<!-- {path} -->\n\n", model.InsertStart)

	prepared := Prepare("docs/index.md", "# Title\n", rule)

	assert.Equal(t, "<!-- docs/index.md -->\n\n", prepared.Header)
	assert.Equal(t, 0, prepared.InsertAt)
	assert.Equal(t, "docs/index.md", prepared.Path)
}

func TestPrepareSubstitutesEveryPlaceholder(t *testing.T) {
	rule := addRule("// {path} -- {path}\n", model.InsertStart)

	prepared := Prepare("a.go", "", rule)

	assert.Equal(t, "// a.go -- a.go\n", prepared.Header)
}

func TestPrepareSkipRule(t *testing.T) {
	rule := model.ResolvedRule{Action: model.ActionSkip}

	prepared := Prepare("vendor/lib.js", "content", rule)

	assert.Empty(t, prepared.Header)
	assert.Equal(t, 0, prepared.InsertAt)
}

func TestPrepareAfterShebang(t *testing.T) {
	rule := addRule("# {path}\n", model.InsertAfterShebang)

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"shebang with newline", "#!/bin/sh\necho hi\n", 10},
		{"shebang without newline", "#!/bin/sh", 9},
		{"no shebang", "echo hi\n", 0},
		{"empty content", "", 0},
		{"hash but no bang", "# comment\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prepared := Prepare("run.sh", tt.content, rule)
			assert.Equal(t, tt.want, prepared.InsertAt)
		})
	}
}

func TestSplice(t *testing.T) {
	rule := addRule("# {path}\n", model.InsertAfterShebang)
	content := "#!/bin/sh\necho hi\n"

	prepared := Prepare("run.sh", content, rule)
	out := Splice(content, prepared)

	assert.Equal(t, "#!/bin/sh\n# run.sh\necho hi\n", out)
}

func TestSpliceAtStart(t *testing.T) {
	rule := addRule("// {path}\n", model.InsertStart)
	content := "console.log('hello');\n"

	prepared := Prepare("observed.ts", content, rule)

	assert.Equal(t, "// observed.ts\nconsole.log('hello');\n", Splice(content, prepared))
}

func TestSpliceSkipRuleReturnsContentUnchanged(t *testing.T) {
	prepared := Prepare("a.json", "{}", model.ResolvedRule{Action: model.ActionSkip})

	assert.Equal(t, "{}", Splice("{}", prepared))
}
