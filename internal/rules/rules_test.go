package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadMissingDefault(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"rules": []}`)

	_, err := Load(root)
	require.ErrorIs(t, err, ErrMissingDefaultRule)
}

func TestLoadMalformedJSON(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"default": `)

	_, err := Load(root)
	require.Error(t, err)
}

func TestLoadUnknownDetectionKind(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {"template": "// {path}\n"},
		"rules": [{"extensions": ["md"], "detect": [{"type": "magic", "value": "x"}]}]
	}`)

	_, err := Load(root)
	require.ErrorIs(t, err, ErrUnknownDetection)
}

func TestLoadDetectionRequiresValue(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {"template": "// {path}\n", "detect": [{"type": "includes"}]}
	}`)

	_, err := Load(root)
	require.ErrorIs(t, err, ErrMissingDetectValue)
}

func TestResolveDefaultRule(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"default": {"template": "// {path}\n"}}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	rule, err := cfg.Resolve("src/main.go")
	require.NoError(t, err)
	assert.Equal(t, "// {path}\n", rule.Template)
	assert.Equal(t, model.InsertStart, rule.Insert)
	assert.Equal(t, model.ActionAdd, rule.Action)
	assert.Empty(t, rule.Detect)
}

func TestResolveFirstMatchWins(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {"template": "// {path}\n"},
		"rules": [
			{"extensions": ["md"], "template": "<!-- {path} -->\n"},
			{"extensions": ["md"], "template": "never used"}
		]
	}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	rule, err := cfg.Resolve("docs/index.md")
	require.NoError(t, err)
	assert.Equal(t, "<!-- {path} -->\n", rule.Template)
}

func TestResolveFilenameCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {"template": "// {path}\n"},
		"rules": [{"filenames": ["Makefile"], "template": "# {path}\n"}]
	}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	rule, err := cfg.Resolve("build/MAKEFILE")
	require.NoError(t, err)
	assert.Equal(t, "# {path}\n", rule.Template)
}

func TestResolveExtensionForms(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {"template": "// {path}\n"},
		"rules": [
			{"extensions": [".d.ts"], "template": "dotted"},
			{"extensions": ["ts"], "template": "bare"},
			{"extensions": ["*"], "template": "wildcard"}
		]
	}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"types/api.d.ts", "dotted"},
		{"src/app.TS", "bare"},
		{"notes.txt", "wildcard"},
		{"LICENSE", "wildcard"},
	}
	for _, tt := range tests {
		rule, err := cfg.Resolve(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, rule.Template, tt.path)
	}
}

func TestResolveRuleWithoutPredicatesNeverMatches(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {"template": "default"},
		"rules": [{"template": "orphan"}]
	}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	rule, err := cfg.Resolve("anything.go")
	require.NoError(t, err)
	assert.Equal(t, "default", rule.Template)
}

func TestResolvePerFieldFallback(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {
			"template": "// {path}\n",
			"insert": "afterShebang",
			"detect": [{"type": "includes", "value": "{path}"}]
		},
		"rules": [{"extensions": ["sh"], "template": "# {path}\n"}]
	}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	rule, err := cfg.Resolve("scripts/run.sh")
	require.NoError(t, err)
	assert.Equal(t, "# {path}\n", rule.Template)
	assert.Equal(t, model.InsertAfterShebang, rule.Insert)
	require.Len(t, rule.Detect, 1)
	assert.Equal(t, model.DetectIncludes, rule.Detect[0].Kind)
}

func TestResolveSkipAction(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {"template": "// {path}\n"},
		"rules": [{"extensions": ["json"], "action": "skip"}]
	}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	rule, err := cfg.Resolve("package.json")
	require.NoError(t, err)
	assert.Equal(t, model.ActionSkip, rule.Action)
}

func TestResolveAddWithoutTemplateFails(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"default": {"action": "add"}}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	_, err = cfg.Resolve("main.go")
	require.ErrorIs(t, err, ErrNoTemplate)
}

func TestTemplateListJoinedWithNewlines(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {"template": ["<!-- {path} -->", "", ""]}
	}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	rule, err := cfg.Resolve("docs/index.md")
	require.NoError(t, err)
	assert.Equal(t, "<!-- {path} -->\n\n", rule.Template)
}

func TestWithinFirstLinesDefault(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		"default": {
			"template": "// {path}\n",
			"detect": [{"type": "withinFirstLines", "value": "{path}"}]
		}
	}`)

	cfg, err := Load(root)
	require.NoError(t, err)

	rule, err := cfg.Resolve("main.go")
	require.NoError(t, err)
	require.Len(t, rule.Detect, 1)
	assert.Equal(t, 2, rule.Detect[0].Lines)
}

func TestCacheReadsOnce(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"default": {"template": "// {path}\n"}}`)

	cache := NewCache()
	first, err := cache.Load(root)
	require.NoError(t, err)

	// Removing the file must not matter, the cache owns the loaded config.
	require.NoError(t, os.Remove(filepath.Join(root, ConfigFileName)))

	second, err := cache.Load(root)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
