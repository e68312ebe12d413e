package header

import (
	"strings"

	"github.com/maxbolgarin/addheader/internal/model"
)

// Prepare renders the header for one file and computes the byte offset where
// it must be inserted. For skip rules it returns an always-satisfied marker
// with an empty header at offset 0.
func Prepare(relPath, content string, rule model.ResolvedRule) model.PreparedHeader {
	prepared := model.PreparedHeader{
		Rule: rule,
		Path: relPath,
	}
	if rule.Action == model.ActionSkip {
		return prepared
	}

	prepared.Header = strings.ReplaceAll(rule.Template, "{path}", relPath)
	if rule.Insert == model.InsertAfterShebang {
		prepared.InsertAt = afterShebang(content)
	}

	return prepared
}

// afterShebang returns the offset right past the first line break of a
// leading #! line: end of content when the shebang has no line break, 0 when
// there is no shebang at all.
func afterShebang(content string) int {
	if !strings.HasPrefix(content, "#!") {
		return 0
	}
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return i + 1
	}
	return len(content)
}

// Splice returns the deterministic target: content with the prepared header
// inserted at its offset.
func Splice(content string, prepared model.PreparedHeader) string {
	if prepared.Header == "" {
		return content
	}
	return content[:prepared.InsertAt] + prepared.Header + content[prepared.InsertAt:]
}
