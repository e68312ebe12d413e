package model

import "time"

// Action tells the engine what to do with a matched file.
type Action string

const (
	// ActionAdd inserts the rendered header when it is missing.
	ActionAdd Action = "add"
	// ActionSkip treats the file as always satisfied, no write ever happens.
	ActionSkip Action = "skip"
)

// InsertMode defines where the header is spliced into the file.
type InsertMode string

const (
	// InsertStart inserts the header at byte offset 0.
	InsertStart InsertMode = "start"
	// InsertAfterShebang inserts the header right after a leading #! line.
	InsertAfterShebang InsertMode = "afterShebang"
)

// DetectionKind is the tag of one header-detection strategy.
type DetectionKind string

const (
	DetectStartsWith       DetectionKind = "startsWith"
	DetectIncludes         DetectionKind = "includes"
	DetectWithinFirstLines DetectionKind = "withinFirstLines"
	DetectRegex            DetectionKind = "regex"
)

// Detection is one normalized detection strategy of a resolved rule.
// Value may contain {path} and {header} placeholders that are substituted
// before evaluation.
type Detection struct {
	Kind  DetectionKind
	Value string
	Lines int    // withinFirstLines only
	Flags string // regex only
}

// ResolvedRule is the effective rule for one path after the default/override
// merge. It is immutable once resolved.
type ResolvedRule struct {
	Template string // joined and not yet substituted, empty for skip rules
	Insert   InsertMode
	Action   Action
	Detect   []Detection
}

// PreparedHeader carries everything needed to decide and perform one header
// insertion. It lives for a single file of a single run.
type PreparedHeader struct {
	Header   string // rendered header text, empty for skip rules
	InsertAt int    // byte offset of the insertion point
	Rule     ResolvedRule
	Path     string // forward-slash normalized relative path
}

// DiffRequest identifies the revision range to enumerate changed files for.
type DiffRequest struct {
	Root string
	Base string
	Head string
}

// RunRequest is the input of one engine run. When ChangedFiles is nil the
// change set is obtained from the configured change source.
type RunRequest struct {
	Root         string
	Base         string
	Head         string
	ChangedFiles []string
}

// RewriteRequest is offered to the optional rewrite collaborator.
type RewriteRequest struct {
	Path     string // forward-slash normalized relative path
	Original string // file content before any edit
	Proposed string // deterministic target, header already spliced in
	Header   string // rendered header text
}

// Prompt represents a prompt pair for an LLM call.
type Prompt struct {
	SystemPrompt string
	UserPrompt   string
}

// ModelConfig is the per-backend LLM configuration.
type ModelConfig struct {
	APIKey   string
	Model    string
	URL      string
	ProxyURL string
	IsTest   bool
}

// APIRequest is a single LLM API call.
type APIRequest struct {
	Prompt       string
	SystemPrompt string
	Temperature  float32
	MaxTokens    int
	ResponseType string
	URL          string
}

// APIResponse is the result of a single LLM API call.
type APIResponse struct {
	CreateTime       time.Time
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// SourceConfig is the provider-agnostic change source configuration.
type SourceConfig struct {
	BaseURL   string
	Token     string
	ProjectID string
}
