package rules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/errm"
)

// ConfigFileName is the header-rule configuration file expected at the root
// of the processed repository.
const ConfigFileName = ".addheader.json"

var (
	ErrConfigNotFound     = errors.New("header rule config file not found")
	ErrMissingDefaultRule = errors.New("header rule config must contain a default rule")
	ErrUnknownDetection   = errors.New("unknown detection kind")
	ErrMissingDetectValue = errors.New("detection requires a value")
	ErrNoTemplate         = errors.New("no template resolvable for add rule")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config is a loaded and validated header-rule configuration. It is immutable
// after Load.
type Config struct {
	def   ruleSpec
	rules []ruleSpec
}

// ruleSpec is one rule as declared in the config file, with match predicates
// and partial fields. Nil fields fall back to the default rule at resolution.
type ruleSpec struct {
	filenames  map[string]struct{} // lowercased exact names
	extensions []string            // lowercased: "*", bare suffix or dotted suffix
	template   *string             // joined template, nil when not declared
	insert     *model.InsertMode
	action     *model.Action
	detect     []model.Detection // nil when not declared
}

type fileConfig struct {
	Default *fileRule  `json:"default"`
	Rules   []fileRule `json:"rules"`
}

type fileRule struct {
	Filenames  []string        `json:"filenames"`
	Extensions []string        `json:"extensions"`
	Template   templateValue   `json:"template"`
	Insert     string          `json:"insert"`
	Action     string          `json:"action"`
	Detect     []fileDetection `json:"detect"`
}

type fileDetection struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Lines int    `json:"lines"`
	Flags string `json:"flags"`
}

// templateValue accepts either a single string or an ordered list of lines.
type templateValue struct {
	value string
	set   bool
}

func (t *templateValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		t.value, t.set = single, true
		return nil
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return errm.Wrap(err, "template must be a string or a list of strings")
	}
	t.value, t.set = strings.Join(lines, "\n"), true

	return nil
}

// Load reads and validates the header-rule configuration of root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errm.Wrap(ErrConfigNotFound, ConfigFileName)
		}
		return nil, errm.Wrap(err, "read header rule config")
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errm.Wrap(err, "parse header rule config")
	}
	if raw.Default == nil {
		return nil, ErrMissingDefaultRule
	}

	def, err := newRuleSpec(*raw.Default)
	if err != nil {
		return nil, errm.Wrap(err, "default rule")
	}

	cfg := &Config{def: def}
	for i, r := range raw.Rules {
		spec, err := newRuleSpec(r)
		if err != nil {
			return nil, errm.Wrap(err, "invalid rule", "index", i)
		}
		cfg.rules = append(cfg.rules, spec)
	}

	return cfg, nil
}

func newRuleSpec(raw fileRule) (ruleSpec, error) {
	spec := ruleSpec{}

	if len(raw.Filenames) > 0 {
		spec.filenames = make(map[string]struct{}, len(raw.Filenames))
		for _, name := range raw.Filenames {
			spec.filenames[strings.ToLower(name)] = struct{}{}
		}
	}
	for _, ext := range raw.Extensions {
		spec.extensions = append(spec.extensions, strings.ToLower(ext))
	}

	if raw.Template.set {
		tpl := raw.Template.value
		spec.template = &tpl
	}
	if raw.Insert != "" {
		mode := model.InsertMode(raw.Insert)
		if mode != model.InsertStart && mode != model.InsertAfterShebang {
			return spec, errm.Errorf("unknown insert mode: %s", raw.Insert)
		}
		spec.insert = &mode
	}
	if raw.Action != "" {
		action := model.Action(raw.Action)
		if action != model.ActionAdd && action != model.ActionSkip {
			return spec, errm.Errorf("unknown action: %s", raw.Action)
		}
		spec.action = &action
	}

	if raw.Detect != nil {
		spec.detect = make([]model.Detection, 0, len(raw.Detect))
		for _, d := range raw.Detect {
			det, err := newDetection(d)
			if err != nil {
				return spec, err
			}
			spec.detect = append(spec.detect, det)
		}
	}

	return spec, nil
}

func newDetection(raw fileDetection) (model.Detection, error) {
	det := model.Detection{
		Kind:  model.DetectionKind(raw.Type),
		Value: raw.Value,
		Lines: raw.Lines,
		Flags: raw.Flags,
	}

	switch det.Kind {
	case model.DetectStartsWith:
		// value is optional, absence means literal prefix at insert offset

	case model.DetectIncludes, model.DetectRegex:
		if det.Value == "" {
			return det, errm.Wrap(ErrMissingDetectValue, string(det.Kind))
		}

	case model.DetectWithinFirstLines:
		if det.Value == "" {
			return det, errm.Wrap(ErrMissingDetectValue, string(det.Kind))
		}
		if det.Lines <= 0 {
			det.Lines = defaultDetectLines
		}

	default:
		return det, errm.Wrap(ErrUnknownDetection, string(det.Kind))
	}

	return det, nil
}
