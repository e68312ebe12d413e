package rules

import (
	"path"
	"strings"

	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/errm"
)

const defaultDetectLines = 2

// Resolve returns the effective rule for the given forward-slash relative
// path. The first declared rule whose predicate matches wins, every field it
// omits is filled from the default rule.
func (c *Config) Resolve(relPath string) (model.ResolvedRule, error) {
	name := strings.ToLower(path.Base(relPath))
	ext := strings.TrimPrefix(path.Ext(name), ".")

	matched := ruleSpec{}
	for i := range c.rules {
		if c.rules[i].matches(name, ext) {
			matched = c.rules[i]
			break
		}
	}

	resolved := model.ResolvedRule{
		Insert: model.InsertStart,
		Action: model.ActionAdd,
	}

	if tpl := firstSet(matched.template, c.def.template); tpl != nil {
		resolved.Template = *tpl
	}
	if insert := firstSet(matched.insert, c.def.insert); insert != nil {
		resolved.Insert = *insert
	}
	if action := firstSet(matched.action, c.def.action); action != nil {
		resolved.Action = *action
	}
	if matched.detect != nil {
		resolved.Detect = matched.detect
	} else {
		resolved.Detect = c.def.detect
	}

	if resolved.Action == model.ActionAdd && resolved.Template == "" {
		return resolved, errm.Wrap(ErrNoTemplate, relPath)
	}

	return resolved, nil
}

// matches reports whether the rule applies to a file with the given lowercase
// base name and lowercase extension. A rule without filenames and extensions
// matches nothing.
func (r ruleSpec) matches(name, ext string) bool {
	if _, ok := r.filenames[name]; ok {
		return true
	}
	for _, e := range r.extensions {
		switch {
		case e == "*":
			return true
		case strings.HasPrefix(e, "."):
			if strings.HasSuffix(name, e) {
				return true
			}
		case e == ext:
			return true
		}
	}
	return false
}

func firstSet[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
