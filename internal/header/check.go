package header

import (
	"regexp"
	"strings"

	"github.com/maxbolgarin/addheader/internal/model"
	"github.com/maxbolgarin/errm"
)

// Applied reports whether the file content already satisfies the prepared
// header. Without configured detections it is a literal prefix check at the
// insertion offset, otherwise every detection must pass.
func Applied(content string, prepared model.PreparedHeader) (bool, error) {
	if prepared.Rule.Action == model.ActionSkip {
		return true, nil
	}

	if len(prepared.Rule.Detect) == 0 {
		return prefixAtOffset(content, prepared), nil
	}

	for _, det := range prepared.Rule.Detect {
		ok, err := evaluate(content, prepared, det)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func evaluate(content string, prepared model.PreparedHeader, det model.Detection) (bool, error) {
	value := substitute(det.Value, prepared)

	switch det.Kind {
	case model.DetectStartsWith:
		// An explicit value anchors at the very start of the file, not at
		// the insertion offset.
		if det.Value == "" {
			return prefixAtOffset(content, prepared), nil
		}
		return strings.HasPrefix(content, value), nil

	case model.DetectIncludes:
		return strings.Contains(content, value), nil

	case model.DetectWithinFirstLines:
		return withinFirstLines(content, value, det.Lines), nil

	case model.DetectRegex:
		return matchRegex(content, value, det.Flags)

	default:
		return false, errm.Errorf("unknown detection kind: %s", det.Kind)
	}
}

func substitute(value string, prepared model.PreparedHeader) string {
	value = strings.ReplaceAll(value, "{path}", prepared.Path)
	value = strings.ReplaceAll(value, "{header}", prepared.Header)
	return value
}

func prefixAtOffset(content string, prepared model.PreparedHeader) bool {
	at := prepared.InsertAt
	if at > len(content) {
		return false
	}
	return strings.HasPrefix(content[at:], prepared.Header)
}

func withinFirstLines(content, value string, lines int) bool {
	if lines <= 0 {
		lines = 2
	}
	split := strings.Split(content, "\n")
	if len(split) > lines {
		split = split[:lines]
	}
	return strings.Contains(strings.Join(split, "\n"), value)
}

func matchRegex(content, pattern, flags string) (bool, error) {
	prefix, err := regexFlagPrefix(flags)
	if err != nil {
		return false, err
	}
	re, err := regexp.Compile(prefix + pattern)
	if err != nil {
		return false, errm.Wrap(err, "compile detection regex")
	}
	return re.MatchString(content), nil
}

// regexFlagPrefix translates ECMAScript-style regex flags into a Go inline
// flag group. Flags without a Go equivalent that do not change single-match
// semantics (g, u, y) are ignored.
func regexFlagPrefix(flags string) (string, error) {
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			inline.WriteRune(f)
		case 'g', 'u', 'y':
		default:
			return "", errm.Errorf("unsupported regex flag: %c", f)
		}
	}
	if inline.Len() == 0 {
		return "", nil
	}
	return "(?" + inline.String() + ")", nil
}
