package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/maxbolgarin/errm"
	gitignore "github.com/sabhiram/go-gitignore"
)

// Ignore file candidates checked in order, the first one found on disk is
// loaded exclusively.
const (
	FileName       = ".addheaderignore"
	LegacyFileName = ".aihignore"
)

// Predicate reports whether a relative path is excluded from processing.
// Paths are normalized to forward slashes before matching.
type Predicate func(path string) bool

// Load builds the ignore predicate for root. When neither candidate file
// exists nothing is ignored.
func Load(root string) (Predicate, error) {
	for _, name := range []string{FileName, LegacyFileName} {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errm.Wrap(err, "read ignore file", "file", name)
		}

		matcher := gitignore.CompileIgnoreLines(splitLines(string(data))...)
		return func(path string) bool {
			return matcher.MatchesPath(filepath.ToSlash(path))
		}, nil
	}

	return func(string) bool { return false }, nil
}

func splitLines(data string) []string {
	return strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
}
