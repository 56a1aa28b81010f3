package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/backmassage/bulkrename/internal/errs"
)

// ParseFolderNumber extracts the folder number from a directory base name.
// pattern must match the whole name and capture the number in its first
// group; the number must be at least min.
func ParseFolderNumber(name string, pattern *regexp.Regexp, min int) (int, error) {
	m := matchFolder(pattern, name)
	if len(m) < 2 {
		return 0, &errs.ValidationError{
			Field:  "directory",
			Value:  name,
			Reason: fmt.Sprintf("folder name must match %s", pattern),
		}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &errs.ValidationError{
			Field:  "directory",
			Value:  name,
			Reason: fmt.Sprintf("folder number %q is not an integer", m[1]),
		}
	}
	if n < min {
		return 0, &errs.ValidationError{
			Field:  "directory",
			Value:  name,
			Reason: fmt.Sprintf("folder number must be >= %d, got %d", min, n),
		}
	}
	return n, nil
}

// matchFolder returns the submatches of pattern against the whole of name,
// or nil when pattern cannot match all of it.
func matchFolder(pattern *regexp.Regexp, name string) []string {
	whole, err := regexp.Compile(`^(?:` + pattern.String() + `)$`)
	if err != nil {
		return nil
	}
	return whole.FindStringSubmatch(name)
}

// folderName returns the base name of dir, resolving "." and relative
// paths against the working directory so the real folder name is used.
func folderName(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return filepath.Base(strings.TrimRight(dir, `/\`))
}
