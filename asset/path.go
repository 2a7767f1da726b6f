package asset

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// ResolveRelative resolves rel against the directory holding base. It fails
// for empty or absolute paths and for paths that climb out of the asset root.
func ResolveRelative(base, rel string) (string, bool) {
	if rel == "" {
		return "", false
	}
	rel = strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
	if path.IsAbs(rel) || filepath.IsAbs(rel) || strings.Contains(rel, "\x00") {
		return "", false
	}
	resolved := path.Join(path.Dir(CleanPath(base)), rel)
	if !fs.ValidPath(resolved) || resolved == "." {
		return "", false
	}
	return resolved, true
}
