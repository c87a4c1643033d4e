package svn

import (
	"path/filepath"
	"strings"
)

// ResolvePath normalizes a repository path from log output into one usable
// relative to the working copy root. One leading slash is stripped, and if
// the remaining path starts with the checkout's own folder name that segment
// is stripped too, since the working directory already implies it.
//
// This is a best-effort heuristic. A checkout whose folder name matches no
// segment of the logged path passes through unchanged, and nested
// same-named directories are not disambiguated. Known limitation; stricter
// mapping would change observable behavior for existing layouts.
func ResolvePath(rawPath, workingDirectoryPath string) string {
	path := strings.TrimPrefix(rawPath, "/")

	rootName := filepath.Base(workingDirectoryPath)
	if rootName != "" && rootName != "." {
		path = strings.TrimPrefix(path, rootName+"/")
	}

	return path
}
