package svn

import (
	"regexp"
	"strings"
)

// changedFilePattern matches a trimmed changed-paths line: status letter,
// whitespace, then the path.
var changedFilePattern = regexp.MustCompile(`^([AMD])\s+(.+)$`)

// ExtractChangedFiles pulls the bare file paths out of a single-revision
// verbose log. The status letter and one optional leading slash are
// stripped; the rest of the path is kept so it can still be resolved
// against a working copy.
//
// The block starts at a line equal to "Changed paths:" and ends at a blank
// line or a dashed separator. Lines inside the block that don't look like a
// changed-paths entry (wrapped prose, continuation lines) are skipped
// without ending the block.
func ExtractChangedFiles(revisionLogText string) []string {
	var files []string
	inBlock := false

	for _, raw := range strings.Split(revisionLogText, "\n") {
		line := strings.TrimSpace(raw)

		if !inBlock {
			if line == "Changed paths:" {
				inBlock = true
			}
			continue
		}

		if line == "" || strings.HasPrefix(line, "---") {
			inBlock = false
			continue
		}

		m := changedFilePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		files = append(files, strings.TrimPrefix(m[2], "/"))
	}

	return files
}
