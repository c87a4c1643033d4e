package svn

import (
	"errors"
	"sort"
	"strings"

	"github.com/wahlandcase/tixview/internal/models"
)

// ErrNoMatchingRevisions means no changeset in the set touches the
// requested file. Surfaced as a warning, never as a crash.
var ErrNoMatchingRevisions = errors.New("no revisions found for file")

// pathMatches reports whether a changed path refers to the target file.
// Substring containment tolerates the path-prefix differences between the
// aggregate log and per-revision output, at the cost of occasional
// over-matches (a.txt also matches ab.txt's path). Kept behind this
// predicate so exact segment matching could be substituted without
// touching the planner.
func pathMatches(changedPath, targetPath string) bool {
	return strings.Contains(changedPath, targetPath)
}

// PlanUnifiedDiff computes the revision span bounding the cumulative change
// window for targetPath: To is the newest revision touching the file, From
// is the revision immediately before its first observed change. From may
// predate the file's existence, in which case content retrieval for that
// endpoint fails and is treated as "file did not exist".
func PlanUnifiedDiff(targetPath string, changesets []models.Changeset) (models.DiffSpan, error) {
	var revisions []int64
	for _, cs := range changesets {
		for _, fc := range cs.Files {
			if pathMatches(fc.Path, targetPath) {
				revisions = append(revisions, cs.Revision)
				break
			}
		}
	}

	if len(revisions) == 0 {
		return models.DiffSpan{}, ErrNoMatchingRevisions
	}

	sort.Slice(revisions, func(i, j int) bool { return revisions[i] < revisions[j] })

	return models.DiffSpan{
		From: revisions[0] - 1,
		To:   revisions[len(revisions)-1],
	}, nil
}
