package svn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/tixview/internal/models"
)

func changesetTouching(revision int64, paths ...string) models.Changeset {
	var files []models.FileChange
	for _, p := range paths {
		files = append(files, models.NewFileChange(models.Modified, p))
	}
	return models.Changeset{Revision: revision, Files: files}
}

func TestPlanUnifiedDiff_SpansOldestPredecessorToNewest(t *testing.T) {
	t.Parallel()

	changesets := []models.Changeset{
		changesetTouching(10, "/trunk/foo.txt"),
		changesetTouching(15, "/trunk/foo.txt", "/trunk/bar.txt"),
		changesetTouching(20, "/trunk/foo.txt"),
	}

	span, err := PlanUnifiedDiff("foo.txt", changesets)
	require.NoError(t, err)
	assert.Equal(t, models.DiffSpan{From: 9, To: 20}, span)
}

func TestPlanUnifiedDiff_IgnoresUnrelatedRevisions(t *testing.T) {
	t.Parallel()

	changesets := []models.Changeset{
		changesetTouching(10, "/trunk/foo.txt"),
		changesetTouching(15, "/trunk/other.txt"),
		changesetTouching(20, "/trunk/foo.txt"),
	}

	span, err := PlanUnifiedDiff("foo.txt", changesets)
	require.NoError(t, err)
	assert.Equal(t, models.DiffSpan{From: 9, To: 20}, span)
}

func TestPlanUnifiedDiff_SingleRevisionWindow(t *testing.T) {
	t.Parallel()

	changesets := []models.Changeset{
		changesetTouching(7, "/trunk/foo.txt"),
	}

	span, err := PlanUnifiedDiff("foo.txt", changesets)
	require.NoError(t, err)
	assert.Equal(t, models.DiffSpan{From: 6, To: 7}, span)
}

func TestPlanUnifiedDiff_OrderInsensitive(t *testing.T) {
	t.Parallel()

	// Changesets arrive newest first from the search; the span is the same
	changesets := []models.Changeset{
		changesetTouching(20, "/trunk/foo.txt"),
		changesetTouching(10, "/trunk/foo.txt"),
	}

	span, err := PlanUnifiedDiff("foo.txt", changesets)
	require.NoError(t, err)
	assert.Equal(t, models.DiffSpan{From: 9, To: 20}, span)
}

func TestPlanUnifiedDiff_NoMatchingRevisions(t *testing.T) {
	t.Parallel()

	changesets := []models.Changeset{
		changesetTouching(10, "/trunk/other.txt"),
	}

	_, err := PlanUnifiedDiff("foo.txt", changesets)
	assert.ErrorIs(t, err, ErrNoMatchingRevisions)
}

func TestPlanUnifiedDiff_SubstringMatchOverMatches(t *testing.T) {
	t.Parallel()

	// Known limitation of the substring predicate: b.txt also matches
	// paths of files like ab.txt. Kept to tolerate prefix differences
	// between the aggregate and per-revision log output.
	changesets := []models.Changeset{
		changesetTouching(10, "/trunk/ab.txt"),
	}

	span, err := PlanUnifiedDiff("b.txt", changesets)
	require.NoError(t, err)
	assert.Equal(t, models.DiffSpan{From: 9, To: 10}, span)
}
