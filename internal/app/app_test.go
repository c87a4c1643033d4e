package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/tixview/internal/config"
	"github.com/wahlandcase/tixview/internal/logging"
	"github.com/wahlandcase/tixview/internal/models"
	"github.com/wahlandcase/tixview/internal/svn"
)

func newTestModel() Model {
	cfg := config.DefaultConfig()
	cfg.History.Enabled = false
	m := New(cfg, svn.NewClient("svn", logging.Nop()), false)
	m.workingCopy = &models.WorkingCopy{Path: "/repo", DisplayName: "repo"}
	return m
}

func TestHandleSearchResult(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.screen = ScreenLoading

	updated, _ := m.handleSearchResult(searchResult{
		ticketID: "1234",
		changesets: []models.Changeset{
			{Revision: 20, Author: "alice", Message: "#1234 fix"},
			{Revision: 10, Author: "bob", Message: "#1234 start"},
		},
	})

	got := updated.(Model)
	assert.Equal(t, ScreenChangesetList, got.screen)
	assert.Equal(t, "1234", got.ticketID)
	assert.Len(t, got.changesets, 2)
	assert.Equal(t, 0, got.listIndex)
}

func TestHandleSearchResult_Error(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.screen = ScreenLoading

	updated, _ := m.handleSearchResult(searchResult{
		ticketID: "1234",
		err:      assert.AnError,
	})

	got := updated.(Model)
	assert.Equal(t, ScreenError, got.screen)
	assert.NotEmpty(t, got.errorMessage)
}

// Diff answers can arrive after the user has moved on to another row.
// They must fill the cache without stealing the screen.
func TestHandleRevisionDiffResult_OutOfOrder(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.changesets = []models.Changeset{{Revision: 20}, {Revision: 10}}
	m.listIndex = 1
	m.screen = ScreenLoading
	m.pendingDiffs[0] = true
	m.pendingDiffs[1] = true

	// Answer for row 0 arrives while row 1 is selected
	updated, _ := m.handleRevisionDiffResult(revisionDiffResult{
		index:    0,
		revision: 20,
		diff:     "Index: a.txt",
	})
	got := updated.(Model)
	assert.Equal(t, ScreenLoading, got.screen)
	assert.Equal(t, "Index: a.txt", got.diffs[0])
	assert.False(t, got.pendingDiffs[0])

	// The answer for the selected row switches views
	updated, _ = got.handleRevisionDiffResult(revisionDiffResult{
		index:    1,
		revision: 10,
		diff:     "Index: b.txt",
	})
	got = updated.(Model)
	assert.Equal(t, ScreenRevisionDiff, got.screen)
	assert.Equal(t, "Index: b.txt", got.diffs[1])
}

func TestHandleRevisionFilesResult(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.screen = ScreenLoading
	m.fileIndex = 3

	updated, _ := m.handleRevisionFilesResult(revisionFilesResult{
		revision: 10,
		files:    []string{"src/app.ts", "src/util.ts"},
	})

	got := updated.(Model)
	require.Equal(t, ScreenFileSelect, got.screen)
	assert.Equal(t, []string{"src/app.ts", "src/util.ts"}, got.fileList)
	assert.Equal(t, 0, got.fileIndex)
}

func TestHandleRevisionFilesResult_Empty(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.screen = ScreenLoading

	updated, _ := m.handleRevisionFilesResult(revisionFilesResult{revision: 10})

	got := updated.(Model)
	assert.Equal(t, ScreenChangesetList, got.screen)
	assert.NotEmpty(t, got.warningMessage)
}

func TestHandleUnifiedDiffResult_Warning(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.screen = ScreenLoading

	updated, _ := m.handleUnifiedDiffResult(unifiedDiffResult{
		target:  "src/app.ts",
		warning: svn.ErrNoMatchingRevisions,
	})

	got := updated.(Model)
	assert.Equal(t, ScreenFileSelect, got.screen)
	assert.Contains(t, got.warningMessage, "src/app.ts")
}

func TestHandleUnifiedDiffResult(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.screen = ScreenLoading

	updated, _ := m.handleUnifiedDiffResult(unifiedDiffResult{
		target: "src/app.ts",
		diff: &svn.UnifiedDiff{
			Span:   models.DiffSpan{From: 9, To: 20},
			Before: "a\n",
			After:  "b\n",
		},
	})

	got := updated.(Model)
	require.Equal(t, ScreenUnifiedDiff, got.screen)
	assert.Equal(t, "src/app.ts", got.unifiedTarget)
	assert.NotEmpty(t, got.unifiedRendered)
	assert.Equal(t, 0, got.scroll)
}

func TestResetSearch(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.ticketID = "1234"
	m.changesets = []models.Changeset{{Revision: 10}}
	m.diffs[0] = "Index: a.txt"
	m.fileList = []string{"a.txt"}
	m.scroll = 12

	m.resetSearch()

	assert.Empty(t, m.ticketID)
	assert.Nil(t, m.changesets)
	assert.Empty(t, m.diffs)
	assert.Nil(t, m.fileList)
	assert.Equal(t, 0, m.scroll)
}

func TestScreenString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MainMenu", ScreenMainMenu.String())
	assert.Equal(t, "UnifiedDiff", ScreenUnifiedDiff.String())
	assert.Equal(t, "Unknown", Screen(99).String())
}
