package svn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/tixview/internal/models"
)

const separator = "------------------------------------------------------------------------"

func sampleLog() string {
	return strings.Join([]string{
		separator,
		"r10 | alice | 2024-03-01 10:00:00 +0000 (Fri, 01 Mar 2024) | 2 lines",
		"Changed paths:",
		"   A /trunk/a.txt",
		"   M /trunk/b.txt",
		"",
		"fixes #100",
		"second message line",
		separator,
		"r12 | bob | 2024-03-02 11:00:00 +0000 (Sat, 02 Mar 2024) | 1 line",
		"Changed paths:",
		"   M /trunk/b.txt",
		"",
		"unrelated work for #200",
		separator,
		"r15 | alice | 2024-03-03 12:00:00 +0000 (Sun, 03 Mar 2024) | 1 line",
		"Changed paths:",
		"   D /trunk/a.txt",
		"",
		"cleanup, see #100",
		separator,
	}, "\n")
}

func TestParseLog_FiltersByTicketReference(t *testing.T) {
	t.Parallel()

	changesets := ParseLog(sampleLog(), "100")
	require.Len(t, changesets, 2)

	assert.Equal(t, int64(10), changesets[0].Revision)
	assert.Equal(t, "alice", changesets[0].Author)
	assert.Equal(t, "2024-03-01 10:00:00 +0000 (Fri, 01 Mar 2024)", changesets[0].Date)
	assert.Equal(t, "fixes #100\nsecond message line", changesets[0].Message)

	assert.Equal(t, int64(15), changesets[1].Revision)

	// Every emitted changeset references the ticket and has a revision
	for _, cs := range changesets {
		assert.Contains(t, cs.Message, "#100")
		assert.Positive(t, cs.Revision)
	}
}

func TestParseLog_RoundTripSingleSegment(t *testing.T) {
	t.Parallel()

	logText := strings.Join([]string{
		separator,
		"r7 | carol | 2024-04-01 09:00:00 +0000 | 1 line",
		"Changed paths:",
		"   A /trunk/a.txt",
		"   M /trunk/b.txt",
		"",
		"fixes #100",
		separator,
	}, "\n")

	changesets := ParseLog(logText, "100")
	require.Len(t, changesets, 1)

	want := []models.FileChange{
		models.NewFileChange(models.Added, "/trunk/a.txt"),
		models.NewFileChange(models.Modified, "/trunk/b.txt"),
	}
	assert.Equal(t, want, changesets[0].Files)
}

func TestParseLog_WrongTicketYieldsNothing(t *testing.T) {
	t.Parallel()

	logText := strings.Join([]string{
		separator,
		"r7 | carol | 2024-04-01 09:00:00 +0000 | 1 line",
		"Changed paths:",
		"   A /trunk/a.txt",
		"",
		"fixes #200",
		separator,
	}, "\n")

	assert.Empty(t, ParseLog(logText, "100"))
}

func TestParseLog_SubstringMembershipKeepsLongerTicket(t *testing.T) {
	t.Parallel()

	// Membership is literal substring containment, so a #1001 message is
	// kept for a search of 100.
	logText := strings.Join([]string{
		separator,
		"r7 | carol | 2024-04-01 09:00:00 +0000 | 1 line",
		"",
		"fixes #1001",
		separator,
	}, "\n")

	changesets := ParseLog(logText, "100")
	assert.Len(t, changesets, 1)
}

func TestParseLog_Idempotent(t *testing.T) {
	t.Parallel()

	first := ParseLog(sampleLog(), "100")
	second := ParseLog(sampleLog(), "100")
	assert.Equal(t, first, second)
}

func TestParseLog_FinalSegmentWithoutTrailingSeparator(t *testing.T) {
	t.Parallel()

	logText := strings.Join([]string{
		separator,
		"r3 | dave | 2024-05-01 08:00:00 +0000 | 1 line",
		"",
		"touches #42",
	}, "\n")

	changesets := ParseLog(logText, "42")
	require.Len(t, changesets, 1)
	assert.Equal(t, int64(3), changesets[0].Revision)
}

func TestParseLog_MalformedHeaderDropsSegment(t *testing.T) {
	t.Parallel()

	logText := strings.Join([]string{
		separator,
		"r999 missing pipes entirely",
		"",
		"mentions #42 but the header never parsed",
		separator,
	}, "\n")

	assert.Empty(t, ParseLog(logText, "42"))
}

func TestParseLog_SegmentWithoutChangedPaths(t *testing.T) {
	t.Parallel()

	logText := strings.Join([]string{
		separator,
		"r8 | erin | 2024-06-01 08:00:00 +0000 | 1 line",
		"",
		"message only, no paths block, for #9",
		separator,
	}, "\n")

	changesets := ParseLog(logText, "9")
	require.Len(t, changesets, 1)
	assert.Empty(t, changesets[0].Files)
	assert.Equal(t, "erin", changesets[0].Author)
}

func TestParseLog_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseLog("", "100"))
	assert.Empty(t, ParseLog(separator, "100"))
}

func TestSortNewestFirst(t *testing.T) {
	t.Parallel()

	changesets := []models.Changeset{
		{Revision: 10},
		{Revision: 20},
		{Revision: 15},
	}
	SortNewestFirst(changesets)

	assert.Equal(t, int64(20), changesets[0].Revision)
	assert.Equal(t, int64(15), changesets[1].Revision)
	assert.Equal(t, int64(10), changesets[2].Revision)
}

func TestReduce_SeparatorFlushesBuffer(t *testing.T) {
	t.Parallel()

	buf := segment{
		revision:     5,
		hasRevision:  true,
		author:       "alice",
		date:         "2024-01-01",
		messageLines: []string{"fixes #7"},
	}

	state, next, flushed := reduce(stateInMessage, buf, separator, "#7")
	assert.Equal(t, stateIdle, state)
	assert.Equal(t, segment{}, next)
	require.NotNil(t, flushed)
	assert.Equal(t, int64(5), flushed.Revision)
}

func TestReduce_HeaderOnlyRecognizedBetweenSegments(t *testing.T) {
	t.Parallel()

	// A message line that happens to look like a header must stay message text
	buf := segment{revision: 5, hasRevision: true, messageLines: []string{"start"}}
	state, next, flushed := reduce(stateInMessage, buf, "r6 | mallory | 2024-01-01 | 1 line", "#7")

	assert.Equal(t, stateInMessage, state)
	assert.Nil(t, flushed)
	assert.Equal(t, int64(5), next.revision)
	assert.Contains(t, next.messageLines, "r6 | mallory | 2024-01-01 | 1 line")
}
