package svn

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/wahlandcase/tixview/internal/models"
)

// parserState is the phase of the line-oriented log scanner
type parserState int

const (
	// stateIdle is between segments, waiting for a revision header
	stateIdle parserState = iota
	// stateHeaderParsed means the header matched, before any body line
	stateHeaderParsed
	// stateInChangedPaths is inside a "Changed paths:" block
	stateInChangedPaths
	// stateInMessage collects commit message lines until the next separator
	stateInMessage
)

// headerPattern matches `r123 | author | 2024-01-01 ... | 2 lines`.
// The trailing line-count token is ignored.
var headerPattern = regexp.MustCompile(`^r(\d+)\s*\|\s*([^|]+?)\s*\|\s*([^|]+?)\s*(\|.*)?$`)

// changedPathPattern matches `   M /trunk/file.txt` inside a changed-paths
// block: at least three leading spaces, a status letter, then the path.
var changedPathPattern = regexp.MustCompile(`^\s{3,}([AMD])\s+(.+)$`)

// segment accumulates fields for the log segment currently being scanned
type segment struct {
	revision     int64
	hasRevision  bool
	author       string
	date         string
	files        []models.FileChange
	messageLines []string
}

// flush converts the buffered segment into a Changeset, or nil when the
// segment is incomplete (no header matched) or its message does not
// reference the ticket. An unmatched header is the sentinel for "drop it".
func (s *segment) flush(ticketMarker string) *models.Changeset {
	if !s.hasRevision || len(s.messageLines) == 0 {
		return nil
	}
	message := strings.Join(s.messageLines, "\n")
	if !strings.Contains(message, ticketMarker) {
		return nil
	}
	cs := models.NewChangeset(s.revision, s.author, s.date, message, s.files)
	return &cs
}

// isSeparator reports whether the line is the dashed segment separator
func isSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 10 {
		return false
	}
	for _, r := range trimmed {
		if r != '-' {
			return false
		}
	}
	return true
}

// reduce advances the parser by one line. It is a pure transition function
// from (state, buffer, line) to (state, buffer, optional flushed changeset),
// so every transition is testable in isolation.
func reduce(state parserState, buf segment, line, ticketMarker string) (parserState, segment, *models.Changeset) {
	if isSeparator(line) {
		flushed := buf.flush(ticketMarker)
		return stateIdle, segment{}, flushed
	}

	switch state {
	case stateIdle:
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			buf.revision, _ = strconv.ParseInt(m[1], 10, 64)
			buf.hasRevision = true
			buf.author = m[2]
			buf.date = m[3]
			return stateHeaderParsed, buf, nil
		}
		if strings.TrimSpace(line) == "" {
			// Segment without a usable header; collect the message anyway
			// so the flush can drop it for the missing revision.
			return stateInMessage, buf, nil
		}
		// Malformed header line, ignore it and keep waiting.
		return stateIdle, buf, nil

	case stateHeaderParsed:
		if line == "Changed paths:" {
			return stateInChangedPaths, buf, nil
		}
		if strings.TrimSpace(line) == "" {
			return stateInMessage, buf, nil
		}
		return stateHeaderParsed, buf, nil

	case stateInChangedPaths:
		if strings.TrimSpace(line) == "" {
			return stateInMessage, buf, nil
		}
		if m := changedPathPattern.FindStringSubmatch(line); m != nil {
			changeType, _ := models.ChangeTypeFromLetter(m[1])
			buf.files = append(buf.files, models.NewFileChange(changeType, m[2]))
		}
		return stateInChangedPaths, buf, nil

	case stateInMessage:
		buf.messageLines = append(buf.messageLines, strings.TrimSpace(line))
		return stateInMessage, buf, nil
	}

	return state, buf, nil
}

// ParseLog converts verbose multi-revision svn log output into the ordered
// changesets whose commit message references the ticket. Membership is the
// literal substring "#<ticketID>" in the message; this is the authoritative
// filter even when the log was already produced by a server-side search,
// which can match the ticket number elsewhere in the text.
//
// Malformed segments are skipped silently.
func ParseLog(logText, ticketID string) []models.Changeset {
	marker := "#" + ticketID

	var changesets []models.Changeset
	state := stateIdle
	buf := segment{}

	for _, line := range strings.Split(logText, "\n") {
		var flushed *models.Changeset
		state, buf, flushed = reduce(state, buf, line, marker)
		if flushed != nil {
			changesets = append(changesets, *flushed)
		}
	}

	// The final segment has no trailing separator; flush it the same way.
	if flushed := buf.flush(marker); flushed != nil {
		changesets = append(changesets, *flushed)
	}

	return changesets
}

// SortNewestFirst orders changesets by revision descending for display
func SortNewestFirst(changesets []models.Changeset) {
	sort.Slice(changesets, func(i, j int) bool {
		return changesets[i].Revision > changesets[j].Revision
	})
}
