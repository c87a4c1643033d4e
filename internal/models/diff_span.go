package models

import "fmt"

// DiffSpan bounds the cumulative change window for one file across revisions.
// From is the revision immediately preceding the file's first observed change,
// so its content may legitimately not exist yet.
type DiffSpan struct {
	From int64
	To   int64
}

// Display returns the span formatted for status lines, e.g. "r9 → r20"
func (s DiffSpan) Display() string {
	return fmt.Sprintf("r%d → r%d", s.From, s.To)
}
