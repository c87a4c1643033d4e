package models

import "strings"

// Changeset contains one committed revision that references the ticket
type Changeset struct {
	// Revision is the repository-wide revision number
	Revision int64
	// Author who committed the revision
	Author string
	// Date string exactly as the svn log printed it (display only)
	Date string
	// Message is the full multi-line commit message
	Message string
	// Files touched by the revision, in log order
	Files []FileChange
}

// NewChangeset creates a new Changeset
func NewChangeset(revision int64, author, date, message string, files []FileChange) Changeset {
	return Changeset{
		Revision: revision,
		Author:   author,
		Date:     date,
		Message:  message,
		Files:    files,
	}
}

// Summary returns the first line of the commit message for list display
func (c Changeset) Summary() string {
	line, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(line)
}
