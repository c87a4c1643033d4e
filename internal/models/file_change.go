package models

// ChangeType represents how a file was touched within a changeset
type ChangeType int

const (
	// Added means the file was created in this revision
	Added ChangeType = iota
	// Modified means the file content changed in this revision
	Modified
	// Deleted means the file was removed in this revision
	Deleted
)

// ChangeTypeFromLetter maps an svn status letter (A/M/D) to a ChangeType
func ChangeTypeFromLetter(letter string) (ChangeType, bool) {
	switch letter {
	case "A":
		return Added, true
	case "M":
		return Modified, true
	case "D":
		return Deleted, true
	default:
		return Modified, false
	}
}

// Letter returns the single-letter status code used in svn log output
func (c ChangeType) Letter() string {
	switch c {
	case Added:
		return "A"
	case Modified:
		return "M"
	case Deleted:
		return "D"
	default:
		return "?"
	}
}

// Display returns a human readable name for this change type
func (c ChangeType) Display() string {
	switch c {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// FileChange is one path touched within a changeset
type FileChange struct {
	// Type of the change (added/modified/deleted)
	Type ChangeType
	// Path as reported by the log, leading slash and all
	Path string
}

// NewFileChange creates a new FileChange
func NewFileChange(changeType ChangeType, path string) FileChange {
	return FileChange{
		Type: changeType,
		Path: path,
	}
}
