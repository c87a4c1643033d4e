package models

// WorkingCopy contains information about a local svn checkout
type WorkingCopy struct {
	// Path to the checkout root
	Path string
	// DisplayName shown in the UI (usually the folder name)
	DisplayName string
}

// NewWorkingCopy creates a new WorkingCopy
func NewWorkingCopy(path, displayName string) WorkingCopy {
	return WorkingCopy{
		Path:        path,
		DisplayName: displayName,
	}
}
