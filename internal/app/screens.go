package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenTicketInput
	ScreenLoading
	ScreenChangesetList
	ScreenRevisionDiff
	ScreenFileSelect
	ScreenUnifiedDiff
	ScreenSearchHistory
	ScreenError
)

func (s Screen) String() string {
	names := []string{
		"MainMenu",
		"TicketInput",
		"Loading",
		"ChangesetList",
		"RevisionDiff",
		"FileSelect",
		"UnifiedDiff",
		"SearchHistory",
		"Error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
