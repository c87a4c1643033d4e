package app

import (
	"time"

	"github.com/wahlandcase/tixview/internal/config"
	"github.com/wahlandcase/tixview/internal/models"
	"github.com/wahlandcase/tixview/internal/svn"

	tea "github.com/charmbracelet/bubbletea"
)

// pastSearch holds one earlier ticket search for the history screen
type pastSearch struct {
	ticketID    string
	workingCopy string
	changesets  int
	searchedAt  time.Time
}

// Model is the main application state
type Model struct {
	// Configuration
	config *config.Config
	client *svn.Client
	debug  bool

	// Navigation
	screen     Screen
	menuIndex  int
	shouldQuit bool

	// Working copy, loaded async at startup
	workingCopy *models.WorkingCopy

	// Search state
	ticketInput string
	ticketID    string
	changesets  []models.Changeset
	listIndex   int

	// Per-revision diff state. Results are tagged with the changeset index
	// they were requested for, so answers arriving out of order land on
	// the right entry.
	diffs        map[int]string
	pendingDiffs map[int]bool

	// Unified diff state
	fileList        []string
	fileIndex       int
	unified         *svn.UnifiedDiff
	unifiedRendered string
	unifiedTarget   string

	// Scrolling for diff screens
	scroll int

	// UI state
	errorMessage   string
	warningMessage string
	loadingMessage string
	spinnerFrame   int

	// Search history (survives restarts)
	searches     []pastSearch
	historyIndex int

	// Window size
	width  int
	height int
}

// New creates a new application model
func New(cfg *config.Config, client *svn.Client, debug bool) Model {
	return Model{
		config:       cfg,
		client:       client,
		debug:        debug,
		screen:       ScreenMainMenu,
		menuIndex:    0,
		diffs:        make(map[int]string),
		pendingDiffs: make(map[int]bool),
		width:        80,
		height:       24,
		searches:     loadHistory(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		loadWorkingCopyCmd(m.client),
	)
}

// tickMsg is sent on each tick for the spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// resetSearch clears all state belonging to the current ticket search
func (m *Model) resetSearch() {
	m.ticketID = ""
	m.changesets = nil
	m.listIndex = 0
	m.diffs = make(map[int]string)
	m.pendingDiffs = make(map[int]bool)
	m.fileList = nil
	m.fileIndex = 0
	m.unified = nil
	m.unifiedRendered = ""
	m.unifiedTarget = ""
	m.warningMessage = ""
	m.scroll = 0
}
