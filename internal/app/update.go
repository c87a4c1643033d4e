package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	// Task result messages
	case workingCopyLoadedResult:
		return m.handleWorkingCopyLoaded(msg)

	case searchResult:
		return m.handleSearchResult(msg)

	case revisionDiffResult:
		return m.handleRevisionDiffResult(msg)

	case revisionFilesResult:
		return m.handleRevisionFilesResult(msg)

	case unifiedDiffResult:
		return m.handleUnifiedDiffResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenMainMenu:
		return m.handleMainMenuKey(msg)
	case ScreenTicketInput:
		return m.handleTicketInputKey(msg)
	case ScreenLoading:
		return m.handleLoadingKey(msg)
	case ScreenChangesetList:
		return m.handleChangesetListKey(msg)
	case ScreenRevisionDiff:
		return m.handleDiffScrollKey(msg, ScreenChangesetList)
	case ScreenFileSelect:
		return m.handleFileSelectKey(msg)
	case ScreenUnifiedDiff:
		return m.handleDiffScrollKey(msg, ScreenFileSelect)
	case ScreenSearchHistory:
		return m.handleSearchHistoryKey(msg)
	case ScreenError:
		return m.handleErrorKey(msg)
	}

	return m, nil
}

func (m Model) handleMainMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		} else {
			m.menuIndex = 2 // Wrap to bottom
		}
	case "down", "j":
		if m.menuIndex < 2 {
			m.menuIndex++
		} else {
			m.menuIndex = 0 // Wrap to top
		}
	case "enter":
		return m.selectMainMenuItem()
	case "1":
		m.menuIndex = 0
		return m.selectMainMenuItem()
	case "2":
		m.menuIndex = 1
		return m.selectMainMenuItem()
	case "3":
		m.menuIndex = 2
		return m.selectMainMenuItem()
	}
	return m, nil
}

func (m Model) selectMainMenuItem() (tea.Model, tea.Cmd) {
	switch m.menuIndex {
	case 0: // Search ticket
		if m.workingCopy == nil {
			m.errorMessage = "No svn working copy found under the current directory"
			m.screen = ScreenError
			return m, nil
		}
		m.resetSearch()
		m.ticketInput = ""
		m.screen = ScreenTicketInput
	case 1: // Recent searches
		m.historyIndex = 0
		m.screen = ScreenSearchHistory
	case 2: // Quit
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTicketInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = ScreenMainMenu
		return m, nil
	case tea.KeyBackspace:
		if len(m.ticketInput) > 0 {
			m.ticketInput = m.ticketInput[:len(m.ticketInput)-1]
		}
		return m, nil
	case tea.KeyEnter:
		if m.ticketInput == "" {
			return m, nil
		}
		m.loadingMessage = "Searching changesets for #" + m.ticketInput + "..."
		m.screen = ScreenLoading
		return m, searchTicketCmd(m.client, m.workingCopy.Path, m.ticketInput)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				m.ticketInput += string(r)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleLoadingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// No cancellation of the external call; esc just returns to the list
	// and the answer fills the cache when it arrives.
	if msg.Type == tea.KeyEsc {
		if m.changesets != nil {
			m.screen = ScreenChangesetList
		} else {
			m.screen = ScreenMainMenu
		}
	}
	return m, nil
}

func (m Model) handleChangesetListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = ScreenMainMenu
		return m, nil
	case "up", "k":
		if m.listIndex > 0 {
			m.listIndex--
		}
	case "down", "j":
		if m.listIndex < len(m.changesets)-1 {
			m.listIndex++
		}
	case "enter", "d":
		return m.openRevisionDiff(m.listIndex)
	case "f":
		if m.listIndex >= len(m.changesets) {
			return m, nil
		}
		revision := m.changesets[m.listIndex].Revision
		m.loadingMessage = fmt.Sprintf("Loading changed paths of r%d...", revision)
		m.screen = ScreenLoading
		return m, revisionFilesCmd(m.client, m.workingCopy.Path, revision)
	case "s":
		m.resetSearch()
		m.ticketInput = ""
		m.screen = ScreenTicketInput
	}
	return m, nil
}

// openRevisionDiff shows the cached diff for the row, or requests it.
// Requests already in flight are not repeated.
func (m Model) openRevisionDiff(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.changesets) {
		return m, nil
	}
	if _, ok := m.diffs[index]; ok {
		m.scroll = 0
		m.screen = ScreenRevisionDiff
		return m, nil
	}

	revision := m.changesets[index].Revision
	m.loadingMessage = fmt.Sprintf("Loading diff for r%d...", revision)
	m.screen = ScreenLoading
	if m.pendingDiffs[index] {
		return m, nil
	}
	m.pendingDiffs[index] = true
	return m, revisionDiffCmd(m.client, m.workingCopy.Path, index, revision)
}

func (m Model) handleFileSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.warningMessage = ""
		m.screen = ScreenChangesetList
		return m, nil
	case "up", "k":
		m.warningMessage = ""
		if m.fileIndex > 0 {
			m.fileIndex--
		}
	case "down", "j":
		m.warningMessage = ""
		if m.fileIndex < len(m.fileList)-1 {
			m.fileIndex++
		}
	case "enter":
		if m.fileIndex >= len(m.fileList) {
			return m, nil
		}
		target := m.fileList[m.fileIndex]
		m.loadingMessage = "Building unified diff for " + target + "..."
		m.screen = ScreenLoading
		return m, unifiedDiffCmd(m.client, m.workingCopy.Path, target, m.changesets)
	}
	return m, nil
}

// handleDiffScrollKey handles the shared scrolling keys of both diff
// screens; esc returns to the given screen
func (m Model) handleDiffScrollKey(msg tea.KeyMsg, back Screen) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.scroll = 0
		m.screen = back
		return m, nil
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "down", "j":
		m.scroll++
	case "pgup", "b":
		m.scroll -= m.diffPageSize()
		if m.scroll < 0 {
			m.scroll = 0
		}
	case "pgdown", " ":
		m.scroll += m.diffPageSize()
	case "g":
		m.scroll = 0
	}
	return m, nil
}

func (m Model) handleSearchHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = ScreenMainMenu
		return m, nil
	case "up", "k":
		if m.historyIndex > 0 {
			m.historyIndex--
		}
	case "down", "j":
		if m.historyIndex < len(m.searches)-1 {
			m.historyIndex++
		}
	case "enter":
		if m.historyIndex >= len(m.searches) || m.workingCopy == nil {
			return m, nil
		}
		entry := m.searches[m.historyIndex]
		m.resetSearch()
		m.ticketInput = entry.ticketID
		m.loadingMessage = "Searching changesets for #" + entry.ticketID + "..."
		m.screen = ScreenLoading
		return m, searchTicketCmd(m.client, m.workingCopy.Path, entry.ticketID)
	}
	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q":
		m.errorMessage = ""
		m.screen = ScreenMainMenu
	}
	return m, nil
}
