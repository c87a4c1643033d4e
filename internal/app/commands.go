package app

import (
	"errors"
	"os"

	"github.com/wahlandcase/tixview/internal/models"
	"github.com/wahlandcase/tixview/internal/svn"
	"github.com/wahlandcase/tixview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type workingCopyLoadedResult struct {
	workingCopy *models.WorkingCopy
	err         error
}

type searchResult struct {
	ticketID   string
	changesets []models.Changeset
	err        error
}

// revisionDiffResult carries the raw diff of one revision, tagged with the
// changeset index it was requested for. Two quick expansions can answer in
// either order; the index keeps them independent.
type revisionDiffResult struct {
	index    int
	revision int64
	diff     string
	err      error
}

// revisionFilesResult carries the resolved changed paths of one revision,
// fetched from its per-revision verbose log
type revisionFilesResult struct {
	revision int64
	files    []string
	err      error
}

type unifiedDiffResult struct {
	target  string
	diff    *svn.UnifiedDiff
	warning error
	err     error
}

// Commands

// loadWorkingCopyCmd walks up from the current directory to find the
// enclosing svn working copy
func loadWorkingCopyCmd(client *svn.Client) tea.Cmd {
	return func() tea.Msg {
		cwd, err := os.Getwd()
		if err != nil {
			return workingCopyLoadedResult{err: err}
		}
		wc, err := client.FindWorkingCopy(cwd)
		if err != nil {
			return workingCopyLoadedResult{err: err}
		}
		return workingCopyLoadedResult{workingCopy: wc}
	}
}

func searchTicketCmd(client *svn.Client, workingCopy, ticketID string) tea.Cmd {
	return func() tea.Msg {
		changesets, err := client.SearchTicket(workingCopy, ticketID)
		if err != nil {
			return searchResult{ticketID: ticketID, err: err}
		}
		return searchResult{ticketID: ticketID, changesets: changesets}
	}
}

func revisionDiffCmd(client *svn.Client, workingCopy string, index int, revision int64) tea.Cmd {
	return func() tea.Msg {
		diff, err := client.Diff(workingCopy, revision)
		return revisionDiffResult{index: index, revision: revision, diff: diff, err: err}
	}
}

func revisionFilesCmd(client *svn.Client, workingCopy string, revision int64) tea.Cmd {
	return func() tea.Msg {
		files, err := client.ChangedFilesAt(workingCopy, revision)
		return revisionFilesResult{revision: revision, files: files, err: err}
	}
}

func unifiedDiffCmd(client *svn.Client, workingCopy, target string, changesets []models.Changeset) tea.Cmd {
	return func() tea.Msg {
		diff, err := client.FetchUnifiedDiff(workingCopy, target, changesets)
		if err != nil {
			if errors.Is(err, svn.ErrNoMatchingRevisions) {
				// A warning for the user, not a crash
				return unifiedDiffResult{target: target, warning: err}
			}
			return unifiedDiffResult{target: target, err: err}
		}
		return unifiedDiffResult{target: target, diff: diff}
	}
}

// Result handlers

func (m Model) handleWorkingCopyLoaded(msg workingCopyLoadedResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = "Not inside an svn working copy: " + msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	m.workingCopy = msg.workingCopy
	return m, nil
}

func (m Model) handleSearchResult(msg searchResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}

	m.ticketID = msg.ticketID
	m.changesets = msg.changesets
	m.listIndex = 0
	m.screen = ScreenChangesetList

	if m.config.History.Enabled && m.workingCopy != nil {
		m.recordSearch(msg.ticketID, m.workingCopy.Path, len(msg.changesets))
	}
	return m, nil
}

func (m Model) handleRevisionDiffResult(msg revisionDiffResult) (tea.Model, tea.Cmd) {
	delete(m.pendingDiffs, msg.index)

	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}

	m.diffs[msg.index] = msg.diff

	// Only switch views when the answer is for the row still selected;
	// other answers just fill the cache.
	if m.screen == ScreenLoading && msg.index == m.listIndex {
		m.scroll = 0
		m.screen = ScreenRevisionDiff
	}
	return m, nil
}

func (m Model) handleRevisionFilesResult(msg revisionFilesResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	if len(msg.files) == 0 {
		m.warningMessage = "No changed paths reported for this revision"
		m.screen = ScreenChangesetList
		return m, nil
	}

	m.fileList = msg.files
	m.fileIndex = 0
	m.warningMessage = ""
	m.screen = ScreenFileSelect
	return m, nil
}

func (m Model) handleUnifiedDiffResult(msg unifiedDiffResult) (tea.Model, tea.Cmd) {
	if msg.warning != nil {
		m.warningMessage = "No revisions touch " + msg.target
		m.screen = ScreenFileSelect
		return m, nil
	}
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}

	m.unified = msg.diff
	m.unifiedTarget = msg.target
	m.unifiedRendered = ui.RenderContentDiff(msg.diff.Before, msg.diff.After)
	m.scroll = 0
	m.screen = ScreenUnifiedDiff
	return m, nil
}
