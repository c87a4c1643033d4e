package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/tixview/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// diffPageSize is the scroll step for pgup/pgdown on diff screens
func (m Model) diffPageSize() int {
	size := m.height - 14
	if size < 5 {
		size = 5
	}
	return size
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	bannerLines := len(ui.Banner)
	if m.debug {
		bannerLines += 2
	}
	statusHeight := 3

	availableHeight := m.height - bannerLines - 3 - statusHeight
	if availableHeight < 10 {
		availableHeight = 10
	}

	var sections []string

	sections = append(sections, ui.RenderBanner(m.debug))
	sections = append(sections, "")

	contentWidth := m.contentWidth()

	// Screens that manage their own full layout (no outer box)
	fullLayoutScreens := m.screen == ScreenChangesetList ||
		m.screen == ScreenRevisionDiff ||
		m.screen == ScreenFileSelect ||
		m.screen == ScreenUnifiedDiff

	if fullLayoutScreens {
		sections = append(sections, m.renderContentWithHeight(availableHeight))
	} else {
		outerBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorPurple).
			Width(contentWidth).
			Padding(1, 2)

		sections = append(sections, outerBox.Render(m.renderContentWithHeight(availableHeight)))
	}

	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	content := strings.Join(sections, "\n")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderContentWithHeight(availableHeight int) string {
	switch m.screen {
	case ScreenMainMenu:
		return m.renderMainMenu()
	case ScreenTicketInput:
		return m.renderTicketInput()
	case ScreenLoading:
		return m.renderLoading()
	case ScreenChangesetList:
		return m.renderChangesetList(availableHeight)
	case ScreenRevisionDiff:
		return m.renderRevisionDiff(availableHeight)
	case ScreenFileSelect:
		return m.renderFileSelect(availableHeight)
	case ScreenUnifiedDiff:
		return m.renderUnifiedDiff(availableHeight)
	case ScreenSearchHistory:
		return m.renderSearchHistory()
	case ScreenError:
		return m.renderError()
	}
	return ""
}

func (m Model) renderMainMenu() string {
	var lines []string

	wcStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	if m.workingCopy != nil {
		lines = append(lines, wcStyle.Render("Working copy: ")+
			lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true).Render(m.workingCopy.DisplayName)+
			wcStyle.Render(" ("+m.workingCopy.Path+")"))
	} else {
		lines = append(lines, wcStyle.Render("Detecting working copy..."))
	}
	lines = append(lines, "")

	items := []struct {
		title string
		desc  string
		color lipgloss.Color
	}{
		{"Search Ticket", "Find changesets referencing a #ticket", ui.ColorCyan},
		{"Recent Searches", "Re-run an earlier ticket search", ui.ColorMagenta},
		{"Quit", "Exit the application", ui.ColorRed},
	}

	for i, item := range items {
		selected := i == m.menuIndex
		titleStyle := lipgloss.NewStyle().Foreground(item.color).Bold(selected)
		descStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		lines = append(lines, ui.ArrowStyled(selected, item.color)+titleStyle.Render(fmt.Sprintf("%d. %s", i+1, item.title)))
		lines = append(lines, "     "+descStyle.Render(item.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderTicketInput() string {
	var lines []string

	lines = append(lines, ui.SectionHeader("TICKET SEARCH", ui.ColorCyan))
	lines = append(lines, "")
	lines = append(lines, "  Enter the ticket number to look up:")
	lines = append(lines, "")

	hashStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	inputStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
	cursor := lipgloss.NewStyle().Foreground(ui.ColorYellow).Render("█")

	lines = append(lines, "  "+hashStyle.Render("#")+inputStyle.Render(m.ticketInput)+cursor)
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorDarkGray).Render(
		"  Changesets whose commit message contains #<number> will be listed."))

	return strings.Join(lines, "\n")
}

func (m Model) renderLoading() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	msgStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	return fmt.Sprintf("\n  %s %s\n",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		msgStyle.Render(m.loadingMessage),
	)
}

func (m Model) renderChangesetList(availableHeight int) string {
	var lines []string

	header := fmt.Sprintf("CHANGESETS FOR #%s", m.ticketID)
	lines = append(lines, ui.SectionHeader(header, ui.ColorCyan))
	lines = append(lines, "")

	if len(m.changesets) == 0 {
		warnStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		lines = append(lines, warnStyle.Render("  No changesets reference #"+m.ticketID+" in this working copy."))
		return strings.Join(lines, "\n")
	}

	if m.warningMessage != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorYellow).Render("  ⚠ "+m.warningMessage))
		lines = append(lines, "")
	}

	// Rows for the list itself, windowed around the selection
	listHeight := availableHeight - 12
	if listHeight < 3 {
		listHeight = 3
	}
	start := 0
	if m.listIndex >= listHeight {
		start = m.listIndex - listHeight + 1
	}

	authorStyle := lipgloss.NewStyle().Foreground(ui.ColorMagenta)
	dateStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	for i := start; i < len(m.changesets) && i < start+listHeight; i++ {
		cs := m.changesets[i]
		selected := i == m.listIndex
		summaryStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(selected)
		lines = append(lines, fmt.Sprintf("%s%s  %s %s  %s",
			ui.ArrowStyled(selected, ui.ColorCyan),
			ui.RevisionBadge(cs.Revision, selected),
			authorStyle.Render(cs.Author),
			dateStyle.Render(cs.Date),
			m.highlightTicketRefs(cs.Summary(), summaryStyle),
		))
	}

	// Detail pane for the selected changeset
	lines = append(lines, "")
	lines = append(lines, ui.SectionHeader("CHANGED PATHS", ui.ColorPurple))
	selectedCs := m.changesets[m.listIndex]
	if len(selectedCs.Files) == 0 {
		lines = append(lines, dateStyle.Render("  (no changed paths reported)"))
	}
	maxFiles := 6
	for i, fc := range selectedCs.Files {
		if i == maxFiles {
			lines = append(lines, dateStyle.Render(fmt.Sprintf("  ... and %d more", len(selectedCs.Files)-maxFiles)))
			break
		}
		letterStyle := lipgloss.NewStyle().Foreground(ui.ChangeTypeColor(fc.Type)).Bold(true)
		lines = append(lines, fmt.Sprintf("  %s %s", letterStyle.Render(fc.Type.Letter()), fc.Path))
	}

	return strings.Join(lines, "\n")
}

// highlightTicketRefs renders ticket references inside the text with their
// own color, everything else in the base style
func (m Model) highlightTicketRefs(text string, base lipgloss.Style) string {
	re := m.config.TicketRegex()
	if re == nil {
		return base.Render(text)
	}

	ticketStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(base.Render(text[last:loc[0]]))
		b.WriteString(ticketStyle.Render(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(base.Render(text[last:]))
	return b.String()
}

func (m Model) renderRevisionDiff(availableHeight int) string {
	cs := m.changesets[m.listIndex]

	var lines []string
	header := fmt.Sprintf("DIFF r%d", cs.Revision)
	lines = append(lines, ui.SectionHeader(header, ui.ColorCyan))
	metaStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	lines = append(lines, metaStyle.Render(fmt.Sprintf("  %s  %s", cs.Author, cs.Date)))
	lines = append(lines, "")

	diff, ok := m.diffs[m.listIndex]
	if !ok {
		lines = append(lines, metaStyle.Render("  (diff not loaded)"))
		return strings.Join(lines, "\n")
	}

	body := strings.Split(ui.HighlightDiff(diff), "\n")
	lines = append(lines, m.windowLines(body, availableHeight-4)...)

	return strings.Join(lines, "\n")
}

func (m Model) renderFileSelect(availableHeight int) string {
	var lines []string

	lines = append(lines, ui.SectionHeader("SELECT FILE FOR UNIFIED DIFF", ui.ColorCyan))
	lines = append(lines, "")

	if m.warningMessage != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorYellow).Render("  ⚠ "+m.warningMessage))
		lines = append(lines, "")
	}

	listHeight := availableHeight - 6
	if listHeight < 3 {
		listHeight = 3
	}
	start := 0
	if m.fileIndex >= listHeight {
		start = m.fileIndex - listHeight + 1
	}

	for i := start; i < len(m.fileList) && i < start+listHeight; i++ {
		selected := i == m.fileIndex
		fileStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(selected)
		lines = append(lines, ui.ArrowStyled(selected, ui.ColorCyan)+fileStyle.Render(m.fileList[i]))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderUnifiedDiff(availableHeight int) string {
	var lines []string

	lines = append(lines, ui.SectionHeader("UNIFIED DIFF", ui.ColorCyan))
	metaStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	span := m.unified.Span
	lines = append(lines, metaStyle.Render(fmt.Sprintf("  %s  %s", m.unifiedTarget, span.Display())))
	if span.From < 1 {
		lines = append(lines, metaStyle.Render("  (file did not exist before its first change)"))
	}
	lines = append(lines, "")

	body := strings.Split(m.unifiedRendered, "\n")
	lines = append(lines, m.windowLines(body, availableHeight-4)...)

	return strings.Join(lines, "\n")
}

func (m Model) renderSearchHistory() string {
	var lines []string

	lines = append(lines, ui.SectionHeader("RECENT SEARCHES", ui.ColorMagenta))
	lines = append(lines, "")

	if len(m.searches) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorDarkGray).Render("  No searches yet."))
		return strings.Join(lines, "\n")
	}

	countStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	for i, s := range m.searches {
		selected := i == m.historyIndex
		ticketStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(selected)
		lines = append(lines, fmt.Sprintf("%s%s %s",
			ui.ArrowStyled(selected, ui.ColorMagenta),
			ticketStyle.Render("#"+s.ticketID),
			countStyle.Render(fmt.Sprintf("%d changesets · %s · %s",
				s.changesets, s.workingCopy, s.searchedAt.Format("Jan 2 15:04"))),
		))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderError() string {
	errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

	return errStyle.Render("  ✗ Error") + "\n\n  " + msgStyle.Render(m.errorMessage)
}

// windowLines returns a scroll window over the lines, clamped to content
func (m Model) windowLines(lines []string, height int) []string {
	if height < 1 {
		height = 1
	}
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := m.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}
	end := scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[scroll:end]
}

func (m Model) renderStatusBar() string {
	var hints []string

	switch m.screen {
	case ScreenMainMenu:
		hints = []string{
			ui.KeyBinding("↑/↓", "navigate", ui.ColorCyan),
			ui.KeyBinding("enter", "select", ui.ColorCyan),
			ui.KeyBinding("q", "quit", ui.ColorRed),
		}
	case ScreenTicketInput:
		hints = []string{
			ui.KeyBinding("0-9", "type", ui.ColorCyan),
			ui.KeyBinding("enter", "search", ui.ColorGreen),
			ui.KeyBinding("esc", "back", ui.ColorRed),
		}
	case ScreenChangesetList:
		hints = []string{
			ui.KeyBinding("↑/↓", "navigate", ui.ColorCyan),
			ui.KeyBinding("enter", "diff", ui.ColorGreen),
			ui.KeyBinding("f", "unified diff", ui.ColorYellow),
			ui.KeyBinding("s", "new search", ui.ColorMagenta),
			ui.KeyBinding("esc", "menu", ui.ColorRed),
		}
	case ScreenRevisionDiff, ScreenUnifiedDiff:
		hints = []string{
			ui.KeyBinding("↑/↓", "scroll", ui.ColorCyan),
			ui.KeyBinding("pgup/pgdn", "page", ui.ColorCyan),
			ui.KeyBinding("g", "top", ui.ColorCyan),
			ui.KeyBinding("esc", "back", ui.ColorRed),
		}
	case ScreenFileSelect:
		hints = []string{
			ui.KeyBinding("↑/↓", "navigate", ui.ColorCyan),
			ui.KeyBinding("enter", "diff window", ui.ColorGreen),
			ui.KeyBinding("esc", "back", ui.ColorRed),
		}
	case ScreenSearchHistory:
		hints = []string{
			ui.KeyBinding("enter", "search again", ui.ColorGreen),
			ui.KeyBinding("esc", "menu", ui.ColorRed),
		}
	default:
		hints = []string{
			ui.KeyBinding("esc", "back", ui.ColorRed),
		}
	}

	barStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorDarkGray).
		Padding(0, 2)

	return barStyle.Render(strings.Join(hints, "   "))
}
