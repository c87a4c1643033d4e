package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffAddStyle    = lipgloss.NewStyle().Foreground(ColorGreen)
	diffDelStyle    = lipgloss.NewStyle().Foreground(ColorRed)
	diffHunkStyle   = lipgloss.NewStyle().Foreground(ColorCyan)
	diffFileStyle   = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	diffHeaderStyle = lipgloss.NewStyle().Foreground(ColorPurple)
	diffDimStyle    = lipgloss.NewStyle().Foreground(ColorDarkGray)
)

// HighlightDiff decorates raw svn diff output for display by coloring line
// prefixes. Purely syntactic; the diff body is shown verbatim and never
// parsed structurally.
func HighlightDiff(diffText string) string {
	lines := strings.Split(diffText, "\n")
	for i, line := range lines {
		lines[i] = highlightDiffLine(line)
	}
	return strings.Join(lines, "\n")
}

func highlightDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "Index:"):
		return diffHeaderStyle.Render(line)
	case strings.HasPrefix(line, "==="):
		return diffDimStyle.Render(line)
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return diffFileStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return diffHunkStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return diffAddStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return diffDelStyle.Render(line)
	default:
		return line
	}
}

// RenderContentDiff renders a line diff between the two endpoint contents
// of a file's change window, colored like the raw diff view
func RenderContentDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	src, dst, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lineArray)

	var b strings.Builder
	for _, d := range diffs {
		for _, line := range diffTextLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				b.WriteString(diffAddStyle.Render("+" + line))
			case diffmatchpatch.DiffDelete:
				b.WriteString(diffDelStyle.Render("-" + line))
			default:
				b.WriteString(" " + line)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// diffTextLines splits a diff chunk into lines, dropping the empty remnant
// after a trailing newline
func diffTextLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
