package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/tixview/internal/models"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorBlue     = lipgloss.Color("#5555FF")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// ChangeTypeColor maps a file change type to its display color
func ChangeTypeColor(changeType models.ChangeType) lipgloss.Color {
	switch changeType {
	case models.Added:
		return ColorGreen
	case models.Deleted:
		return ColorRed
	case models.Modified:
		return ColorYellow
	default:
		return ColorWhite
	}
}
