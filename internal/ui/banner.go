package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art shown in the application header
var Banner = []string{
	" _____ ___ __  ____     __ ___ _______        __",
	"|_   _|_ _|\\ \\/ /\\ \\   / /|_ _| ____\\ \\      / /",
	"  | |  | |  \\  /  \\ \\ / /  | ||  _|  \\ \\ /\\ / / ",
	"  | |  | |  /  \\   \\ V /   | || |___  \\ V  V /  ",
	"  |_| |___|/_/\\_\\   \\_/   |___|_____|  \\_/\\_/   ",
}

// RenderBanner returns the styled banner as a string
func RenderBanner(debug bool) string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(ColorCyan).
		Align(lipgloss.Center)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	// Add debug notice if logging is on
	if debug {
		lines = append(lines, "")
		warningStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Align(lipgloss.Center)
		lines = append(lines, warningStyle.Render("⚠ DEBUG LOGGING"))
	}

	return strings.Join(lines, "\n")
}
