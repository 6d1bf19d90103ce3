package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Course names: bold cyan
	colorCourse = color.New(color.FgCyan, color.Bold)

	// Warnings and clashes: yellow to make it pop
	colorWarning = color.New(color.FgYellow)

	// Clash markers: bold red
	colorClash = color.New(color.FgRed, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Confirmations: green
	colorSuccess = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatCourse(s string) string {
	return colorCourse.Sprint(s)
}

func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

func formatClash(s string) string {
	return colorClash.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatSuccess(s string) string {
	return colorSuccess.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
