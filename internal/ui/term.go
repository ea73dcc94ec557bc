package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Sowing: bold green, the day work happens
	colorSow = color.New(color.FgGreen, color.Bold)

	// Harvest: yellow for ready crops
	colorHarvest = color.New(color.FgYellow, color.Bold)

	// Growing: cyan for occupied slots
	colorGrowing = color.New(color.FgCyan)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for empty slots and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatSow(s string) string {
	return colorSow.Sprint(s)
}

func formatHarvest(s string) string {
	return colorHarvest.Sprint(s)
}

func formatGrowing(s string) string {
	return colorGrowing.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
