package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 colours used across the CLI.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleLink    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

// statusIcon is a coloured one-character prefix for a status line.
type statusIcon struct {
	glyph string
	style lipgloss.Style
}

var (
	iconSuccess = statusIcon{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	iconError   = statusIcon{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	iconWarning = statusIcon{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	iconInfo    = statusIcon{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

// uiOut receives every status line. Tests swap it for a buffer.
var uiOut io.Writer = os.Stdout

func printStatus(icon statusIcon, msg string) {
	fmt.Fprintln(uiOut, icon.style.Render(icon.glyph)+" "+msg)
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(iconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(iconWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// printStats prints "N bars · M entries · fresh|cached".
func printStats(bars, entries int, cached bool) {
	sep := StyleDim.Render(" · ")
	status := lipgloss.NewStyle().Foreground(colorGray).Render("fresh")
	if cached {
		status = lipgloss.NewStyle().Foreground(colorGreen).Render("cached")
	}
	parts := []string{
		StyleDim.Render(pluralize(bars, "bar")),
		StyleDim.Render(pluralize(entries, "entry")),
		status,
	}
	fmt.Fprintln(uiOut, "  "+strings.Join(parts, sep))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
