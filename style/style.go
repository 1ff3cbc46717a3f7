// Package style centralizes the lipgloss styling for everything Plume
// prints: prompts, hints, validation failures, and CLI status lines.
//
// Functions render and return strings rather than printing, so callers
// stay in control of the destination writer. Styling degrades to plain
// text automatically on non-terminal outputs.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
func SetVerbose(v bool) {
	verboseMode = v
}

// Prompt renders prompt text: cyan and bold.
func Prompt(msg string) string {
	return promptStyle.Render(msg)
}

// Hint renders secondary text such as default values and [Y/n] hints.
func Hint(msg string) string {
	return hintStyle.Render(msg)
}

// Problem renders a validation failure or error message in red.
func Problem(msg string) string {
	return problemStyle.Render(msg)
}

// Success renders a completed-operation message in green.
func Success(msg string) string {
	return successStyle.Render(msg)
}

// Verbose formats a debug line, or returns "" unless verbose mode is on.
func Verbose(format string, args ...any) string {
	if !verboseMode {
		return ""
	}
	return hintStyle.Render(fmt.Sprintf(format, args...))
}
