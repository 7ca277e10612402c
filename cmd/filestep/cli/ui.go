// Package cli holds the plain-terminal text helpers for the filestep
// commands.
package cli

import "fmt"

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// ErrorText formats text as an error message
func ErrorText(text string) string {
	return colorRed + text + colorReset
}

// SuccessText formats text as a success message
func SuccessText(text string) string {
	return colorGreen + text + colorReset
}

// WarningText formats text as a warning message
func WarningText(text string) string {
	return colorYellow + text + colorReset
}

// InfoText formats text as an informational message
func InfoText(text string) string {
	return colorBlue + text + colorReset
}

// HeaderText formats text as a section header
func HeaderText(text string) string {
	return colorCyan + colorBold + text + colorReset
}

// Bullet renders one list line with a cyan marker.
func Bullet(text string) string {
	return fmt.Sprintf("  %s•%s %s", colorCyan, colorReset, text)
}
