// Package ui renders sfkit's terminal output: colored status lines for
// install and remove operations, list headings, and the TTY check that
// gates the interactive pickers.
package ui

import (
	"github.com/fatih/color"
)

// Paint functions for the styles sfkit prints with. Each returns its
// input unchanged while colors are off.
var (
	// Success paints applied operations (green).
	Success = color.New(color.FgGreen).SprintFunc()
	// Warning paints skip notices and degraded-path warnings (yellow).
	Warning = color.New(color.FgYellow).SprintFunc()
	// Header paints section headings in list and config output (bold cyan).
	Header = color.New(color.FgCyan, color.Bold).SprintFunc()
	// Dim paints secondary detail lines (faint).
	Dim = color.New(color.Faint).SprintFunc()
)

// Symbols prefixed to status lines and list markers.
const (
	SymbolSuccess = "✓"
	SymbolWarning = "⚠"
)

// status joins a painted symbol and an optional message.
func status(paint func(a ...interface{}) string, symbol, msg string) string {
	if msg == "" {
		return paint(symbol)
	}
	return paint(symbol) + " " + msg
}

// StatusSuccess renders msg behind a green check mark.
func StatusSuccess(msg string) string {
	return status(Success, SymbolSuccess, msg)
}

// StatusWarning renders msg behind a yellow warning sign.
func StatusWarning(msg string) string {
	return status(Warning, SymbolWarning, msg)
}

// ApplyMode applies a configured color mode. "always" forces colors on,
// "never" forces them off, and anything else (including "auto") leaves
// the color package's own terminal detection in charge.
func ApplyMode(mode string) {
	switch mode {
	case "always":
		EnableColors()
	case "never":
		DisableColors()
	}
}

// EnableColors turns colored output on.
func EnableColors() {
	color.NoColor = false
}

// DisableColors turns colored output off, for piped output or users
// who prefer plain text.
func DisableColors() {
	color.NoColor = true
}

// IsColorEnabled reports whether colored output is currently active.
func IsColorEnabled() bool {
	return !color.NoColor
}
