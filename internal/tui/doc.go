// Package tui styles human-readable command output with lipgloss.
// Styling is disabled for non-terminal writers and when NO_COLOR or CI is set.
package tui
