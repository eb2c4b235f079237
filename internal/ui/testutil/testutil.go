// Package testutil provides helpers for testing Bubble Tea components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so views can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the printed width of s in cells.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// ContainsLine reports whether any line of output contains substr.
func ContainsLine(output, substr string) bool {
	for _, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FindLine returns the first line of output containing substr, stripped of
// escape sequences.
func FindLine(output, substr string) string {
	for _, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines and drops trailing blank ones.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
