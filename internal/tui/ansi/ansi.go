// Package ansi holds ANSI-aware width helpers for rendering styled cells.
package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Strip removes all ANSI escape sequences from the string.
func Strip(s string) string {
	return ansi.Strip(s)
}

// VisualWidth returns the number of terminal cells s occupies.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// SliceHorizontal returns the part of s starting at visual column start with
// at most width columns. Escape sequences are preserved.
func SliceHorizontal(s string, start, width int) string {
	if start <= 0 {
		return ansi.Truncate(s, width, "")
	}
	head := ansi.Truncate(s, start+width, "")
	return ansi.TruncateLeft(head, start, "")
}

// ClipToWidth truncates s to at most w columns without ellipsis.
func ClipToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "")
}

// PadExact clips or pads s with spaces to exactly w columns.
func PadExact(s string, w int) string {
	if w <= 0 {
		return ""
	}
	vw := VisualWidth(s)
	if vw > w {
		return ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-vw)
}
