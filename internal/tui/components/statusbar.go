package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/diffpane/internal/diffview"
	"github.com/interpretive-systems/diffpane/internal/scrollsync"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
	stats     diffview.Stats
	current   int
	mode      scrollsync.Mode
	percent   int
	keyBuffer string
	message   string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{current: -1}
}

// SetStats updates the pass summary.
func (s *StatusBar) SetStats(st diffview.Stats) {
	s.stats = st
}

// SetCurrent sets the zero-based index of the focused change, -1 for none.
func (s *StatusBar) SetCurrent(i int) {
	s.current = i
}

// SetMode updates the mode label.
func (s *StatusBar) SetMode(m scrollsync.Mode) {
	s.mode = m
}

// SetPercent updates the scroll position label.
func (s *StatusBar) SetPercent(p int) {
	s.percent = p
}

// SetKeyBuffer updates the key buffer display.
func (s *StatusBar) SetKeyBuffer(buf string) {
	s.keyBuffer = buf
}

// SetMessage shows a transient message, e.g. a load error.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// ChangeLabel returns "change i/N", or "N changes" with nothing focused.
func (s *StatusBar) ChangeLabel() string {
	if s.stats.Blocks == 0 {
		return "no changes"
	}
	if s.current < 0 {
		return fmt.Sprintf("%d changes", s.stats.Blocks)
	}
	return fmt.Sprintf("change %d/%d", s.current+1, s.stats.Blocks)
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
	leftText := "h: help"
	if s.keyBuffer != "" {
		leftText = s.keyBuffer
	}
	leftText += "  |  " + s.ChangeLabel() + fmt.Sprintf("  +%d -%d", s.stats.Added, s.stats.Removed)
	if s.message != "" {
		leftText += "  |  " + s.message
	}

	leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)
	right := lipgloss.NewStyle().Faint(true).
		Render(fmt.Sprintf("%s  %d%%", s.mode, s.percent))

	// Ensure right part is always visible
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftStyled
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + right
}
