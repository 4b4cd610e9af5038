package search

import (
	"fmt"
	"strings"

	"github.com/interpretive-systems/diffpane/internal/theme"
	"github.com/interpretive-systems/diffpane/internal/tui/ansi"
)

// RenderOverlay renders the search overlay UI.
func (e *Engine) RenderOverlay(width int, t theme.Theme) []string {
	if !e.active || width <= 0 {
		return nil
	}

	lines := make([]string, 0, 3)
	lines = append(lines, t.DividerText(strings.Repeat("─", width)))
	lines = append(lines, ansi.PadExact(e.InputView(), width))

	status := "Type to search (esc: close)"
	if e.query != "" {
		if len(e.matches) == 0 {
			status = "No matches (esc: close)"
		} else {
			status = fmt.Sprintf(
				"Match %d of %d  (Enter/↓: next, ↑: prev, Esc: close)",
				e.CurrentMatchIndex(),
				e.MatchCount(),
			)
		}
	}
	lines = append(lines, ansi.PadExact(t.Faint(status), width))
	return lines
}
