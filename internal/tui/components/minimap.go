package components

import (
	"github.com/interpretive-systems/diffpane/internal/diffview"
	"github.com/interpretive-systems/diffpane/internal/theme"
)

// MinimapWidth is the number of columns the strip occupies.
const MinimapWidth = 1

// Minimap renders a pass's minimap lines as a one-column strip.
type Minimap struct {
	lines    []diffview.MinimapLine
	curTheme theme.Theme
}

// NewMinimap creates an empty minimap.
func NewMinimap(t theme.Theme) *Minimap {
	return &Minimap{curTheme: t}
}

// SetLines updates the overview lines.
func (m *Minimap) SetLines(lines []diffview.MinimapLine) {
	m.lines = lines
}

// Cells scales the lines onto height rows. A row shows a change when any
// line it covers is changed, removals first. The second value reports which
// rows overlap the visible window [winStart, winEnd).
func (m *Minimap) Cells(height, winStart, winEnd int) ([]diffview.Kind, []bool) {
	kinds := make([]diffview.Kind, 0, height)
	inWin := make([]bool, 0, height)
	n := len(m.lines)
	if n == 0 || height <= 0 {
		return kinds, inWin
	}
	rows := min(height, n)
	for r := 0; r < rows; r++ {
		lo := r * n / rows
		hi := max((r+1)*n/rows, lo+1)
		kind := diffview.Unchanged
		for _, l := range m.lines[lo:hi] {
			if l.Kind == diffview.Removed {
				kind = diffview.Removed
				break
			}
			if l.Kind == diffview.Added {
				kind = diffview.Added
			}
		}
		kinds = append(kinds, kind)
		inWin = append(inWin, lo < winEnd && hi > winStart)
	}
	return kinds, inWin
}

// Render returns exactly height strip cells.
func (m *Minimap) Render(height, winStart, winEnd int) []string {
	kinds, inWin := m.Cells(height, winStart, winEnd)
	out := make([]string, height)
	for i := range out {
		if i < len(kinds) {
			out[i] = m.curTheme.MinimapCell(kinds[i], inWin[i])
		} else {
			out[i] = " "
		}
	}
	return out
}
