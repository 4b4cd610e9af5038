package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/diffpane/internal/theme"
	"github.com/interpretive-systems/diffpane/internal/tui/components"
)

// Layout manages screen layout calculations.
type Layout struct {
	width  int
	height int
}

// NewLayout creates a new layout manager.
func NewLayout() *Layout {
	return &Layout{}
}

// SetSize updates the layout dimensions.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the total width.
func (l *Layout) Width() int {
	return l.width
}

// Height returns the total height.
func (l *Layout) Height() int {
	return l.height
}

// ContentWidth returns the width left for the diff after the divider and
// the minimap strip.
func (l *Layout) ContentWidth() int {
	w := l.width - 1 - components.MinimapWidth
	if w < 1 {
		w = 1
	}
	return w
}

// ContentHeight returns the height available for content.
func (l *Layout) ContentHeight(overlayHeight int) int {
	// top bar + top rule + bottom rule + bottom bar + overlays
	h := l.height - 4 - overlayHeight
	if h < 1 {
		h = 1
	}
	return h
}

// RenderFrame renders the top bar, the diff body with the minimap strip on
// its right, an optional overlay and the bottom bar.
func (l *Layout) RenderFrame(
	topLeft, topRight string,
	bodyLines, minimapLines []string,
	overlayLines []string,
	bottomBar string,
	curTheme theme.Theme,
) string {
	var b strings.Builder

	b.WriteString(l.renderTopBar(topLeft, topRight))
	b.WriteByte('\n')

	b.WriteString(curTheme.DividerText(strings.Repeat("─", l.width)))
	b.WriteByte('\n')

	bodyW := l.ContentWidth()
	sep := curTheme.DividerText("│")
	contentHeight := max(len(bodyLines), len(minimapLines))
	for i := 0; i < contentHeight; i++ {
		body := ""
		if i < len(bodyLines) {
			body = bodyLines[i]
		}
		cell := " "
		if i < len(minimapLines) {
			cell = minimapLines[i]
		}
		b.WriteString(padToWidth(body, bodyW))
		b.WriteString(sep)
		b.WriteString(cell)
		if i < contentHeight-1 {
			b.WriteByte('\n')
		}
	}

	if len(overlayLines) > 0 {
		b.WriteByte('\n')
		for i, line := range overlayLines {
			b.WriteString(padToWidth(line, l.width))
			if i < len(overlayLines)-1 {
				b.WriteByte('\n')
			}
		}
	}

	b.WriteByte('\n')
	b.WriteString(curTheme.DividerText(strings.Repeat("─", l.width)))
	b.WriteByte('\n')
	b.WriteString(bottomBar)

	return b.String()
}

func (l *Layout) renderTopBar(left, right string) string {
	rightW := lipgloss.Width(right)
	if rightW >= l.width {
		return ansi.Truncate(right, l.width, "…")
	}

	avail := l.width - rightW - 1
	if lipgloss.Width(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	} else if lipgloss.Width(left) < avail {
		left = left + strings.Repeat(" ", avail-lipgloss.Width(left))
	}

	return left + " " + right
}

func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}
