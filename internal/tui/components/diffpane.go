package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/interpretive-systems/diffpane/internal/diffview"
	"github.com/interpretive-systems/diffpane/internal/scrollsync"
	"github.com/interpretive-systems/diffpane/internal/theme"
	tuiansi "github.com/interpretive-systems/diffpane/internal/tui/ansi"
	"github.com/interpretive-systems/diffpane/internal/tui/search"
)

// DiffPane renders a reconciliation pass either as one unified column or as
// two aligned columns. Each column is a bubbles viewport.
type DiffPane struct {
	pass        diffview.Pass
	curTheme    theme.Theme
	mode        scrollsync.Mode
	unified     viewport.Model
	left        viewport.Model
	right       viewport.Model
	width       int
	height      int
	xOffset     int
	highlighted string
	query       string
	matchRow    int
}

// NewDiffPane creates an empty pane.
func NewDiffPane(t theme.Theme, mode scrollsync.Mode) *DiffPane {
	return &DiffPane{
		curTheme: t,
		mode:     mode,
		matchRow: -1,
		unified:  viewport.New(0, 0),
		left:     viewport.New(0, 0),
		right:    viewport.New(0, 0),
	}
}

// SetPass replaces the rendered pass. Scroll offsets are kept, clamped to
// the new content; any highlight from the previous pass is dropped.
func (d *DiffPane) SetPass(p diffview.Pass) {
	d.pass = p
	d.highlighted = ""
	d.render()
	d.unified.SetYOffset(d.unified.YOffset)
	d.left.SetYOffset(d.left.YOffset)
	d.right.SetYOffset(d.right.YOffset)
}

// Pass returns the rendered pass.
func (d *DiffPane) Pass() diffview.Pass {
	return d.pass
}

// SetSize updates the viewport dimensions.
func (d *DiffPane) SetSize(width, height int) {
	d.width = width
	d.height = height
	colsW := d.columnWidth()
	d.unified.Width = width
	d.unified.Height = height
	d.left.Width = colsW
	d.left.Height = height
	d.right.Width = max(width-1-colsW, 0)
	d.right.Height = height
	d.render()
}

func (d *DiffPane) columnWidth() int {
	return max((d.width-1)/2, 0)
}

// Mode returns the display mode.
func (d *DiffPane) Mode() scrollsync.Mode {
	return d.mode
}

// SetMode sets the display mode.
func (d *DiffPane) SetMode(m scrollsync.Mode) {
	d.mode = m
}

// XOffset returns the current horizontal offset.
func (d *DiffPane) XOffset() int {
	return d.xOffset
}

// ScrollLeft scrolls left by delta.
func (d *DiffPane) ScrollLeft(delta int) {
	d.xOffset = max(d.xOffset-delta, 0)
	d.render()
}

// ScrollRight scrolls right by delta.
func (d *DiffPane) ScrollRight(delta int) {
	d.xOffset += delta
	d.render()
}

// ScrollHome resets horizontal scroll.
func (d *DiffPane) ScrollHome() {
	d.xOffset = 0
	d.render()
}

// Primary returns the viewport that user scrolling drives: the unified
// column, or the left column in split mode.
func (d *DiffPane) Primary() *viewport.Model {
	if d.mode == scrollsync.Split {
		return &d.left
	}
	return &d.unified
}

// SetSearch marks occurrences of query; row is the current match in the
// current mode, -1 for none. An empty query clears the marks.
func (d *DiffPane) SetSearch(query string, row int) {
	if query == d.query && row == d.matchRow {
		return
	}
	d.query = query
	d.matchRow = row
	d.render()
}

// SearchRows returns the plain text of every row of the current mode. In
// split mode the two columns of a row are joined by a newline.
func (d *DiffPane) SearchRows() []string {
	if d.mode != scrollsync.Split {
		rows := make([]string, len(d.pass.Lines))
		for i, l := range d.pass.Lines {
			rows[i] = l.Content
		}
		return rows
	}
	rows := make([]string, d.pass.Split.Rows())
	for i := range rows {
		rows[i] = d.pass.Split.Left[i].Content + "\n" + d.pass.Split.Right[i].Content
	}
	return rows
}

// Highlighted returns the highlighted block id, or "".
func (d *DiffPane) Highlighted() string {
	return d.highlighted
}

// SyncConfig exposes the pane's viewports and surfaces to a synchronizer.
func (d *DiffPane) SyncConfig() scrollsync.Config {
	return scrollsync.Config{
		Unified:        vpPane{&d.unified},
		Left:           vpPane{&d.left},
		Right:          vpPane{&d.right},
		UnifiedSurface: unifiedSurface{d},
		SplitSurface:   splitSurface{d},
		Mode:           d.mode,
	}
}

// TopLine returns the first visible row of the primary viewport and the row
// count of the current view.
func (d *DiffPane) TopLine() (index, total int) {
	if d.mode == scrollsync.Split {
		return d.left.YOffset, d.pass.Split.Rows()
	}
	return d.unified.YOffset, len(d.pass.Lines)
}

// UnifiedTop returns the unified line at the top of the view and the unified
// line count, whatever the mode.
func (d *DiffPane) UnifiedTop() (index, total int) {
	if d.mode == scrollsync.Split {
		return d.pass.LineForRow(d.left.YOffset), len(d.pass.Lines)
	}
	return d.unified.YOffset, len(d.pass.Lines)
}

// Window returns the visible range in minimap line units.
func (d *DiffPane) Window() (start, end int) {
	if d.mode != scrollsync.Split {
		return d.unified.YOffset, d.unified.YOffset + d.unified.Height
	}
	top := d.left.YOffset
	return d.pass.LineForRow(top), d.pass.LineForRow(top + d.left.Height)
}

// View renders the visible part of the current mode.
func (d *DiffPane) View() string {
	if len(d.pass.Lines) == 0 {
		return d.curTheme.Faint("(no differences)")
	}
	if d.mode != scrollsync.Split {
		return d.unified.View()
	}
	l := strings.Split(d.left.View(), "\n")
	r := strings.Split(d.right.View(), "\n")
	mid := d.curTheme.DividerText("│")
	colsW := d.columnWidth()
	rightW := max(d.width-1-colsW, 0)
	out := make([]string, d.height)
	for i := range out {
		var ll, rr string
		if i < len(l) {
			ll = l[i]
		}
		if i < len(r) {
			rr = r[i]
		}
		out[i] = tuiansi.PadExact(ll, colsW) + mid + tuiansi.PadExact(rr, rightW)
	}
	return strings.Join(out, "\n")
}

func (d *DiffPane) setHighlight(id string, on bool) {
	switch {
	case on:
		d.highlighted = id
	case d.highlighted == id:
		d.highlighted = ""
	default:
		return
	}
	d.render()
}

func (d *DiffPane) render() {
	d.unified.SetContent(strings.Join(d.renderUnified(), "\n"))
	colsW := d.columnWidth()
	d.left.SetContent(strings.Join(d.renderColumn(d.pass.Split.Left, diffview.SideLeft, colsW), "\n"))
	d.right.SetContent(strings.Join(d.renderColumn(d.pass.Split.Right, diffview.SideRight, max(d.width-1-colsW, 0)), "\n"))
}

func (d *DiffPane) renderUnified() []string {
	lines := make([]string, 0, len(d.pass.Lines))
	lo, hi := -1, -1
	if b, ok := d.pass.Block(d.highlighted); ok {
		lo, hi = b.LineStart, b.LineStart+b.LineCount
	}
	for i, l := range d.pass.Lines {
		lines = append(lines, d.renderCell(l.Kind, l.Content, d.width, i >= lo && i < hi, d.isMatch(scrollsync.Unified, i)))
	}
	return lines
}

func (d *DiffPane) renderColumn(cells []diffview.SplitViewLine, side diffview.Side, width int) []string {
	lo, hi := -1, -1
	if a, ok := d.pass.Split.Anchor(d.highlighted); ok && a.Side == side {
		b, _ := d.pass.Block(d.highlighted)
		lo, hi = a.Row, a.Row+b.LineCount
	}
	lines := make([]string, 0, len(cells))
	for i, c := range cells {
		lines = append(lines, d.renderCell(c.Kind, c.Content, width, i >= lo && i < hi, d.isMatch(scrollsync.Split, i)))
	}
	return lines
}

// isMatch reports whether row of the view in mode is the current search
// match. Rows of the other mode are never current.
func (d *DiffPane) isMatch(mode scrollsync.Mode, row int) bool {
	return d.mode == mode && d.matchRow == row
}

// renderCell draws a marker, the horizontally scrolled body and padding to
// exactly width columns.
func (d *DiffPane) renderCell(kind diffview.Kind, content string, width int, lit, current bool) string {
	marker := " "
	switch kind {
	case diffview.Added:
		marker = "+"
	case diffview.Removed:
		marker = "-"
	}
	if width <= 2 {
		return tuiansi.ClipToWidth(marker+" ", width)
	}
	body := tuiansi.PadExact(tuiansi.SliceHorizontal(content, d.xOffset, width-2), width-2)
	if lit {
		return d.curTheme.Highlight(kind, marker+" "+body)
	}
	text := func(s string) string { return d.curTheme.KindText(kind, s) }
	mark := func(s string) string { return d.curTheme.Match(s, current) }
	return text(marker) + " " + search.Paint(body, search.FindRanges(body, d.query), mark, text)
}

// vpPane adapts a bubbles viewport to scrollsync.Pane.
type vpPane struct {
	vp *viewport.Model
}

func (p vpPane) YOffset() int { return p.vp.YOffset }

func (p vpPane) SetYOffset(n int) { p.vp.SetYOffset(n) }

func (p vpPane) ScrollableHeight() int {
	return max(p.vp.TotalLineCount()-p.vp.Height, 0)
}

type unifiedSurface struct{ d *DiffPane }

func (s unifiedSurface) Locate(id string) (int, bool) {
	b, ok := s.d.pass.Block(id)
	return b.LineStart, ok
}

func (s unifiedSurface) SetHighlight(id string, on bool) { s.d.setHighlight(id, on) }

type splitSurface struct{ d *DiffPane }

func (s splitSurface) Locate(id string) (int, bool) {
	a, ok := s.d.pass.Split.Anchor(id)
	return a.Row, ok
}

func (s splitSurface) SetHighlight(id string, on bool) { s.d.setHighlight(id, on) }
