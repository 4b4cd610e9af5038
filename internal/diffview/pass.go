// Package diffview reconciles a line-level diff into the views a diff viewer
// renders: navigable change blocks, a single-column minimap and an aligned
// two-column split view.
package diffview

// Pass is the result of reconciling one segment list. All views share the
// block identifiers in Blocks; identifiers are only meaningful within the
// pass that produced them.
type Pass struct {
	Blocks  []ChangeBlock
	Minimap []MinimapLine
	Split   SplitView
	Lines   []Line
}

// Stats counts lines per kind.
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
	Blocks    int `json:"blocks"`
}

// Reconcile derives the block list, minimap, unified lines and split view
// from segs. It is pure: equal input yields equal output, and an empty input
// yields empty views.
func Reconcile(segs []Segment) Pass {
	blocks := DetectBlocks(segs)
	return Pass{
		Blocks:  blocks,
		Minimap: BuildMinimap(segs, blocks),
		Split:   AlignSplit(segs, blocks),
		Lines:   flatten(segs),
	}
}

// Block returns the block with the given id.
func (p Pass) Block(id string) (ChangeBlock, bool) {
	if i := p.BlockIndex(id); i >= 0 {
		return p.Blocks[i], true
	}
	return ChangeBlock{}, false
}

// BlockIndex returns the position of id in Blocks, or -1.
func (p Pass) BlockIndex(id string) int {
	for i, b := range p.Blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Stats summarises the pass.
func (p Pass) Stats() Stats {
	st := Stats{Blocks: len(p.Blocks)}
	for _, l := range p.Minimap {
		switch l.Kind {
		case Added:
			st.Added++
		case Removed:
			st.Removed++
		default:
			st.Unchanged++
		}
	}
	return st
}

// LineForRow maps a split-view row to the unified line shown there: the
// left cell's line, or the right cell's once the left column has run out.
// Rows past both columns map to len(Lines).
func (p Pass) LineForRow(row int) int {
	left, right := 0, 0
	for i, l := range p.Lines {
		if l.Kind != Added {
			if left == row {
				return i
			}
			left++
		}
	}
	for i, l := range p.Lines {
		if l.Kind != Removed {
			if right == row && row >= left {
				return i
			}
			right++
		}
	}
	return len(p.Lines)
}
