package diffview

// Side names a column of the split view.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// SplitViewLine is one cell of a split-view column. Padding cells have empty
// content and kind Unchanged.
type SplitViewLine struct {
	Content string `json:"content"`
	Kind    Kind   `json:"kind"`
}

// Anchor records the row on which a block's first line was placed.
type Anchor struct {
	BlockID string
	Side    Side
	Row     int
}

// SplitView is the two-column rendering model. Left, Right and BlockIDs have
// equal length; BlockIDs[i] names the block starting on row i, or "".
type SplitView struct {
	Left     []SplitViewLine
	Right    []SplitViewLine
	BlockIDs []string
	Anchors  []Anchor
}

// Rows returns the common column length.
func (v SplitView) Rows() int {
	return len(v.Left)
}

// Anchor looks up where a block starts.
func (v SplitView) Anchor(id string) (Anchor, bool) {
	for _, a := range v.Anchors {
		if a.BlockID == id {
			return a, true
		}
	}
	return Anchor{}, false
}

// AlignSplit routes unchanged lines to both columns, removed lines to the
// left and added lines to the right. The columns are padded once, after the
// last segment; a length difference built up by a removed or added run
// carries over to every later row. blocks must come from DetectBlocks over
// the same segments.
func AlignSplit(segs []Segment, blocks []ChangeBlock) SplitView {
	v := SplitView{
		Left:     make([]SplitViewLine, 0, len(segs)),
		Right:    make([]SplitViewLine, 0, len(segs)),
		BlockIDs: make([]string, 0, len(segs)),
		Anchors:  make([]Anchor, 0, len(blocks)),
	}
	cur := blockCursor{blocks: blocks}
	for _, s := range segs {
		kind := s.Kind.mustKnow()
		lines := SplitLines(s.Text)
		id := cur.take(kind, len(lines))
		for i, l := range lines {
			switch kind {
			case Unchanged:
				v.Left = append(v.Left, SplitViewLine{Content: l, Kind: Unchanged})
				v.Right = append(v.Right, SplitViewLine{Content: l, Kind: Unchanged})
			case Removed:
				v.Left = append(v.Left, SplitViewLine{Content: l, Kind: Removed})
				if i == 0 {
					v.mark(id, SideLeft, len(v.Left)-1)
				}
			case Added:
				v.Right = append(v.Right, SplitViewLine{Content: l, Kind: Added})
				if i == 0 {
					v.mark(id, SideRight, len(v.Right)-1)
				}
			}
		}
	}
	v.pad()
	return v
}

// mark records a block start. The row-aligned slot keeps the first block that
// claims it; the anchor list keeps them all.
func (v *SplitView) mark(id string, side Side, row int) {
	v.Anchors = append(v.Anchors, Anchor{BlockID: id, Side: side, Row: row})
	v.growIDs(row + 1)
	if v.BlockIDs[row] == "" {
		v.BlockIDs[row] = id
	}
}

func (v *SplitView) growIDs(n int) {
	for len(v.BlockIDs) < n {
		v.BlockIDs = append(v.BlockIDs, "")
	}
}

// pad fills the shorter column with placeholders up to the longer one.
func (v *SplitView) pad() {
	n := max(len(v.Left), len(v.Right))
	for len(v.Left) < n {
		v.Left = append(v.Left, SplitViewLine{})
	}
	for len(v.Right) < n {
		v.Right = append(v.Right, SplitViewLine{})
	}
	v.growIDs(n)
}
