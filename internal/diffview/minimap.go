package diffview

// MinimapLine is one row of the single-column overview. BlockID is set only
// on the first line of a change block.
type MinimapLine struct {
	Kind    Kind   `json:"kind"`
	BlockID string `json:"blockId,omitempty"`
}

// Line is a unified-view row with its text.
type Line struct {
	Content string
	Kind    Kind
}

// BuildMinimap flattens segments into one classified line per input line.
// blocks must come from DetectBlocks over the same segments.
func BuildMinimap(segs []Segment, blocks []ChangeBlock) []MinimapLine {
	out := make([]MinimapLine, 0, len(segs))
	cur := blockCursor{blocks: blocks}
	for _, s := range segs {
		kind := s.Kind.mustKnow()
		lines := SplitLines(s.Text)
		id := cur.take(kind, len(lines))
		for i := range lines {
			ml := MinimapLine{Kind: kind}
			if i == 0 {
				ml.BlockID = id
			}
			out = append(out, ml)
		}
	}
	return out
}

// flatten returns the unified sequence with content, in segment order.
func flatten(segs []Segment) []Line {
	out := make([]Line, 0, len(segs))
	for _, s := range segs {
		kind := s.Kind.mustKnow()
		for _, l := range SplitLines(s.Text) {
			out = append(out, Line{Content: l, Kind: kind})
		}
	}
	return out
}
