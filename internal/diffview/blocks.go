package diffview

import (
	"fmt"
	"unicode/utf8"
)

// previewRunes is the longest preview kept before truncation.
const previewRunes = 50

// ChangeBlock is a navigable run of added or removed lines.
type ChangeBlock struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	LineStart int    `json:"lineStart"`
	LineCount int    `json:"lineCount"`
	Preview   string `json:"preview"`
}

// BlockID formats the identifier of the n-th block in a pass.
func BlockID(n int) string {
	return fmt.Sprintf("change-%d", n)
}

// DetectBlocks assigns one block to every changed segment, in input order.
// Adjacent segments of the same kind stay separate blocks. LineStart counts
// lines of every kind emitted before the segment.
func DetectBlocks(segs []Segment) []ChangeBlock {
	blocks := make([]ChangeBlock, 0, len(segs)/2+1)
	line := 0
	for _, s := range segs {
		kind := s.Kind.mustKnow()
		lines := SplitLines(s.Text)
		if kind.Changed() && len(lines) > 0 {
			blocks = append(blocks, ChangeBlock{
				ID:        BlockID(len(blocks)),
				Kind:      kind,
				LineStart: line,
				LineCount: len(lines),
				Preview:   preview(lines[0]),
			})
		}
		line += len(lines)
	}
	return blocks
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	return string([]rune(s)[:previewRunes]) + "..."
}

// blockCursor hands out block IDs to builders walking the same segments that
// DetectBlocks walked, so every view agrees on identifiers.
type blockCursor struct {
	blocks []ChangeBlock
	next   int
}

// take returns the ID for a changed segment with n lines, or "" when the
// segment produced no block.
func (c *blockCursor) take(kind Kind, n int) string {
	if !kind.Changed() || n == 0 {
		return ""
	}
	if c.next >= len(c.blocks) {
		panic("diffview: block list does not match segments")
	}
	b := c.blocks[c.next]
	c.next++
	return b.ID
}
