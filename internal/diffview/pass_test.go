package diffview

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func contents(lines []SplitViewLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Content
	}
	return out
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"x", []string{"x"}},
		{"x\n", []string{"x"}},
		{"a\nb\nc", []string{"a", "b", "c"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\n\n", []string{"a", ""}},
		{"\n", []string{""}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, SplitLines(c.in), "SplitLines(%q)", c.in)
	}
}

func TestReconcile_NoChanges(t *testing.T) {
	p := Reconcile([]Segment{{Text: "a\nb\nc", Kind: Unchanged}})

	require.Empty(t, p.Blocks)
	require.Len(t, p.Minimap, 3)
	for _, m := range p.Minimap {
		require.Equal(t, MinimapLine{Kind: Unchanged}, m)
	}
	want := []SplitViewLine{{"a", Unchanged}, {"b", Unchanged}, {"c", Unchanged}}
	require.Equal(t, want, p.Split.Left)
	require.Equal(t, want, p.Split.Right)
	require.Equal(t, []string{"", "", ""}, p.Split.BlockIDs)
}

func TestReconcile_PureAddition(t *testing.T) {
	p := Reconcile([]Segment{
		{Text: "a", Kind: Unchanged},
		{Text: "b\nc", Kind: Added},
	})

	require.Equal(t, []ChangeBlock{
		{ID: "change-0", Kind: Added, LineStart: 1, LineCount: 2, Preview: "b"},
	}, p.Blocks)
	require.Equal(t, []string{"a", "", ""}, contents(p.Split.Left))
	require.Equal(t, []string{"a", "b", "c"}, contents(p.Split.Right))
	require.Equal(t, Added, p.Split.Right[1].Kind)
	require.Equal(t, SplitViewLine{}, p.Split.Left[2])
	require.Equal(t, []string{"", "change-0", ""}, p.Split.BlockIDs)
	require.Equal(t, []MinimapLine{
		{Kind: Unchanged},
		{Kind: Added, BlockID: "change-0"},
		{Kind: Added},
	}, p.Minimap)
}

func TestReconcile_Replace(t *testing.T) {
	p := Reconcile([]Segment{
		{Text: "old", Kind: Removed},
		{Text: "new", Kind: Added},
	})

	require.Len(t, p.Blocks, 2)
	require.Equal(t, "change-0", p.Blocks[0].ID)
	require.Equal(t, Removed, p.Blocks[0].Kind)
	require.Equal(t, 0, p.Blocks[0].LineStart)
	require.Equal(t, "change-1", p.Blocks[1].ID)
	require.Equal(t, 1, p.Blocks[1].LineStart)

	require.Equal(t, []SplitViewLine{{"old", Removed}}, p.Split.Left)
	require.Equal(t, []SplitViewLine{{"new", Added}}, p.Split.Right)
	require.Equal(t, []string{"change-0"}, p.Split.BlockIDs)
	require.Equal(t, []Anchor{
		{BlockID: "change-0", Side: SideLeft, Row: 0},
		{BlockID: "change-1", Side: SideRight, Row: 0},
	}, p.Split.Anchors)
}

func TestReconcile_TrailingNewline(t *testing.T) {
	p := Reconcile([]Segment{{Text: "x\n", Kind: Unchanged}})
	require.Equal(t, []string{"x"}, contents(p.Split.Left))
	require.Len(t, p.Minimap, 1)
}

func TestReconcile_PadsOnlyAtEnd(t *testing.T) {
	p := Reconcile([]Segment{
		{Text: "x\n", Kind: Removed},
		{Text: "a\n", Kind: Unchanged},
	})
	require.Equal(t, []string{"x", "a"}, contents(p.Split.Left))
	require.Equal(t, []string{"a", ""}, contents(p.Split.Right))
	require.Equal(t, SplitViewLine{}, p.Split.Right[1])

	// a removed run longer than the added run shifts the left column for
	// the rest of the pass
	p = Reconcile([]Segment{
		{Text: "x\ny\n", Kind: Removed},
		{Text: "z\n", Kind: Added},
		{Text: "a\n", Kind: Unchanged},
	})
	require.Equal(t, []string{"x", "y", "a"}, contents(p.Split.Left))
	require.Equal(t, []string{"z", "a", ""}, contents(p.Split.Right))
	require.Equal(t, []string{"change-0", "", ""}, p.Split.BlockIDs)
}

func TestReconcile_SameKindSegmentsStaySeparate(t *testing.T) {
	p := Reconcile([]Segment{
		{Text: "a\n", Kind: Added},
		{Text: "b\n", Kind: Added},
	})

	require.Len(t, p.Blocks, 2)
	require.Equal(t, 0, p.Blocks[0].LineStart)
	require.Equal(t, 1, p.Blocks[1].LineStart)
	require.Equal(t, "change-1", p.Minimap[1].BlockID)
}

func TestReconcile_Empty(t *testing.T) {
	p := Reconcile(nil)

	require.NotNil(t, p.Blocks)
	require.Empty(t, p.Blocks)
	require.Empty(t, p.Minimap)
	require.Empty(t, p.Lines)
	require.Zero(t, p.Split.Rows())
	require.Empty(t, p.Split.BlockIDs)
}

func TestReconcile_EmptyChangedSegmentHasNoBlock(t *testing.T) {
	p := Reconcile([]Segment{
		{Text: "", Kind: Removed},
		{Text: "a\n", Kind: Added},
	})

	require.Len(t, p.Blocks, 1)
	require.Equal(t, "change-0", p.Blocks[0].ID)
	require.Equal(t, "change-0", p.Minimap[0].BlockID)
}

func TestReconcile_PreviewTruncation(t *testing.T) {
	long := strings.Repeat("é", 60)
	p := Reconcile([]Segment{
		{Text: long + "\nsecond", Kind: Removed},
		{Text: strings.Repeat("y", 50), Kind: Added},
	})

	require.Equal(t, strings.Repeat("é", 50)+"...", p.Blocks[0].Preview)
	require.Equal(t, strings.Repeat("y", 50), p.Blocks[1].Preview)
}

func TestReconcile_UnknownKindPanics(t *testing.T) {
	require.Panics(t, func() {
		Reconcile([]Segment{{Text: "a", Kind: Kind(7)}})
	})
}

func TestPass_Queries(t *testing.T) {
	p := Reconcile([]Segment{
		{Text: "a\n", Kind: Unchanged},
		{Text: "b\nc\n", Kind: Removed},
		{Text: "d\n", Kind: Added},
	})

	b, ok := p.Block("change-1")
	require.True(t, ok)
	require.Equal(t, Added, b.Kind)
	require.Equal(t, 3, b.LineStart)

	_, ok = p.Block("change-9")
	require.False(t, ok)
	require.Equal(t, -1, p.BlockIndex("nope"))

	require.Equal(t, Stats{Added: 1, Removed: 2, Unchanged: 1, Blocks: 2}, p.Stats())
}

func TestPass_LineForRow(t *testing.T) {
	p := Reconcile([]Segment{
		{Text: "a\n", Kind: Unchanged},
		{Text: "b\n", Kind: Removed},
		{Text: "c\nd\ne\n", Kind: Added},
	})
	// left: a b _ _   right: a c d e
	require.Equal(t, 0, p.LineForRow(0))
	require.Equal(t, 1, p.LineForRow(1))
	require.Equal(t, 3, p.LineForRow(2))
	require.Equal(t, 4, p.LineForRow(3))
	require.Equal(t, 5, p.LineForRow(4))
	require.Equal(t, 0, Reconcile(nil).LineForRow(0))
}

// randomSegments builds segment lists of non-empty lines so placeholders can
// be told apart from real content.
func randomSegments(r *rand.Rand) []Segment {
	n := r.IntN(12)
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		kind := Kind(r.IntN(3))
		lines := make([]string, r.IntN(4))
		for j := range lines {
			lines[j] = string(rune('a'+r.IntN(26))) + kind.String()[:1]
		}
		text := strings.Join(lines, "\n")
		if len(lines) > 0 && r.IntN(2) == 0 {
			text += "\n"
		}
		segs = append(segs, Segment{Text: text, Kind: kind})
	}
	return segs
}

// realPrefix checks that the real cells of a column come first, with every
// placeholder after the last of them, and returns how many there are.
func realPrefix(t *testing.T, col []SplitViewLine, foreign Kind) int {
	t.Helper()
	n := 0
	for i, c := range col {
		if c == (SplitViewLine{}) {
			continue
		}
		require.Equal(t, n, i, "placeholder before real row %d", i)
		require.NotEqual(t, foreign, c.Kind)
		n++
	}
	return n
}

func TestReconcile_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for iter := 0; iter < 500; iter++ {
		segs := randomSegments(r)
		p := Reconcile(segs)

		total, added, removed := 0, 0, 0
		for _, s := range segs {
			n := len(SplitLines(s.Text))
			total += n
			switch s.Kind {
			case Added:
				added += n
			case Removed:
				removed += n
			}
		}
		unchanged := total - added - removed

		require.Len(t, p.Minimap, total)
		require.Len(t, p.Lines, total)

		var tagged []string
		for _, m := range p.Minimap {
			if m.BlockID != "" {
				require.NotEqual(t, Unchanged, m.Kind)
				tagged = append(tagged, m.BlockID)
			}
		}
		ids := make([]string, len(p.Blocks))
		for i, b := range p.Blocks {
			ids[i] = b.ID
			require.GreaterOrEqual(t, b.LineCount, 1)
		}
		if len(ids) == 0 {
			require.Empty(t, tagged)
		} else {
			require.Equal(t, ids, tagged)
		}
		require.Len(t, p.Split.Anchors, len(p.Blocks))

		sv := p.Split
		require.Equal(t, len(sv.Left), len(sv.Right))
		require.Equal(t, len(sv.Left), len(sv.BlockIDs))

		realLeft := realPrefix(t, sv.Left, Added)
		realRight := realPrefix(t, sv.Right, Removed)
		require.Equal(t, unchanged+removed, realLeft)
		require.Equal(t, unchanged+added, realRight)
		require.Equal(t, max(realLeft, realRight), sv.Rows())

		wantLeft, wantRight := make([]string, 0), make([]string, 0)
		for _, l := range p.Lines {
			if l.Kind != Added {
				wantLeft = append(wantLeft, l.Content)
			}
			if l.Kind != Removed {
				wantRight = append(wantRight, l.Content)
			}
		}
		require.Equal(t, wantLeft, contents(sv.Left[:realLeft]))
		require.Equal(t, wantRight, contents(sv.Right[:realRight]))

		require.Equal(t, p, Reconcile(segs))
	}
}
