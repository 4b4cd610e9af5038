package search

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeQuery(e *Engine, q string) {
	for _, r := range q {
		e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestEngine_MatchesAndWraps(t *testing.T) {
	e := New()
	e.SetContent([]string{"alpha", "Beta\nbeta", "gamma", "ALPHA beta"})
	e.Activate()
	typeQuery(e, "beta")

	if got := e.MatchCount(); got != 2 {
		t.Fatalf("MatchCount = %d, want 2", got)
	}
	if got := e.CurrentMatchLine(); got != 1 {
		t.Fatalf("CurrentMatchLine = %d, want 1", got)
	}
	e.Next()
	if got := e.CurrentMatchLine(); got != 3 {
		t.Fatalf("after Next = %d, want 3", got)
	}
	e.Next()
	if got := e.CurrentMatchIndex(); got != 1 {
		t.Fatalf("Next should wrap, index = %d", got)
	}
	e.Previous()
	if got := e.CurrentMatchLine(); got != 3 {
		t.Fatalf("Previous should wrap, line = %d", got)
	}
}

func TestEngine_NoMatchAcrossColumns(t *testing.T) {
	e := New()
	e.SetContent([]string{"end\nstart"})
	e.Activate()
	typeQuery(e, "dst")
	if e.MatchCount() != 0 {
		t.Fatalf("query matched across the column boundary")
	}
	if e.CurrentMatchLine() != -1 {
		t.Fatalf("expected -1 without matches")
	}
}

func TestEngine_EscCloses(t *testing.T) {
	e := New()
	e.Activate()
	if !e.IsActive() {
		t.Fatalf("expected active")
	}
	e.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if e.IsActive() {
		t.Fatalf("expected inactive after esc")
	}
}

func TestFindRanges(t *testing.T) {
	got := FindRanges("aaa Foo foo", "aa")
	if len(got) != 1 || got[0] != (Range{0, 3}) {
		t.Fatalf("overlapping ranges not merged: %+v", got)
	}
	got = FindRanges("Foo foo", "FOO")
	if len(got) != 2 || got[1] != (Range{4, 7}) {
		t.Fatalf("unexpected ranges: %+v", got)
	}
	if FindRanges("", "x") != nil || FindRanges("x", "") != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestPaint(t *testing.T) {
	mark := func(s string) string { return "[" + s + "]" }
	rest := strings.ToUpper
	got := Paint("héllo wörld", FindRanges("héllo wörld", "wö"), mark, rest)
	if got != "HÉLLO [wö]RLD" {
		t.Fatalf("Paint = %q", got)
	}
	if got := Paint("abc", nil, mark, rest); got != "ABC" {
		t.Fatalf("Paint without ranges = %q", got)
	}
}
