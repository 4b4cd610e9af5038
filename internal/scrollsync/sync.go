// Package scrollsync keeps diff viewports in step: it maps line indices and
// change-block identifiers to scroll offsets and drives the transient
// highlight shown after a jump.
package scrollsync

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// HighlightDuration is how long a jumped-to block stays highlighted.
const HighlightDuration = 1500 * time.Millisecond

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown view mode")

// Mode selects the unified (single column) or split (two column) view.
type Mode int

const (
	Unified Mode = iota
	Split
)

func (m Mode) String() string {
	if m == Split {
		return "split"
	}
	return "unified"
}

// ParseMode accepts "unified" or "split", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unified", "inline":
		return Unified, nil
	case "split", "side-by-side":
		return Split, nil
	}
	return Unified, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Pane is a vertically scrollable viewport.
type Pane interface {
	YOffset() int
	SetYOffset(n int)
	// ScrollableHeight is the largest offset the pane accepts.
	ScrollableHeight() int
}

// Surface locates block anchors on a rendered view.
type Surface interface {
	Locate(blockID string) (row int, ok bool)
	SetHighlight(blockID string, on bool)
}

// Side selects one of the split panes.
type Side int

const (
	Left Side = iota
	Right
)

// Config wires a Synchronizer to its panes. Split panes may be nil when only
// the unified view exists, and vice versa.
type Config struct {
	Unified        Pane
	Left           Pane
	Right          Pane
	UnifiedSurface Surface
	SplitSurface   Surface
	Mode           Mode
}

// Highlight identifies an applied highlight. Pass Token to ClearHighlight
// once HighlightDuration has elapsed.
type Highlight struct {
	BlockID string
	Token   uint64
}

// Synchronizer is driven from a single event loop and is not safe for
// concurrent use.
type Synchronizer struct {
	cfg Config

	active    Highlight
	activeSur Surface
	seq       uint64
}

// New returns a Synchronizer for cfg.
func New(cfg Config) *Synchronizer {
	return &Synchronizer{cfg: cfg}
}

// Mode returns the current view mode.
func (s *Synchronizer) Mode() Mode { return s.cfg.Mode }

// SetMode switches the view mode used by ScrollToBlock.
func (s *Synchronizer) SetMode(m Mode) { s.cfg.Mode = m }

// Percent returns index/totalLines clamped to [0, 1]; 0 for an empty view.
func Percent(index, totalLines int) float64 {
	if totalLines <= 0 {
		return 0
	}
	p := float64(index) / float64(totalLines)
	return math.Max(0, math.Min(1, p))
}

// offsetFor scales pct onto a pane's scrollable range.
func offsetFor(p Pane, pct float64) int {
	return int(math.Round(pct * float64(p.ScrollableHeight())))
}

// ScrollToPosition moves the panes of mode so that index of totalLines sits
// at the same relative position. In split mode both panes receive the same
// percentage even though their rows differ.
func (s *Synchronizer) ScrollToPosition(index, totalLines int, mode Mode) {
	pct := Percent(index, totalLines)
	for _, p := range s.panes(mode) {
		p.SetYOffset(offsetFor(p, pct))
	}
}

// ScrollToBlock brings the block to the top of the current view and
// highlights it. An identifier unknown to the current surface is ignored:
// block ids only live for one reconciliation pass.
func (s *Synchronizer) ScrollToBlock(blockID string) (Highlight, bool) {
	sur, primary := s.cfg.UnifiedSurface, s.cfg.Unified
	if s.cfg.Mode == Split {
		sur, primary = s.cfg.SplitSurface, s.cfg.Left
	}
	if sur == nil || primary == nil {
		return Highlight{}, false
	}
	row, ok := sur.Locate(blockID)
	if !ok {
		return Highlight{}, false
	}

	primary.SetYOffset(clamp(row, 0, primary.ScrollableHeight()))
	if s.cfg.Mode == Split && s.cfg.Right != nil {
		s.cfg.Right.SetYOffset(primary.YOffset())
	}

	s.clearActive()
	s.seq++
	s.active = Highlight{BlockID: blockID, Token: s.seq}
	s.activeSur = sur
	sur.SetHighlight(blockID, true)
	return s.active, true
}

// ClearHighlight removes the highlight identified by token, unless a later
// jump has replaced it.
func (s *Synchronizer) ClearHighlight(token uint64) {
	if token == 0 || token != s.active.Token {
		return
	}
	s.clearActive()
}

// Reset drops the active highlight. Call it when a new pass replaces the
// block identifiers; pending ClearHighlight tokens become no-ops.
func (s *Synchronizer) Reset() {
	s.clearActive()
}

// Highlighted returns the block currently highlighted, or "".
func (s *Synchronizer) Highlighted() string {
	return s.active.BlockID
}

// Follow copies the raw offset of one split pane onto the other. It is used
// for continuous scrolling, where remapping by percentage would lag.
func (s *Synchronizer) Follow(from Side) {
	src, dst := s.cfg.Left, s.cfg.Right
	if from == Right {
		src, dst = dst, src
	}
	if src == nil || dst == nil {
		return
	}
	dst.SetYOffset(src.YOffset())
}

func (s *Synchronizer) clearActive() {
	if s.active.BlockID != "" && s.activeSur != nil {
		s.activeSur.SetHighlight(s.active.BlockID, false)
	}
	s.active = Highlight{}
	s.activeSur = nil
}

func (s *Synchronizer) panes(m Mode) []Pane {
	var out []Pane
	add := func(p Pane) {
		if p != nil {
			out = append(out, p)
		}
	}
	if m == Split {
		add(s.cfg.Left)
		add(s.cfg.Right)
	} else {
		add(s.cfg.Unified)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
