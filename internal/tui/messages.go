package tui

import (
	"github.com/interpretive-systems/diffpane/internal/diffview"
)

// passMsg carries a freshly reconciled pass.
type passMsg struct {
	pass diffview.Pass
	err  error
}

// tickMsg triggers a periodic reload.
type tickMsg struct{}

// highlightExpiredMsg fires HighlightDuration after a jump.
type highlightExpiredMsg struct {
	token uint64
}

// prefsSavedMsg reports the outcome of persisting the view mode.
type prefsSavedMsg struct {
	err error
}
