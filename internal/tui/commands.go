package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/diffpane/internal/diffview"
	"github.com/interpretive-systems/diffpane/internal/prefs"
	"github.com/interpretive-systems/diffpane/internal/scrollsync"
)

// Loader produces the segments to display. It runs off the event loop.
type Loader func() ([]diffview.Segment, error)

// loadPass runs the loader and reconciles its output.
func loadPass(load Loader) tea.Cmd {
	return func() tea.Msg {
		segs, err := load()
		if err != nil {
			return passMsg{err: err}
		}
		return passMsg{pass: diffview.Reconcile(segs)}
	}
}

// tickAfter schedules a single reload tick.
func tickAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// expireHighlight schedules the removal of the highlight identified by token.
func expireHighlight(token uint64) tea.Cmd {
	return tea.Tick(scrollsync.HighlightDuration, func(time.Time) tea.Msg {
		return highlightExpiredMsg{token: token}
	})
}

// saveMode persists the view mode in the repository's git config.
func saveMode(repoRoot string, m scrollsync.Mode) tea.Cmd {
	if repoRoot == "" {
		return nil
	}
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.SaveMode(repoRoot, m)}
	}
}
