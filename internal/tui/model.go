package tui

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/interpretive-systems/diffpane/internal/scrollsync"
	"github.com/interpretive-systems/diffpane/internal/theme"
	"github.com/interpretive-systems/diffpane/internal/tui/components"
	"github.com/interpretive-systems/diffpane/internal/tui/search"
)

// Options configures a viewer session.
type Options struct {
	Title    string
	Load     Loader
	Mode     scrollsync.Mode
	Theme    theme.Theme
	RepoRoot string // enables saving the mode to git config; may be empty
	Logger   zerolog.Logger
	Refresh  time.Duration // reload interval; 0 loads once
}

// State holds all application state.
type State struct {
	Title    string
	Load     Loader
	RepoRoot string
	Log      zerolog.Logger
	Refresh  time.Duration

	// UI state
	Width    int
	Height   int
	ShowHelp bool
	Loaded   bool
	Current  int // focused change, -1 for none

	// Components
	Pane      *components.DiffPane
	Minimap   *components.Minimap
	StatusBar *components.StatusBar
	Sync      *scrollsync.Synchronizer
	Search    *search.Engine

	Theme theme.Theme
}

// NewState creates initial application state.
func NewState(opts Options) *State {
	pane := components.NewDiffPane(opts.Theme, opts.Mode)
	sb := components.NewStatusBar()
	sb.SetMode(opts.Mode)
	return &State{
		Title:     opts.Title,
		Load:      opts.Load,
		RepoRoot:  opts.RepoRoot,
		Log:       opts.Logger,
		Refresh:   opts.Refresh,
		Current:   -1,
		Pane:      pane,
		Minimap:   components.NewMinimap(opts.Theme),
		StatusBar: sb,
		Sync:      scrollsync.New(pane.SyncConfig()),
		Search:    search.New(),
		Theme:     opts.Theme,
	}
}
