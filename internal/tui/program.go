package tui

import (
	"fmt"
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/diffpane/internal/scrollsync"
)

// Program is the Bubble Tea model of the viewer.
type Program struct {
	state      *State
	layout     *Layout
	keyHandler *KeyHandler
}

// New builds the viewer model for opts.
func New(opts Options) Program {
	return Program{
		state:      NewState(opts),
		layout:     NewLayout(),
		keyHandler: NewKeyHandler(),
	}
}

// Run instantiates and runs the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (m Program) Init() tea.Cmd {
	if m.state.Load == nil {
		return nil
	}
	if m.state.Refresh > 0 {
		return tea.Batch(loadPass(m.state.Load), tickAfter(m.state.Refresh))
	}
	return loadPass(m.state.Load)
}

func (m Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.recalcViewport()
		return m, nil
	case tickMsg:
		// Periodic reload
		if m.state.Load == nil || m.state.Refresh <= 0 {
			return m, nil
		}
		return m, tea.Batch(loadPass(m.state.Load), tickAfter(m.state.Refresh))
	case passMsg:
		if msg.err != nil {
			m.state.Log.Error().Err(msg.err).Msg("load diff")
			m.state.StatusBar.SetMessage(fmt.Sprintf("load error: %v", msg.err))
			return m, nil
		}
		// An identical reload keeps focus and highlight
		if m.state.Loaded && reflect.DeepEqual(msg.pass, m.state.Pane.Pass()) {
			m.state.StatusBar.SetMessage("")
			return m, nil
		}
		st := msg.pass.Stats()
		m.state.Log.Info().
			Int("blocks", st.Blocks).
			Int("added", st.Added).
			Int("removed", st.Removed).
			Int("rows", msg.pass.Split.Rows()).
			Msg("pass computed")
		m.state.Loaded = true
		m.state.Current = -1
		m.state.Sync.Reset()
		m.state.Pane.SetPass(msg.pass)
		m.follow()
		m.state.Minimap.SetLines(msg.pass.Minimap)
		m.state.StatusBar.SetStats(st)
		m.state.StatusBar.SetMessage("")
		if m.state.Search.IsActive() {
			m.state.Search.SetContent(m.state.Pane.SearchRows())
			m.applySearch()
		}
		m.recalcViewport()
		return m, nil
	case highlightExpiredMsg:
		m.state.Sync.ClearHighlight(msg.token)
		return m, nil
	case prefsSavedMsg:
		if msg.err != nil {
			m.state.Log.Warn().Err(msg.err).Msg("save view mode")
		}
		return m, nil
	}
	return m, nil
}

func (m Program) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	defer m.updateStatus()

	if m.state.Search.IsActive() {
		cmd := m.state.Search.HandleKey(msg)
		if !m.state.Search.IsActive() {
			m.state.Pane.SetSearch("", -1)
			m.recalcViewport()
			return m, cmd
		}
		m.applySearch()
		return m, cmd
	}

	action, count := m.keyHandler.Handle(msg)

	if m.state.ShowHelp {
		switch action {
		case ActionQuit:
			return m, tea.Quit
		case ActionToggleHelp:
			m.state.ShowHelp = false
			m.recalcViewport()
		}
		if msg.String() == "esc" {
			m.state.ShowHelp = false
			m.recalcViewport()
		}
		return m, nil
	}

	pane := m.state.Pane
	vp := pane.Primary()
	switch action {
	case ActionQuit:
		return m, tea.Quit
	case ActionToggleHelp:
		m.state.ShowHelp = true
		m.recalcViewport()
	case ActionReload:
		if m.state.Load != nil {
			return m, loadPass(m.state.Load)
		}
	case ActionToggleMode:
		return m, m.toggleMode()
	case ActionSearch:
		m.state.Search.SetContent(pane.SearchRows())
		m.state.Search.Activate()
		m.recalcViewport()
		return m, nil
	case ActionNextChange:
		return m, m.jumpRelative(count)
	case ActionPrevChange:
		return m, m.jumpRelative(-count)
	case ActionFirstChange:
		return m, m.jumpTo(0)
	case ActionLastChange:
		return m, m.jumpTo(len(pane.Pass().Blocks) - 1)
	case ActionLineDown:
		vp.LineDown(count)
	case ActionLineUp:
		vp.LineUp(count)
	case ActionHalfPageDown:
		vp.HalfViewDown()
	case ActionHalfPageUp:
		vp.HalfViewUp()
	case ActionPageDown:
		vp.ViewDown()
	case ActionPageUp:
		vp.ViewUp()
	case ActionGoToTop:
		vp.GotoTop()
	case ActionGoToBottom:
		vp.GotoBottom()
	case ActionJumpPercent:
		_, total := pane.UnifiedTop()
		m.state.Sync.ScrollToPosition(count*total/100, total, pane.Mode())
		return m, nil
	case ActionScrollLeft:
		pane.ScrollLeft(4 * count)
	case ActionScrollRight:
		pane.ScrollRight(4 * count)
	case ActionScrollHome:
		pane.ScrollHome()
	}
	m.follow()
	return m, nil
}

// follow mirrors the left pane's raw offset onto the right one after
// continuous scrolling in split mode.
func (m Program) follow() {
	if m.state.Pane.Mode() == scrollsync.Split {
		m.state.Sync.Follow(scrollsync.Left)
	}
}

// toggleMode switches views, keeping the same relative position.
func (m Program) toggleMode() tea.Cmd {
	pane := m.state.Pane
	index, total := pane.UnifiedTop()
	next := scrollsync.Split
	if pane.Mode() == scrollsync.Split {
		next = scrollsync.Unified
	}
	pane.SetMode(next)
	m.state.Sync.SetMode(next)
	m.state.StatusBar.SetMode(next)
	m.state.Sync.ScrollToPosition(index, total, next)
	m.state.Log.Debug().Stringer("mode", next).Msg("toggle mode")
	return saveMode(m.state.RepoRoot, next)
}

// applySearch marks the query and scrolls the current match to the top.
func (m Program) applySearch() {
	e := m.state.Search
	row := e.CurrentMatchLine()
	m.state.Pane.SetSearch(e.Query(), row)
	if row < 0 {
		return
	}
	m.state.Pane.Primary().SetYOffset(row)
	m.follow()
}

func (m Program) jumpRelative(delta int) tea.Cmd {
	n := len(m.state.Pane.Pass().Blocks)
	if n == 0 {
		return nil
	}
	cur := m.state.Current
	switch {
	case cur < 0 && delta > 0:
		cur = delta - 1
	case cur < 0:
		cur = n + delta
	default:
		cur += delta
	}
	return m.jumpTo(max(0, min(cur, n-1)))
}

func (m Program) jumpTo(i int) tea.Cmd {
	blocks := m.state.Pane.Pass().Blocks
	if i < 0 || i >= len(blocks) {
		return nil
	}
	h, ok := m.state.Sync.ScrollToBlock(blocks[i].ID)
	if !ok {
		return nil
	}
	m.state.Current = i
	return expireHighlight(h.Token)
}

func (m Program) updateStatus() {
	sb := m.state.StatusBar
	sb.SetCurrent(m.state.Current)
	sb.SetKeyBuffer(m.keyHandler.KeyBuffer())
	index, total := m.state.Pane.UnifiedTop()
	sb.SetPercent(int(scrollsync.Percent(index, total) * 100))
}

// recalcViewport resizes the panes to the space left by the frame.
func (m Program) recalcViewport() {
	if m.state.Width == 0 || m.state.Height == 0 {
		return
	}
	m.state.Pane.SetSize(m.layout.ContentWidth(), m.layout.ContentHeight(len(m.overlayLines())))
	m.updateStatus()
}

func (m Program) View() string {
	if m.state.Width == 0 || m.state.Height == 0 {
		return "Loading..."
	}

	overlay := m.overlayLines()
	contentHeight := m.layout.ContentHeight(len(overlay))

	var body []string
	if !m.state.Loaded {
		body = []string{"Loading diff…"}
	} else {
		body = strings.Split(m.state.Pane.View(), "\n")
	}
	start, end := m.state.Pane.Window()
	minimap := m.state.Minimap.Render(contentHeight, start, end)
	for len(body) < contentHeight {
		body = append(body, "")
	}

	top := "diffpane | " + m.state.Title
	right := m.state.StatusBar.ChangeLabel()
	return m.layout.RenderFrame(top, right, body[:contentHeight], minimap, overlay, m.state.StatusBar.Render(m.state.Width), m.state.Theme)
}

// overlayLines returns the bottom overlay lines (without trailing newline).
func (m Program) overlayLines() []string {
	if m.state.Search.IsActive() {
		return m.state.Search.RenderOverlay(m.state.Width, m.state.Theme)
	}
	return m.helpOverlayLines()
}

func (m Program) helpOverlayLines() []string {
	if !m.state.ShowHelp {
		return nil
	}
	title := lipgloss.NewStyle().Bold(true).Render("Help: press 'h' or Esc to close")
	keys := []string{
		"n/] N/[        Next / previous change (count prefix: 3n)",
		"{ / }          First / last change",
		"j/k, J/K       Scroll line / half page",
		"PgDn/PgUp      Scroll page",
		"g / G          Top / bottom",
		"50%            Jump to 50% of the diff",
		"left/right, 0  Scroll horizontally / reset",
		"s or Tab       Toggle split / unified",
		"/              Search",
		"r              Reload",
		"q              Quit",
	}
	lines := make([]string, 0, 2+len(keys))
	lines = append(lines, strings.Repeat("─", m.state.Width))
	lines = append(lines, title)
	lines = append(lines, keys...)
	return lines
}
