package theme

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/diffpane/internal/diffview"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AddColor         string `json:"addColor"`
	DelColor         string `json:"delColor"`
	DividerColor     string `json:"dividerColor"`
	MinimapColor     string `json:"minimapColor"`
	WindowColor      string `json:"windowColor"`
	HighlightBgColor string `json:"highlightBgColor"`
	AddBgColor       string `json:"addBgColor"`
	DelBgColor       string `json:"delBgColor"`
	MatchBgColor     string `json:"matchBgColor"`
	CurrentBgColor   string `json:"currentBgColor"`
}

func darkTheme() Theme {
	return Theme{
		AddColor:         "34",
		DelColor:         "196",
		DividerColor:     "240",
		MinimapColor:     "238",
		WindowColor:      "250",
		HighlightBgColor: "58",
		AddBgColor:       "22",
		DelBgColor:       "52",
		MatchBgColor:     "244",
		CurrentBgColor:   "220",
	}
}

func lightTheme() Theme {
	return Theme{
		AddColor:         "22",
		DelColor:         "9",
		DividerColor:     "244",
		MinimapColor:     "252",
		WindowColor:      "240",
		HighlightBgColor: "229",
		AddBgColor:       "194",
		DelBgColor:       "224",
		MatchBgColor:     "250",
		CurrentBgColor:   "214",
	}
}

// Named returns the base theme called name; anything but "light" is dark.
func Named(name string) Theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}

// Load merges dir/.diffpane/theme.json over the named base theme. A missing
// or malformed file yields the base theme.
func Load(dir, base string) Theme {
	t := Named(base)
	b, err := os.ReadFile(filepath.Join(dir, ".diffpane", "theme.json"))
	if err != nil {
		return t
	}
	var u Theme
	if err := json.Unmarshal(b, &u); err != nil {
		return t
	}
	merge(&t.AddColor, u.AddColor)
	merge(&t.DelColor, u.DelColor)
	merge(&t.DividerColor, u.DividerColor)
	merge(&t.MinimapColor, u.MinimapColor)
	merge(&t.WindowColor, u.WindowColor)
	merge(&t.HighlightBgColor, u.HighlightBgColor)
	merge(&t.AddBgColor, u.AddBgColor)
	merge(&t.DelBgColor, u.DelBgColor)
	merge(&t.MatchBgColor, u.MatchBgColor)
	merge(&t.CurrentBgColor, u.CurrentBgColor)
	return t
}

func merge(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (t Theme) AddText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AddColor)).Render(s)
}

func (t Theme) DelText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DelColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}

func (t Theme) Faint(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}

// KindText colors s by diff kind.
func (t Theme) KindText(k diffview.Kind, s string) string {
	switch k {
	case diffview.Added:
		return t.AddText(s)
	case diffview.Removed:
		return t.DelText(s)
	default:
		return s
	}
}

// Highlight paints a line belonging to a jumped-to block: highlight
// background, kind-colored text. s must be unstyled.
func (t Theme) Highlight(k diffview.Kind, s string) string {
	st := lipgloss.NewStyle().Background(lipgloss.Color(t.HighlightBgColor))
	switch k {
	case diffview.Added:
		st = st.Foreground(lipgloss.Color(t.AddColor))
	case diffview.Removed:
		st = st.Foreground(lipgloss.Color(t.DelColor))
	}
	return st.Render(s)
}

// Match paints a search hit; current marks the selected one.
func (t Theme) Match(s string, current bool) string {
	bg := t.MatchBgColor
	if current {
		bg = t.CurrentBgColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(bg)).Render(s)
}

// MinimapCell renders one minimap cell; window marks rows inside the
// visible viewport.
func (t Theme) MinimapCell(k diffview.Kind, window bool) string {
	st := lipgloss.NewStyle()
	switch k {
	case diffview.Added:
		st = st.Background(lipgloss.Color(t.AddBgColor)).Foreground(lipgloss.Color(t.AddColor))
	case diffview.Removed:
		st = st.Background(lipgloss.Color(t.DelBgColor)).Foreground(lipgloss.Color(t.DelColor))
	default:
		st = st.Foreground(lipgloss.Color(t.MinimapColor))
	}
	if window {
		return st.Foreground(lipgloss.Color(t.WindowColor)).Render("┃")
	}
	return st.Render("▌")
}
