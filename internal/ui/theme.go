package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string
	Border        string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Storefront accents
	Favorite string
	Price    string
	Star     string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	bar := lipgloss.NewStyle().Background(lipgloss.Color(t.Surface)).Padding(0, 1)

	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Header:   bar.Foreground(lipgloss.Color(t.Text)),
		Footer:   bar.Foreground(lipgloss.Color(t.Muted)),
		Logo:     fg(t.Accent).Bold(true),
		Selected: fg(t.SelectionText).Background(lipgloss.Color(t.SelectionBg)),
		Favorite: fg(t.Favorite),
		Price:    fg(t.Price).Bold(true),
		Star:     fg(t.Star),
		Chip:     fg(t.Background).Background(lipgloss.Color(t.Accent)).Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Favorite lipgloss.Style
	Price    lipgloss.Style
	Star     lipgloss.Style
	Chip     lipgloss.Style
	Panel    lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Orchid": orchidTheme(),
	"Slate":  slateTheme(),
}

var themeOrder = []string{"Orchid", "Slate"}

const defaultThemeName = "Orchid"

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return orchidTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func orchidTheme() Theme {
	// Purple to pink, after the web storefront's gradient.
	return Theme{
		Name: "Orchid",

		Background: "#1a1025",
		Surface:    "#241533",

		SelectionBg:   "#7e22ce",
		SelectionText: "#faf5ff",
		Border:        "#581c87",

		Text:    "#f5f3ff",
		Muted:   "#c4b5fd",
		Faint:   "#8b7aa8",
		Accent:  "#c084fc",
		Success: "#4ade80",
		Warning: "#fb923c",
		Danger:  "#f87171",

		Favorite: "#ec4899",
		Price:    "#f9a8d4",
		Star:     "#facc15",
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "Slate",

		Background: "#0b1120",
		Surface:    "#111827",

		SelectionBg:   "#0369a1",
		SelectionText: "#f9fafb",
		Border:        "#374151",

		Text:    "#e5e7eb",
		Muted:   "#9ca3af",
		Faint:   "#6b7280",
		Accent:  "#7dd3fc",
		Success: "#34d399",
		Warning: "#fbbf24",
		Danger:  "#f87171",

		Favorite: "#fb7185",
		Price:    "#34d399",
		Star:     "#fcd34d",
	}
}
