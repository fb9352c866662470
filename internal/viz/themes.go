package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the explorer.
type Theme struct {
	Name   string
	Curve  lipgloss.Color // function curve and descent path
	Accent lipgloss.Color // headers and the selected menu entry
	Graph  lipgloss.Color // residual chart
	Good   lipgloss.Color
	Bad    lipgloss.Color
}

// Available themes
var (
	ThemePhosphor = Theme{
		Name:   "phosphor",
		Curve:  lipgloss.Color("#00ff66"),
		Accent: lipgloss.Color("#88ff88"),
		Graph:  lipgloss.Color("#00cc44"),
		Good:   lipgloss.Color("#88ff88"),
		Bad:    lipgloss.Color("#ff4444"),
	}

	ThemeIce = Theme{
		Name:   "ice",
		Curve:  lipgloss.Color("#00ccff"),
		Accent: lipgloss.Color("#66e0ff"),
		Graph:  lipgloss.Color("#0088cc"),
		Good:   lipgloss.Color("#00ff88"),
		Bad:    lipgloss.Color("#ff6666"),
	}

	ThemeAmber = Theme{
		Name:   "amber",
		Curve:  lipgloss.Color("#ffbb00"),
		Accent: lipgloss.Color("#ffdd66"),
		Graph:  lipgloss.Color("#cc8800"),
		Good:   lipgloss.Color("#aaff66"),
		Bad:    lipgloss.Color("#ff5555"),
	}

	// Default theme
	CurrentTheme = ThemePhosphor

	// All available themes
	Themes = []Theme{ThemePhosphor, ThemeIce, ThemeAmber}
)

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePhosphor
}

// SetTheme changes the current theme.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the list of available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
