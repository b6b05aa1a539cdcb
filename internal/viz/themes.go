package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the interface colors. Curve colors come from the palette.
type Theme struct {
	Name   string
	Axis   lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
	Error  lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:   "classic",
		Axis:   lipgloss.Color("#666666"),
		Text:   lipgloss.Color("#e0e0e0"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#00cccc"),
		Border: lipgloss.Color("#444466"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Axis:   lipgloss.Color("#005500"), // Green phosphor
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#00aa00"),
		Accent: lipgloss.Color("#88ff88"),
		Border: lipgloss.Color("#003300"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Axis:   lipgloss.Color("#555555"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
		Border: lipgloss.Color("#333333"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Axis:   lipgloss.Color("#4488aa"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#6699bb"),
		Accent: lipgloss.Color("#ffd700"),
		Border: lipgloss.Color("#0077be"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Axis:   lipgloss.Color("#8b6b8c"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#b08fb1"),
		Accent: lipgloss.Color("#feca57"),
		Border: lipgloss.Color("#ff6b6b"),
		Error:  lipgloss.Color("#ff4757"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name and whether it exists. Unknown names
// yield ThemeClassic.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeClassic, false
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
