package theme

import (
	"strings"

	"pedietcalc/models"
)

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// WorkspaceTheme contains resolved styling primitives for the calculator shell.
type WorkspaceTheme struct {
	Key             string
	BodyClass       string
	ShellClass      string
	CardClass       string
	AccentTextClass string
	MutedTextClass  string
}

// DefaultKey defines the fallback theme when the session has no preference.
const DefaultKey = models.DefaultTheme

var catalogue = map[string]WorkspaceTheme{
	models.ThemeKitchen: {
		Key:             models.ThemeKitchen,
		BodyClass:       "theme-kitchen",
		ShellClass:      "app light",
		CardClass:       "ingredient-card",
		AccentTextClass: "accent",
		MutedTextClass:  "muted",
	},
	models.ThemeMidnight: {
		Key:             models.ThemeMidnight,
		BodyClass:       "theme-midnight",
		ShellClass:      "app dark",
		CardClass:       "ingredient-card",
		AccentTextClass: "accent",
		MutedTextClass:  "muted",
	},
	models.ThemeHighContrast: {
		Key:             models.ThemeHighContrast,
		BodyClass:       "theme-contrast",
		ShellClass:      "app contrast",
		CardClass:       "ingredient-card ingredient-card--outlined",
		AccentTextClass: "accent accent--strong",
		MutedTextClass:  "muted",
	},
}

var options = []Option{
	{Value: models.ThemeKitchen, Label: "Kitchen (Light)"},
	{Value: models.ThemeMidnight, Label: "Midnight (Dark)"},
	{Value: models.ThemeHighContrast, Label: "High contrast"},
}

// Resolve returns the registered theme for key, falling back to the default.
func Resolve(key string) WorkspaceTheme {
	return catalogue[models.NormalizeTheme(key)]
}

// Lookup returns the theme for key and whether key named a known theme.
func Lookup(key string) (WorkspaceTheme, bool) {
	value, ok := catalogue[strings.ToLower(strings.TrimSpace(key))]
	return value, ok
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}
