package models

import "strings"

const (
	ThemeKitchen      = "kitchen"
	ThemeMidnight     = "midnight"
	ThemeHighContrast = "contrast"

	// DefaultTheme is applied when a session has no preference.
	DefaultTheme = ThemeKitchen
)

// ValidTheme reports whether value names a known theme.
func ValidTheme(value string) bool {
	switch value {
	case ThemeKitchen, ThemeMidnight, ThemeHighContrast:
		return true
	default:
		return false
	}
}

// NormalizeTheme trims and lowercases value, falling back to DefaultTheme.
func NormalizeTheme(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if ValidTheme(normalized) {
		return normalized
	}
	return DefaultTheme
}
