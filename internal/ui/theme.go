package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemePreferenceKey is the key used to store theme preference
const ThemePreferenceKey = "appTheme"

// forcedVariant wraps a theme to force a specific variant (light/dark)
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// Color returns the color for the forced variant, ignoring the passed variant
func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ApplyTheme sets the application theme based on the mode
// mode can be "dark", "light", or "system" (default)
func ApplyTheme(a fyne.App, mode string) {
	switch mode {
	case "dark":
		a.Settings().SetTheme(&forcedVariant{
			Theme:   theme.DefaultTheme(),
			variant: theme.VariantDark,
		})
	case "light":
		a.Settings().SetTheme(&forcedVariant{
			Theme:   theme.DefaultTheme(),
			variant: theme.VariantLight,
		})
	default: // "system"
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}

// LoadThemePreference loads and applies the saved theme preference
func LoadThemePreference(a fyne.App) {
	mode := a.Preferences().StringWithFallback(ThemePreferenceKey, "system")
	ApplyTheme(a, mode)
}

// SaveThemePreference saves and applies the theme preference
func SaveThemePreference(a fyne.App, mode string) {
	a.Preferences().SetString(ThemePreferenceKey, mode)
	ApplyTheme(a, mode)
}

// ApplyStartupTheme applies the theme forced by configuration, or the
// saved preference when none is configured
func ApplyStartupTheme(a fyne.App, configured string) {
	if configured != "" {
		ApplyTheme(a, configured)
		return
	}
	LoadThemePreference(a)
}

// themeMenu creates the View > Theme submenu. Picking an entry saves it
// as the preference.
func themeMenu(a fyne.App) *fyne.MenuItem {
	item := fyne.NewMenuItem("Theme", nil)
	modes := []struct{ label, mode string }{
		{"System Default", "system"},
		{"Light", "light"},
		{"Dark", "dark"},
	}

	saved := a.Preferences().StringWithFallback(ThemePreferenceKey, "system")
	children := make([]*fyne.MenuItem, 0, len(modes))
	for _, m := range modes {
		child := fyne.NewMenuItem(m.label, nil)
		child.Checked = m.mode == saved
		child.Action = func() {
			SaveThemePreference(a, m.mode)
			for _, c := range children {
				c.Checked = c == child
			}
		}
		children = append(children, child)
	}
	item.ChildMenu = fyne.NewMenu("", children...)
	return item
}
