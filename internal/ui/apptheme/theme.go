// Package apptheme switches the application between light, dark and the
// system default appearance.
package apptheme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Stored preference values; the empty string follows the system.
const (
	System = ""
	Light  = "light"
	Dark   = "dark"
)

// Apply sets the application theme for a stored preference. Unknown values
// follow the system.
func Apply(app fyne.App, name string) {
	switch name {
	case Light:
		app.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	case Dark:
		app.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	default:
		app.Settings().SetTheme(theme.DefaultTheme())
	}
}

// forcedVariant pins the base theme to one variant regardless of the OS
// preference.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}
