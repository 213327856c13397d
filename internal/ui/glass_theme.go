package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GlassTheme is a dark theme with translucent surfaces, approximating the
// glass-card look of the original design: semi-transparent input backgrounds
// over a deep blue-violet base.
type GlassTheme struct{}

// NewGlassTheme creates a new glass theme
func NewGlassTheme() fyne.Theme {
	return &GlassTheme{}
}

// Color returns theme colors
func (t *GlassTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 18, G: 16, B: 38, A: 255} // deep blue-violet base
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 255, G: 255, B: 255, A: 24} // frosted card
	case theme.ColorNameButton:
		return color.RGBA{R: 255, G: 255, B: 255, A: 36}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 124, G: 92, B: 255, A: 255} // violet accent
	case theme.ColorNameSuccess:
		return color.RGBA{R: 72, G: 199, B: 142, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 255, G: 99, B: 99, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 240, G: 240, B: 248, A: 255}
	case theme.ColorNamePlaceHolder:
		return color.RGBA{R: 200, G: 200, B: 216, A: 140}
	}

	// Force the dark variant for everything else so the frosted surfaces
	// keep their contrast.
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *GlassTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GlassTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with slightly roomier touch spacing
func (t *GlassTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameInputRadius:
		return 10
	case theme.SizeNameSelectionRadius:
		return 8
	case theme.SizeNameText:
		return 14
	}

	return theme.DefaultTheme().Size(name)
}
