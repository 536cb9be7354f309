package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorScheme forces the appearance of every text element inside a widget.
// Switching it is a pure configuration change with no state migration.
type ColorScheme int

const (
	// SchemeDark is the default scheme.
	SchemeDark ColorScheme = iota
	SchemeLight
)

// String returns the string representation of ColorScheme.
func (s ColorScheme) String() string {
	switch s {
	case SchemeDark:
		return "Dark"
	case SchemeLight:
		return "Light"
	default:
		return "Unknown"
	}
}

// Variant maps the scheme to the Fyne theme variant it forces.
func (s ColorScheme) Variant() fyne.ThemeVariant {
	if s == SchemeLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

// schemeTheme pins every color lookup to one variant, ignoring the system
// setting. Widgets wrap their content in a theme override built from it so
// the scheme threads through all child text and icons.
type schemeTheme struct {
	variant fyne.ThemeVariant
}

func newSchemeTheme(scheme ColorScheme) fyne.Theme {
	return &schemeTheme{variant: scheme.Variant()}
}

// Color returns theme colors resolved against the forced variant.
func (t *schemeTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts.
func (t *schemeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons.
func (t *schemeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes.
func (t *schemeTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// AppTheme defines a compact theme for the demo application with reduced
// padding, tuned for small screens.
type AppTheme struct{}

// NewAppTheme creates the application theme.
func NewAppTheme() fyne.Theme {
	return &AppTheme{}
}

// Color returns theme colors.
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 98, G: 0, B: 238, A: 255} // Purple accent for media controls
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts.
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons.
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments.
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	}
	return theme.DefaultTheme().Size(name)
}
