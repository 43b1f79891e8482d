// Package ui provides the RollCut application UI components.
//
// This file defines a custom compact Fyne theme for a dense layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RollCutTheme wraps the default Fyne theme with compact sizing overrides
// for an information-dense cutting layout application.
type RollCutTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewRollCutTheme creates a new RollCutTheme with the system default variant.
func NewRollCutTheme() *RollCutTheme {
	return &RollCutTheme{
		base:    theme.DefaultTheme(),
		variant: 0, // system default
	}
}

// NewRollCutThemeWithVariant creates a RollCutTheme with a specific light/dark variant.
func NewRollCutThemeWithVariant(variant fyne.ThemeVariant) *RollCutTheme {
	return &RollCutTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// SetVariant updates the theme variant (light/dark/system).
func (t *RollCutTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color delegates to the base theme with the stored variant.
func (t *RollCutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *RollCutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *RollCutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *RollCutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
