package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme tightens padding and text sizes so the single-form window
// stays small, and tints status colors for the pipeline stages.
type CompactTheme struct {
	base fyne.Theme
}

// NewCompactTheme creates a new compact theme on top of the default theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{base: theme.DefaultTheme()}
}

var compactColors = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameSuccess: color.RGBA{R: 46, G: 160, B: 67, A: 255},  // completed
	theme.ColorNameError:   color.RGBA{R: 183, G: 28, B: 28, A: 255},  // failed stage
	theme.ColorNameWarning: color.RGBA{R: 255, G: 193, B: 7, A: 255},  // in progress
	theme.ColorNamePrimary: color.RGBA{R: 25, G: 118, B: 210, A: 255}, // download button
}

var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       12,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  13,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := compactColors[name]; ok {
		return c
	}
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := compactSizes[name]; ok {
		return s
	}
	return t.base.Size(name)
}
