package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is the native pixel height of the bundled face.
const defaultFontSize = 13

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// TextMetrics holds the measured extent of a single line of text.
type TextMetrics struct {
	Size    Size
	Ascent  float64
	Descent float64
}

// DefaultFace returns the bundled fixed-width face used for measurement and
// raster output.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// MeasureText measures a single line of text in the given style. The bundled
// face is scaled linearly to the requested font size.
func MeasureText(text string, style TextStyle) TextMetrics {
	face := DefaultFace()
	scale := fontScale(style)
	metrics := face.Metrics()
	advance := font.MeasureString(face, text)
	ascent := fixedToFloat(metrics.Ascent) * scale
	descent := fixedToFloat(metrics.Descent) * scale
	return TextMetrics{
		Size: Size{
			Width:  fixedToFloat(advance) * scale,
			Height: ascent + descent,
		},
		Ascent:  ascent,
		Descent: descent,
	}
}

func fontScale(style TextStyle) float64 {
	if style.FontSize <= 0 {
		return 1
	}
	return style.FontSize / defaultFontSize
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
