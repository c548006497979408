package graphics

// PaintStyle selects between filling and stroking a shape.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke outlines the shape.
	PaintStyleStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// FillPaint returns a fill paint of the given color.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

// StrokePaint returns a one-pixel stroke paint of the given color.
func StrokePaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: 1}
}

// Canvas is the drawing target widgets paint into. Coordinates are relative
// to the current origin; the widget tree translates the origin to each
// widget's position before calling its paint hook and restores it after.
type Canvas interface {
	// Save pushes the current origin.
	Save()

	// Restore pops the most recent origin.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, position Offset, style TextStyle)

	// Size returns the size of the drawing target.
	Size() Size
}
