package layout

import "github.com/go-drift/retain/pkg/graphics"

// EdgeInsets is empty space on each side of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns equal insets on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns horizontal insets on the left and right and
// vertical insets on the top and bottom.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly returns the given insets in left, top, right, bottom order.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// TopLeft returns the offset of the content box inside the padded box.
func (e EdgeInsets) TopLeft() graphics.Offset {
	return graphics.Offset{X: e.Left, Y: e.Top}
}

// Inflate grows size by the insets.
func (e EdgeInsets) Inflate(size graphics.Size) graphics.Size {
	return graphics.Size{Width: size.Width + e.Horizontal(), Height: size.Height + e.Vertical()}
}

// DeflateConstraints shrinks c by the insets.
func (e EdgeInsets) DeflateConstraints(c Constraints) Constraints {
	return c.Deflate(e.Horizontal(), e.Vertical())
}
