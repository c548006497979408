// Package layout defines the box constraints passed down the widget tree
// during layout.
package layout

import (
	"math"

	"github.com/go-drift/retain/pkg/graphics"
)

// Constraints bound the size a widget may choose during layout.
type Constraints struct {
	Min graphics.Size
	Max graphics.Size
}

// Tight returns constraints that admit exactly size.
func Tight(size graphics.Size) Constraints {
	return Constraints{Min: size, Max: size}
}

// Loose returns constraints from zero up to size.
func Loose(size graphics.Size) Constraints {
	return Constraints{Max: size}
}

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return Constraints{Max: graphics.Size{Width: math.Inf(1), Height: math.Inf(1)}}
}

// IsTight reports whether Min equals Max.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// Constrain clamps size into [Min, Max].
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.Min.Width, c.Max.Width),
		Height: clamp(size.Height, c.Min.Height, c.Max.Height),
	}
}

// Deflate shrinks both bounds by the given insets, never below zero.
func (c Constraints) Deflate(horizontal, vertical float64) Constraints {
	return Constraints{
		Min: graphics.Size{
			Width:  math.Max(0, c.Min.Width-horizontal),
			Height: math.Max(0, c.Min.Height-vertical),
		},
		Max: graphics.Size{
			Width:  math.Max(0, c.Max.Width-horizontal),
			Height: math.Max(0, c.Max.Height-vertical),
		},
	}
}

// Loosen drops the minimum to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
