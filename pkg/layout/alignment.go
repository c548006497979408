package layout

import (
	"math"

	"github.com/go-drift/retain/pkg/graphics"
)

// Alignment places a child inside a larger box. X and Y are fractions of the
// free space: 0 is the top or left edge, 1 the bottom or right edge.
type Alignment struct {
	X, Y float64
}

var (
	AlignmentTopLeft     = Alignment{X: 0, Y: 0}
	AlignmentCenter      = Alignment{X: 0.5, Y: 0.5}
	AlignmentBottomRight = Alignment{X: 1, Y: 1}
)

// Within returns the offset of a child of size inner inside outer, rounded
// to whole pixels.
func (a Alignment) Within(outer, inner graphics.Size) graphics.Offset {
	return graphics.Offset{
		X: math.Round(a.X * (outer.Width - inner.Width)),
		Y: math.Round(a.Y * (outer.Height - inner.Height)),
	}
}
