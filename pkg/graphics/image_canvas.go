package graphics

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas is a software Canvas that rasterizes into an *image.RGBA.
// Rectangles are axis-aligned and pixel-snapped; text uses DefaultFace at
// its native size.
type ImageCanvas struct {
	img    *image.RGBA
	origin Offset
	stack  []Offset
}

// NewImageCanvas allocates a canvas of the given pixel size cleared to background.
func NewImageCanvas(width, height int, background Color) *ImageCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background.NRGBA()), image.Point{}, draw.Src)
	return &ImageCanvas{img: img}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.origin)
}

func (c *ImageCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.origin = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *ImageCanvas) Translate(dx, dy float64) {
	c.origin = c.origin.Add(Offset{X: dx, Y: dy})
}

func (c *ImageCanvas) DrawRect(rect Rect, paint Paint) {
	if !paint.Color.IsVisible() {
		return
	}
	r := rect.Translate(c.origin.X, c.origin.Y)
	src := image.NewUniform(paint.Color.NRGBA())
	if paint.Style == PaintStyleFill {
		draw.Draw(c.img, pixelRect(r), src, image.Point{}, draw.Over)
		return
	}
	w := math.Max(1, paint.StrokeWidth)
	edges := []Rect{
		{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Top + w},
		{Left: r.Left, Top: r.Bottom - w, Right: r.Right, Bottom: r.Bottom},
		{Left: r.Left, Top: r.Top + w, Right: r.Left + w, Bottom: r.Bottom - w},
		{Left: r.Right - w, Top: r.Top + w, Right: r.Right, Bottom: r.Bottom - w},
	}
	for _, edge := range edges {
		draw.Draw(c.img, pixelRect(edge), src, image.Point{}, draw.Over)
	}
}

func (c *ImageCanvas) DrawText(text string, position Offset, style TextStyle) {
	face := DefaultFace()
	p := position.Add(c.origin)
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(p.X), Y: floatToFixed(p.Y) + face.Metrics().Ascent},
	}
	drawer.DrawString(text)
}

func (c *ImageCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func pixelRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
