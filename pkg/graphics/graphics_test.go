package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeContainsIsHalfOpen(t *testing.T) {
	s := Size{Width: 10, Height: 5}
	assert.True(t, s.Contains(Offset{}))
	assert.True(t, s.Contains(Offset{X: 9.5, Y: 4.9}))
	assert.False(t, s.Contains(Offset{X: 10, Y: 0}))
	assert.False(t, s.Contains(Offset{X: 0, Y: 5}))
	assert.False(t, s.Contains(Offset{X: -0.1, Y: 1}))
}

func TestRecorderTracksTranslatedRects(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 100, Height: 100})
	canvas.Save()
	canvas.Translate(10, 20)
	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(ColorBlack))
	canvas.Save()
	canvas.Translate(1, 1)
	canvas.DrawRect(RectFromLTWH(2, 2, 3, 3), StrokePaint(ColorWhite))
	canvas.Restore()
	canvas.Restore()
	canvas.DrawRect(RectFromLTWH(0, 0, 1, 1), FillPaint(ColorBlack))
	list := recorder.EndRecording()

	require.Equal(t, 9, list.Len())
	assert.Equal(t, []Rect{
		RectFromLTWH(10, 20, 5, 5),
		RectFromLTWH(13, 23, 3, 3),
		RectFromLTWH(0, 0, 1, 1),
	}, list.Rects())
	assert.Contains(t, list.String(), "translate 10,20\n")
	assert.Contains(t, list.String(), "rect stroke 2,2 3x3 #ffffffff\n")
}

func TestRecorderIgnoresDrawsOutsideRecording(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 1, Height: 1})
	list := recorder.EndRecording()
	canvas.DrawRect(RectFromLTWH(0, 0, 1, 1), FillPaint(ColorBlack))

	assert.Equal(t, 0, list.Len())
}

func TestMeasureTextUsesBundledFace(t *testing.T) {
	m := MeasureText("hello", TextStyle{})
	assert.Equal(t, 35.0, m.Size.Width)
	assert.Equal(t, 13.0, m.Size.Height)
	assert.Equal(t, 11.0, m.Ascent)

	doubled := MeasureText("hello", TextStyle{FontSize: 26})
	assert.Equal(t, 70.0, doubled.Size.Width)
	assert.Equal(t, 26.0, doubled.Size.Height)
}

func TestImageCanvasFillsTranslatedRect(t *testing.T) {
	canvas := NewImageCanvas(20, 20, ColorWhite)
	canvas.Save()
	canvas.Translate(5, 5)
	canvas.DrawRect(RectFromLTWH(0, 0, 4, 4), FillPaint(RGB(255, 0, 0)))
	canvas.Restore()

	img := canvas.Image()
	r, g, b, _ := img.At(6, 6).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	r, g, b, _ = img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	assert.Equal(t, Size{Width: 20, Height: 20}, canvas.Size())
}

func TestImageCanvasDrawsText(t *testing.T) {
	canvas := NewImageCanvas(40, 20, ColorWhite)
	canvas.DrawText("W", Offset{X: 2, Y: 2}, TextStyle{Color: ColorBlack})

	dark := 0
	b := canvas.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, _, _, _ := canvas.Image().At(x, y).RGBA(); r < 0x8000 {
				dark++
			}
		}
	}
	assert.Positive(t, dark)
}
