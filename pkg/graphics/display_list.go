package graphics

import (
	"fmt"
	"strings"
)

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// String renders one operation per line, for snapshot comparisons.
func (d *DisplayList) String() string {
	var sb strings.Builder
	for _, op := range d.ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rects returns the rectangles drawn with DrawRect, translated into the
// coordinate space of the recording's root.
func (d *DisplayList) Rects() []Rect {
	var (
		rects  []Rect
		origin Offset
		stack  []Offset
	)
	for _, op := range d.ops {
		switch o := op.(type) {
		case opSave:
			stack = append(stack, origin)
		case opRestore:
			if n := len(stack); n > 0 {
				origin = stack[n-1]
				stack = stack[:n-1]
			}
		case opTranslate:
			origin = origin.Add(Offset{X: o.dx, Y: o.dy})
		case opRect:
			rects = append(rects, o.rect.Translate(origin.X, origin.Y))
		}
	}
	return rects
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
	String() string
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, style TextStyle) {
	c.recorder.append(opText{text: text, position: position, style: style})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) { canvas.Save() }
func (opSave) String() string        { return "save" }

type opRestore struct{}

func (opRestore) execute(canvas Canvas) { canvas.Restore() }
func (opRestore) String() string        { return "restore" }

type opTranslate struct {
	dx, dy float64
}

func (op opTranslate) execute(canvas Canvas) { canvas.Translate(op.dx, op.dy) }
func (op opTranslate) String() string {
	return fmt.Sprintf("translate %g,%g", op.dx, op.dy)
}

type opRect struct {
	rect  Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) { canvas.DrawRect(op.rect, op.paint) }
func (op opRect) String() string {
	style := "fill"
	if op.paint.Style == PaintStyleStroke {
		style = "stroke"
	}
	return fmt.Sprintf("rect %s %g,%g %gx%g #%08x", style,
		op.rect.Left, op.rect.Top, op.rect.Width(), op.rect.Height(), uint32(op.paint.Color))
}

type opText struct {
	text     string
	position Offset
	style    TextStyle
}

func (op opText) execute(canvas Canvas) { canvas.DrawText(op.text, op.position, op.style) }
func (op opText) String() string {
	return fmt.Sprintf("text %q %g,%g", op.text, op.position.X, op.position.Y)
}
