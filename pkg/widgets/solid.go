package widgets

import (
	"fmt"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/layout"
)

// Solid paints a filled and optionally outlined rectangle.
//
// Solid sizes itself to Size, clamped to its constraints, and blocks the
// mouse so nothing behind it is hit.
type Solid struct {
	Fill   graphics.Color
	Stroke graphics.Color
	Size   graphics.Size
}

func (s Solid) NewWidget() core.Widget {
	return &solidWidget{}
}

type solidWidget struct {
	core.Base
	spec Solid
}

func (w *solidWidget) TryMatch(spec core.Spec) bool {
	return core.MatchAs(spec, func(s Solid) {
		w.spec = s
		w.MarkForLayout()
	})
}

func (w *solidWidget) BlocksMouse() bool {
	return true
}

func (w *solidWidget) OnLayout(c layout.Constraints) {
	w.SetSize(c.Constrain(w.spec.Size))
}

func (w *solidWidget) OnPaint(canvas graphics.Canvas) {
	rect := graphics.RectFromSize(w.Size())
	if w.spec.Fill.IsVisible() {
		canvas.DrawRect(rect, graphics.FillPaint(w.spec.Fill))
	}
	if w.spec.Stroke.IsVisible() {
		canvas.DrawRect(rect.Inset(0.5), graphics.StrokePaint(w.spec.Stroke))
	}
}

func (w *solidWidget) Describe() string {
	return fmt.Sprintf("fill=#%08x", uint32(w.spec.Fill))
}
