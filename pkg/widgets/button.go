package widgets

import (
	"strings"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
	"github.com/go-drift/retain/pkg/layout"
)

// Button is a pressable box around an optional child.
//
// A left press while hovered captures the mouse and, unless NoKeyboardFocus
// is set, takes keyboard focus. Releasing the press over the button clicks
// it. With keyboard focus, Return presses and releasing Return clicks;
// Escape cancels any press without clicking.
//
// The background is PressedFill while pressed, HoverFill while hovered and
// Fill otherwise. Zero state colors fall back to Fill.
type Button struct {
	Child           *core.Def
	OnClick         func()
	NoKeyboardFocus bool

	Fill        graphics.Color
	HoverFill   graphics.Color
	PressedFill graphics.Color
}

func (b Button) NewWidget() core.Widget {
	return &buttonWidget{}
}

type buttonWidget struct {
	core.Base
	spec  Button
	child core.Widget

	keyboardPressing bool
	mousePressing    bool
	hovering         bool
}

func (w *buttonWidget) TryMatch(spec core.Spec) bool {
	return core.MatchAs(spec, func(b Button) {
		w.child = w.Reconcile(w.child, b.Child)
		b.Child = nil
		w.spec = b
		w.MarkForLayout()
	})
}

func (w *buttonWidget) pressed() bool {
	return w.keyboardPressing || w.mousePressing
}

// pressChanged repaints when the pressed state differs from before.
func (w *buttonWidget) pressChanged(before bool) {
	if before != w.pressed() {
		w.MarkForPaint()
	}
}

func (w *buttonWidget) click() {
	if w.spec.OnClick != nil {
		w.spec.OnClick()
	}
}

func (w *buttonWidget) OnLayout(c layout.Constraints) {
	size := layoutChild(w.child, c)
	if w.child != nil {
		w.child.SetPosition(graphics.Offset{})
		w.SetBaseline(w.child.Baseline())
	}
	w.SetSize(c.Constrain(size))
}

func (w *buttonWidget) OnPaint(canvas graphics.Canvas) {
	fill := w.spec.Fill
	switch {
	case w.pressed() && w.spec.PressedFill != graphics.ColorTransparent:
		fill = w.spec.PressedFill
	case w.hovering && w.spec.HoverFill != graphics.ColorTransparent:
		fill = w.spec.HoverFill
	}
	if fill.IsVisible() {
		canvas.DrawRect(graphics.RectFromSize(w.Size()), graphics.FillPaint(fill))
	}
	paintChild(w.child, canvas)
}

func (w *buttonWidget) VisitChildren(visitor func(core.Widget)) {
	visitChild(w.child, visitor)
}

func (w *buttonWidget) OnDestroy() {
	w.DropMaybe(w.child)
	w.child = nil
}

func (w *buttonWidget) BlocksMouse() bool     { return true }
func (w *buttonWidget) TakesMouseInput() bool { return true }
func (w *buttonWidget) OnMouseMove() bool     { return false }

func (w *buttonWidget) OnMouseEnter() {
	w.hovering = true
	w.MarkForPaint()
}

func (w *buttonWidget) OnMouseLeave() {
	w.hovering = false
	w.MarkForPaint()
}

func (w *buttonWidget) OnMouseDown(button input.MouseButton) bool {
	if button == input.MouseLeft && w.hovering {
		before := w.pressed()
		w.mousePressing = true
		w.pressChanged(before)

		w.GrabMouseFocus()
		if !w.spec.NoKeyboardFocus {
			w.GrabKeyboardFocus()
		}
	}
	return true
}

func (w *buttonWidget) OnMouseUp(button input.MouseButton) bool {
	if button == input.MouseLeft {
		before := w.pressed()
		w.mousePressing = false
		if w.hovering && before && !w.pressed() {
			w.click()
		}
		w.pressChanged(before)
		w.ReleaseMouseFocus()
	}
	return true
}

func (w *buttonWidget) OnGainMouseFocus() {}

func (w *buttonWidget) OnLoseMouseFocus() {
	before := w.pressed()
	w.mousePressing = false
	w.pressChanged(before)
}

func (w *buttonWidget) OnKeyDown(key input.VirtualKey) {
	before := w.pressed()
	switch key {
	case input.KeyReturn:
		w.keyboardPressing = true
	case input.KeyEscape:
		w.keyboardPressing = false
		w.mousePressing = false
	}
	w.pressChanged(before)
}

func (w *buttonWidget) OnKeyUp(key input.VirtualKey) {
	if key != input.KeyReturn {
		return
	}
	before := w.pressed()
	w.keyboardPressing = false
	if before && !w.pressed() {
		w.click()
	}
	w.pressChanged(before)
}

func (w *buttonWidget) OnChar(byte) {}

func (w *buttonWidget) OnGainKeyboardFocus() {
	w.MarkForPaint()
}

func (w *buttonWidget) OnLoseKeyboardFocus() {
	before := w.pressed()
	w.keyboardPressing = false
	w.pressChanged(before)
}

func (w *buttonWidget) Describe() string {
	var state []string
	if w.hovering {
		state = append(state, "hovered")
	}
	if w.pressed() {
		state = append(state, "pressed")
	}
	if w.HasKeyboardFocus() {
		state = append(state, "focused")
	}
	if len(state) == 0 {
		return "idle"
	}
	return strings.Join(state, " ")
}
