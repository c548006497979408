package engine

import (
	"slices"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
)

type mouseState struct {
	hot      []core.Widget
	focus    core.Widget
	position graphics.Offset
	delta    graphics.Offset
	buttons  [input.MouseButtonCount]bool
	entered  bool
}

// MouseState is a snapshot of the pointer state.
type MouseState struct {
	// Hot lists the widgets eligible for pointer events, back to front.
	Hot      []core.Widget
	Focus    core.Widget
	Position graphics.Offset
	Delta    graphics.Offset
	Buttons  [input.MouseButtonCount]bool
	Entered  bool
}

// Mouse returns a snapshot of the pointer state.
func (g *Gui) Mouse() MouseState {
	return MouseState{
		Hot:      slices.Clone(g.mouse.hot),
		Focus:    g.mouse.focus,
		Position: g.mouse.position,
		Delta:    g.mouse.delta,
		Buttons:  g.mouse.buttons,
		Entered:  g.mouse.entered,
	}
}

// MousePosition returns the last pointer position.
func (g *Gui) MousePosition() graphics.Offset {
	return g.mouse.position
}

// MouseFocus returns the widget capturing the pointer, or nil.
func (g *Gui) MouseFocus() core.Widget {
	return g.mouse.focus
}

// SetMouseFocus captures the pointer for w, or releases it when w is nil,
// and reports whether w already held the capture. The hot list is refreshed
// while the pointer is inside the window.
func (g *Gui) SetMouseFocus(w core.Widget) bool {
	old := g.mouse.focus
	if w == old {
		return true
	}
	if l, ok := old.(core.MouseFocusListener); ok {
		l.OnLoseMouseFocus()
	}
	g.mouse.focus = w
	if l, ok := w.(core.MouseFocusListener); ok {
		l.OnGainMouseFocus()
	}
	g.logger.Debug("mouse focus changed", "from", describeWidget(old), "to", describeWidget(w))
	if g.mouse.entered {
		g.UpdateMouse(false)
	}
	return false
}

// UpdateMouse recomputes the hot list at the current pointer position. Leave
// notifications for widgets no longer hot are all sent before enter
// notifications for newly hot widgets. With sendMove, a move event follows.
func (g *Gui) UpdateMouse(sendMove bool) {
	next := g.hotCandidates()
	prev := g.mouse.hot

	for _, w := range prev {
		if !slices.Contains(next, w) {
			w.(core.MouseTarget).OnMouseLeave()
		}
	}
	for _, w := range next {
		if !slices.Contains(prev, w) {
			w.(core.MouseTarget).OnMouseEnter()
		}
	}
	g.mouse.hot = next

	if sendMove {
		g.dispatchMouse(core.MouseTarget.OnMouseMove)
	}
}

// hotCandidates hit tests the root at the pointer and returns the widgets
// that take input, back to front. With a mouse focus only it can be listed.
func (g *Gui) hotCandidates() []core.Widget {
	if g.root == nil || !g.mouse.entered {
		return nil
	}
	point := g.mouse.position.Sub(g.root.Position())
	hits := g.root.HitTest(point, core.BlocksMouse)

	var result []core.Widget
	for _, w := range slices.Backward(hits) {
		t, ok := w.(core.MouseTarget)
		if !ok || !t.TakesMouseInput() {
			continue
		}
		if g.mouse.focus != nil && g.mouse.focus != w {
			continue
		}
		result = append(result, w)
	}
	return result
}

// dispatchMouse sends an event to the mouse focus if there is one, otherwise
// to the hot list in order until a handler consumes it.
func (g *Gui) dispatchMouse(send func(core.MouseTarget) bool) {
	if g.mouse.focus != nil {
		if t, ok := g.mouse.focus.(core.MouseTarget); ok {
			send(t)
		}
		return
	}
	for _, w := range g.mouse.hot {
		if !g.tree.Contains(w) {
			continue
		}
		if send(w.(core.MouseTarget)) {
			return
		}
	}
}

// MouseMove moves the pointer to position. Moving to the current position
// while inside the window does nothing.
func (g *Gui) MouseMove(position graphics.Offset) {
	if g.mouse.entered && position == g.mouse.position {
		return
	}
	g.mouse.entered = true
	g.mouse.delta = position.Sub(g.mouse.position)
	g.mouse.position = position
	g.UpdateMouse(true)
}

// MouseButton moves the pointer to position, then delivers a down or up event
// if the button's state actually changed.
func (g *Gui) MouseButton(button input.MouseButton, pressed bool, position graphics.Offset) {
	g.MouseMove(position)

	if button < 0 || button >= input.MouseButtonCount {
		return
	}
	if g.mouse.buttons[button] == pressed {
		return
	}
	g.mouse.buttons[button] = pressed

	if pressed {
		g.dispatchMouse(func(t core.MouseTarget) bool { return t.OnMouseDown(button) })
	} else {
		g.dispatchMouse(func(t core.MouseTarget) bool { return t.OnMouseUp(button) })
	}
}

// MouseLeave handles the pointer leaving the window: every hot widget gets a
// leave notification and the hot list is cleared.
func (g *Gui) MouseLeave() {
	if !g.mouse.entered {
		return
	}
	g.mouse.entered = false
	hot := g.mouse.hot
	g.mouse.hot = nil
	for _, w := range hot {
		w.(core.MouseTarget).OnMouseLeave()
	}
}
