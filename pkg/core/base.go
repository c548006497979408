package core

import (
	"github.com/go-drift/retain/pkg/errors"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
	"github.com/go-drift/retain/pkg/layout"
)

// Base holds the state every widget shares and implements Widget with
// default hooks. Embed it by value in concrete widgets.
type Base struct {
	tree   *Tree
	self   Widget
	handle Handle

	owner  Handle
	parent Handle
	key    Key

	position graphics.Offset
	size     graphics.Size
	baseline float64
}

func (b *Base) base() *Base {
	return b
}

// Handle returns the widget's handle, or the nil Handle when the widget is
// not registered.
func (b *Base) Handle() Handle {
	return b.handle
}

func (b *Base) Key() Key {
	return b.key
}

// Tree returns the tree the widget is registered with.
func (b *Base) Tree() *Tree {
	return b.tree
}

// Owner returns the widget responsible for destroying this one.
func (b *Base) Owner() Widget {
	return b.resolve(b.owner)
}

// Parent returns the widget currently positioning this one.
func (b *Base) Parent() Widget {
	return b.resolve(b.parent)
}

func (b *Base) resolve(h Handle) Widget {
	if b.tree == nil {
		return nil
	}
	w, _ := b.tree.Get(h)
	return w
}

func (b *Base) Position() graphics.Offset     { return b.position }
func (b *Base) SetPosition(p graphics.Offset) { b.position = p }
func (b *Base) Size() graphics.Size           { return b.size }
func (b *Base) SetSize(s graphics.Size)       { b.size = s }
func (b *Base) Baseline() float64             { return b.baseline }
func (b *Base) SetBaseline(v float64)         { b.baseline = v }

func (b *Base) TryMatch(Spec) bool          { return false }
func (b *Base) OnLayout(layout.Constraints) {}
func (b *Base) OnPaint(graphics.Canvas)     {}
func (b *Base) OnDestroy()                  {}

// Layout runs the widget's layout hook.
func (b *Base) Layout(constraints layout.Constraints) {
	b.mustSelf("Layout").OnLayout(constraints)
}

// MarkForLayout asks for a new frame.
func (b *Base) MarkForLayout() {
	b.host().RequestFrame()
}

// MarkForPaint asks for a new frame.
func (b *Base) MarkForPaint() {
	b.host().RequestFrame()
}

// Paint translates canvas to the widget's position, runs the paint hook and
// restores the canvas.
func (b *Base) Paint(canvas graphics.Canvas) {
	self := b.mustSelf("Paint")
	canvas.Save()
	canvas.Translate(b.position.X, b.position.Y)
	if b.host().ShowLayoutBounds() {
		bounds := graphics.RectFromSize(b.size).Inset(0.5)
		canvas.DrawRect(bounds, graphics.StrokePaint(graphics.ColorDebugBounds))
	}
	self.OnPaint(canvas)
	canvas.Restore()
}

// GrabKeyboardFocus moves keyboard focus to this widget and reports whether
// it already held it.
func (b *Base) GrabKeyboardFocus() bool {
	return b.host().SetKeyboardFocus(b.mustSelf("GrabKeyboardFocus"))
}

// ReleaseKeyboardFocus clears keyboard focus if this widget holds it and
// reports whether it did.
func (b *Base) ReleaseKeyboardFocus() bool {
	h := b.host()
	if b.self == nil || h.KeyboardFocus() != b.self {
		return false
	}
	h.SetKeyboardFocus(nil)
	return true
}

// HasKeyboardFocus reports whether this widget holds keyboard focus.
func (b *Base) HasKeyboardFocus() bool {
	return b.self != nil && b.host().KeyboardFocus() == b.self
}

// GrabMouseFocus captures the pointer for this widget and reports whether it
// already held the capture.
func (b *Base) GrabMouseFocus() bool {
	return b.host().SetMouseFocus(b.mustSelf("GrabMouseFocus"))
}

// ReleaseMouseFocus releases the pointer capture if this widget holds it and
// reports whether it did.
func (b *Base) ReleaseMouseFocus() bool {
	h := b.host()
	if b.self == nil || h.MouseFocus() != b.self {
		return false
	}
	h.SetMouseFocus(nil)
	return true
}

// LocalMousePosition returns the pointer position relative to this widget.
func (b *Base) LocalMousePosition() graphics.Offset {
	return b.host().MousePosition().Sub(b.GlobalPosition())
}

// IsKeyDown reports whether key is held according to the host's key table.
func (b *Base) IsKeyDown(key input.VirtualKey) bool {
	state := b.host().KeyboardState()
	return state.IsDown(key)
}

func (b *Base) IsKeyToggled(key input.VirtualKey) bool {
	state := b.host().KeyboardState()
	return state.IsToggled(key)
}

// GlobalPosition returns the widget's offset from the top of its parent chain.
func (b *Base) GlobalPosition() graphics.Offset {
	var result graphics.Offset
	var current Widget = b.self
	for current != nil {
		result = result.Add(current.Position())
		current = current.Parent()
	}
	return result
}

func (b *Base) host() Host {
	if b.tree == nil {
		return nopHost{}
	}
	return b.tree.host
}

func (b *Base) mustSelf(op string) Widget {
	if b.self == nil || b.handle.IsNil() {
		errors.Defect(op, "widget is not registered with a tree")
	}
	return b.self
}

// registered returns the tree of a live widget or reports a defect.
func (b *Base) registered(op string) *Tree {
	if b.tree == nil || b.handle.IsNil() {
		errors.Defect(op, "widget is not registered with a tree")
	}
	return b.tree
}
