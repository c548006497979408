package core

import (
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
	"github.com/go-drift/retain/pkg/layout"
)

// Widget is a retained node of the UI tree. Concrete widgets embed Base,
// which implements every method here, and override the On* hooks they need.
type Widget interface {
	base() *Base

	Handle() Handle
	Key() Key
	Owner() Widget
	Parent() Widget

	Position() graphics.Offset
	SetPosition(graphics.Offset)
	Size() graphics.Size
	SetSize(graphics.Size)
	Baseline() float64
	SetBaseline(float64)

	Layout(constraints layout.Constraints)
	Paint(canvas graphics.Canvas)
	HitTest(point graphics.Offset, shouldStop func(Widget) bool) []Widget

	// TryMatch copies spec into the widget when it supports the spec's kind
	// and reports whether it did. It is only called when keys already match
	// and never with widget-ref Defs.
	TryMatch(spec Spec) bool

	// OnLayout sets the widget's size and baseline and positions children.
	// Children are laid out through their Layout method.
	OnLayout(constraints layout.Constraints)

	// OnPaint draws the widget in its local coordinate space. Children are
	// painted through their Paint method.
	OnPaint(canvas graphics.Canvas)

	// OnDestroy runs once, after owner and parent are cleared. Containers
	// drop their children here.
	OnDestroy()
}

// Creator is implemented by widgets that initialize themselves when they are
// registered with a tree, before they receive an owner or parent.
type Creator interface {
	OnCreate()
}

// ChildVisitor is implemented by widgets with children. Children are visited
// in paint order, back to front.
type ChildVisitor interface {
	VisitChildren(visitor func(Widget))
}

// HitTester overrides the default "inside [0,size)" hit test.
type HitTester interface {
	HitTestSelf(point graphics.Offset) bool
}

// HitTestVisitor passes children to visitor front to back and returns true
// as soon as visitor does. Widgets that implement ChildVisitor but not
// HitTestVisitor are visited in reverse paint order.
type HitTestVisitor interface {
	VisitChildrenForHitTest(point graphics.Offset, visitor func(Widget) bool) bool
}

// MouseBlocker keeps the pointer from reaching widgets behind it.
type MouseBlocker interface {
	BlocksMouse() bool
}

// MouseTarget receives pointer events. Down, up and move handlers return
// whether they consumed the event.
type MouseTarget interface {
	TakesMouseInput() bool
	OnMouseEnter()
	OnMouseLeave()
	OnMouseDown(button input.MouseButton) bool
	OnMouseUp(button input.MouseButton) bool
	OnMouseMove() bool
}

// MouseFocusListener is notified when the widget gains or loses mouse capture.
type MouseFocusListener interface {
	OnGainMouseFocus()
	OnLoseMouseFocus()
}

// KeyboardTarget receives key events while it holds keyboard focus.
type KeyboardTarget interface {
	OnKeyDown(key input.VirtualKey)
	OnKeyUp(key input.VirtualKey)
	OnChar(ch byte)
}

// KeyboardFocusListener is notified when the widget gains or loses keyboard focus.
type KeyboardFocusListener interface {
	OnGainKeyboardFocus()
	OnLoseKeyboardFocus()
}

// Host is the root coordinator a Tree reports to.
type Host interface {
	// RequestFrame asks the shell for a redraw.
	RequestFrame()

	KeyboardFocus() Widget
	// SetKeyboardFocus moves keyboard focus to w (nil clears it) and reports
	// whether w already held it.
	SetKeyboardFocus(w Widget) bool

	MouseFocus() Widget
	// SetMouseFocus captures the pointer for w (nil releases it) and reports
	// whether w already held it.
	SetMouseFocus(w Widget) bool

	// MousePosition returns the last pointer position in root coordinates.
	MousePosition() graphics.Offset

	// KeyboardState returns the shell's current key table.
	KeyboardState() input.KeyboardState

	ShowLayoutBounds() bool

	// WidgetDestroyed removes every reference the host keeps to w without
	// notifying it.
	WidgetDestroyed(w Widget)
}

// ChildAction selects how a newly constructed child is attached to the
// widget that reconciled it.
type ChildAction int

const (
	// BecomeParent makes the caller the child's parent, and owner if it has none.
	BecomeParent ChildAction = iota
	// BecomeOwner makes the caller the child's owner only.
	BecomeOwner
	// NoAction leaves the child detached.
	NoAction
)

func (a ChildAction) String() string {
	switch a {
	case BecomeParent:
		return "become-parent"
	case BecomeOwner:
		return "become-owner"
	case NoAction:
		return "none"
	default:
		return "unknown"
	}
}

type nopHost struct{}

func (nopHost) RequestFrame()                  {}
func (nopHost) KeyboardFocus() Widget          { return nil }
func (nopHost) SetKeyboardFocus(Widget) bool   { return false }
func (nopHost) MouseFocus() Widget             { return nil }
func (nopHost) SetMouseFocus(Widget) bool      { return false }
func (nopHost) MousePosition() graphics.Offset { return graphics.Offset{} }
func (nopHost) ShowLayoutBounds() bool         { return false }
func (nopHost) KeyboardState() input.KeyboardState {
	return input.KeyboardState{}
}
func (nopHost) WidgetDestroyed(Widget) {}
