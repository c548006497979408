package engine

import (
	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/input"
)

// KeyboardFocus returns the widget holding keyboard focus, or nil.
func (g *Gui) KeyboardFocus() core.Widget {
	return g.keyboardFocus
}

// SetKeyboardFocus moves keyboard focus to w, or clears it when w is nil,
// and reports whether w already held it. The previous holder is told it lost
// focus before w is told it gained it.
func (g *Gui) SetKeyboardFocus(w core.Widget) bool {
	old := g.keyboardFocus
	if w == old {
		return true
	}
	if l, ok := old.(core.KeyboardFocusListener); ok {
		l.OnLoseKeyboardFocus()
	}
	g.keyboardFocus = w
	if l, ok := w.(core.KeyboardFocusListener); ok {
		l.OnGainKeyboardFocus()
	}
	g.logger.Debug("keyboard focus changed", "from", describeWidget(old), "to", describeWidget(w))
	return false
}

// KeyDown records key as held and delivers it to the focus holder.
func (g *Gui) KeyDown(key input.VirtualKey) {
	g.keyboard.Press(key)
	if t, ok := g.keyboardFocus.(core.KeyboardTarget); ok {
		t.OnKeyDown(key)
	}
}

// KeyUp records key as released and delivers it to the focus holder.
func (g *Gui) KeyUp(key input.VirtualKey) {
	g.keyboard.Release(key)
	if t, ok := g.keyboardFocus.(core.KeyboardTarget); ok {
		t.OnKeyUp(key)
	}
}

// Char delivers a printable ASCII character to the focus holder. Other
// characters are dropped.
func (g *Gui) Char(ch uint16) {
	if !input.IsPrintable(ch) {
		return
	}
	if t, ok := g.keyboardFocus.(core.KeyboardTarget); ok {
		t.OnChar(byte(ch))
	}
}

// SetKeyboardState replaces the key table, for shells that read it from the
// platform.
func (g *Gui) SetKeyboardState(state input.KeyboardState) {
	g.keyboard = state
}

// KeyboardState returns a copy of the key table.
func (g *Gui) KeyboardState() input.KeyboardState {
	return g.keyboard
}

// IsKeyDown reports whether key is held.
func (g *Gui) IsKeyDown(key input.VirtualKey) bool {
	return g.keyboard.IsDown(key)
}

// IsKeyToggled reports whether key's toggle bit is set, as for caps lock.
func (g *Gui) IsKeyToggled(key input.VirtualKey) bool {
	return g.keyboard.IsToggled(key)
}
