package testing

import (
	"fmt"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
)

// Tap clicks the left button at the center of the first widget matched by
// finder.
func (t *WidgetTester) Tap(finder Finder) error {
	center, err := t.centerOf("Tap", finder)
	if err != nil {
		return err
	}
	t.TapAt(center)
	return nil
}

// TapAt presses and releases the left button at pos.
func (t *WidgetTester) TapAt(pos graphics.Offset) {
	t.Press(input.MouseLeft, pos)
	t.Release(input.MouseLeft, pos)
}

// Hover moves the pointer to the center of the first widget matched by
// finder.
func (t *WidgetTester) Hover(finder Finder) error {
	center, err := t.centerOf("Hover", finder)
	if err != nil {
		return err
	}
	t.MoveTo(center)
	return nil
}

// MoveTo moves the pointer to pos.
func (t *WidgetTester) MoveTo(pos graphics.Offset) {
	t.gui.MouseMove(pos)
}

// Press presses button at pos.
func (t *WidgetTester) Press(button input.MouseButton, pos graphics.Offset) {
	t.gui.MouseButton(button, true, pos)
}

// Release releases button at pos.
func (t *WidgetTester) Release(button input.MouseButton, pos graphics.Offset) {
	t.gui.MouseButton(button, false, pos)
}

// DragFrom presses the left button at start, moves by delta and releases.
func (t *WidgetTester) DragFrom(start, delta graphics.Offset) {
	end := start.Add(delta)
	t.Press(input.MouseLeft, start)
	t.MoveTo(end)
	t.Release(input.MouseLeft, end)
}

// Leave moves the pointer out of the window.
func (t *WidgetTester) Leave() {
	t.gui.MouseLeave()
}

// SendKeyDown presses key.
func (t *WidgetTester) SendKeyDown(key input.VirtualKey) {
	t.gui.KeyDown(key)
}

// SendKeyUp releases key.
func (t *WidgetTester) SendKeyUp(key input.VirtualKey) {
	t.gui.KeyUp(key)
}

// SendKey presses and releases key.
func (t *WidgetTester) SendKey(key input.VirtualKey) {
	t.SendKeyDown(key)
	t.SendKeyUp(key)
}

// SendKeyWith presses key while holding modifier.
func (t *WidgetTester) SendKeyWith(modifier, key input.VirtualKey) {
	t.SendKeyDown(modifier)
	t.SendKey(key)
	t.SendKeyUp(modifier)
}

// EnterText sends one character event per byte of text.
func (t *WidgetTester) EnterText(text string) {
	for i := range len(text) {
		t.gui.Char(uint16(text[i]))
	}
}

func (t *WidgetTester) centerOf(op string, finder Finder) (graphics.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Offset{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	return widgetCenter(result.First()), nil
}

// widgetCenter returns the center of w in root coordinates.
func widgetCenter(w core.Widget) graphics.Offset {
	origin := w.(interface{ GlobalPosition() graphics.Offset }).GlobalPosition()
	size := w.Size()
	return origin.Add(graphics.Offset{X: size.Width / 2, Y: size.Height / 2})
}
