package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
	"github.com/go-drift/retain/pkg/layout"
)

const caretWidth = 1

// LineEdit is a single-line text field. It takes keyboard focus when it is
// created and again when clicked.
//
// Printable characters are appended. Backspace deletes the last character,
// Escape clears the field and Ctrl+A replaces the text with "all", or "ALL"
// while caps lock is on.
type LineEdit struct {
	Style    graphics.TextStyle
	OnChange func(text string)
}

func (l LineEdit) NewWidget() core.Widget {
	return &lineEditWidget{}
}

type lineEditWidget struct {
	core.Base
	style    graphics.TextStyle
	onChange func(string)
	text     string
	label    core.Widget
}

func (w *lineEditWidget) TryMatch(spec core.Spec) bool {
	return core.MatchAs(spec, func(l LineEdit) {
		w.style = l.Style
		w.onChange = l.OnChange
		w.updateLabel()
	})
}

func (w *lineEditWidget) OnCreate() {
	w.GrabKeyboardFocus()
}

func (w *lineEditWidget) setText(text string) {
	if text == w.text {
		return
	}
	w.text = text
	w.updateLabel()
	if w.onChange != nil {
		w.onChange(text)
	}
}

func (w *lineEditWidget) updateLabel() {
	w.label = w.Reconcile(w.label, core.New(Text{Content: w.text, Style: w.style}))
	w.MarkForLayout()
}

func (w *lineEditWidget) OnLayout(c layout.Constraints) {
	size := layoutChild(w.label, c.Loosen())
	w.SetBaseline(w.label.Baseline())
	w.SetSize(c.Constrain(graphics.Size{Width: size.Width + caretWidth, Height: size.Height}))
}

func (w *lineEditWidget) OnPaint(canvas graphics.Canvas) {
	paintChild(w.label, canvas)
	if w.HasKeyboardFocus() {
		caret := graphics.RectFromLTWH(math.Max(0, w.Size().Width-caretWidth), 0, caretWidth, w.Size().Height)
		color := w.style.Color
		if color == graphics.ColorTransparent {
			color = graphics.ColorBlack
		}
		canvas.DrawRect(caret, graphics.FillPaint(color))
	}
}

func (w *lineEditWidget) VisitChildren(visitor func(core.Widget)) {
	visitChild(w.label, visitor)
}

func (w *lineEditWidget) OnDestroy() {
	w.DropMaybe(w.label)
	w.label = nil
}

func (w *lineEditWidget) OnKeyDown(key input.VirtualKey) {
	switch {
	case key == input.KeyA && w.IsKeyDown(input.KeyControl):
		if w.IsKeyToggled(input.KeyCapital) {
			w.setText("ALL")
		} else {
			w.setText("all")
		}
	case key == input.KeyBack && len(w.text) > 0:
		w.setText(w.text[:len(w.text)-1])
	case key == input.KeyEscape:
		w.setText("")
	}
}

func (w *lineEditWidget) OnKeyUp(input.VirtualKey) {}

func (w *lineEditWidget) OnChar(ch byte) {
	w.setText(w.text + string(rune(ch)))
}

func (w *lineEditWidget) OnGainKeyboardFocus() { w.MarkForPaint() }
func (w *lineEditWidget) OnLoseKeyboardFocus() { w.MarkForPaint() }

func (w *lineEditWidget) TakesMouseInput() bool { return true }
func (w *lineEditWidget) OnMouseEnter()         {}
func (w *lineEditWidget) OnMouseLeave()         {}
func (w *lineEditWidget) OnMouseMove() bool     { return false }

func (w *lineEditWidget) OnMouseDown(button input.MouseButton) bool {
	if button != input.MouseLeft {
		return false
	}
	w.GrabKeyboardFocus()
	return true
}

func (w *lineEditWidget) OnMouseUp(input.MouseButton) bool { return false }

func (w *lineEditWidget) Describe() string {
	return fmt.Sprintf("text=%q", w.text)
}
