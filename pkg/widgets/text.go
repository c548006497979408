package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/layout"
)

// Text displays a single line of text. A zero Style.Color draws black.
//
// The widget is measured when it is matched, so its size and baseline are
// known before layout.
type Text struct {
	Content string
	Style   graphics.TextStyle
}

func (t Text) NewWidget() core.Widget {
	return &textWidget{}
}

type textWidget struct {
	core.Base
	content string
	style   graphics.TextStyle
	metrics graphics.TextMetrics
}

func (w *textWidget) TryMatch(spec core.Spec) bool {
	return core.MatchAs(spec, func(t Text) {
		style := t.Style
		if style.Color == graphics.ColorTransparent {
			style.Color = graphics.ColorBlack
		}
		if t.Content == w.content && style == w.style {
			return
		}
		w.content = t.Content
		w.style = style
		w.metrics = graphics.MeasureText(t.Content, style)
		w.SetSize(w.metrics.Size)
		w.SetBaseline(math.Round(w.metrics.Ascent))
		w.MarkForLayout()
	})
}

func (w *textWidget) OnLayout(c layout.Constraints) {
	w.SetSize(c.Constrain(w.metrics.Size))
}

func (w *textWidget) OnPaint(canvas graphics.Canvas) {
	if w.content != "" {
		canvas.DrawText(w.content, graphics.Offset{}, w.style)
	}
}

func (w *textWidget) Describe() string {
	return fmt.Sprintf("text=%q", w.content)
}
