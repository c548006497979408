package widgets

import (
	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/layout"
)

// layoutChild lays child out and returns its size. An empty slot has zero size.
func layoutChild(child core.Widget, c layout.Constraints) graphics.Size {
	if child == nil {
		return graphics.Size{}
	}
	child.Layout(c)
	return child.Size()
}

func paintChild(child core.Widget, canvas graphics.Canvas) {
	if child != nil {
		child.Paint(canvas)
	}
}

func visitChild(child core.Widget, visitor func(core.Widget)) {
	if child != nil {
		visitor(child)
	}
}

// TextContent returns the string shown by a widget built from a Text spec.
func TextContent(w core.Widget) (string, bool) {
	t, ok := w.(*textWidget)
	if !ok {
		return "", false
	}
	return t.content, true
}
