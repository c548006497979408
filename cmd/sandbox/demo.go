package main

import (
	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/layout"
	"github.com/go-drift/retain/pkg/widgets"
)

// demoTextKey keys the greeting so it keeps its identity when the row is
// reordered.
var demoTextKey = core.UintKey(42)

// demo holds the standalone widgets the scene places by reference.
type demo struct {
	tree   *core.Tree
	left   core.Widget
	right  core.Widget
	middle core.Widget
	edit   core.Widget
	clicks int
}

func newDemo(tree *core.Tree) *demo {
	return &demo{
		tree: tree,
		left: tree.Build(widgets.Solid{
			Fill: graphics.RGBA(128, 89, 64, 0.5),
			Size: graphics.Size{Width: 100, Height: 75},
		}),
		right: tree.Build(widgets.Solid{
			Fill: graphics.RGBA(204, 230, 89, 0.2),
			Size: graphics.Size{Width: 75, Height: 100},
		}),
		edit: tree.Build(widgets.LineEdit{
			Style: graphics.TextStyle{FontSize: 24, Color: graphics.ColorBlack},
		}),
	}
}

// first is the initial scene: a centered row.
func (d *demo) first() *core.Def {
	return core.New(widgets.Align{
		Alignment: layout.AlignmentCenter,
		Child: core.New(widgets.Row(
			core.Ref(d.left),
			core.New(widgets.Text{
				Content: "hello, there!",
				Style:   graphics.TextStyle{FontSize: 48, Color: graphics.RGB(102, 153, 179)},
			}).WithKey(demoTextKey),
			core.Ref(d.right),
			core.Ref(d.edit),
			d.button(),
		)),
	})
}

// second reorders the row, inserts a new rect and retitles the keyed text.
func (d *demo) second() *core.Def {
	if d.middle == nil {
		d.middle = d.tree.Build(widgets.Solid{
			Fill: graphics.RGBA(128, 77, 230, 0.5),
			Size: graphics.Size{Width: 100, Height: 100},
		})
	}
	return core.New(widgets.Align{
		Alignment: layout.Alignment{X: 0.25, Y: 0.5},
		Child: core.New(widgets.Row(
			core.Ref(d.right),
			core.Ref(d.middle),
			core.New(widgets.Text{
				Content: "hi",
				Style:   graphics.TextStyle{FontSize: 48, Color: graphics.RGB(255, 0, 255)},
			}).WithKey(demoTextKey),
			core.Ref(d.left),
			core.Ref(d.edit),
			d.button(),
		)),
	})
}

func (d *demo) button() *core.Def {
	return core.New(widgets.Button{
		Child: core.New(widgets.Padding{
			Padding: layout.EdgeInsetsSymmetric(12, 6),
			Child:   core.New(widgets.Text{Content: "OK"}),
		}),
		OnClick:     func() { d.clicks++ },
		Fill:        graphics.RGB(220, 220, 220),
		HoverFill:   graphics.RGB(200, 210, 240),
		PressedFill: graphics.RGB(150, 170, 230),
	}).WithKey(core.StringKey("ok"))
}

// close destroys the standalone widgets. The root must already be gone.
func (d *demo) close() {
	for _, w := range []core.Widget{d.left, d.right, d.middle, d.edit} {
		if w != nil && d.tree.Contains(w) {
			d.tree.Destroy(w)
		}
	}
}
