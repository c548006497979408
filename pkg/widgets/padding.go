package widgets

import (
	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/layout"
)

// Padding adds empty space around its child.
//
// The child is laid out in the space left after the insets are removed.
// Without a child, Padding is an empty box the size of the insets.
type Padding struct {
	Padding layout.EdgeInsets
	Child   *core.Def
}

func (p Padding) NewWidget() core.Widget {
	return &paddingWidget{}
}

type paddingWidget struct {
	core.Base
	padding layout.EdgeInsets
	child   core.Widget
}

func (w *paddingWidget) TryMatch(spec core.Spec) bool {
	return core.MatchAs(spec, func(p Padding) {
		w.child = w.Reconcile(w.child, p.Child)
		w.padding = p.Padding
		w.MarkForLayout()
	})
}

func (w *paddingWidget) OnLayout(c layout.Constraints) {
	size := layoutChild(w.child, w.padding.DeflateConstraints(c))
	if w.child != nil {
		w.child.SetPosition(w.padding.TopLeft())
		w.SetBaseline(w.padding.Top + w.child.Baseline())
	}
	w.SetSize(c.Constrain(w.padding.Inflate(size)))
}

func (w *paddingWidget) OnPaint(canvas graphics.Canvas) {
	paintChild(w.child, canvas)
}

func (w *paddingWidget) VisitChildren(visitor func(core.Widget)) {
	visitChild(w.child, visitor)
}

func (w *paddingWidget) OnDestroy() {
	w.DropMaybe(w.child)
	w.child = nil
}
