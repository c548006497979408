package widgets

import (
	"math"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/layout"
)

// Align expands to fill the available space and positions its child inside
// it according to Alignment. The child gets loose constraints.
//
// Along an unbounded axis Align shrinks to the child's extent.
type Align struct {
	Alignment layout.Alignment
	Child     *core.Def
}

// Center aligns child to the middle of the available space.
func Center(child *core.Def) Align {
	return Align{Alignment: layout.AlignmentCenter, Child: child}
}

func (a Align) NewWidget() core.Widget {
	return &alignWidget{}
}

type alignWidget struct {
	core.Base
	alignment layout.Alignment
	child     core.Widget
}

func (w *alignWidget) TryMatch(spec core.Spec) bool {
	return core.MatchAs(spec, func(a Align) {
		w.child = w.Reconcile(w.child, a.Child)
		w.alignment = a.Alignment
		w.MarkForLayout()
	})
}

func (w *alignWidget) OnLayout(c layout.Constraints) {
	childSize := layoutChild(w.child, c.Loosen())
	size := c.Max
	if math.IsInf(size.Width, 1) {
		size.Width = childSize.Width
	}
	if math.IsInf(size.Height, 1) {
		size.Height = childSize.Height
	}
	size = c.Constrain(size)
	w.SetSize(size)
	if w.child != nil {
		w.child.SetPosition(w.alignment.Within(size, childSize))
	}
}

func (w *alignWidget) OnPaint(canvas graphics.Canvas) {
	paintChild(w.child, canvas)
}

func (w *alignWidget) VisitChildren(visitor func(core.Widget)) {
	visitChild(w.child, visitor)
}

func (w *alignWidget) OnDestroy() {
	w.DropMaybe(w.child)
	w.child = nil
}
