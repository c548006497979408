package widgets

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/layout"
)

// Axis is the direction a Flex lays its children out in.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned across the run.
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStart places children at the top (Row) or left (Column).
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	CrossAxisAlignmentCenter
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentBaseline lines up child baselines in a Row. In a
	// Column it behaves like CrossAxisAlignmentStart.
	CrossAxisAlignmentBaseline
)

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentBaseline:
		return "baseline"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// Flex lays its children out one after another along Direction, in Def
// order, without wrapping.
//
// Each child is offered the main-axis space left after the children before
// it and the full cross-axis extent. The Flex is as long as its children
// plus spacing and as thick as its thickest child, clamped to its
// constraints.
//
// Children are reconciled as a list, so keyed and widget-ref Defs keep their
// widgets when they move.
type Flex struct {
	Direction      Axis
	CrossAlignment CrossAxisAlignment
	Spacing        float64
	Children       []*core.Def
}

// Row returns a horizontal Flex.
func Row(children ...*core.Def) Flex {
	return Flex{Direction: AxisHorizontal, Children: children}
}

// Column returns a vertical Flex.
func Column(children ...*core.Def) Flex {
	return Flex{Direction: AxisVertical, Children: children}
}

func (f Flex) NewWidget() core.Widget {
	return &flexWidget{}
}

type flexWidget struct {
	core.Base
	direction Axis
	cross     CrossAxisAlignment
	spacing   float64
	children  []core.Widget
}

func (w *flexWidget) TryMatch(spec core.Spec) bool {
	return core.MatchAs(spec, func(f Flex) {
		w.children = w.ReconcileList(w.children, f.Children)
		w.direction = f.Direction
		w.cross = f.CrossAlignment
		w.spacing = f.Spacing
		w.MarkForLayout()
	})
}

func (w *flexWidget) OnLayout(c layout.Constraints) {
	maxMain, maxCross := w.split(c.Max)
	baseline := w.cross == CrossAxisAlignmentBaseline && w.direction == AxisHorizontal

	var used, cross, ascent, descent float64
	for i, child := range w.children {
		if i > 0 {
			used += w.spacing
		}
		remaining := math.Max(0, maxMain-used)
		child.Layout(layout.Loose(w.join(remaining, maxCross)))
		m, x := w.split(child.Size())
		used += m
		cross = math.Max(cross, x)
		if baseline {
			ascent = math.Max(ascent, child.Baseline())
			descent = math.Max(descent, x-child.Baseline())
		}
	}
	if baseline {
		cross = math.Max(cross, ascent+descent)
	}

	size := c.Constrain(w.join(used, cross))
	_, extent := w.split(size)
	var cursor float64
	for _, child := range w.children {
		m, x := w.split(child.Size())
		var offset float64
		switch {
		case baseline:
			offset = ascent - child.Baseline()
		case w.cross == CrossAxisAlignmentCenter:
			offset = math.Round((extent - x) / 2)
		case w.cross == CrossAxisAlignmentEnd:
			offset = extent - x
		}
		child.SetPosition(w.offset(cursor, offset))
		cursor += m + w.spacing
	}
	w.SetSize(size)

	if len(w.children) > 0 {
		first := w.children[0]
		w.SetBaseline(first.Position().Y + first.Baseline())
	}
}

// split returns the main and cross extents of s.
func (w *flexWidget) split(s graphics.Size) (float64, float64) {
	if w.direction == AxisVertical {
		return s.Height, s.Width
	}
	return s.Width, s.Height
}

func (w *flexWidget) join(main, cross float64) graphics.Size {
	if w.direction == AxisVertical {
		return graphics.Size{Width: cross, Height: main}
	}
	return graphics.Size{Width: main, Height: cross}
}

func (w *flexWidget) offset(main, cross float64) graphics.Offset {
	if w.direction == AxisVertical {
		return graphics.Offset{X: cross, Y: main}
	}
	return graphics.Offset{X: main, Y: cross}
}

func (w *flexWidget) OnPaint(canvas graphics.Canvas) {
	for _, child := range w.children {
		child.Paint(canvas)
	}
}

func (w *flexWidget) VisitChildren(visitor func(core.Widget)) {
	for _, child := range w.children {
		visitor(child)
	}
}

func (w *flexWidget) VisitChildrenForHitTest(_ graphics.Offset, visitor func(core.Widget) bool) bool {
	for _, child := range slices.Backward(w.children) {
		if visitor(child) {
			return true
		}
	}
	return false
}

func (w *flexWidget) OnDestroy() {
	for _, child := range w.children {
		w.Drop(child)
	}
	w.children = nil
}

func (w *flexWidget) Describe() string {
	return fmt.Sprintf("%s children=%d", w.direction, len(w.children))
}
