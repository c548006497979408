package core

import (
	"github.com/go-drift/retain/pkg/errors"
	"github.com/go-drift/retain/pkg/graphics"
)

// HitTest returns the widgets under point, front to back. point is in the
// widget's local coordinates. A widget is listed after the children in front
// of it; once shouldStop reports true for a listed widget nothing behind it
// is listed.
func (b *Base) HitTest(point graphics.Offset, shouldStop func(Widget) bool) []Widget {
	self := b.mustSelf("HitTest")
	var result []Widget
	if hitTestSelf(self, point) {
		hitTestChildren(self, point, shouldStop, &result)
	}
	return result
}

// BlocksMouse is a HitTest stop predicate backed by MouseBlocker.
func BlocksMouse(w Widget) bool {
	if mb, ok := w.(MouseBlocker); ok {
		return mb.BlocksMouse()
	}
	return false
}

func hitTestChildren(w Widget, point graphics.Offset, shouldStop func(Widget) bool, result *[]Widget) bool {
	stopped := visitChildrenForHitTest(w, point, func(child Widget) bool {
		query := point.Sub(child.Position())
		return hitTestSelf(child, query) && hitTestChildren(child, query, shouldStop, result)
	})
	if stopped {
		return true
	}
	*result = append(*result, w)
	return shouldStop != nil && shouldStop(w)
}

func hitTestSelf(w Widget, point graphics.Offset) bool {
	if ht, ok := w.(HitTester); ok {
		return ht.HitTestSelf(point)
	}
	return w.Size().Contains(point)
}

func visitChildrenForHitTest(w Widget, point graphics.Offset, visitor func(Widget) bool) bool {
	if v, ok := w.(HitTestVisitor); ok {
		return v.VisitChildrenForHitTest(point, visitor)
	}
	cv, ok := w.(ChildVisitor)
	if !ok {
		return false
	}
	var children []Widget
	cv.VisitChildren(func(child Widget) {
		children = append(children, child)
	})
	for i := len(children) - 1; i >= 0; i-- {
		if visitor(children[i]) {
			return true
		}
	}
	return false
}

// OffsetFrom returns the widget's position relative to ancestor, summing
// positions along the parent chain. ancestor must be on that chain.
func (b *Base) OffsetFrom(ancestor Widget) graphics.Offset {
	var result graphics.Offset
	var current Widget = b.mustSelf("OffsetFrom")
	for current != nil {
		if current == ancestor {
			return result
		}
		result = result.Add(current.Position())
		current = current.Parent()
	}
	errors.WidgetDefect("OffsetFrom", b.self, "%T is not an ancestor", ancestor)
	return result
}
