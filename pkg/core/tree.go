package core

import (
	"fmt"
	"reflect"

	"github.com/go-drift/retain/pkg/errors"
)

// Handle is a generational reference to a widget registered with a Tree.
// A handle to a destroyed widget never resolves, even after its slot is
// reused. The zero Handle is nil.
type Handle struct {
	index uint32
	gen   uint32
}

// IsNil reports whether h is the zero Handle.
func (h Handle) IsNil() bool {
	return h.index == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "#nil"
	}
	return fmt.Sprintf("#%d.%d", h.index, h.gen)
}

// Stats counts widget constructions and destructions over a tree's life.
type Stats struct {
	Created   int
	Destroyed int
	Live      int
}

type slot struct {
	gen    uint32
	widget Widget
}

// Tree is the lifecycle manager for widgets. It owns the handle table, the
// owner/parent bookkeeping and destruction.
type Tree struct {
	host  Host
	slots []slot
	free  []uint32
	stats Stats

	holder *rootHolder
}

// NewTree returns an empty tree reporting to host. A nil host ignores frame
// requests and focus changes.
func NewTree(host Host) *Tree {
	if host == nil {
		host = nopHost{}
	}
	return &Tree{
		host:  host,
		slots: make([]slot, 1), // index 0 is the nil handle
	}
}

// Host returns the coordinator the tree reports to.
func (t *Tree) Host() Host {
	return t.host
}

// Create registers w as a standalone widget with no owner and no parent and
// runs its OnCreate hook.
func (t *Tree) Create(w Widget) Widget {
	t.register(w, true)
	if c, ok := w.(Creator); ok {
		c.OnCreate()
	}
	return w
}

// Build constructs a standalone widget configured by spec.
func (t *Tree) Build(spec Spec) Widget {
	return t.widgetFromDef(New(spec))
}

// Get resolves h. Stale and nil handles report false.
func (t *Tree) Get(h Handle) (Widget, bool) {
	if h.IsNil() || int(h.index) >= len(t.slots) {
		return nil, false
	}
	s := t.slots[h.index]
	if s.gen != h.gen || s.widget == nil {
		return nil, false
	}
	return s.widget, true
}

// Contains reports whether w is live in this tree.
func (t *Tree) Contains(w Widget) bool {
	if isNil(w) {
		return false
	}
	got, ok := t.Get(w.Handle())
	return ok && got == w
}

// Stats returns construction and destruction counts.
func (t *Tree) Stats() Stats {
	return t.stats
}

// Destroy destroys a detached widget. The widget must have no owner and no
// parent.
func (t *Tree) Destroy(w Widget) {
	b := t.live("Tree.Destroy", w)
	if !b.owner.IsNil() || !b.parent.IsNil() {
		errors.WidgetDefect("Tree.Destroy", w, "widget still has owner %s and parent %s", b.owner, b.parent)
	}
	t.destroy(w)
}

// Walk visits root and its descendants depth first in paint order.
func (t *Tree) Walk(root Widget, visit func(w Widget, depth int)) {
	if isNil(root) {
		return
	}
	var walk func(w Widget, depth int)
	walk = func(w Widget, depth int) {
		visit(w, depth)
		if cv, ok := w.(ChildVisitor); ok {
			cv.VisitChildren(func(child Widget) {
				walk(child, depth+1)
			})
		}
	}
	walk(root, 0)
}

// Unsettled returns the widgets below root whose owner differs from their
// parent. After a complete reconciliation pass the result is empty. The root
// itself is detached and not reported.
func (t *Tree) Unsettled(root Widget) []Widget {
	var result []Widget
	t.Walk(root, func(w Widget, depth int) {
		if depth == 0 {
			return
		}
		b := w.base()
		if b.owner != b.parent {
			result = append(result, w)
		}
	})
	return result
}

func (t *Tree) register(w Widget, counted bool) {
	if isNil(w) {
		errors.Defect("Tree.Create", "nil widget")
	}
	b := w.base()
	if b.tree != nil {
		errors.WidgetDefect("Tree.Create", w, "widget already registered as %s", b.handle)
	}

	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		index = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[index]
	s.gen++
	s.widget = w

	b.tree = t
	b.self = w
	b.handle = Handle{index: index, gen: s.gen}

	if counted {
		t.stats.Created++
		t.stats.Live++
	}
}

// live returns the base of a widget registered with t or reports a defect.
func (t *Tree) live(op string, w Widget) *Base {
	if isNil(w) {
		errors.Defect(op, "nil widget")
	}
	if !t.Contains(w) {
		errors.WidgetDefect(op, w, "widget is not live in this tree")
	}
	return w.base()
}

func (t *Tree) destroy(w Widget) {
	b := w.base()
	b.owner = Handle{}
	b.parent = Handle{}

	w.OnDestroy()
	if orphan := t.ownedBy(b.handle); orphan != nil {
		errors.WidgetDefect("Tree.destroy", w, "still owns live widget %s after OnDestroy", orphan.Handle())
	}
	t.host.WidgetDestroyed(w)

	b.key = Key{}
	s := &t.slots[b.handle.index]
	s.widget = nil
	t.free = append(t.free, b.handle.index)
	b.handle = Handle{}

	t.stats.Destroyed++
	t.stats.Live--
}

// ownedBy returns a live widget whose owner is h, or nil.
func (t *Tree) ownedBy(h Handle) Widget {
	for _, s := range t.slots {
		if s.widget != nil && s.widget.base().owner == h {
			return s.widget
		}
	}
	return nil
}

func isNil(w Widget) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
