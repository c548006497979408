package core

import (
	"github.com/go-drift/retain/pkg/errors"
)

// Reconcile updates the child slot holding old to match def, attaching a
// newly constructed child with BecomeParent.
func (b *Base) Reconcile(old Widget, def *Def) Widget {
	return b.ReconcileWith(old, def, BecomeParent)
}

// ReconcileWith updates the child slot holding old to match def and returns
// the widget that now fills the slot.
//
// A widget-ref Def yields its widget; old is dropped if it differs. An
// attributed Def reuses old when keys are equal and old accepts the spec;
// otherwise old is dropped and a new widget is built, taking the Def's key.
// A nil def empties the slot.
func (b *Base) ReconcileWith(old Widget, def *Def, action ChildAction) Widget {
	t := b.registered("Reconcile")
	if isNil(old) {
		old = nil
	}
	if def == nil {
		b.DropMaybe(old)
		return nil
	}
	def.checkUsable("Reconcile")

	if old != nil && tryMatch(old, def) {
		def.consume()
		return old
	}

	b.DropMaybe(old)
	w := t.widgetFromDef(def)
	switch action {
	case BecomeParent:
		b.BecomeParent(w)
	case BecomeOwner:
		b.BecomeOwner(w)
	case NoAction:
	default:
		errors.Defect("Reconcile", "unknown child action %d", int(action))
	}
	return w
}

// tryMatch reports whether w satisfies def without being rebuilt. Widget-ref
// Defs match by identity only.
func tryMatch(w Widget, def *Def) bool {
	if def.widget != nil {
		return def.widget == w
	}
	return w.Key() == def.key && w.TryMatch(def.spec)
}

// widgetFromDef returns the widget a Def describes, constructing and
// registering it for attributed Defs. The Def is consumed.
func (t *Tree) widgetFromDef(def *Def) Widget {
	if def.widget != nil {
		w := def.widget
		t.live("Reconcile", w)
		def.consume()
		return w
	}

	spec := def.spec
	w := spec.NewWidget()
	t.register(w, true)
	if !w.TryMatch(spec) {
		errors.WidgetDefect("Reconcile", w, "new widget rejected its own spec %T", spec)
	}
	w.base().key = def.takeKey()
	def.consume()
	if c, ok := w.(Creator); ok {
		c.OnCreate()
	}
	return w
}

// ReconcileList updates a list of children to match defs, attaching newly
// constructed children with BecomeParent.
func (b *Base) ReconcileList(old []Widget, defs []*Def) []Widget {
	return b.ReconcileListWith(old, defs, BecomeParent)
}

// ReconcileListWith updates a list of children to match defs. The result has
// one entry per Def, in Def order.
//
// Widget-ref and keyed Defs are matched first against old widgets with the
// same identity, wherever they sit in old. The remaining Defs then take the
// remaining old widgets in order. Old widgets left over are dropped. The old
// slice is cleared.
func (b *Base) ReconcileListWith(old []Widget, defs []*Def, action ChildAction) []Widget {
	b.registered("ReconcileList")

	byWidget := make(map[Widget]int, len(old))
	byKey := make(map[Key]int)
	for i, w := range old {
		if isNil(w) {
			errors.Defect("ReconcileList", "nil widget at old index %d", i)
		}
		if _, dup := byWidget[w]; !dup {
			byWidget[w] = i
		}
		if k := w.Key(); !k.IsNil() {
			if _, dup := byKey[k]; !dup {
				byKey[k] = i
			}
		}
	}

	take := func(i int, ok bool) Widget {
		if !ok {
			return nil
		}
		w := old[i]
		old[i] = nil
		return w
	}

	result := make([]Widget, len(defs))
	done := make([]bool, len(defs))

	for i, def := range defs {
		if def == nil {
			errors.Defect("ReconcileList", "nil def at index %d", i)
		}
		def.checkUsable("ReconcileList")

		var prior Widget
		switch {
		case def.widget != nil:
			prior = take(lookup(byWidget, def.widget))
		case !def.key.IsNil():
			prior = take(lookup(byKey, def.key))
		default:
			continue
		}
		result[i] = b.ReconcileWith(prior, def, action)
		done[i] = true
	}

	cursor := 0
	for i, def := range defs {
		if done[i] {
			continue
		}
		var prior Widget
		for cursor < len(old) {
			w := old[cursor]
			old[cursor] = nil
			cursor++
			if w != nil {
				prior = w
				break
			}
		}
		result[i] = b.ReconcileWith(prior, def, action)
	}

	for ; cursor < len(old); cursor++ {
		if w := old[cursor]; w != nil {
			old[cursor] = nil
			b.Drop(w)
		}
	}
	return result
}

func lookup[K comparable](index map[K]int, k K) (int, bool) {
	i, ok := index[k]
	return i, ok
}

// ReconcileAs reconciles a typed child slot. The resulting widget must be a W.
func ReconcileAs[W Widget](parent *Base, old W, def *Def) W {
	var prior Widget
	if !isNil(old) {
		prior = old
	}
	w := parent.Reconcile(prior, def)
	if w == nil {
		var zero W
		return zero
	}
	typed, ok := w.(W)
	if !ok {
		var zero W
		errors.WidgetDefect("ReconcileAs", w, "expected %T", zero)
	}
	return typed
}

// MatchAs implements TryMatch for widgets configured by a single spec type:
// when spec is an S, apply runs and MatchAs reports true.
func MatchAs[S Spec](spec Spec, apply func(S)) bool {
	s, ok := spec.(S)
	if !ok {
		return false
	}
	apply(s)
	return true
}
