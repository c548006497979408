package core

import "github.com/go-drift/retain/pkg/errors"

// BecomeParent makes b the parent of child, and its owner when child has
// none. The child must not already have a parent.
func (b *Base) BecomeParent(child Widget) {
	t := b.registered("BecomeParent")
	cb := t.live("BecomeParent", child)
	if !cb.parent.IsNil() {
		errors.WidgetDefect("BecomeParent", child, "child already has parent %s", cb.parent)
	}
	if cb.owner.IsNil() {
		cb.owner = b.handle
	}
	cb.parent = b.handle
}

// BecomeOwner makes b the owner of child without placing it. The child must
// not already have an owner.
func (b *Base) BecomeOwner(child Widget) {
	t := b.registered("BecomeOwner")
	cb := t.live("BecomeOwner", child)
	if !cb.owner.IsNil() {
		errors.WidgetDefect("BecomeOwner", child, "child already has owner %s", cb.owner)
	}
	cb.owner = b.handle
}

// TransferOwnership hands ownership of child to newOwner without touching its
// parent. b must own child.
func (b *Base) TransferOwnership(child, newOwner Widget) {
	t := b.registered("TransferOwnership")
	cb := t.live("TransferOwnership", child)
	nb := t.live("TransferOwnership", newOwner)
	if cb.owner != b.handle {
		errors.WidgetDefect("TransferOwnership", child, "caller %s is not the owner (%s)", b.handle, cb.owner)
	}
	cb.owner = nb.handle
}

// Drop releases child from b's layout slot.
//
// When b owns child and nobody else positions it, child is destroyed. When b
// owns child but another widget positions it, that widget inherits
// ownership. When b only positions child, the parent link is cleared and the
// owner is expected to place it again during the same pass.
func (b *Base) Drop(child Widget) {
	t := b.registered("Drop")
	cb := t.live("Drop", child)
	self := b.handle
	switch {
	case cb.owner == self && (cb.parent == self || cb.parent.IsNil()):
		t.destroy(child)
	case cb.owner == self:
		cb.owner = cb.parent
	case cb.parent == self:
		cb.parent = Handle{}
	default:
		errors.WidgetDefect("Drop", child, "caller %s is neither owner (%s) nor parent (%s)", self, cb.owner, cb.parent)
	}
}

// DropMaybe drops child when it is not nil.
func (b *Base) DropMaybe(child Widget) {
	if !isNil(child) {
		b.Drop(child)
	}
}

// rootHolder stands in as owner and parent of the root widget while it is
// reconciled.
type rootHolder struct {
	Base
}

// ReconcileRoot reconciles the detached root old against def and returns the
// new root, again detached. A replaced root is destroyed.
func (t *Tree) ReconcileRoot(old Widget, def *Def) Widget {
	if t.holder == nil {
		t.holder = &rootHolder{}
		t.register(t.holder, false)
	}
	h := t.holder.handle
	if !isNil(old) {
		ob := t.live("ReconcileRoot", old)
		if !ob.owner.IsNil() || !ob.parent.IsNil() {
			errors.WidgetDefect("ReconcileRoot", old, "root is attached to %s/%s", ob.owner, ob.parent)
		}
		ob.owner, ob.parent = h, h
	}

	root := t.holder.ReconcileWith(old, def, NoAction)
	if !isNil(root) {
		rb := root.base()
		rb.owner = Handle{}
		rb.parent = Handle{}
	}
	return root
}
