// Package core implements the retained widget tree: keyed reconciliation of
// single-use Defs against live widgets, the owner/parent lifecycle model and
// hit testing.
//
// # Defs and widgets
//
// A Def describes one desired widget. Attributed Defs carry a Spec and an
// optional Key; widget-ref Defs place an existing widget:
//
//	row := core.New(widgets.Flex{Children: []*core.Def{
//	    core.New(widgets.Text{Content: "name"}).WithKey(core.StringKey("label")),
//	    core.Ref(edit),
//	}})
//
// Concrete widgets embed Base and implement TryMatch to accept their Spec.
// Containers reconcile their children from TryMatch and drop them in
// OnDestroy:
//
//	type Padding struct {
//	    core.Base
//	    child core.Widget
//	}
//
//	func (p *Padding) TryMatch(spec core.Spec) bool {
//	    return core.MatchAs(spec, func(s PaddingSpec) {
//	        p.child = p.Reconcile(p.child, s.Child)
//	        p.MarkForLayout()
//	    })
//	}
//
//	func (p *Padding) OnDestroy() {
//	    p.DropMaybe(p.child)
//	}
//
// # Ownership
//
// Every widget has an owner, which destroys it, and a parent, which positions
// it. They differ only while a widget moves between places in the tree; Drop
// resolves the difference. Both are stored as generational Handles in a Tree,
// so references to destroyed widgets never resolve.
//
// # Capabilities
//
// Input and hit-test behavior is opt-in through small interfaces such as
// MouseTarget, KeyboardTarget and HitTestVisitor, checked by type assertion.
package core
