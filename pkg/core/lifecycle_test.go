package core

import (
	"strings"
	"testing"
)

func TestDrop_OwnerAndParentDestroys(t *testing.T) {
	tree, root, host := newTestTree(t)
	w := root.Reconcile(nil, leafDef("a").WithKey(IntKey(1)))
	host.keyboard = w

	root.Drop(w)

	if tree.Contains(w) {
		t.Fatal("expected widget to be destroyed")
	}
	if !w.Key().IsNil() {
		t.Error("expected key to be released")
	}
	if !w.Handle().IsNil() {
		t.Error("expected handle to be cleared")
	}
	if host.keyboard != nil {
		t.Error("expected focus to be released")
	}
	if len(host.destroyed) != 1 || host.destroyed[0] != w {
		t.Errorf("host saw %d destructions", len(host.destroyed))
	}
}

func TestDrop_OwnerWithoutParentDestroys(t *testing.T) {
	tree, root, _ := newTestTree(t)
	w := root.ReconcileWith(nil, leafDef("a"), BecomeOwner)

	root.Drop(w)

	if tree.Contains(w) {
		t.Fatal("expected widget to be destroyed")
	}
}

func TestDrop_OwnerDegradesToParent(t *testing.T) {
	tree, root, _ := newTestTree(t)
	panel := tree.Create(&box{kind: "panel"})
	w := root.ReconcileWith(nil, leafDef("a"), BecomeOwner)
	panel.(*box).BecomeParent(w)

	root.Drop(w)

	if !tree.Contains(w) {
		t.Fatal("widget must survive")
	}
	if w.Owner() != panel || w.Parent() != panel {
		t.Errorf("owner=%v parent=%v, want panel for both", w.Owner(), w.Parent())
	}
}

func TestDrop_ParentOnlyDetaches(t *testing.T) {
	tree, root, _ := newTestTree(t)
	panel := tree.Create(&box{kind: "panel"}).(*box)
	w := root.ReconcileWith(nil, leafDef("a"), BecomeOwner)
	panel.BecomeParent(w)

	panel.Drop(w)

	if !tree.Contains(w) {
		t.Fatal("widget must survive")
	}
	if w.Parent() != nil {
		t.Error("expected parent to be cleared")
	}
	if w.Owner() != root {
		t.Error("owner must be unchanged")
	}
}

func TestDrop_UnrelatedCallerIsDefect(t *testing.T) {
	tree, root, _ := newTestTree(t)
	stranger := tree.Create(&box{kind: "panel"}).(*box)
	w := root.Reconcile(nil, leafDef("a"))

	expectDefect(t, func() { stranger.Drop(w) })
	if !tree.Contains(w) {
		t.Error("widget must survive a rejected drop")
	}
}

func TestDropMaybe_Nil(t *testing.T) {
	_, root, _ := newTestTree(t)
	root.DropMaybe(nil)
	var typed *leaf
	root.DropMaybe(typed)
}

func TestBecomeParent_Defects(t *testing.T) {
	tree, root, _ := newTestTree(t)
	other := tree.Create(&box{kind: "panel"}).(*box)
	w := root.Reconcile(nil, leafDef("a"))

	expectDefect(t, func() { other.BecomeParent(w) })
	expectDefect(t, func() { other.BecomeOwner(w) })
	expectDefect(t, func() { root.BecomeParent(&leaf{}) })
}

func TestTransferOwnership(t *testing.T) {
	tree, root, _ := newTestTree(t)
	other := tree.Create(&box{kind: "panel"}).(*box)
	w := root.Reconcile(nil, leafDef("a"))

	expectDefect(t, func() { other.TransferOwnership(w, other) })

	root.TransferOwnership(w, other)
	if w.Owner() != other || w.Parent() != root {
		t.Errorf("owner=%v parent=%v", w.Owner(), w.Parent())
	}
}

func TestMoveBetweenParents(t *testing.T) {
	tree, root, _ := newTestTree(t)
	moving := tree.Create(&leaf{label: "m"})

	root.children = root.ReconcileList(nil, []*Def{
		boxDef("panel", "p1", Ref(moving)),
		boxDef("panel", "p2"),
	})
	p1 := root.children[0].(*box)
	p2 := root.children[1].(*box)
	if moving.Parent() != p1 || moving.Owner() != p1 {
		t.Fatal("expected p1 to own and parent the widget")
	}

	// Hold the widget at the root while it changes places.
	p1.TransferOwnership(moving, root)
	root.children = root.ReconcileList(root.children, []*Def{
		boxDef("panel", "p1"),
		boxDef("panel", "p2", Ref(moving)),
	})

	if moving.Parent() != p2 || moving.Owner() != root {
		t.Fatalf("owner=%v parent=%v", moving.Owner(), moving.Parent())
	}
	if u := tree.Unsettled(root); len(u) != 1 || u[0] != moving {
		t.Fatalf("unsettled = %v, want the moving widget", labels(u))
	}

	root.Drop(moving)

	if moving.Owner() != p2 {
		t.Error("expected p2 to inherit ownership")
	}
	if u := tree.Unsettled(root); len(u) != 0 {
		t.Errorf("unsettled = %v", labels(u))
	}
	if s := tree.Stats(); s.Destroyed != 0 {
		t.Errorf("destroyed = %d, want 0", s.Destroyed)
	}
}

func TestOnDestroyDropsChildren(t *testing.T) {
	tree, root, _ := newTestTree(t)
	var events []string
	panel := root.Reconcile(nil, New(boxSpec{
		kind:   "panel",
		label:  "outer",
		events: &events,
		children: []*Def{
			New(boxSpec{kind: "panel", label: "inner", events: &events}),
		},
	}))

	root.Drop(panel)

	if want := []string{"destroy inner", "destroy outer"}; len(events) != 2 || events[0] != want[0] || events[1] != want[1] {
		t.Errorf("events = %v, want %v", events, want)
	}
	if s := tree.Stats(); s.Live != 1 {
		t.Errorf("live = %d, want only the root", s.Live)
	}
}

func TestHandles_StaleAfterDestroy(t *testing.T) {
	tree, root, _ := newTestTree(t)
	w := root.Reconcile(nil, leafDef("a"))
	h := w.Handle()

	if got, ok := tree.Get(h); !ok || got != w {
		t.Fatal("expected live handle to resolve")
	}

	root.Drop(w)
	replacement := root.Reconcile(nil, leafDef("b"))

	if _, ok := tree.Get(h); ok {
		t.Error("stale handle resolved")
	}
	if replacement.Handle() == h {
		t.Error("expected a new generation for the reused slot")
	}
	if replacement.Handle().index != h.index {
		t.Errorf("expected slot %d to be reused, got %s", h.index, replacement.Handle())
	}
	if _, ok := tree.Get(Handle{}); ok {
		t.Error("nil handle resolved")
	}
}

func TestTree_CreateTwiceIsDefect(t *testing.T) {
	tree, root, _ := newTestTree(t)
	expectDefect(t, func() { tree.Create(root) })
	expectDefect(t, func() { NewTree(nil).Create(root) })
}

func TestTree_Destroy(t *testing.T) {
	tree, root, _ := newTestTree(t)
	w := root.Reconcile(nil, leafDef("a"))
	root.children = []Widget{w}

	expectDefect(t, func() { tree.Destroy(w) })

	tree.Destroy(root)
	if tree.Contains(root) || tree.Contains(w) {
		t.Error("expected root and child to be destroyed")
	}
	if s := tree.Stats(); s.Live != 0 || s.Destroyed != 2 {
		t.Errorf("stats = %+v", s)
	}
}

func TestTree_DestroyReportsForgottenChild(t *testing.T) {
	tree, root, _ := newTestTree(t)
	forgotten := root.Reconcile(nil, leafDef("a"))

	err := expectDefect(t, func() { tree.Destroy(root) })
	if !strings.Contains(err.Detail, forgotten.Handle().String()) {
		t.Errorf("defect = %v, want it to name %s", err, forgotten.Handle())
	}
	if !tree.Contains(forgotten) {
		t.Error("forgotten child must stay live")
	}
}

func TestTree_ReconcileRoot(t *testing.T) {
	quietDefects(t)
	tree := NewTree(nil)

	first := tree.ReconcileRoot(nil, boxDef("panel", "one", leafDef("a")))
	if first.Owner() != nil || first.Parent() != nil {
		t.Fatal("root must be detached")
	}

	same := tree.ReconcileRoot(first, boxDef("panel", "two", leafDef("a")))
	if same != first {
		t.Fatal("expected root reuse")
	}
	if same.(*box).label != "two" {
		t.Error("expected spec applied to the root")
	}

	replaced := tree.ReconcileRoot(same, leafDef("leaf"))
	if tree.Contains(first) {
		t.Error("expected old root destroyed")
	}
	if replaced.Owner() != nil || replaced.Parent() != nil {
		t.Error("new root must be detached")
	}
	if s := tree.Stats(); s.Live != 1 || s.Created != 3 {
		t.Errorf("stats = %+v", s)
	}
}

func TestUnregisteredWidgetIsDefect(t *testing.T) {
	quietDefects(t)
	loose := &box{kind: "panel"}
	expectDefect(t, func() { loose.Reconcile(nil, leafDef("a")) })
	expectDefect(t, func() { loose.GrabKeyboardFocus() })
}

func TestBuild_ConfiguresStandaloneWidget(t *testing.T) {
	tree, root, _ := newTestTree(t)
	w := tree.Build(leafSpec{label: "solo"}).(*leaf)

	if w.label != "solo" {
		t.Errorf("label = %q", w.label)
	}
	if w.Owner() != nil || w.Parent() != nil {
		t.Error("built widget must be detached")
	}

	root.children = root.ReconcileList(nil, []*Def{Ref(w)})
	if w.Parent() != root || w.Owner() != root {
		t.Error("first placement should parent and own the widget")
	}
}
