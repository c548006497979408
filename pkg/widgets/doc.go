// Package widgets is a small reference catalogue built on the core
// reconciler.
//
// Each widget is described by a plain struct that implements core.Spec.
// Wrap a spec with core.New to place it in a tree, and nest Defs to describe
// children:
//
//	gui.SetRoot(core.New(widgets.Align{
//	    Alignment: layout.AlignmentCenter,
//	    Child: core.New(widgets.Row(
//	        core.New(widgets.Text{Content: "hello"}).WithKey(core.UintKey(42)),
//	        core.Ref(edit),
//	    )),
//	}))
//
// Reconciling the same shape again updates the existing widgets in place.
// Standalone widgets are built with core.Tree.Build and placed with core.Ref.
package widgets
