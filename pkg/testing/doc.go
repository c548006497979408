// Package testing drives a widget tree headlessly for tests.
//
// A WidgetTester owns an engine.Gui, renders into a recording canvas and
// replays scripted input:
//
//	func TestSubmit(t *testing.T) {
//	    tester := retaintest.NewWidgetTesterWithT(t)
//	    clicks := 0
//	    tester.PumpWidget(core.New(widgets.Button{
//	        Child:   core.New(widgets.Text{Content: "Submit"}),
//	        OnClick: func() { clicks++ },
//	    }))
//
//	    tester.Tap(retaintest.ByText("Submit"))
//	    if clicks != 1 {
//	        t.Errorf("clicks = %d", clicks)
//	    }
//	}
//
// PumpWidget reconciles against the mounted tree rather than remounting, so
// calling it twice with the same shape keeps widget identity.
//
// # Snapshot Testing
//
// CaptureSnapshot records the widget tree and the display list of the last
// frame. Compare it with a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/form.snapshot.json")
//
// Update golden files with:
//
//	RETAIN_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import retaintest "github.com/go-drift/retain/pkg/testing"
package testing
