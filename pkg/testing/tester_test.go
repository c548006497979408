package testing

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
	"github.com/go-drift/retain/pkg/layout"
	"github.com/go-drift/retain/pkg/widgets"
)

func TestNewWidgetTester_Defaults(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	if tester.Size() != (graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}) {
		t.Errorf("expected default size, got %v", tester.Size())
	}
	if tester.Root() != nil {
		t.Error("expected no root before PumpWidget")
	}
	if err := tester.Pump(); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Pump without root = %v, want ErrNoRoot", err)
	}
}

func TestPumpWidget_ReconcilesInPlace(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(core.New(widgets.Text{Content: "first"})); err != nil {
		t.Fatal(err)
	}
	first := tester.Root()

	tester.PumpWidget(core.New(widgets.Text{Content: "second"}))
	if tester.Root() != first {
		t.Error("expected the root widget to be reused")
	}
	if !tester.Find(ByText("second")).Exists() {
		t.Error("expected updated text")
	}
	if tester.Frames() != 2 {
		t.Errorf("frames = %d, want 2", tester.Frames())
	}
}

func TestPumpIfRequested(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(core.New(widgets.Text{Content: "idle"}))

	ran, err := tester.PumpIfRequested()
	if err != nil || ran {
		t.Fatalf("PumpIfRequested = %v, %v; want no frame", ran, err)
	}

	tester.Gui().RequestFrame()
	ran, err = tester.PumpIfRequested()
	if err != nil || !ran {
		t.Fatalf("PumpIfRequested = %v, %v; want a frame", ran, err)
	}
}

func TestPumpFrames_AdvancesClock(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(core.New(widgets.Text{Content: "tick"}))
	start := tester.Clock().Now()

	if err := tester.PumpFrames(3, 16*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	samples := tester.Gui().FrameTrace().Samples
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(samples))
	}
	if got := samples[3].Timestamp.Sub(start); got != 48*time.Millisecond {
		t.Errorf("last sample at +%v, want +48ms", got)
	}
}

func TestFinders(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(core.New(widgets.Column(
		core.New(widgets.Text{Content: "alpha"}).WithKey(core.StringKey("a")),
		core.New(widgets.Padding{Child: core.New(widgets.Text{Content: "beta"})}),
		core.New(widgets.Solid{Size: graphics.Size{Width: 5, Height: 5}}),
	)))

	tests := []struct {
		name   string
		finder Finder
		want   int
	}{
		{"by text", ByText("alpha"), 1},
		{"by text containing", ByTextContaining("a"), 2},
		{"by key", ByKey(core.StringKey("a")), 1},
		{"by spec", BySpec[widgets.Text](), 2},
		{"by description", ByDescription("fill=#"), 1},
		{"descendant", Descendant(BySpec[widgets.Padding](), ByText("beta")), 1},
		{"descendant excludes outside", Descendant(BySpec[widgets.Padding](), ByText("alpha")), 0},
		{"predicate", ByPredicate(func(w core.Widget) bool { return w.Size().Width == 5 }), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tester.Find(tt.finder).Count(); got != tt.want {
				t.Errorf("%s matched %d, want %d", tt.finder.Description(), got, tt.want)
			}
		})
	}
}

func TestFinderResult_FirstPanicsWhenEmpty(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(core.New(widgets.Text{Content: "x"}))

	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), `ByText("missing")`) {
			t.Errorf("unexpected panic %v", r)
		}
	}()
	tester.Find(ByText("missing")).First()
}

func TestTap_ClicksButton(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	clicks := 0
	tester.PumpWidget(core.New(widgets.Center(core.New(widgets.Button{
		Child:   core.New(widgets.Text{Content: "Submit"}),
		OnClick: func() { clicks++ },
	}))))

	if err := tester.Tap(ByText("Submit")); err != nil {
		t.Fatal(err)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if err := tester.Tap(ByText("Cancel")); err == nil {
		t.Error("expected an error for a missing widget")
	}
}

func TestWidgetCenter_NestedWidget(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(core.New(widgets.Center(core.New(widgets.Padding{
		Padding: layout.EdgeInsetsSymmetric(4, 3),
		Child:   core.New(widgets.Solid{Size: graphics.Size{Width: 10, Height: 6}}),
	}))))

	solid := tester.Find(BySpec[widgets.Solid]()).First()
	var want graphics.Offset
	for w := core.Widget(solid); w != nil; w = w.Parent() {
		want = want.Add(w.Position())
	}
	want = want.Add(graphics.Offset{X: 5, Y: 3})

	if got := widgetCenter(solid); got != want {
		t.Errorf("widgetCenter = %v, want %v", got, want)
	}
	if solid.Parent() == nil || solid.Position() == (graphics.Offset{}) {
		t.Error("expected the solid to be inset by the padding")
	}
}

func TestEnterText_TypesIntoLineEdit(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	var changes []string
	tester.PumpWidget(core.New(widgets.LineEdit{
		OnChange: func(text string) { changes = append(changes, text) },
	}))

	tester.EnterText("hi")
	tester.SendKey(input.KeyBack)

	if strings.Join(changes, ",") != "h,hi,h" {
		t.Errorf("changes = %v", changes)
	}
	tester.Pump()
	if !tester.Find(ByText("h")).Exists() {
		t.Errorf("expected label to show the buffer:\n%s", tester.Dump())
	}
}

type recordingT struct {
	failures []string
}

func (r *recordingT) Helper()                        {}
func (r *recordingT) Name() string                   { return "TestSnapshot" }
func (r *recordingT) Fatalf(format string, _ ...any) { r.failures = append(r.failures, format) }
func (r *recordingT) Errorf(format string, _ ...any) { r.failures = append(r.failures, format) }

func TestSnapshot_MatchesFile(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 50, Height: 20})
	tester.PumpWidget(core.New(widgets.Solid{
		Fill: graphics.ColorBlack,
		Size: graphics.Size{Width: 10, Height: 10},
	}))

	snap := tester.CaptureSnapshot()
	if snap.Tree == nil || snap.Tree.ID != "solidWidget#0" {
		t.Fatalf("unexpected tree %+v", snap.Tree)
	}
	// The root is laid out with tight constraints.
	if snap.Tree.Size != [2]float64{50, 20} {
		t.Errorf("root size = %v", snap.Tree.Size)
	}
	if len(snap.DisplayOps) == 0 || snap.DisplayOps[0].Op != "save" {
		t.Errorf("unexpected ops %+v", snap.DisplayOps)
	}

	path := filepath.Join(t.TempDir(), "solid.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	rec := &recordingT{}
	snap.MatchesFile(rec, path)
	if len(rec.failures) != 0 {
		t.Errorf("expected match, got %v", rec.failures)
	}

	tester.PumpWidget(core.New(widgets.Solid{Fill: graphics.ColorWhite}))
	tester.CaptureSnapshot().MatchesFile(rec, path)
	if len(rec.failures) != 1 {
		t.Errorf("expected one mismatch, got %v", rec.failures)
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(core.New(widgets.Text{Content: "x"}))

	rec := &recordingT{}
	tester.CaptureSnapshot().MatchesFile(rec, filepath.Join(t.TempDir(), "missing.json"))
	if len(rec.failures) != 1 || !strings.Contains(rec.failures[0], "missing") {
		t.Errorf("failures = %v", rec.failures)
	}
}
