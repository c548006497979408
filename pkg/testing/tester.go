package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/engine"
	"github.com/go-drift/retain/pkg/graphics"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
)

// ErrNoRoot is returned by Pump when nothing is mounted.
var ErrNoRoot = errors.New("pump: no root widget mounted")

// WidgetTester provides isolated widget testing without a window.
// It drives the same reconcile, layout and paint passes as a shell but
// renders into a recording canvas and stamps frames with a fake clock.
type WidgetTester struct {
	gui      *engine.Gui
	clock    *FakeClock
	size     graphics.Size
	recorder *graphics.PictureRecorder
	last     *graphics.DisplayList
	frames   int
}

// NewWidgetTester creates a tester with a default surface.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	return &WidgetTester{
		gui:      engine.New(engine.Options{Now: clk.Now}),
		clock:    clk,
		size:     graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		recorder: &graphics.PictureRecorder{},
	}
}

// NewWidgetTesterWithT creates a tester that cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup destroys the mounted tree.
func (t *WidgetTester) Cleanup() {
	t.gui.Destroy()
}

// SetSize sets the surface size used by later frames.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// Size returns the surface size.
func (t *WidgetTester) Size() graphics.Size {
	return t.size
}

// Clock returns the fake clock stamping frame samples.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// Gui returns the coordinator under test.
func (t *WidgetTester) Gui() *engine.Gui {
	return t.gui
}

// Root returns the mounted root widget, or nil.
func (t *WidgetTester) Root() core.Widget {
	return t.gui.Root()
}

// Build creates a standalone widget configured by spec, for placing with
// core.Ref.
func (t *WidgetTester) Build(spec core.Spec) core.Widget {
	return t.gui.Tree().Build(spec)
}

// PumpWidget reconciles the root against def and runs one frame.
func (t *WidgetTester) PumpWidget(def *core.Def) error {
	t.gui.SetRoot(def)
	return t.Pump()
}

// Pump lays out and paints one frame, whether or not one was requested.
func (t *WidgetTester) Pump() error {
	if t.gui.Root() == nil {
		return ErrNoRoot
	}
	canvas := t.recorder.BeginRecording(t.size)
	t.gui.RenderFrame(t.size, canvas)
	t.last = t.recorder.EndRecording()
	t.frames++
	return nil
}

// PumpIfRequested runs a frame only when the tree asked for one, and reports
// whether it did.
func (t *WidgetTester) PumpIfRequested() (bool, error) {
	if !t.gui.FrameRequested() {
		return false, nil
	}
	return true, t.Pump()
}

// PumpFrames advances the clock by interval before each of n frames.
func (t *WidgetTester) PumpFrames(n int, interval time.Duration) error {
	for range n {
		t.clock.Advance(interval)
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// Frames returns how many frames the tester has rendered.
func (t *WidgetTester) Frames() int {
	return t.frames
}

// DisplayList returns the recording of the last frame, or nil.
func (t *WidgetTester) DisplayList() *graphics.DisplayList {
	return t.last
}

// Dump returns the indented widget tree.
func (t *WidgetTester) Dump() string {
	return core.DumpString(t.gui.Root())
}

// Find evaluates a finder against the mounted tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	root := t.gui.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		widgets: finder.Evaluate(root),
		finder:  finder,
	}
}
