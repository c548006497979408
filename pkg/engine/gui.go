// Package engine hosts the root coordinator that owns a widget tree, routes
// platform input into it and renders it.
package engine

import (
	"log/slog"
	"slices"
	"time"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
	"github.com/go-drift/retain/pkg/layout"
)

// Options configures a Gui.
type Options struct {
	// RequestFrame is called at most once between render passes when the
	// tree needs redrawing.
	RequestFrame func()

	// ShowLayoutBounds strokes every widget's bounds while painting.
	ShowLayoutBounds bool

	// Logger receives debug events such as root swaps and focus changes.
	// Defaults to discarding.
	Logger *slog.Logger

	// TraceCapacity is the number of frame samples kept. Zero uses a default.
	TraceCapacity int

	// Now stamps frame samples. Defaults to time.Now.
	Now func() time.Time
}

// Gui owns the root widget, keyboard focus, the mouse hot list and the frame
// latch. All methods must be called from the UI thread.
type Gui struct {
	opts   Options
	logger *slog.Logger
	tree   *core.Tree
	root   core.Widget

	frameRequested bool
	frameRequests  int
	trace          *FrameTraceBuffer

	keyboardFocus core.Widget
	keyboard      input.KeyboardState

	mouse mouseState
}

// New returns a Gui with an empty tree.
func New(opts Options) *Gui {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	g := &Gui{
		opts:   opts,
		logger: logger,
		trace:  NewFrameTraceBuffer(opts.TraceCapacity, 0),
	}
	g.tree = core.NewTree(g)
	return g
}

// Tree returns the lifecycle manager backing the Gui.
func (g *Gui) Tree() *core.Tree {
	return g.tree
}

// Root returns the root widget, or nil.
func (g *Gui) Root() core.Widget {
	return g.root
}

// CreateWidget registers a standalone widget that can later be placed with
// core.Ref.
func (g *Gui) CreateWidget(w core.Widget) core.Widget {
	return g.tree.Create(w)
}

// SetRoot reconciles the root widget against def and returns the new root.
// A nil def destroys the root.
func (g *Gui) SetRoot(def *core.Def) core.Widget {
	old := g.root
	g.root = g.tree.ReconcileRoot(old, def)
	if g.root != old {
		g.logger.Debug("root replaced", "root", describeWidget(g.root))
	}
	if g.mouse.entered {
		g.UpdateMouse(false)
	}
	g.RequestFrame()
	return g.root
}

// Destroy destroys the root widget and every widget it owns.
func (g *Gui) Destroy() {
	if g.root == nil {
		return
	}
	root := g.root
	g.root = nil
	g.tree.Destroy(root)
	g.logger.Debug("gui destroyed", "stats", g.tree.Stats())
}

// RequestFrame forwards the first request after a render pass to
// Options.RequestFrame and ignores the rest.
func (g *Gui) RequestFrame() {
	if g.frameRequested {
		return
	}
	g.frameRequested = true
	g.frameRequests++
	if g.opts.RequestFrame != nil {
		g.opts.RequestFrame()
	}
}

// FrameRequested reports whether a frame request is pending.
func (g *Gui) FrameRequested() bool {
	return g.frameRequested
}

// FrameRequests returns how many requests were forwarded to the shell.
func (g *Gui) FrameRequests() int {
	return g.frameRequests
}

// FrameTrace returns recent render pass samples.
func (g *Gui) FrameTrace() FrameTimeline {
	return g.trace.Snapshot()
}

// ShowLayoutBounds reports whether debug bounds are painted.
func (g *Gui) ShowLayoutBounds() bool {
	return g.opts.ShowLayoutBounds
}

// SetShowLayoutBounds toggles debug bounds and requests a frame.
func (g *Gui) SetShowLayoutBounds(show bool) {
	if g.opts.ShowLayoutBounds == show {
		return
	}
	g.opts.ShowLayoutBounds = show
	g.RequestFrame()
}

// RenderFrame lays the root out to exactly size and paints it into canvas.
// The frame latch is cleared first, so requests made while rendering
// schedule another frame.
func (g *Gui) RenderFrame(size graphics.Size, canvas graphics.Canvas) {
	requested := g.frameRequested
	g.frameRequested = false
	if g.root == nil {
		return
	}

	now := g.opts.Now
	start := now()
	g.root.Layout(layout.Tight(size))
	laidOut := now()
	g.root.Paint(canvas)
	end := now()

	g.trace.Add(FrameSample{
		Timestamp: start,
		Size:      size,
		Duration:  end.Sub(start),
		Phases: FramePhaseTimings{
			Layout: laidOut.Sub(start),
			Paint:  end.Sub(laidOut),
		},
		Widgets:   countWidgetTree(g.tree, g.root),
		Requested: requested,
	})
}

// WidgetDestroyed drops every reference the Gui holds to w. No focus or
// leave notifications are sent to a widget being destroyed.
func (g *Gui) WidgetDestroyed(w core.Widget) {
	if g.keyboardFocus == w {
		g.keyboardFocus = nil
	}
	if g.mouse.focus == w {
		g.mouse.focus = nil
	}
	if i := slices.Index(g.mouse.hot, w); i >= 0 {
		g.mouse.hot = slices.Concat(g.mouse.hot[:i], g.mouse.hot[i+1:])
	}
	if g.root == w {
		g.root = nil
	}
}

func describeWidget(w core.Widget) string {
	if w == nil {
		return "<nil>"
	}
	return core.DescribeWidget(w)
}

var _ core.Host = (*Gui)(nil)
