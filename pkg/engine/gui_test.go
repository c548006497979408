package engine

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
)

func TestRequestFrame_Coalesces(t *testing.T) {
	s := newScene(t)

	s.gui.RequestFrame()
	s.gui.RequestFrame()
	assert.Equal(t, 1, s.frames)
	assert.True(t, s.gui.FrameRequested())

	s.render()
	assert.False(t, s.gui.FrameRequested())

	s.gui.RequestFrame()
	assert.Equal(t, 2, s.frames)
	assert.Equal(t, 2, s.gui.FrameRequests())
}

func TestRenderFrame_ClearsLatchBeforePainting(t *testing.T) {
	s := newScene(t)
	var root core.Widget
	s.gui.SetRoot(core.New(stackSpec{painted: func() {
		root.(*stack).MarkForPaint()
	}}))
	root = s.gui.Root()
	require.True(t, s.gui.FrameRequested())
	before := s.frames

	s.render()

	assert.True(t, s.gui.FrameRequested(), "request made while painting must survive the pass")
	assert.Equal(t, before+1, s.frames)
}

func TestRenderFrame_LaysOutAndPaints(t *testing.T) {
	s := newScene(t)
	x := s.probe("x", graphics.RectFromLTWH(10, 20, 5, 5))
	s.mount(x)

	list := s.render()

	assert.Equal(t, graphics.Size{Width: 100, Height: 100}, s.gui.Root().Size())
	assert.Equal(t, []graphics.Rect{graphics.RectFromLTWH(10, 20, 5, 5)}, list.Rects())

	trace := s.gui.FrameTrace()
	require.Len(t, trace.Samples, 2)
	assert.Equal(t, 2, trace.Samples[1].Widgets)
	assert.Equal(t, graphics.Size{Width: 100, Height: 100}, trace.Samples[1].Size)
}

func TestRenderFrame_ShowLayoutBounds(t *testing.T) {
	s := newScene(t)
	s.mount(s.probe("x", graphics.RectFromLTWH(0, 0, 10, 10)))
	s.gui.SetShowLayoutBounds(true)

	list := s.render()

	assert.Contains(t, list.String(), "rect stroke 0.5,0.5 99x99 #80ff00ff")
	assert.Contains(t, list.String(), "rect stroke 0.5,0.5 9x9 #80ff00ff")
}

func TestRenderFrame_NoRoot(t *testing.T) {
	s := newScene(t)
	s.gui.RequestFrame()

	list := s.render()

	assert.Zero(t, list.Len())
	assert.False(t, s.gui.FrameRequested())
}

func TestSetRoot_ReplacesAndDestroys(t *testing.T) {
	s := newScene(t)
	first := s.gui.SetRoot(core.New(stackSpec{}))
	x := s.probe("x", graphics.RectFromLTWH(0, 0, 10, 10))

	same := s.gui.SetRoot(core.New(stackSpec{children: []*core.Def{core.Ref(x)}}))
	require.Equal(t, first, same)
	assert.Nil(t, same.Owner())
	assert.Nil(t, same.Parent())
	assert.Equal(t, same, x.Parent())

	replaced := s.gui.SetRoot(core.Ref(s.probe("y", graphics.Rect{})))
	assert.NotEqual(t, first, replaced)
	assert.False(t, s.gui.Tree().Contains(first))
	assert.False(t, s.gui.Tree().Contains(x))
	assert.Empty(t, s.gui.Tree().Unsettled(replaced))
}

func TestSetRoot_RefreshesHotList(t *testing.T) {
	s := newScene(t)
	s.mount()
	s.gui.MouseMove(at(5, 5))
	assert.Empty(t, s.log.take())

	s.mount(s.probe("x", graphics.RectFromLTWH(0, 0, 10, 10)))

	assert.Equal(t, []string{"enter x"}, s.log.take())
}

func TestDestroy(t *testing.T) {
	s := newScene(t)
	s.mount(s.probe("a", graphics.Rect{}), s.probe("b", graphics.Rect{}))

	s.gui.Destroy()

	assert.Nil(t, s.gui.Root())
	stats := s.gui.Tree().Stats()
	assert.Zero(t, stats.Live)
	assert.Equal(t, 3, stats.Destroyed)

	s.gui.Destroy()
}

func TestLogger_ReceivesFocusChanges(t *testing.T) {
	quietErrors(t)
	var buf bytes.Buffer
	gui := New(Options{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))})
	w := gui.CreateWidget(&probe{name: "p", log: &eventLog{}})

	gui.SetKeyboardFocus(w)

	assert.Contains(t, buf.String(), "keyboard focus changed")
	assert.Contains(t, buf.String(), "probe #")
}

func TestFrameTraceBuffer_Wraps(t *testing.T) {
	b := NewFrameTraceBuffer(2, 0)
	for i := range 3 {
		b.Add(FrameSample{Widgets: i})
	}
	snap := b.Snapshot()
	require.Len(t, snap.Samples, 2)
	assert.Equal(t, 1, snap.Samples[0].Widgets)
	assert.Equal(t, 2, snap.Samples[1].Widgets)
	assert.Equal(t, 2, b.Capacity())
}

func TestRenderFrame_StampsSamplesWithClock(t *testing.T) {
	quietErrors(t)
	stamp := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	gui := New(Options{Now: func() time.Time { return stamp }})
	gui.SetRoot(core.New(stackSpec{}))

	var recorder graphics.PictureRecorder
	size := graphics.Size{Width: 10, Height: 10}
	gui.RenderFrame(size, recorder.BeginRecording(size))

	trace := gui.FrameTrace()
	require.Len(t, trace.Samples, 1)
	assert.Equal(t, stamp, trace.Samples[0].Timestamp)
	assert.Zero(t, trace.Samples[0].Duration)
	assert.True(t, trace.Samples[0].Requested)
}
