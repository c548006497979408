package engine

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/errors"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
	"github.com/go-drift/retain/pkg/layout"
)

// eventLog collects notifications from probes in delivery order.
type eventLog struct {
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) take() []string {
	events := l.events
	l.events = nil
	return events
}

// probe is a leaf widget that records every input notification.
type probe struct {
	core.Base
	name    string
	log     *eventLog
	takes   bool
	blocks  bool
	consume bool
}

func (p *probe) TakesMouseInput() bool { return p.takes }
func (p *probe) BlocksMouse() bool     { return p.blocks }
func (p *probe) OnMouseEnter()         { p.log.add("enter %s", p.name) }
func (p *probe) OnMouseLeave()         { p.log.add("leave %s", p.name) }

func (p *probe) OnMouseDown(b input.MouseButton) bool {
	p.log.add("down %s %s", p.name, b)
	return p.consume
}

func (p *probe) OnMouseUp(b input.MouseButton) bool {
	p.log.add("up %s %s", p.name, b)
	return p.consume
}

func (p *probe) OnMouseMove() bool {
	p.log.add("move %s", p.name)
	return p.consume
}

func (p *probe) OnGainMouseFocus()    { p.log.add("gain-mouse %s", p.name) }
func (p *probe) OnLoseMouseFocus()    { p.log.add("lose-mouse %s", p.name) }
func (p *probe) OnGainKeyboardFocus() { p.log.add("gain-key %s", p.name) }
func (p *probe) OnLoseKeyboardFocus() { p.log.add("lose-key %s", p.name) }

func (p *probe) OnKeyDown(k input.VirtualKey) { p.log.add("keydown %s %#x", p.name, uint8(k)) }
func (p *probe) OnKeyUp(k input.VirtualKey)   { p.log.add("keyup %s %#x", p.name, uint8(k)) }
func (p *probe) OnChar(ch byte)               { p.log.add("char %s %c", p.name, ch) }

func (p *probe) OnPaint(canvas graphics.Canvas) {
	canvas.DrawRect(graphics.RectFromSize(p.Size()), graphics.FillPaint(graphics.ColorBlack))
}

// stack fills its constraints and leaves child geometry alone.
type stack struct {
	core.Base
	children []core.Widget
	painted  func()
}

type stackSpec struct {
	children []*core.Def
	painted  func()
}

func (s stackSpec) NewWidget() core.Widget { return &stack{} }

func (s *stack) TryMatch(spec core.Spec) bool {
	return core.MatchAs(spec, func(def stackSpec) {
		s.children = s.ReconcileList(s.children, def.children)
		s.painted = def.painted
	})
}

func (s *stack) OnDestroy() {
	for _, child := range s.children {
		s.Drop(child)
	}
	s.children = nil
}

func (s *stack) VisitChildren(visit func(core.Widget)) {
	for _, child := range s.children {
		visit(child)
	}
}

func (s *stack) OnLayout(c layout.Constraints) {
	s.SetSize(c.Max)
}

func (s *stack) OnPaint(canvas graphics.Canvas) {
	if s.painted != nil {
		s.painted()
	}
	for _, child := range s.children {
		child.Paint(canvas)
	}
}

func quietErrors(t *testing.T) {
	t.Helper()
	errors.SetHandler(&errors.LogHandler{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	t.Cleanup(func() { errors.SetHandler(nil) })
}

// scene is a Gui whose root stack holds the given probes.
type scene struct {
	gui    *Gui
	log    *eventLog
	frames int
}

func newScene(t *testing.T) *scene {
	t.Helper()
	quietErrors(t)
	s := &scene{log: &eventLog{}}
	s.gui = New(Options{RequestFrame: func() { s.frames++ }})
	return s
}

func (s *scene) probe(name string, rect graphics.Rect) *probe {
	p := s.gui.CreateWidget(&probe{name: name, log: s.log, takes: true}).(*probe)
	p.SetPosition(graphics.Offset{X: rect.Left, Y: rect.Top})
	p.SetSize(rect.Size())
	return p
}

func (s *scene) mount(widgets ...core.Widget) {
	defs := make([]*core.Def, len(widgets))
	for i, w := range widgets {
		defs[i] = core.Ref(w)
	}
	s.gui.SetRoot(core.New(stackSpec{children: defs}))
	s.render()
}

func (s *scene) render() *graphics.DisplayList {
	var recorder graphics.PictureRecorder
	size := graphics.Size{Width: 100, Height: 100}
	s.gui.RenderFrame(size, recorder.BeginRecording(size))
	return recorder.EndRecording()
}

func at(x, y float64) graphics.Offset {
	return graphics.Offset{X: x, Y: y}
}
