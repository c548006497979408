package core

import (
	stderrors "errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-drift/retain/pkg/errors"
	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
	"github.com/go-drift/retain/pkg/layout"
)

// box is a container widget used throughout the tests. It only accepts
// boxSpecs of its own kind.
type box struct {
	Base
	kind     string
	label    string
	children []Widget
	matches  int
	created  int
	events   *[]string
}

type boxSpec struct {
	kind     string
	label    string
	children []*Def
	events   *[]string
}

func (s boxSpec) NewWidget() Widget {
	return &box{kind: s.kind}
}

func (b *box) TryMatch(spec Spec) bool {
	s, ok := spec.(boxSpec)
	if !ok || s.kind != b.kind {
		return false
	}
	b.matches++
	b.label = s.label
	b.events = s.events
	b.children = b.ReconcileList(b.children, s.children)
	return true
}

func (b *box) OnCreate() {
	b.created++
}

func (b *box) OnDestroy() {
	for _, child := range b.children {
		b.Drop(child)
	}
	b.children = nil
	b.record("destroy " + b.label)
}

func (b *box) VisitChildren(visitor func(Widget)) {
	for _, child := range b.children {
		visitor(child)
	}
}

func (b *box) OnLayout(c layout.Constraints) {
	b.SetSize(c.Max)
}

func (b *box) record(event string) {
	if b.events != nil {
		*b.events = append(*b.events, event)
	}
}

// leaf is a childless widget that accepts any leafSpec.
type leaf struct {
	Base
	label string
}

type leafSpec struct {
	label string
}

func (s leafSpec) NewWidget() Widget {
	return &leaf{}
}

func (l *leaf) TryMatch(spec Spec) bool {
	return MatchAs(spec, func(s leafSpec) {
		l.label = s.label
	})
}

// fakeHost records focus changes and destroyed widgets.
type fakeHost struct {
	frames     int
	keyboard   Widget
	mouse      Widget
	bounds     bool
	destroyed  []Widget
	mousePoint graphics.Offset
	keys       input.KeyboardState
}

func (h *fakeHost) RequestFrame()                  { h.frames++ }
func (h *fakeHost) KeyboardFocus() Widget          { return h.keyboard }
func (h *fakeHost) MouseFocus() Widget             { return h.mouse }
func (h *fakeHost) MousePosition() graphics.Offset { return h.mousePoint }
func (h *fakeHost) ShowLayoutBounds() bool         { return h.bounds }

func (h *fakeHost) KeyboardState() input.KeyboardState { return h.keys }

func (h *fakeHost) SetKeyboardFocus(w Widget) bool {
	if h.keyboard == w {
		return true
	}
	h.keyboard = w
	return false
}

func (h *fakeHost) SetMouseFocus(w Widget) bool {
	if h.mouse == w {
		return true
	}
	h.mouse = w
	return false
}

func (h *fakeHost) WidgetDestroyed(w Widget) {
	h.destroyed = append(h.destroyed, w)
	if h.keyboard == w {
		h.keyboard = nil
	}
	if h.mouse == w {
		h.mouse = nil
	}
}

// target is a leaf that takes mouse input.
type target struct {
	Base
	blocks bool
}

func (t *target) BlocksMouse() bool                  { return t.blocks }
func (t *target) TakesMouseInput() bool              { return true }
func (t *target) OnMouseEnter()                      {}
func (t *target) OnMouseLeave()                      {}
func (t *target) OnMouseDown(input.MouseButton) bool { return true }
func (t *target) OnMouseUp(input.MouseButton) bool   { return true }
func (t *target) OnMouseMove() bool                  { return false }

func newTestTree(t *testing.T) (*Tree, *box, *fakeHost) {
	t.Helper()
	quietDefects(t)
	host := &fakeHost{}
	tree := NewTree(host)
	root := tree.Create(&box{kind: "root", label: "root"}).(*box)
	return tree, root, host
}

func quietDefects(t *testing.T) {
	t.Helper()
	errors.SetHandler(&errors.LogHandler{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	t.Cleanup(func() { errors.SetHandler(nil) })
}

// expectDefect runs fn and fails the test unless it panics with a defect.
func expectDefect(t *testing.T, fn func()) *errors.DefectError {
	t.Helper()
	var got *errors.DefectError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, ok := r.(error)
			if !ok || !stderrors.As(err, &got) {
				panic(r)
			}
		}()
		fn()
	}()
	if got == nil {
		t.Fatal("expected a defect")
	}
	return got
}

func boxDef(kind, label string, children ...*Def) *Def {
	return New(boxSpec{kind: kind, label: label, children: children})
}

func leafDef(label string) *Def {
	return New(leafSpec{label: label})
}

func labels(ws []Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		switch v := w.(type) {
		case *box:
			out[i] = v.label
		case *leaf:
			out[i] = v.label
		default:
			out[i] = "?"
		}
	}
	return out
}
