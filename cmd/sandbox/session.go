package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-drift/retain/internal/config"
	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/engine"
	"github.com/go-drift/retain/pkg/errors"
	"github.com/go-drift/retain/pkg/graphics"
)

// session runs the demo scene inside a Gui.
type session struct {
	cfg    *config.Config
	gui    *engine.Gui
	demo   *demo
	size   graphics.Size
	frames int
}

func newSession(cfg *config.Config, logger *slog.Logger) *session {
	gui := engine.New(engine.Options{
		ShowLayoutBounds: cfg.Debug.ShowLayoutBounds,
		Logger:           logger,
	})
	return &session{
		cfg:  cfg,
		gui:  gui,
		demo: newDemo(gui.Tree()),
		size: cfg.Size(),
	}
}

// run builds both scenes and replays the script.
func (s *session) run() error {
	steps, err := s.cfg.Steps()
	if err != nil {
		return &errors.GuiError{Op: "sandbox.run", Kind: errors.KindConfig, Err: err}
	}
	return guard("sandbox.run", func() error {
		s.gui.SetRoot(s.demo.first())
		s.render(nil)
		s.gui.SetRoot(s.demo.second())
		s.render(nil)
		s.replay(steps)
		return nil
	})
}

func (s *session) replay(steps []config.Step) {
	for _, step := range steps {
		switch step.Kind {
		case config.StepMove:
			s.gui.MouseMove(step.Position)
		case config.StepDown:
			s.gui.MouseButton(step.Button, true, step.Position)
		case config.StepUp:
			s.gui.MouseButton(step.Button, false, step.Position)
		case config.StepLeave:
			s.gui.MouseLeave()
		case config.StepKeyDown:
			s.gui.KeyDown(step.Key)
		case config.StepKeyUp:
			s.gui.KeyUp(step.Key)
		case config.StepChar:
			for i := range len(step.Text) {
				s.gui.Char(uint16(step.Text[i]))
			}
		case config.StepFrame:
			if s.gui.FrameRequested() {
				s.render(nil)
			}
		}
	}
}

// render runs a frame into canvas, or into a throwaway recording when canvas
// is nil.
func (s *session) render(canvas graphics.Canvas) {
	if canvas == nil {
		var recorder graphics.PictureRecorder
		canvas = recorder.BeginRecording(s.size)
		defer recorder.EndRecording()
	}
	s.gui.RenderFrame(s.size, canvas)
	s.frames++
}

// snapshot renders the current tree onto a white image.
func (s *session) snapshot() (image.Image, error) {
	if s.cfg.Window.Width <= 0 || s.cfg.Window.Height <= 0 {
		return nil, &errors.GuiError{
			Op:   "sandbox.snapshot",
			Kind: errors.KindRender,
			Err:  fmt.Errorf("empty window %dx%d", s.cfg.Window.Width, s.cfg.Window.Height),
		}
	}
	canvas := graphics.NewImageCanvas(s.cfg.Window.Width, s.cfg.Window.Height, graphics.ColorWhite)
	err := guard("sandbox.snapshot", func() error {
		s.render(canvas)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

func (s *session) dump() string {
	return core.DumpString(s.gui.Root())
}

func (s *session) report(w io.Writer) {
	stats := s.gui.Tree().Stats()
	fmt.Fprint(w, s.dump())
	fmt.Fprintf(w, "frames rendered: %d\n", s.frames)
	fmt.Fprintf(w, "frame requests: %d\n", s.gui.FrameRequests())
	fmt.Fprintf(w, "button clicks: %d\n", s.demo.clicks)
	fmt.Fprintf(w, "widgets: created=%d destroyed=%d live=%d\n", stats.Created, stats.Destroyed, stats.Live)
}

// close destroys the root, then the standalone widgets.
func (s *session) close() {
	s.gui.Destroy()
	s.demo.close()
}

// writeImage encodes img by the extension of path: .png, .bmp, .tif or .tiff.
func writeImage(path string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }
	default:
		return &errors.GuiError{
			Op:   "sandbox.writeImage",
			Kind: errors.KindRender,
			Err:  fmt.Errorf("unsupported image format %q", filepath.Ext(path)),
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &errors.GuiError{Op: "sandbox.writeImage", Kind: errors.KindRender, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &errors.GuiError{Op: "sandbox.writeImage", Kind: errors.KindRender, Err: cerr}
		}
	}()
	if err := encode(f, img); err != nil {
		return &errors.GuiError{Op: "sandbox.writeImage", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// guard runs fn and turns a panic into a GuiError. Defects keep KindDefect.
func guard(op string, fn func() error) (err error) {
	defer errors.RecoverWithCallback(op, func(r any) {
		if defect, ok := r.(*errors.DefectError); ok {
			err = &errors.GuiError{Op: op, Kind: errors.KindDefect, Err: defect, Timestamp: time.Now()}
			return
		}
		err = &errors.GuiError{Op: op, Kind: errors.KindPanic, Err: fmt.Errorf("%v", r), Timestamp: time.Now()}
	})
	return fn()
}
