// Package config loads the optional retain.yaml used by the sandbox shell.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/retain/pkg/graphics"
	"github.com/go-drift/retain/pkg/input"
)

// FileName is the config file LoadOptional looks for.
const FileName = "retain.yaml"

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config represents retain.yaml.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Debug  DebugConfig  `yaml:"debug"`
	Script []Event      `yaml:"script,omitempty"`
}

// WindowConfig sets the render target size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// DebugConfig toggles diagnostics.
type DebugConfig struct {
	ShowLayoutBounds bool `yaml:"show_layout_bounds,omitempty"`
	VerboseErrors    bool `yaml:"verbose_errors,omitempty"`
}

// Event is one scripted input event as written in the file.
type Event struct {
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Button string  `yaml:"button,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Text   string  `yaml:"text,omitempty"`
}

// StepKind identifies a resolved script step.
type StepKind int

const (
	StepMove StepKind = iota
	StepDown
	StepUp
	StepLeave
	StepKeyDown
	StepKeyUp
	StepChar
	StepFrame
)

var stepNames = [...]string{
	StepMove:    "move",
	StepDown:    "down",
	StepUp:      "up",
	StepLeave:   "leave",
	StepKeyDown: "key_down",
	StepKeyUp:   "key_up",
	StepChar:    "char",
	StepFrame:   "frame",
}

func (k StepKind) String() string {
	if k >= 0 && int(k) < len(stepNames) {
		return stepNames[k]
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

func parseStepKind(name string) (StepKind, bool) {
	for i, n := range stepNames {
		if n == name {
			return StepKind(i), true
		}
	}
	return 0, false
}

// Step is a validated script event ready to be fed to a Gui.
type Step struct {
	Kind     StepKind
	Position graphics.Offset
	Button   input.MouseButton
	Key      input.VirtualKey
	Text     string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight}}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads retain.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultHeight
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the window size and every script event.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d is negative", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	_, err := c.Steps()
	return err
}

// Size returns the window size as a graphics.Size.
func (c *Config) Size() graphics.Size {
	return graphics.Size{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
}

// Steps resolves the script into typed steps.
func (c *Config) Steps() ([]Step, error) {
	steps := make([]Step, 0, len(c.Script))
	for i, e := range c.Script {
		step, err := e.resolve()
		if err != nil {
			return nil, fmt.Errorf("%w: script[%d]: %w", ErrInvalid, i, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (e Event) resolve() (Step, error) {
	kind, ok := parseStepKind(strings.ToLower(strings.TrimSpace(e.Type)))
	if !ok {
		return Step{}, fmt.Errorf("unknown event type %q", e.Type)
	}
	step := Step{Kind: kind, Position: graphics.Offset{X: e.X, Y: e.Y}}

	switch kind {
	case StepDown, StepUp:
		button, err := input.ParseMouseButton(e.Button)
		if err != nil {
			return Step{}, err
		}
		step.Button = button
	case StepKeyDown, StepKeyUp:
		key, err := input.ParseKey(e.Key)
		if err != nil {
			return Step{}, err
		}
		step.Key = key
	case StepChar:
		if e.Text == "" {
			return Step{}, errors.New("char event needs text")
		}
		step.Text = e.Text
	}
	return step, nil
}
