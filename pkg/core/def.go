package core

import "github.com/go-drift/retain/pkg/errors"

// Spec is the configuration payload of an attributed Def. NewWidget returns
// an empty widget of the kind that accepts the spec in TryMatch.
type Spec interface {
	NewWidget() Widget
}

// Def is a single-use description of a desired widget. An attributed Def
// carries a Spec and optionally a Key; a widget-ref Def wraps an existing
// widget and never carries a Key.
//
// The reconciler consumes a Def: its payload and key are cleared and any
// further use is a defect.
type Def struct {
	spec     Spec
	widget   Widget
	key      Key
	consumed bool
}

// New returns an attributed Def for spec.
func New(spec Spec) *Def {
	if spec == nil {
		errors.Defect("core.New", "nil spec")
	}
	return &Def{spec: spec}
}

// Ref returns a Def that places w itself.
func Ref(w Widget) *Def {
	if isNil(w) {
		errors.Defect("core.Ref", "nil widget")
	}
	return &Def{widget: w}
}

// WithKey attaches k to the Def and returns it.
func (d *Def) WithKey(k Key) *Def {
	switch {
	case d.consumed:
		errors.Defect("Def.WithKey", "def already consumed")
	case d.widget != nil:
		errors.Defect("Def.WithKey", "widget-ref defs cannot carry a key")
	case !d.key.IsNil():
		errors.Defect("Def.WithKey", "def already has key %s", d.key)
	}
	d.key = k
	return d
}

// Key returns the Def's key, or the zero Key once consumed.
func (d *Def) Key() Key {
	return d.key
}

// IsRef reports whether d wraps an existing widget.
func (d *Def) IsRef() bool {
	return d.widget != nil
}

// Consumed reports whether a reconciler already used d.
func (d *Def) Consumed() bool {
	return d.consumed
}

// Spec returns the attributed payload, or nil for widget-ref and consumed Defs.
func (d *Def) Spec() Spec {
	return d.spec
}

// Widget returns the wrapped widget of a widget-ref Def.
func (d *Def) Widget() Widget {
	return d.widget
}

func (d *Def) checkUsable(op string) {
	if d.consumed {
		errors.Defect(op, "def already consumed")
	}
	if d.widget != nil && !d.key.IsNil() {
		errors.Defect(op, "widget-ref def carries key %s", d.key)
	}
}

// takeKey moves the key out of the Def.
func (d *Def) takeKey() Key {
	k := d.key
	d.key = Key{}
	return k
}

func (d *Def) consume() {
	d.spec = nil
	d.widget = nil
	d.key = Key{}
	d.consumed = true
}
