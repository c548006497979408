// Package input defines the raw pointer and keyboard values a platform shell
// feeds into the GUI.
package input

import "fmt"

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	// MouseButtonCount is the number of tracked buttons.
	MouseButtonCount
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseMouseButton maps a button name to its value.
func ParseMouseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}

// VirtualKey is a platform-neutral key code. Values follow the Windows
// virtual-key table so shells on that platform can pass codes through.
type VirtualKey uint8

const (
	KeyBack    VirtualKey = 0x08
	KeyTab     VirtualKey = 0x09
	KeyReturn  VirtualKey = 0x0D
	KeyShift   VirtualKey = 0x10
	KeyControl VirtualKey = 0x11
	KeyMenu    VirtualKey = 0x12
	KeyCapital VirtualKey = 0x14
	KeyEscape  VirtualKey = 0x1B
	KeySpace   VirtualKey = 0x20
	KeyLeft    VirtualKey = 0x25
	KeyUp      VirtualKey = 0x26
	KeyRight   VirtualKey = 0x27
	KeyDown    VirtualKey = 0x28
	KeyDelete  VirtualKey = 0x2E
	KeyA       VirtualKey = 0x41
)

var keyNames = map[string]VirtualKey{
	"back":    KeyBack,
	"tab":     KeyTab,
	"return":  KeyReturn,
	"shift":   KeyShift,
	"control": KeyControl,
	"menu":    KeyMenu,
	"capital": KeyCapital,
	"escape":  KeyEscape,
	"space":   KeySpace,
	"left":    KeyLeft,
	"up":      KeyUp,
	"right":   KeyRight,
	"down":    KeyDown,
	"delete":  KeyDelete,
}

// ParseKey maps a key name to a VirtualKey. Single letters and digits map to
// their uppercase ASCII codes.
func ParseKey(name string) (VirtualKey, error) {
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return VirtualKey(c - 'a' + 'A'), nil
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return VirtualKey(c), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

const (
	keyDownBit    = 0x80
	keyToggledBit = 0x01
)

// KeyboardState is a 256-entry key table in the layout used by Win32
// GetKeyboardState: the high bit marks a held key and the low bit a toggle
// that flips on every press.
type KeyboardState [256]byte

// IsDown reports whether key is held.
func (s *KeyboardState) IsDown(key VirtualKey) bool {
	return s[key]&keyDownBit != 0
}

// IsToggled reports whether key's toggle bit is set.
func (s *KeyboardState) IsToggled(key VirtualKey) bool {
	return s[key]&keyToggledBit != 0
}

// Press marks key as held. The toggle flips only when the key was up, so
// auto-repeat does not undo it.
func (s *KeyboardState) Press(key VirtualKey) {
	if s[key]&keyDownBit == 0 {
		s[key] ^= keyToggledBit
	}
	s[key] |= keyDownBit
}

// Release clears key's held bit.
func (s *KeyboardState) Release(key VirtualKey) {
	s[key] &^= keyDownBit
}

// IsPrintable reports whether ch is a printable ASCII character.
func IsPrintable(ch uint16) bool {
	return ch >= 0x20 && ch <= 0x7E
}
