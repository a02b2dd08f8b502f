package input

// Raw device events, as delivered by a windowing or joystick driver. The
// translator consumes these; nothing in this package produces them.

// Event is a discrete raw input event.
type Event interface {
	rawEvent()
}

// KeyEvent is a keyboard key transition. Code is the driver's raw key
// identifier (an SDL scancode when the SDL platform layer is the source);
// the translator turns it into a symbol via its key table.
type KeyEvent struct {
	Code uint32
	Down bool
}

// MouseButtonEvent is a mouse button transition. Button uses the windowing
// system's 1-based numbering: 1 left, 2 middle, 3 right, 4/5 extras.
type MouseButtonEvent struct {
	Button int
	Down   bool
}

// PadButtonEvent is a gamepad digital button transition, identified by raw
// button index. Meaning depends on the active profile.
type PadButtonEvent struct {
	Index int
	Down  bool
}

// PadAxisEvent is a gamepad axis sample, identified by raw axis index.
type PadAxisEvent struct {
	Index int
	Value int
}

func (KeyEvent) rawEvent()         {}
func (MouseButtonEvent) rawEvent() {}
func (PadButtonEvent) rawEvent()   {}
func (PadAxisEvent) rawEvent()     {}
