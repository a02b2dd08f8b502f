package input

// Translator folds raw events into a DeviceState. Keyboard and mouse events
// go through static reverse lookups; gamepad events go through whatever
// profile is currently bound. With no profile bound, gamepad events are
// dropped on the floor.
//
// Single-threaded, like everything else that touches DeviceState.
type Translator struct {
	state   *DeviceState
	keys    map[uint32]PhysicalButton
	profile *Profile
}

// mouse button numbering is stable across windowing systems we care about,
// so the table lives here rather than with the key table.
var mouseButtons = map[int]PhysicalButton{
	1: MouseLeft,
	2: MouseMiddle,
	3: MouseRight,
	4: MouseX1,
	5: MouseX2,
}

// NewTranslator returns a translator writing into state. keys is the raw
// key-code reverse lookup supplied by the platform layer; raw codes absent
// from it are silently ignored.
func NewTranslator(state *DeviceState, keys map[uint32]PhysicalButton) *Translator {
	return &Translator{state: state, keys: keys}
}

// SetProfile switches the gamepad tables used for pad events. A nil profile
// means no gamepad is bound.
func (t *Translator) SetProfile(p *Profile) {
	t.profile = p
}

// Profile returns the currently bound profile, or nil.
func (t *Translator) Profile() *Profile {
	return t.profile
}

// Translate applies one raw event to the device state.
func (t *Translator) Translate(ev Event) {
	switch ev := ev.(type) {
	case KeyEvent:
		if b, ok := t.keys[ev.Code]; ok {
			t.transition(b, ev.Down)
		}
	case MouseButtonEvent:
		if b, ok := mouseButtons[ev.Button]; ok {
			t.transition(b, ev.Down)
		}
	case PadButtonEvent:
		if t.profile == nil {
			return
		}
		if b, ok := t.profile.Button(ev.Index); ok {
			t.transition(b, ev.Down)
		}
	case PadAxisEvent:
		t.axis(ev)
	}
}

func (t *Translator) transition(b PhysicalButton, down bool) {
	if down {
		t.state.RecordPress(b)
	} else {
		t.state.RecordRelease(b)
	}
}

// axis handles the hybrid-axis rule. The raw value is always written
// verbatim as the axis's analog sample. When the profile declares emulated
// button sides for the axis:
//
//   - a zero sample cannot be attributed to either side, so both are
//     released; anything else risks a stuck button after an ambiguous
//     previous sample;
//   - a nonzero sample presses the side matching its sign and releases the
//     opposite side, which covers an axis flicked from one extreme to the
//     other with no zero sample in between.
func (t *Translator) axis(ev PadAxisEvent) {
	if t.profile == nil {
		return
	}
	role, ok := t.profile.Axis(ev.Index)
	if !ok {
		return
	}

	t.state.SetStickPosition(role.Stick, ev.Value)

	if !role.Hybrid() {
		return
	}
	switch {
	case ev.Value == 0:
		t.state.RecordRelease(role.Neg)
		t.state.RecordRelease(role.Pos)
	case ev.Value < 0:
		if role.Neg != ButtonNone {
			t.state.RecordPress(role.Neg)
		}
		t.state.RecordRelease(role.Pos)
	default:
		if role.Pos != ButtonNone {
			t.state.RecordPress(role.Pos)
		}
		t.state.RecordRelease(role.Neg)
	}
}
