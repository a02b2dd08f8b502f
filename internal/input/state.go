package input

// StickReading is one axis sample together with the range the active profile
// declared for it.
type StickReading struct {
	Position int
	Min      int
	Max      int
}

// Device is the per-symbol view the resolver reads. DeviceState is the one
// real implementation; tests substitute their own.
type Device interface {
	// ButtonDown reports whether the symbol is currently held. ButtonAny
	// reports whether any real symbol is held.
	ButtonDown(PhysicalButton) bool

	// Stick returns the current sample for the symbol and whether the
	// active device carries that axis at all.
	Stick(PhysicalStick) (StickReading, bool)
}

// DeviceState is the authoritative live device picture: a down flag per
// button symbol, a sample per stick symbol, and a one-slot memory of the most
// recent press. It is written only by the event translator and the device
// manager, read by everyone else, and safe only for single-threaded use.
type DeviceState struct {
	down        [numButtons]bool
	sticks      [numSticks]StickReading
	stickLive   [numSticks]bool
	lastPressed PhysicalButton
}

// NewDeviceState returns an all-up state with no stick presence and an empty
// last-pressed slot.
func NewDeviceState() *DeviceState {
	return &DeviceState{lastPressed: ButtonNone}
}

// RecordPress marks the symbol down and overwrites the last-pressed slot.
// The most recent press always wins, drained or not.
func (d *DeviceState) RecordPress(b PhysicalButton) {
	if !ValidButton(b) || b == ButtonAny {
		return
	}
	d.down[b] = true
	d.lastPressed = b
}

// RecordRelease marks the symbol up. It never touches last-pressed.
func (d *DeviceState) RecordRelease(b PhysicalButton) {
	if !ValidButton(b) || b == ButtonAny {
		return
	}
	d.down[b] = false
}

// DrainLastPressed returns the most recently pressed symbol and clears the
// slot. A second call with no intervening press returns ButtonNone.
func (d *DeviceState) DrainLastPressed() PhysicalButton {
	b := d.lastPressed
	d.lastPressed = ButtonNone
	return b
}

// ButtonDown implements Device. The ANY sentinel scans the whole table.
func (d *DeviceState) ButtonDown(b PhysicalButton) bool {
	if b == ButtonAny {
		for i := ButtonNone + 1; i < ButtonAny; i++ {
			if d.down[i] {
				return true
			}
		}
		return false
	}
	if !ValidButton(b) {
		return false
	}
	return d.down[b]
}

// Stick implements Device. An axis is present only while a bound profile has
// declared a range for it.
func (d *DeviceState) Stick(s PhysicalStick) (StickReading, bool) {
	if !ValidStick(s) || !d.stickLive[s] {
		return StickReading{}, false
	}
	return d.sticks[s], true
}

// SetStickRange declares that the active device carries the axis, with the
// given raw value range. Called by the device manager when a profile binds.
func (d *DeviceState) SetStickRange(s PhysicalStick, min, max int) {
	if !ValidStick(s) {
		return
	}
	d.sticks[s] = StickReading{Min: min, Max: max}
	d.stickLive[s] = true
}

// SetStickPosition writes a raw sample verbatim. Samples for axes with no
// declared range are dropped.
func (d *DeviceState) SetStickPosition(s PhysicalStick, pos int) {
	if !ValidStick(s) || !d.stickLive[s] {
		return
	}
	d.sticks[s].Position = pos
}

// ClearPad forgets everything the active gamepad contributed: pad-range down
// flags, all stick presence, and a pad symbol held in the last-pressed slot.
// Keyboard and mouse state is untouched. Called on device unbind so a
// vanished pad cannot leave buttons stuck down or leak into a later capture.
func (d *DeviceState) ClearPad() {
	for b := PadA; b <= PadRightStickRight; b++ {
		d.down[b] = false
	}
	for s := StickNone + 1; s < numSticks; s++ {
		d.sticks[s] = StickReading{}
		d.stickLive[s] = false
	}
	if IsGamepad(d.lastPressed) {
		d.lastPressed = ButtonNone
	}
}
