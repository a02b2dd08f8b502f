package input

// Resolver answers the game-facing queries against the binding registry and
// a Device. It never fails loudly: unknown handles and absent devices resolve
// to false/NONE/absent, so a binding mistake in game code cannot crash the
// title.
type Resolver struct {
	bindings *Bindings
	device   Device

	// active yields the profile the gamepad side is bound to, or nil. Used
	// only by PrimaryButton; leaving it nil means "no gamepad, ever".
	active func() *Profile
}

// NewResolver builds a resolver reading bindings against device. active may
// be nil when no gamepad source exists (tests, keyboard-only builds).
func NewResolver(bindings *Bindings, device Device, active func() *Profile) *Resolver {
	return &Resolver{bindings: bindings, device: device, active: active}
}

// IsDown reports whether any symbol bound to handle is currently held. It
// short-circuits on the first held symbol. The ANY sentinel is expanded by
// the device, not here.
func (r *Resolver) IsDown(handle int) bool {
	for _, b := range r.bindings.ButtonList(handle) {
		if r.device.ButtonDown(b) {
			return true
		}
	}
	return false
}

// StickPosition resolves handle to the mapped axis with the strictly largest
// sample magnitude on the current device. On an exact magnitude tie the
// first-registered axis wins: the comparison is deliberately strict
// greater-than, and that tie-break is contract, not accident. ok is false
// when no mapped axis is present on the active device.
func (r *Resolver) StickPosition(handle int) (reading StickReading, ok bool) {
	best := -1
	for _, s := range r.bindings.StickList(handle) {
		sample, present := r.device.Stick(s)
		if !present {
			continue
		}
		mag := sample.Position
		if mag < 0 {
			mag = -mag
		}
		if !ok || mag > best {
			reading = sample
			best = mag
			ok = true
		}
	}
	return reading, ok
}

// PrimaryButton picks the one symbol worth showing the player for handle:
// the first-registered gamepad symbol actually reachable on the active
// profile when a gamepad is bound, else the first-registered keyboard or
// mouse symbol, else ButtonNone. Used for on-screen hints and live remap
// capture.
func (r *Resolver) PrimaryButton(handle int) PhysicalButton {
	list := r.bindings.ButtonList(handle)

	if r.active != nil {
		if p := r.active(); p != nil {
			for _, b := range list {
				if IsGamepad(b) && p.BindsButton(b) {
					return b
				}
			}
		}
	}

	for _, b := range list {
		if IsKeyboardMouse(b) {
			return b
		}
	}
	return ButtonNone
}
