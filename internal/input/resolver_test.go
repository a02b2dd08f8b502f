package input

import "testing"

// fakeDevice lets resolver tests script per-symbol answers directly.
type fakeDevice struct {
	down   map[PhysicalButton]bool
	sticks map[PhysicalStick]StickReading
}

func (f *fakeDevice) ButtonDown(b PhysicalButton) bool {
	if b == ButtonAny {
		return len(f.down) > 0
	}
	return f.down[b]
}

func (f *fakeDevice) Stick(s PhysicalStick) (StickReading, bool) {
	r, ok := f.sticks[s]
	return r, ok
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		down:   map[PhysicalButton]bool{},
		sticks: map[PhysicalStick]StickReading{},
	}
}

func TestIsDownUnregistered(t *testing.T) {
	var b Bindings
	r := NewResolver(&b, newFakeDevice(), nil)

	for _, handle := range []int{0, 17, 255, -1, 300} {
		if r.IsDown(handle) {
			t.Errorf("expected handle %d to resolve up", handle)
		}
	}
}

func TestIsDownAnyBoundSymbol(t *testing.T) {
	var b Bindings
	dev := newFakeDevice()
	r := NewResolver(&b, dev, nil)

	b.RegisterButton(4, KeyA, KeyB)

	if r.IsDown(4) {
		t.Error("expected up with neither symbol held")
	}
	dev.down[KeyA] = true
	if !r.IsDown(4) {
		t.Error("expected down with A held")
	}
	delete(dev.down, KeyA)
	dev.down[KeyB] = true
	if !r.IsDown(4) {
		t.Error("expected down with B held")
	}
	delete(dev.down, KeyB)
	if r.IsDown(4) {
		t.Error("expected up with both released")
	}
}

func TestIsDownAnySentinel(t *testing.T) {
	var b Bindings
	d := NewDeviceState()
	r := NewResolver(&b, d, nil)

	b.RegisterButton(0, ButtonAny)

	if r.IsDown(0) {
		t.Error("expected ANY handle up with nothing held")
	}
	d.RecordPress(KeyZ)
	if !r.IsDown(0) {
		t.Error("expected ANY handle down with one symbol held")
	}
	d.RecordRelease(KeyZ)
	if r.IsDown(0) {
		t.Error("expected ANY handle up after release")
	}
}

func TestStickPositionAbsent(t *testing.T) {
	var b Bindings
	r := NewResolver(&b, newFakeDevice(), nil)

	if _, ok := r.StickPosition(12); ok {
		t.Error("expected absent for unregistered handle")
	}

	b.RegisterStick(12, StickLeftX)
	if _, ok := r.StickPosition(12); ok {
		t.Error("expected absent when the mapped axis is not present")
	}
}

func TestStickPositionLargestMagnitude(t *testing.T) {
	var b Bindings
	dev := newFakeDevice()
	r := NewResolver(&b, dev, nil)

	b.RegisterStick(2, StickLeftX, StickRightX)
	dev.sticks[StickLeftX] = StickReading{Position: -100, Min: -128, Max: 127}
	dev.sticks[StickRightX] = StickReading{Position: 90, Min: -128, Max: 127}

	got, ok := r.StickPosition(2)
	if !ok {
		t.Fatal("expected a reading")
	}
	if got.Position != -100 || got.Min != -128 || got.Max != 127 {
		t.Errorf("expected the -100 triple, got %+v", got)
	}
}

func TestStickPositionTieFirstRegisteredWins(t *testing.T) {
	var b Bindings
	dev := newFakeDevice()
	r := NewResolver(&b, dev, nil)

	b.RegisterStick(2, StickRightX, StickLeftX)
	dev.sticks[StickLeftX] = StickReading{Position: -50, Min: -100, Max: 100}
	dev.sticks[StickRightX] = StickReading{Position: 50, Min: -200, Max: 200}

	got, ok := r.StickPosition(2)
	if !ok {
		t.Fatal("expected a reading")
	}
	// equal magnitudes: the first-registered axis (RightX) must win
	if got.Position != 50 || got.Max != 200 {
		t.Errorf("expected the first-registered reading, got %+v", got)
	}
}

func TestPrimaryButtonPrefersBoundGamepadSymbol(t *testing.T) {
	var b Bindings
	active := xbox360Profile
	r := NewResolver(&b, newFakeDevice(), func() *Profile { return active })

	b.RegisterButton(1, KeySpace, PadA)
	if got := r.PrimaryButton(1); got != PadA {
		t.Errorf("expected PadA with a gamepad bound, got %v", got)
	}

	// a gamepad symbol the model cannot produce is skipped in favour of the
	// keyboard fallback
	b.RegisterButton(2, PadLeftStickUp, KeyW)
	if got := r.PrimaryButton(2); got != KeyW {
		t.Errorf("expected KeyW fallback, got %v", got)
	}

	// emulated hybrid-axis sides count as bound
	b.RegisterButton(3, PadLeft, KeyA)
	if got := r.PrimaryButton(3); got != PadLeft {
		t.Errorf("expected the emulated dpad symbol, got %v", got)
	}
}

func TestPrimaryButtonNoGamepad(t *testing.T) {
	var b Bindings
	r := NewResolver(&b, newFakeDevice(), func() *Profile { return nil })

	b.RegisterButton(1, PadA, KeySpace)
	if got := r.PrimaryButton(1); got != KeySpace {
		t.Errorf("expected keyboard symbol with no gamepad, got %v", got)
	}

	b.RegisterButton(2, PadA, PadB)
	if got := r.PrimaryButton(2); got != ButtonNone {
		t.Errorf("expected NONE for a pad-only binding with no gamepad, got %v", got)
	}

	if got := r.PrimaryButton(99); got != ButtonNone {
		t.Errorf("expected NONE for unregistered handle, got %v", got)
	}
}
