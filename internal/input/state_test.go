package input

import "testing"

func TestPressRelease(t *testing.T) {
	d := NewDeviceState()

	if d.ButtonDown(KeySpace) {
		t.Error("expected Space up initially")
	}
	d.RecordPress(KeySpace)
	if !d.ButtonDown(KeySpace) {
		t.Error("expected Space down after press")
	}
	d.RecordRelease(KeySpace)
	if d.ButtonDown(KeySpace) {
		t.Error("expected Space up after release")
	}
}

func TestAnySentinel(t *testing.T) {
	d := NewDeviceState()

	if d.ButtonDown(ButtonAny) {
		t.Error("expected ANY down to be false with nothing held")
	}
	d.RecordPress(MouseLeft)
	if !d.ButtonDown(ButtonAny) {
		t.Error("expected ANY down to be true with one symbol held")
	}
	d.RecordRelease(MouseLeft)
	if d.ButtonDown(ButtonAny) {
		t.Error("expected ANY down to be false again")
	}
}

func TestLastPressedDrain(t *testing.T) {
	d := NewDeviceState()

	if got := d.DrainLastPressed(); got != ButtonNone {
		t.Errorf("expected empty slot initially, got %v", got)
	}

	d.RecordPress(KeyQ)
	if got := d.DrainLastPressed(); got != KeyQ {
		t.Errorf("expected Q, got %v", got)
	}
	if got := d.DrainLastPressed(); got != ButtonNone {
		t.Errorf("expected the drain to clear the slot, got %v", got)
	}
}

func TestLastPressedOverwrite(t *testing.T) {
	d := NewDeviceState()

	// a press that was never drained loses to a newer press
	d.RecordPress(KeyQ)
	d.RecordPress(KeyW)
	if got := d.DrainLastPressed(); got != KeyW {
		t.Errorf("expected the most recent press to win, got %v", got)
	}
}

func TestReleaseDoesNotTouchLastPressed(t *testing.T) {
	d := NewDeviceState()

	d.RecordPress(KeyQ)
	d.RecordRelease(KeyQ)
	if got := d.DrainLastPressed(); got != KeyQ {
		t.Errorf("expected release to leave the slot alone, got %v", got)
	}
}

func TestInvalidSymbolsIgnored(t *testing.T) {
	d := NewDeviceState()

	d.RecordPress(ButtonNone)
	d.RecordPress(PhysicalButton(-3))
	d.RecordPress(PhysicalButton(100000))
	if d.ButtonDown(ButtonAny) {
		t.Error("expected garbage presses to leave the table untouched")
	}
	if got := d.DrainLastPressed(); got != ButtonNone {
		t.Errorf("expected empty slot, got %v", got)
	}
}

func TestStickPresence(t *testing.T) {
	d := NewDeviceState()

	if _, ok := d.Stick(StickLeftX); ok {
		t.Error("expected no presence before a range is declared")
	}

	// samples before the range is declared are dropped
	d.SetStickPosition(StickLeftX, 512)
	if _, ok := d.Stick(StickLeftX); ok {
		t.Error("expected sample without range to be dropped")
	}

	d.SetStickRange(StickLeftX, -32767, 32767)
	d.SetStickPosition(StickLeftX, 512)
	r, ok := d.Stick(StickLeftX)
	if !ok {
		t.Fatal("expected presence after range declaration")
	}
	if r.Position != 512 || r.Min != -32767 || r.Max != 32767 {
		t.Errorf("unexpected reading %+v", r)
	}
}

func TestClearPad(t *testing.T) {
	d := NewDeviceState()

	d.RecordPress(KeySpace)
	d.RecordPress(PadA)
	d.SetStickRange(StickLeftX, -100, 100)
	d.SetStickPosition(StickLeftX, 50)

	d.ClearPad()

	if d.ButtonDown(PadA) {
		t.Error("expected pad button cleared")
	}
	if !d.ButtonDown(KeySpace) {
		t.Error("expected keyboard state untouched")
	}
	if _, ok := d.Stick(StickLeftX); ok {
		t.Error("expected stick presence cleared")
	}
	// PadA was the most recent press: a pad symbol must not survive the
	// unbind into a later drain
	if b := d.DrainLastPressed(); b != ButtonNone {
		t.Errorf("expected the last-pressed slot cleared, got %v", b)
	}

	// a keyboard symbol in the slot does survive
	d.RecordPress(KeyQ)
	d.ClearPad()
	if b := d.DrainLastPressed(); b != KeyQ {
		t.Errorf("expected KeyQ to survive ClearPad, got %v", b)
	}
}
