package platform

import (
	"errors"
	"testing"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/device"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/input"
)

type noOpener struct{}

func (noOpener) Open(ordinal int) (device.Port, string, error) {
	return nil, "", errors.New("no device")
}

func TestSnapshotReflectsState(t *testing.T) {
	l := NewLoop(noOpener{})
	l.Bindings.RegisterButton(0, input.KeySpace)
	l.Bindings.RegisterStick(0, input.StickLeftX)
	l.WatchButton("jump", 0)
	l.WatchStick("move", 0)

	s := l.snapshot()
	if s.Connected {
		t.Error("expected no gamepad")
	}
	if len(s.Actions) != 1 || s.Actions[0].Down {
		t.Fatalf("expected one up action, got %+v", s.Actions)
	}
	if len(s.Sticks) != 1 || s.Sticks[0].Present {
		t.Fatalf("expected one absent stick, got %+v", s.Sticks)
	}

	l.State.RecordPress(input.KeySpace)
	l.State.SetStickRange(input.StickLeftX, -100, 100)
	l.State.SetStickPosition(input.StickLeftX, 33)

	s = l.snapshot()
	if !s.Actions[0].Down {
		t.Error("expected the action down after the press")
	}
	if !s.Sticks[0].Present || s.Sticks[0].Position != 33 {
		t.Errorf("expected a present stick at 33, got %+v", s.Sticks[0])
	}
	// keyboard hint with no gamepad bound
	if s.Actions[0].Hint != "Space" {
		t.Errorf("expected a Space hint, got %q", s.Actions[0].Hint)
	}
}

func TestEmitDeduplicates(t *testing.T) {
	l := NewLoop(noOpener{})
	l.Bindings.RegisterButton(0, input.KeySpace)
	l.WatchButton("jump", 0)

	l.emit()
	select {
	case <-l.Changes():
	default:
		t.Fatal("expected the first snapshot emitted")
	}

	// nothing changed: no second emit
	l.emit()
	select {
	case s := <-l.Changes():
		t.Fatalf("expected no emit for an unchanged snapshot, got %+v", s)
	default:
	}

	l.State.RecordPress(input.KeySpace)
	l.emit()
	select {
	case <-l.Changes():
	default:
		t.Fatal("expected an emit after a state change")
	}
}

func TestArmCapture(t *testing.T) {
	l := NewLoop(noOpener{})

	// a press sitting in the slot before arming must not be captured
	l.State.RecordPress(input.KeyQ)
	l.ArmCapture()

	s := l.snapshot()
	if s.Captured != "" {
		t.Errorf("expected nothing captured yet, got %q", s.Captured)
	}

	l.State.RecordPress(input.KeyZ)
	s = l.snapshot()
	if s.Captured != "Z" {
		t.Errorf("expected Z captured, got %q", s.Captured)
	}

	// capture disarms after one hit
	l.State.RecordPress(input.KeyX)
	s = l.snapshot()
	if s.Captured != "" {
		t.Errorf("expected capture disarmed, got %q", s.Captured)
	}
}

// ArmCapture is called from the overlay's websocket goroutine while the pump
// thread owns the device state; only the flag may cross that boundary. Run
// with -race.
func TestArmCaptureConcurrentWithPump(t *testing.T) {
	l := NewLoop(noOpener{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			l.ArmCapture()
		}
	}()

	for i := 0; i < 1000; i++ {
		l.State.RecordPress(input.KeyZ)
		l.snapshot()
		l.State.RecordRelease(input.KeyZ)
	}
	<-done
}

func TestKeyTableCoversCoreKeys(t *testing.T) {
	table := KeyTable()
	seen := map[input.PhysicalButton]bool{}
	for _, b := range table {
		if seen[b] {
			t.Errorf("symbol %v mapped from two scancodes", b)
		}
		seen[b] = true
	}
	for _, b := range []input.PhysicalButton{input.KeySpace, input.KeyEscape, input.KeyUp, input.KeyA} {
		if !seen[b] {
			t.Errorf("symbol %v missing from the key table", b)
		}
	}

	// the lock and navigation keys use mixed-case SDL names
	for code, want := range map[uint32]input.PhysicalButton{
		uint32(sdl.ScancodeCapsLock):     input.KeyCapsLock,
		uint32(sdl.ScancodePageUp):       input.KeyPageUp,
		uint32(sdl.ScancodePageDown):     input.KeyPageDown,
		uint32(sdl.ScancodeNumLockClear): input.KeyNumLock,
		uint32(sdl.ScancodeScrollLock):   input.KeyScrollLock,
		uint32(sdl.ScancodePrintScreen):  input.KeyPrintScreen,
	} {
		if got := table[code]; got != want {
			t.Errorf("scancode %d maps to %v, want %v", code, got, want)
		}
	}
}
