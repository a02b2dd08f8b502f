package input

import "testing"

func TestRegisterButtonHandleRange(t *testing.T) {
	var b Bindings

	if b.RegisterButton(-1, KeyA) {
		t.Error("expected registration to fail for negative handle")
	}
	if b.RegisterButton(NumHandles, KeyA) {
		t.Error("expected registration to fail for handle past the range")
	}
	if !b.RegisterButton(0, KeyA) {
		t.Error("expected registration to succeed for handle 0")
	}
	if !b.RegisterButton(NumHandles-1, KeyA) {
		t.Error("expected registration to succeed for the last handle")
	}
}

func TestRegisterButtonTruncation(t *testing.T) {
	var b Bindings

	// 35 symbols; only the first 31 may survive.
	syms := make([]PhysicalButton, 35)
	for i := range syms {
		syms[i] = KeyA + PhysicalButton(i)
	}
	if !b.RegisterButton(7, syms...) {
		t.Fatal("registration failed")
	}

	list := b.ButtonList(7)
	if len(list) != MaxBinding {
		t.Fatalf("expected %d symbols retained, got %d", MaxBinding, len(list))
	}
	for i, s := range list {
		if s != syms[i] {
			t.Errorf("symbol %d: expected %v, got %v", i, syms[i], s)
		}
	}
}

func TestRegisterButtonStopsAtInvalidSymbol(t *testing.T) {
	var b Bindings

	if !b.RegisterButton(3, KeyA, PhysicalButton(9999), KeyB) {
		t.Fatal("registration failed")
	}
	list := b.ButtonList(3)
	if len(list) != 1 || list[0] != KeyA {
		t.Errorf("expected [A], got %v", list)
	}
}

func TestRegisterButtonStopsAtTerminator(t *testing.T) {
	var b Bindings

	if !b.RegisterButton(3, KeyA, KeyB, ButtonNone, KeyC) {
		t.Fatal("registration failed")
	}
	list := b.ButtonList(3)
	if len(list) != 2 || list[0] != KeyA || list[1] != KeyB {
		t.Errorf("expected [A B], got %v", list)
	}
}

func TestReRegisterReplaces(t *testing.T) {
	var b Bindings

	b.RegisterButton(5, KeyA, KeyB)
	b.RegisterButton(5, KeyC)

	list := b.ButtonList(5)
	if len(list) != 1 || list[0] != KeyC {
		t.Errorf("expected re-registration to replace, got %v", list)
	}

	// re-registering with nothing clears the handle
	b.RegisterButton(5)
	if len(b.ButtonList(5)) != 0 {
		t.Error("expected empty binding after bare re-registration")
	}
}

func TestRegisterStick(t *testing.T) {
	var b Bindings

	if b.RegisterStick(NumHandles, StickLeftX) {
		t.Error("expected registration to fail for out-of-range handle")
	}
	if !b.RegisterStick(9, StickLeftX, StickNone, StickRightX) {
		t.Fatal("registration failed")
	}
	list := b.StickList(9)
	if len(list) != 1 || list[0] != StickLeftX {
		t.Errorf("expected [LeftX] (terminator stops the copy), got %v", list)
	}
}

func TestUnregisteredHandleIsEmpty(t *testing.T) {
	var b Bindings

	if got := b.ButtonList(200); len(got) != 0 {
		t.Errorf("expected empty list for unregistered handle, got %v", got)
	}
	if got := b.ButtonList(-4); got != nil {
		t.Errorf("expected nil for out-of-range handle, got %v", got)
	}
}
