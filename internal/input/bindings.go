package input

// NumHandles is the size of the logical handle space. Handles are small
// game-chosen integers; anything outside [0, NumHandles) is rejected.
const NumHandles = 256

// MaxBinding caps how many physical symbols one logical handle can carry.
const MaxBinding = 31

// Bindings is the logical action registry: for every handle, the ordered list
// of physical symbols that satisfy it. List order is load-bearing; the
// resolver breaks ties in favour of earlier entries.
//
// An unregistered handle has an empty list and resolves to up/absent.
type Bindings struct {
	buttons [NumHandles][]PhysicalButton
	sticks  [NumHandles][]PhysicalStick
}

// RegisterButton binds handle to the given symbols, replacing any previous
// binding wholesale. It returns false only when handle is out of range.
// Copying is best effort: it stops at MaxBinding entries, at a ButtonNone
// terminator, or at the first symbol outside the enumeration, keeping
// whatever was valid up to that point.
func (b *Bindings) RegisterButton(handle int, symbols ...PhysicalButton) bool {
	if handle < 0 || handle >= NumHandles {
		return false
	}
	list := make([]PhysicalButton, 0, MaxBinding)
	for _, s := range symbols {
		if len(list) == MaxBinding || !ValidButton(s) {
			break
		}
		list = append(list, s)
	}
	b.buttons[handle] = list
	return true
}

// RegisterStick is the axis counterpart of RegisterButton.
func (b *Bindings) RegisterStick(handle int, symbols ...PhysicalStick) bool {
	if handle < 0 || handle >= NumHandles {
		return false
	}
	list := make([]PhysicalStick, 0, MaxBinding)
	for _, s := range symbols {
		if len(list) == MaxBinding || !ValidStick(s) {
			break
		}
		list = append(list, s)
	}
	b.sticks[handle] = list
	return true
}

// ButtonList returns the binding list for handle, or nil for an out-of-range
// or unregistered handle. The returned slice is live; callers must not keep
// it across a re-registration.
func (b *Bindings) ButtonList(handle int) []PhysicalButton {
	if handle < 0 || handle >= NumHandles {
		return nil
	}
	return b.buttons[handle]
}

// StickList returns the stick binding list for handle, or nil.
func (b *Bindings) StickList(handle int) []PhysicalStick {
	if handle < 0 || handle >= NumHandles {
		return nil
	}
	return b.sticks[handle]
}
