package input

import "fmt"

// PhysicalButton identifies one physical control that is either down or up:
// a keyboard key, a mouse button, a gamepad button, or one side of a hybrid
// axis that a gamepad model treats as a pair of digital buttons.
type PhysicalButton int

const (
	// ButtonNone is the absent sentinel. It terminates binding lists and is
	// returned where no button applies.
	ButtonNone PhysicalButton = iota

	// Keyboard keys.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyEscape
	KeyTab
	KeyCapsLock
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeySpace
	KeyEnter
	KeyBackspace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyNumLock
	KeyScrollLock
	KeyPrintScreen
	KeyPause
	KeyMenu
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPDivide
	KeyKPMultiply
	KeyKPMinus
	KeyKPPlus
	KeyKPEnter
	KeyKPPeriod

	// Mouse buttons.
	MouseLeft
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2

	// Gamepad buttons. PadLeftTrigger onward only ever appear as emulated
	// sides of hybrid axes; which models produce them is a profile matter.
	PadA
	PadB
	PadX
	PadY
	PadLeftShoulder
	PadRightShoulder
	PadBack
	PadStart
	PadGuide
	PadLeftStick
	PadRightStick
	PadUp
	PadDown
	PadLeft
	PadRight
	PadLeftTrigger
	PadRightTrigger
	PadLeftStickUp
	PadLeftStickDown
	PadLeftStickLeft
	PadLeftStickRight
	PadRightStickUp
	PadRightStickDown
	PadRightStickLeft
	PadRightStickRight

	// ButtonAny is the wildcard sentinel: it reads as down whenever at least
	// one real symbol is down.
	ButtonAny

	numButtons
)

// PhysicalStick identifies one analog axis.
type PhysicalStick int

const (
	// StickNone is the absent sentinel for axis bindings.
	StickNone PhysicalStick = iota
	StickLeftX
	StickLeftY
	StickRightX
	StickRightY
	StickLeftTrigger
	StickRightTrigger
	StickDpadX
	StickDpadY

	numSticks
)

// ValidButton reports whether b can appear in a binding list. The ANY
// sentinel is a legal binding target; NONE is not.
func ValidButton(b PhysicalButton) bool {
	return b > ButtonNone && b < numButtons
}

// ValidStick reports whether s can appear in a stick binding list.
func ValidStick(s PhysicalStick) bool {
	return s > StickNone && s < numSticks
}

// IsKeyboardMouse reports whether b is a keyboard key or mouse button. These
// symbols are assumed always obtainable, gamepad or not.
func IsKeyboardMouse(b PhysicalButton) bool {
	return b >= KeyA && b <= MouseX2
}

// IsGamepad reports whether b belongs to the gamepad symbol range.
func IsGamepad(b PhysicalButton) bool {
	return b >= PadA && b <= PadRightStickRight
}

var buttonNames = [numButtons]string{
	ButtonNone:         "none",
	KeyA:               "A",
	KeyB:               "B",
	KeyC:               "C",
	KeyD:               "D",
	KeyE:               "E",
	KeyF:               "F",
	KeyG:               "G",
	KeyH:               "H",
	KeyI:               "I",
	KeyJ:               "J",
	KeyK:               "K",
	KeyL:               "L",
	KeyM:               "M",
	KeyN:               "N",
	KeyO:               "O",
	KeyP:               "P",
	KeyQ:               "Q",
	KeyR:               "R",
	KeyS:               "S",
	KeyT:               "T",
	KeyU:               "U",
	KeyV:               "V",
	KeyW:               "W",
	KeyX:               "X",
	KeyY:               "Y",
	KeyZ:               "Z",
	Key0:               "0",
	Key1:               "1",
	Key2:               "2",
	Key3:               "3",
	Key4:               "4",
	Key5:               "5",
	Key6:               "6",
	Key7:               "7",
	Key8:               "8",
	Key9:               "9",
	KeyF1:              "F1",
	KeyF2:              "F2",
	KeyF3:              "F3",
	KeyF4:              "F4",
	KeyF5:              "F5",
	KeyF6:              "F6",
	KeyF7:              "F7",
	KeyF8:              "F8",
	KeyF9:              "F9",
	KeyF10:             "F10",
	KeyF11:             "F11",
	KeyF12:             "F12",
	KeyEscape:          "Escape",
	KeyTab:             "Tab",
	KeyCapsLock:        "CapsLock",
	KeyLeftShift:       "LeftShift",
	KeyRightShift:      "RightShift",
	KeyLeftControl:     "LeftControl",
	KeyRightControl:    "RightControl",
	KeyLeftAlt:         "LeftAlt",
	KeyRightAlt:        "RightAlt",
	KeyLeftSuper:       "LeftSuper",
	KeyRightSuper:      "RightSuper",
	KeySpace:           "Space",
	KeyEnter:           "Enter",
	KeyBackspace:       "Backspace",
	KeyMinus:           "Minus",
	KeyEquals:          "Equals",
	KeyLeftBracket:     "LeftBracket",
	KeyRightBracket:    "RightBracket",
	KeyBackslash:       "Backslash",
	KeySemicolon:       "Semicolon",
	KeyApostrophe:      "Apostrophe",
	KeyGrave:           "Grave",
	KeyComma:           "Comma",
	KeyPeriod:          "Period",
	KeySlash:           "Slash",
	KeyInsert:          "Insert",
	KeyDelete:          "Delete",
	KeyHome:            "Home",
	KeyEnd:             "End",
	KeyPageUp:          "PageUp",
	KeyPageDown:        "PageDown",
	KeyUp:              "Up",
	KeyDown:            "Down",
	KeyLeft:            "Left",
	KeyRight:           "Right",
	KeyNumLock:         "NumLock",
	KeyScrollLock:      "ScrollLock",
	KeyPrintScreen:     "PrintScreen",
	KeyPause:           "Pause",
	KeyMenu:            "Menu",
	KeyKP0:             "Keypad0",
	KeyKP1:             "Keypad1",
	KeyKP2:             "Keypad2",
	KeyKP3:             "Keypad3",
	KeyKP4:             "Keypad4",
	KeyKP5:             "Keypad5",
	KeyKP6:             "Keypad6",
	KeyKP7:             "Keypad7",
	KeyKP8:             "Keypad8",
	KeyKP9:             "Keypad9",
	KeyKPDivide:        "KeypadDivide",
	KeyKPMultiply:      "KeypadMultiply",
	KeyKPMinus:         "KeypadMinus",
	KeyKPPlus:          "KeypadPlus",
	KeyKPEnter:         "KeypadEnter",
	KeyKPPeriod:        "KeypadPeriod",
	MouseLeft:          "MouseLeft",
	MouseMiddle:        "MouseMiddle",
	MouseRight:         "MouseRight",
	MouseX1:            "MouseX1",
	MouseX2:            "MouseX2",
	PadA:               "PadA",
	PadB:               "PadB",
	PadX:               "PadX",
	PadY:               "PadY",
	PadLeftShoulder:    "PadLeftShoulder",
	PadRightShoulder:   "PadRightShoulder",
	PadBack:            "PadBack",
	PadStart:           "PadStart",
	PadGuide:           "PadGuide",
	PadLeftStick:       "PadLeftStick",
	PadRightStick:      "PadRightStick",
	PadUp:              "PadUp",
	PadDown:            "PadDown",
	PadLeft:            "PadLeft",
	PadRight:           "PadRight",
	PadLeftTrigger:     "PadLeftTrigger",
	PadRightTrigger:    "PadRightTrigger",
	PadLeftStickUp:     "PadLeftStickUp",
	PadLeftStickDown:   "PadLeftStickDown",
	PadLeftStickLeft:   "PadLeftStickLeft",
	PadLeftStickRight:  "PadLeftStickRight",
	PadRightStickUp:    "PadRightStickUp",
	PadRightStickDown:  "PadRightStickDown",
	PadRightStickLeft:  "PadRightStickLeft",
	PadRightStickRight: "PadRightStickRight",
	ButtonAny:          "any",
}

func (b PhysicalButton) String() string {
	if b >= 0 && b < numButtons {
		return buttonNames[b]
	}
	return fmt.Sprintf("button(%d)", int(b))
}

var stickNames = [numSticks]string{
	StickNone:         "none",
	StickLeftX:        "LeftX",
	StickLeftY:        "LeftY",
	StickRightX:       "RightX",
	StickRightY:       "RightY",
	StickLeftTrigger:  "LeftTrigger",
	StickRightTrigger: "RightTrigger",
	StickDpadX:        "DpadX",
	StickDpadY:        "DpadY",
}

func (s PhysicalStick) String() string {
	if s >= 0 && s < numSticks {
		return stickNames[s]
	}
	return fmt.Sprintf("stick(%d)", int(s))
}
