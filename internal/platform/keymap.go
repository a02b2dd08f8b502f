package platform

import (
	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/input"
)

// scancodeTable is the static reverse lookup from SDL scancodes to physical
// symbols. Scancodes absent here are ignored by the translator.
var scancodeTable = map[uint32]input.PhysicalButton{
	uint32(sdl.ScancodeA): input.KeyA,
	uint32(sdl.ScancodeB): input.KeyB,
	uint32(sdl.ScancodeC): input.KeyC,
	uint32(sdl.ScancodeD): input.KeyD,
	uint32(sdl.ScancodeE): input.KeyE,
	uint32(sdl.ScancodeF): input.KeyF,
	uint32(sdl.ScancodeG): input.KeyG,
	uint32(sdl.ScancodeH): input.KeyH,
	uint32(sdl.ScancodeI): input.KeyI,
	uint32(sdl.ScancodeJ): input.KeyJ,
	uint32(sdl.ScancodeK): input.KeyK,
	uint32(sdl.ScancodeL): input.KeyL,
	uint32(sdl.ScancodeM): input.KeyM,
	uint32(sdl.ScancodeN): input.KeyN,
	uint32(sdl.ScancodeO): input.KeyO,
	uint32(sdl.ScancodeP): input.KeyP,
	uint32(sdl.ScancodeQ): input.KeyQ,
	uint32(sdl.ScancodeR): input.KeyR,
	uint32(sdl.ScancodeS): input.KeyS,
	uint32(sdl.ScancodeT): input.KeyT,
	uint32(sdl.ScancodeU): input.KeyU,
	uint32(sdl.ScancodeV): input.KeyV,
	uint32(sdl.ScancodeW): input.KeyW,
	uint32(sdl.ScancodeX): input.KeyX,
	uint32(sdl.ScancodeY): input.KeyY,
	uint32(sdl.ScancodeZ): input.KeyZ,

	uint32(sdl.Scancode0): input.Key0,
	uint32(sdl.Scancode1): input.Key1,
	uint32(sdl.Scancode2): input.Key2,
	uint32(sdl.Scancode3): input.Key3,
	uint32(sdl.Scancode4): input.Key4,
	uint32(sdl.Scancode5): input.Key5,
	uint32(sdl.Scancode6): input.Key6,
	uint32(sdl.Scancode7): input.Key7,
	uint32(sdl.Scancode8): input.Key8,
	uint32(sdl.Scancode9): input.Key9,

	uint32(sdl.ScancodeF1):  input.KeyF1,
	uint32(sdl.ScancodeF2):  input.KeyF2,
	uint32(sdl.ScancodeF3):  input.KeyF3,
	uint32(sdl.ScancodeF4):  input.KeyF4,
	uint32(sdl.ScancodeF5):  input.KeyF5,
	uint32(sdl.ScancodeF6):  input.KeyF6,
	uint32(sdl.ScancodeF7):  input.KeyF7,
	uint32(sdl.ScancodeF8):  input.KeyF8,
	uint32(sdl.ScancodeF9):  input.KeyF9,
	uint32(sdl.ScancodeF10): input.KeyF10,
	uint32(sdl.ScancodeF11): input.KeyF11,
	uint32(sdl.ScancodeF12): input.KeyF12,

	uint32(sdl.ScancodeEscape):       input.KeyEscape,
	uint32(sdl.ScancodeTab):          input.KeyTab,
	uint32(sdl.ScancodeCapsLock):     input.KeyCapsLock,
	uint32(sdl.ScancodeLShift):       input.KeyLeftShift,
	uint32(sdl.ScancodeRShift):       input.KeyRightShift,
	uint32(sdl.ScancodeLCtrl):        input.KeyLeftControl,
	uint32(sdl.ScancodeRCtrl):        input.KeyRightControl,
	uint32(sdl.ScancodeLAlt):         input.KeyLeftAlt,
	uint32(sdl.ScancodeRAlt):         input.KeyRightAlt,
	uint32(sdl.ScancodeLGui):         input.KeyLeftSuper,
	uint32(sdl.ScancodeRGui):         input.KeyRightSuper,
	uint32(sdl.ScancodeSpace):        input.KeySpace,
	uint32(sdl.ScancodeReturn):       input.KeyEnter,
	uint32(sdl.ScancodeBackspace):    input.KeyBackspace,
	uint32(sdl.ScancodeMinus):        input.KeyMinus,
	uint32(sdl.ScancodeEquals):       input.KeyEquals,
	uint32(sdl.ScancodeLeftBracket):  input.KeyLeftBracket,
	uint32(sdl.ScancodeRightBracket): input.KeyRightBracket,
	uint32(sdl.ScancodeBackslash):    input.KeyBackslash,
	uint32(sdl.ScancodeSemicolon):    input.KeySemicolon,
	uint32(sdl.ScancodeApostrophe):   input.KeyApostrophe,
	uint32(sdl.ScancodeGrave):        input.KeyGrave,
	uint32(sdl.ScancodeComma):        input.KeyComma,
	uint32(sdl.ScancodePeriod):       input.KeyPeriod,
	uint32(sdl.ScancodeSlash):        input.KeySlash,

	uint32(sdl.ScancodeInsert):   input.KeyInsert,
	uint32(sdl.ScancodeDelete):   input.KeyDelete,
	uint32(sdl.ScancodeHome):     input.KeyHome,
	uint32(sdl.ScancodeEnd):      input.KeyEnd,
	uint32(sdl.ScancodePageUp):   input.KeyPageUp,
	uint32(sdl.ScancodePageDown): input.KeyPageDown,

	uint32(sdl.ScancodeUp):    input.KeyUp,
	uint32(sdl.ScancodeDown):  input.KeyDown,
	uint32(sdl.ScancodeLeft):  input.KeyLeft,
	uint32(sdl.ScancodeRight): input.KeyRight,

	uint32(sdl.ScancodeNumLockClear): input.KeyNumLock,
	uint32(sdl.ScancodeScrollLock):   input.KeyScrollLock,
	uint32(sdl.ScancodePrintScreen):  input.KeyPrintScreen,
	uint32(sdl.ScancodePause):        input.KeyPause,
	uint32(sdl.ScancodeApplication):  input.KeyMenu,

	uint32(sdl.ScancodeKp0):        input.KeyKP0,
	uint32(sdl.ScancodeKp1):        input.KeyKP1,
	uint32(sdl.ScancodeKp2):        input.KeyKP2,
	uint32(sdl.ScancodeKp3):        input.KeyKP3,
	uint32(sdl.ScancodeKp4):        input.KeyKP4,
	uint32(sdl.ScancodeKp5):        input.KeyKP5,
	uint32(sdl.ScancodeKp6):        input.KeyKP6,
	uint32(sdl.ScancodeKp7):        input.KeyKP7,
	uint32(sdl.ScancodeKp8):        input.KeyKP8,
	uint32(sdl.ScancodeKp9):        input.KeyKP9,
	uint32(sdl.ScancodeKpDivide):   input.KeyKPDivide,
	uint32(sdl.ScancodeKpMultiply): input.KeyKPMultiply,
	uint32(sdl.ScancodeKpMinus):    input.KeyKPMinus,
	uint32(sdl.ScancodeKpPlus):     input.KeyKPPlus,
	uint32(sdl.ScancodeKpEnter):    input.KeyKPEnter,
	uint32(sdl.ScancodeKpPeriod):   input.KeyKPPeriod,
}

// KeyTable returns the scancode reverse lookup for the translator.
func KeyTable() map[uint32]input.PhysicalButton {
	return scancodeTable
}
