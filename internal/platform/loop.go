// Package platform runs the outer pump: window events and joystick events
// drained into the input context once per cycle, strictly before anything
// reads the resolved state.
package platform

import (
	"context"
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/device"
	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/input"
)

// rediscoverEvery is how many empty-handed cycles pass between discovery
// retries while no gamepad is bound.
const rediscoverEvery = 120

// Action names a logical handle so the overlay can show it.
type Action struct {
	Name   string
	Handle int
}

// Loop owns one complete input context and pumps it at a fixed rate on a
// locked OS thread. Everything inside the context is single-threaded by
// construction; the only cross-thread surfaces are the snapshot channel and
// the capture flag.
type Loop struct {
	State      *input.DeviceState
	Bindings   *input.Bindings
	Translator *input.Translator
	Resolver   *input.Resolver
	Manager    *device.Manager

	// Headless skips SDL entirely: no window, keyboard or mouse; the
	// joystick side still runs.
	Headless bool
	Title    string
	Interval time.Duration

	buttons []Action
	sticks  []Action

	capture   atomic.Bool
	capturing bool // pump thread only
	changes   chan input.Snapshot
	prev      input.Snapshot
	window    *sdl.Window
}

// NewLoop wires a fresh input context around the given opener.
func NewLoop(opener device.Opener) *Loop {
	state := input.NewDeviceState()
	bindings := &input.Bindings{}
	tr := input.NewTranslator(state, KeyTable())
	mgr := device.NewManager(opener, tr, state)
	res := input.NewResolver(bindings, state, mgr.Active)

	return &Loop{
		State:      state,
		Bindings:   bindings,
		Translator: tr,
		Resolver:   res,
		Manager:    mgr,
		Title:      "input shim",
		Interval:   16 * time.Millisecond,
		changes:    make(chan input.Snapshot, 64),
	}
}

// WatchButton registers the handle with the overlay under name.
func (l *Loop) WatchButton(name string, handle int) {
	l.buttons = append(l.buttons, Action{Name: name, Handle: handle})
}

// WatchStick registers the stick handle with the overlay under name.
func (l *Loop) WatchStick(name string, handle int) {
	l.sticks = append(l.sticks, Action{Name: name, Handle: handle})
}

// Changes returns the channel snapshots are sent on. Sends never block; a
// slow consumer just misses frames.
func (l *Loop) Changes() <-chan input.Snapshot {
	return l.changes
}

// ArmCapture makes a later pump cycle report the next drained press in the
// snapshot's Captured field. Safe to call from any goroutine; used by the
// overlay's live-remap flow. Only the flag is touched here: the last-pressed
// slot belongs to the pump thread, which drains the stale entry itself on the
// first cycle after arming.
func (l *Loop) ArmCapture() {
	l.capture.Store(true)
}

// Run pumps until the context is cancelled or the window is closed. Must own
// its OS thread for SDL's sake, so it locks it.
func (l *Loop) Run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if !l.Headless {
		if !sdl.Init(sdl.InitVideo) {
			log.Printf("platform: SDL init failed (%s), continuing headless", sdl.GetError())
			l.Headless = true
		} else {
			defer sdl.Quit()
			l.window = sdl.CreateWindow(l.Title, 640, 400, 0)
			if l.window == nil {
				log.Printf("platform: window creation failed (%s), continuing headless", sdl.GetError())
				l.Headless = true
			} else {
				defer sdl.DestroyWindow(l.window)
			}
		}
	}

	if !l.Manager.Rescan() {
		log.Println("platform: no gamepad found, keyboard and mouse only")
	}
	defer l.Manager.Close()

	cycle := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !l.Headless && !l.pumpWindow() {
			return
		}
		if !l.Manager.Bound() && cycle%rediscoverEvery == 0 {
			l.Manager.Rescan()
		}
		l.Manager.Pump()
		l.emit()

		cycle++
		time.Sleep(l.Interval)
	}
}

// pumpWindow drains buffered SDL events into the translator. Returns false
// on a quit request.
func (l *Loop) pumpWindow() bool {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventQuit:
			return false

		case sdl.EventKeyDown:
			ke := event.Key()
			l.Translator.Translate(input.KeyEvent{Code: uint32(ke.Scancode), Down: true})

		case sdl.EventKeyUp:
			ke := event.Key()
			l.Translator.Translate(input.KeyEvent{Code: uint32(ke.Scancode), Down: false})

		case sdl.EventMouseButtonDown:
			me := event.Button()
			l.Translator.Translate(input.MouseButtonEvent{Button: int(me.Button), Down: true})

		case sdl.EventMouseButtonUp:
			me := event.Button()
			l.Translator.Translate(input.MouseButtonEvent{Button: int(me.Button), Down: false})
		}
	}
	return true
}

// emit builds this cycle's snapshot and sends it when it differs from the
// previous one.
func (l *Loop) emit() {
	cur := l.snapshot()
	delta := input.ComputeDelta(l.prev, cur)
	if delta.IsEmpty() {
		return
	}
	l.prev = cur

	select {
	case l.changes <- cur:
	default:
		// drop rather than stall the pump
	}
}

func (l *Loop) snapshot() input.Snapshot {
	s := input.Snapshot{Connected: l.Manager.Bound()}
	if p := l.Manager.Active(); p != nil {
		s.Model = p.Display
		s.Ident = p.Ident
	}

	for _, a := range l.buttons {
		r := input.ActionReading{Name: a.Name, Down: l.Resolver.IsDown(a.Handle)}
		if b := l.Resolver.PrimaryButton(a.Handle); b != input.ButtonNone {
			r.Hint = b.String()
		}
		s.Actions = append(s.Actions, r)
	}
	for _, a := range l.sticks {
		sample, ok := l.Resolver.StickPosition(a.Handle)
		s.Sticks = append(s.Sticks, input.StickSample{
			Name:     a.Name,
			Present:  ok,
			Position: sample.Position,
			Min:      sample.Min,
			Max:      sample.Max,
		})
	}

	if l.capture.Load() {
		if !l.capturing {
			// discard anything already sitting in the slot so a stale
			// press cannot masquerade as the capture
			l.State.DrainLastPressed()
			l.capturing = true
		} else if b := l.State.DrainLastPressed(); b != input.ButtonNone {
			s.Captured = b.String()
			l.capturing = false
			l.capture.Store(false)
		}
	}
	return s
}
