package device

import (
	"errors"
	"log"

	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/input"
)

// Manager owns the active gamepad selection. It is either unbound or bound
// to exactly one (profile, port) pair; discovery is the only thing that
// moves it between the two.
//
// Like the rest of the shim it is single-threaded: Rescan and Pump are
// called from the pump phase of the outer step, nothing else runs meanwhile.
type Manager struct {
	opener  Opener
	tr      *input.Translator
	state   *input.DeviceState
	port    Port
	profile *input.Profile
	ordinal int
}

// NewManager returns an unbound manager probing through opener and feeding
// translated events into tr's device state.
func NewManager(opener Opener, tr *input.Translator, state *input.DeviceState) *Manager {
	return &Manager{opener: opener, tr: tr, state: state, ordinal: -1}
}

// Active returns the bound profile, or nil.
func (m *Manager) Active() *input.Profile {
	return m.profile
}

// Bound reports whether a gamepad is currently selected.
func (m *Manager) Bound() bool {
	return m.port != nil
}

// Rescan runs full discovery: probe candidate ordinals in order, bind the
// first device whose identification string exactly matches a known profile,
// and stop there. Any previous binding is dropped first. Returns false when
// no candidate opens and matches; the caller may simply try again on a later
// cycle.
func (m *Manager) Rescan() bool {
	m.unbind()

	for i := 0; i < NumCandidates; i++ {
		port, ident, err := m.opener.Open(i)
		if err != nil {
			continue
		}
		p := input.FindProfile(ident)
		if p == nil {
			log.Printf("device: candidate %d is %q, no profile", i, ident)
			port.Close()
			continue
		}

		m.port = port
		m.profile = p
		m.ordinal = i
		m.tr.SetProfile(p)
		for _, a := range p.Axes {
			if a.Stick != input.StickNone {
				m.state.SetStickRange(a.Stick, a.Min, a.Max)
			}
		}
		log.Printf("device: bound candidate %d as %s (%q)", i, p.Display, ident)
		return true
	}
	return false
}

// Pump drains every buffered event from the bound port into the translator.
// It never blocks: the cycle ends at the first not-ready read. A read error
// that is not ErrNoData is a disconnect — the port is closed and full
// discovery reruns immediately, which may rebind the same device, a
// different one, or none.
func (m *Manager) Pump() {
	if m.port == nil {
		return
	}
	for {
		ev, err := m.port.ReadEvent()
		if err != nil {
			if errors.Is(err, ErrNoData) {
				return
			}
			log.Printf("device: read failed on candidate %d (%v), rediscovering", m.ordinal, err)
			m.Rescan()
			return
		}
		m.tr.Translate(ev)
	}
}

// Close drops any binding. Used at shutdown.
func (m *Manager) Close() {
	m.unbind()
}

func (m *Manager) unbind() {
	if m.port != nil {
		m.port.Close()
		m.port = nil
	}
	if m.profile != nil {
		m.profile = nil
		m.tr.SetProfile(nil)
		m.state.ClearPad()
	}
	m.ordinal = -1
}
