// Package device finds a gamepad among a bounded set of candidate device
// nodes, binds it to a profile by its reported identification string, and
// recovers by rediscovery when it disappears.
package device

import (
	"errors"

	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/input"
)

// NumCandidates is how many device ordinals discovery probes, in order,
// before giving up.
const NumCandidates = 10

// ErrNoData is the transient read result: nothing was buffered, or the read
// was interrupted. It ends the current pump cycle and means nothing more.
// Any other read error is treated as a disconnect.
var ErrNoData = errors.New("device: no event ready")

// Port is one open gamepad device handle. Reads must never block: a port
// either has a buffered event or returns ErrNoData immediately.
type Port interface {
	// ReadEvent returns the next buffered raw event, ErrNoData when none is
	// ready, or a real error when the device is gone.
	ReadEvent() (input.Event, error)
	Close() error
}

// Opener probes one candidate ordinal. On success it returns the open port
// and the identification string the device reports about itself.
type Opener interface {
	Open(ordinal int) (Port, string, error)
}
