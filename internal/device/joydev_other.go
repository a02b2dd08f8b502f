//go:build !linux

package device

import "errors"

var errUnsupported = errors.New("device: no joystick driver for this platform")

type stubOpener struct{}

// NewOpener returns an opener whose probes always fail: on platforms without
// a joystick driver the manager simply never binds and the keyboard/mouse
// path carries the game.
func NewOpener(dir string) Opener {
	return stubOpener{}
}

func (stubOpener) Open(ordinal int) (Port, string, error) {
	return nil, "", errUnsupported
}
