// Package input maps an open-ended set of physical controls onto a small,
// game-defined logical action space.
//
// The pieces line up as a pipeline: a platform layer feeds raw events to the
// Translator, which maintains the DeviceState through the active gamepad
// Profile; game code registers Bindings once (or again, for live remapping)
// and queries the Resolver every frame. Everything is single-threaded and
// poll-driven; the package does no locking and expects all mutation to happen
// inside the pump phase of one outer step.
package input
