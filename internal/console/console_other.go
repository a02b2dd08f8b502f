//go:build !windows

// Package console detects whether the process was started from a terminal or
// by double-click, so the daemon can decide between console logging and tray
// mode. On non-Windows platforms there is nothing to detect.
package console

// IsRunningFromConsole returns true on non-Windows platforms as they always
// run in console mode.
func IsRunningFromConsole() bool {
	return true
}
