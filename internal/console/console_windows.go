// Package console detects whether the process was started from a terminal or
// by double-click, so the daemon can decide between console logging and tray
// mode.
package console

import (
	"syscall"
	"unsafe"
)

var (
	kernel32                     = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleWindow         = kernel32.NewProc("GetConsoleWindow")
	procFreeConsole              = kernel32.NewProc("FreeConsole")
	procCreateToolhelp32Snapshot = kernel32.NewProc("CreateToolhelp32Snapshot")
	procProcess32First           = kernel32.NewProc("Process32FirstW")
	procProcess32Next            = kernel32.NewProc("Process32NextW")
)

const (
	th32csSnapProcess = 0x00000002
	maxPath           = 260
)

type processEntry32 struct {
	Size            uint32
	CntUsage        uint32
	ProcessID       uint32
	DefaultHeapID   uintptr
	ModuleID        uint32
	CntThreads      uint32
	ParentProcessID uint32
	PriClassBase    int32
	Flags           uint32
	ExeFile         [maxPath]uint16
}

// IsRunningFromConsole reports whether the process was launched from a
// terminal. A console-mode build double-clicked from Explorer gets its
// auto-created console freed so no empty window lingers.
func IsRunningFromConsole() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return false
	}
	if parentIsExplorer() {
		procFreeConsole.Call()
		return false
	}
	return true
}

// parentIsExplorer walks the process snapshot looking for our parent's exe
// name.
func parentIsExplorer() bool {
	snapshot, _, _ := procCreateToolhelp32Snapshot.Call(th32csSnapProcess, 0)
	if snapshot == uintptr(syscall.InvalidHandle) {
		return false
	}
	defer syscall.CloseHandle(syscall.Handle(snapshot))

	pid := uint32(syscall.Getpid())
	var parentPID uint32

	var entry processEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	ret, _, _ := procProcess32First.Call(snapshot, uintptr(unsafe.Pointer(&entry)))
	for ret != 0 {
		if entry.ProcessID == pid {
			parentPID = entry.ParentProcessID
			break
		}
		ret, _, _ = procProcess32Next.Call(snapshot, uintptr(unsafe.Pointer(&entry)))
	}
	if parentPID == 0 {
		return false
	}

	entry.Size = uint32(unsafe.Sizeof(entry))
	ret, _, _ = procProcess32First.Call(snapshot, uintptr(unsafe.Pointer(&entry)))
	for ret != 0 {
		if entry.ProcessID == parentPID {
			return syscall.UTF16ToString(entry.ExeFile[:]) == "explorer.exe"
		}
		ret, _, _ = procProcess32Next.Call(snapshot, uintptr(unsafe.Pointer(&entry)))
	}
	return false
}
