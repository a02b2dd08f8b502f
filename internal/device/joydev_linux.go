//go:build linux

package device

import (
	"encoding/binary"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/input"
)

// Linux joystick interface: /dev/input/jsN nodes delivering fixed 8-byte
// event records, with the device name readable through JSIOCGNAME.

const jsEventSize = 8

const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80
)

// JoydevOpener probes /dev/input/jsN nodes. Dir exists so tests and unusual
// setups can point it elsewhere.
type JoydevOpener struct {
	Dir string
}

// NewOpener returns the platform's default opener.
func NewOpener(dir string) Opener {
	if dir == "" {
		dir = "/dev/input"
	}
	return &JoydevOpener{Dir: dir}
}

// Open implements Opener: non-blocking open of jsN plus the name ioctl.
func (o *JoydevOpener) Open(ordinal int) (Port, string, error) {
	path := filepath.Join(o.Dir, fmt.Sprintf("js%d", ordinal))
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, "", err
	}
	name, err := joydevName(fd)
	if err != nil {
		unix.Close(fd)
		return nil, "", err
	}
	return &joydevPort{fd: fd, path: path}, name, nil
}

// jsiocgname builds the JSIOCGNAME(len) ioctl request: a read ioctl in
// group 'j', number 0x13.
func jsiocgname(n int) uintptr {
	const iocRead = uintptr(2)
	return iocRead<<30 | uintptr(n)<<16 | 'j'<<8 | 0x13
}

func joydevName(fd int) (string, error) {
	var buf [128]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), jsiocgname(len(buf)), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	name := string(buf[:])
	if i := strings.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return name, nil
}

type joydevPort struct {
	fd   int
	path string
	buf  [jsEventSize]byte
}

func (p *joydevPort) ReadEvent() (input.Event, error) {
	for {
		n, err := unix.Read(p.fd, p.buf[:])
		switch {
		case err == unix.EAGAIN || err == unix.EINTR:
			return nil, ErrNoData
		case err != nil:
			return nil, err
		case n == 0:
			return nil, io.EOF
		case n < jsEventSize:
			return nil, io.ErrUnexpectedEOF
		}

		// record layout: u32 time, s16 value, u8 type, u8 number. The init
		// flag marks the synthetic events sent right after open; they carry
		// real current state, so only the flag is stripped.
		value := int(int16(binary.LittleEndian.Uint16(p.buf[4:6])))
		typ := p.buf[6] &^ jsEventInit
		num := int(p.buf[7])

		switch typ {
		case jsEventButton:
			return input.PadButtonEvent{Index: num, Down: value != 0}, nil
		case jsEventAxis:
			return input.PadAxisEvent{Index: num, Value: value}, nil
		}
		// unknown record type: keep draining
	}
}

func (p *joydevPort) Close() error {
	return unix.Close(p.fd)
}
