// Package uinput registers a virtual keyboard with the kernel and injects
// key events into it.
package uinput

import (
	"encoding/binary"
	"fmt"
	"os"
	"syscall"
	"time"
	"unsafe"

	"github.com/racerxr650r/serkey/internal/keymap"
	"github.com/racerxr650r/serkey/internal/logger"
)

// uinput ioctl requests and event types
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiDevSetup   = 0x405c5503
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565

	evSyn = 0x00
	evKey = 0x01

	synReport = 0

	busUSB = 0x03
)

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type uinputSetup struct {
	ID           inputID
	Name         [80]byte
	FFEffectsMax uint32
}

type inputEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Keyboard is a virtual keyboard device backed by /dev/uinput. It implements
// emitter.Sink.
type Keyboard struct {
	fd *os.File
}

// Open creates and registers a virtual keyboard able to report the given
// keycodes.
func Open(name string, codes []keymap.Code) (*Keyboard, error) {
	f, err := os.OpenFile("/dev/uinput", os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open /dev/uinput (check permissions, or modprobe uinput): %w", err)
	}
	k := &Keyboard{fd: f}

	if err := k.ioctl(uiSetEvBit, evKey); err != nil {
		k.fd.Close()
		return nil, fmt.Errorf("ioctl UI_SET_EVBIT failed: %w", err)
	}
	for _, code := range codes {
		if err := k.ioctl(uiSetKeyBit, uintptr(code)); err != nil {
			k.fd.Close()
			return nil, fmt.Errorf("ioctl UI_SET_KEYBIT %d failed: %w", code, err)
		}
	}

	var setup uinputSetup
	setup.ID = inputID{Bustype: busUSB, Vendor: 0x1234, Product: 0x5678}
	copy(setup.Name[:], name)
	if err := k.ioctlPtr(uiDevSetup, unsafe.Pointer(&setup)); err != nil {
		k.fd.Close()
		return nil, fmt.Errorf("ioctl UI_DEV_SETUP failed: %w", err)
	}

	if err := k.ioctl(uiDevCreate, 0); err != nil {
		k.fd.Close()
		return nil, fmt.Errorf("ioctl UI_DEV_CREATE failed: %w", err)
	}

	// Give the input subsystem time to pick up the new device before events
	// start flowing.
	time.Sleep(time.Second)

	logger.Debugf("Registered virtual keyboard %q with %d keycodes", name, len(codes))
	return k, nil
}

// Press reports a key down event followed by a sync report.
func (k *Keyboard) Press(code keymap.Code) error {
	return k.writeKey(code, 1)
}

// Release reports a key up event followed by a sync report.
func (k *Keyboard) Release(code keymap.Code) error {
	return k.writeKey(code, 0)
}

// Close destroys the virtual device. The pause gives userspace a chance to
// read pending events before the device disappears.
func (k *Keyboard) Close() error {
	if k.fd == nil {
		return nil
	}
	time.Sleep(time.Second)
	_ = k.ioctl(uiDevDestroy, 0)
	err := k.fd.Close()
	k.fd = nil
	return err
}

func (k *Keyboard) writeKey(code keymap.Code, value int32) error {
	if err := k.writeEvent(evKey, uint16(code), value); err != nil {
		return fmt.Errorf("failed to write key event: %w", err)
	}
	if err := k.writeEvent(evSyn, synReport, 0); err != nil {
		return fmt.Errorf("failed to write sync report: %w", err)
	}
	return nil
}

func (k *Keyboard) writeEvent(typ, code uint16, value int32) error {
	ev := inputEvent{
		Time:  syscall.Timeval{Sec: 0, Usec: 0},
		Type:  typ,
		Code:  code,
		Value: value,
	}
	return binary.Write(k.fd, binary.LittleEndian, &ev)
}

func (k *Keyboard) ioctl(request uintptr, arg uintptr) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, k.fd.Fd(), request, arg)
	if errno != 0 {
		return errno
	}
	return nil
}

func (k *Keyboard) ioctlPtr(request uintptr, arg unsafe.Pointer) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, k.fd.Fd(), request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
