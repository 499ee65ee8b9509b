// +build linux

package usbdev

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// rawDevice drives a hidraw node directly. The kernel already owns the
// interface when going through hidraw, so the detach/claim operations are
// no-ops here and only the report transfers do real work.
type rawDevice struct {
	dev *os.File
}

func openRawInternal(path string) (Device, error) {
	dev, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &rawDevice{
		dev: dev,
	}, nil
}

var ErrorTooLong = errors.New("Transfer is too long")
var ErrorBadRequest = errors.New("Request type not supported on hidraw")

/*
 HIDIOCSFEATURE(0) = C0004806
 HIDIOCGFEATURE(0) = C0004807
*/

const (
	hidIOCSFeature = 0xC0004806
	hidIOCGFeature = 0xC0004807

	requestTypeOut = 0x21
	requestTypeIn  = 0xa1
)

func (h *rawDevice) ControlTransfer(requestType byte, request byte, value uint16, index uint16, data []byte, timeout time.Duration) (int, error) {
	switch requestType {
	case requestTypeOut:
		return h.setReport(data)
	case requestTypeIn:
		return h.getReport(data)
	}
	return 0, ErrorBadRequest
}

func (h *rawDevice) setReport(b []byte) (int, error) {
	var tmp [1024]byte

	if len(b) > len(tmp) {
		return 0, ErrorTooLong
	}

	copy(tmp[:], b)

	_, _, errno := unix.Syscall(
		syscall.SYS_IOCTL,
		uintptr(h.dev.Fd()),
		uintptr(uint32(hidIOCSFeature)|uint32(len(b)<<16)),
		uintptr(unsafe.Pointer(&tmp)),
	)

	runtime.KeepAlive(tmp)

	if errno != 0 {
		return 0, os.NewSyscallError("SetReport", fmt.Errorf("%d", int(errno)))
	}

	return len(b), nil
}

func (h *rawDevice) getReport(b []byte) (int, error) {
	var tmp [256]byte

	if len(b) > len(tmp) {
		return 0, ErrorTooLong
	}

	_, _, errno := unix.Syscall(
		syscall.SYS_IOCTL,
		uintptr(h.dev.Fd()),
		uintptr(uint32(hidIOCGFeature)|uint32(len(b)<<16)),
		uintptr(unsafe.Pointer(&tmp)),
	)

	if errno != 0 {
		return 0, os.NewSyscallError("GetReport", fmt.Errorf("%d", int(errno)))
	}

	copy(b, tmp[:])

	return len(b), nil
}

func (h *rawDevice) SetConfiguration(config int) error {
	return nil
}

func (h *rawDevice) KernelDriverActive(iface int) (bool, error) {
	return false, nil
}

func (h *rawDevice) DetachKernelDriver(iface int) error {
	return nil
}

func (h *rawDevice) AttachKernelDriver(iface int) error {
	return nil
}

func (h *rawDevice) ClaimInterface(iface int) error {
	return nil
}

func (h *rawDevice) ReleaseInterface(iface int) error {
	return nil
}

func (h *rawDevice) Close() error {
	return h.dev.Close()
}
