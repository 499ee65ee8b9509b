package usbdev

import "time"

// Device is the transport surface the HAL talks through. It is the subset of
// libusb this program actually needs, so alternative backends (hidraw) and
// test fakes can stand in for a real handle.
type Device interface {
	ControlTransfer(requestType byte, request byte, value uint16, index uint16, data []byte, timeout time.Duration) (int, error)
	SetConfiguration(config int) error

	KernelDriverActive(iface int) (bool, error)
	DetachKernelDriver(iface int) error
	AttachKernelDriver(iface int) error

	ClaimInterface(iface int) error
	ReleaseInterface(iface int) error

	Close() error
}

func Open(vid uint16, pid uint16) (Device, error) {
	return openLibusb(vid, pid)
}

func OpenRaw(path string) (Device, error) {
	return openRawInternal(path)
}
