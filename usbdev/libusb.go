package usbdev

import (
	"os"
	"time"

	"github.com/gotmc/libusb/v2"
)

type libusbDevice struct {
	ctx    *libusb.Context
	handle *libusb.DeviceHandle
}

func openLibusb(vid uint16, pid uint16) (Device, error) {
	ctx, err := libusb.NewContext()
	if err != nil {
		return nil, err
	}

	devs, err := ctx.DeviceList()
	if err != nil {
		ctx.Close()
		return nil, err
	}

	ids := make([]DeviceID, 0, len(devs))
	for _, dev := range devs {
		desc, err := dev.DeviceDescriptor()
		if err != nil {
			ctx.Close()
			return nil, err
		}
		ids = append(ids, DeviceID{
			Vendor:  desc.VendorID,
			Product: desc.ProductID,
		})
	}

	match := FirstMatch(ids, vid, pid)
	if match < 0 {
		ctx.Close()
		return nil, os.ErrNotExist
	}

	handle, err := devs[match].Open()
	if err != nil {
		ctx.Close()
		return nil, err
	}

	return &libusbDevice{
		ctx:    ctx,
		handle: handle,
	}, nil
}

func (d *libusbDevice) ControlTransfer(requestType byte, request byte, value uint16, index uint16, data []byte, timeout time.Duration) (int, error) {
	return d.handle.ControlTransfer(requestType, request, value, index, data, len(data), int(timeout/time.Millisecond))
}

func (d *libusbDevice) SetConfiguration(config int) error {
	return d.handle.SetConfiguration(config)
}

func (d *libusbDevice) KernelDriverActive(iface int) (bool, error) {
	return d.handle.KernelDriverActive(iface)
}

func (d *libusbDevice) DetachKernelDriver(iface int) error {
	return d.handle.DetachKernelDriver(iface)
}

func (d *libusbDevice) AttachKernelDriver(iface int) error {
	return d.handle.AttachKernelDriver(iface)
}

func (d *libusbDevice) ClaimInterface(iface int) error {
	return d.handle.ClaimInterface(iface)
}

func (d *libusbDevice) ReleaseInterface(iface int) error {
	return d.handle.ReleaseInterface(iface)
}

func (d *libusbDevice) Close() error {
	err := d.handle.Close()
	if err2 := d.ctx.Close(); err == nil {
		err = err2
	}
	return err
}
