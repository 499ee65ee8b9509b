package temperhal

import (
	"fmt"

	"github.com/relavak/temper-tools/usbdev"
)

// kernelDriverGuard detaches the kernel HID driver from one interface and
// puts it back on Close. If no driver was bound, both ends are no-ops.
// Close never returns an error: it may run while unwinding another failure,
// so problems are reported through the log and swallowed.
type kernelDriverGuard struct {
	dev      usbdev.Device
	iface    int
	detached bool
	logFunc  LogFunc
}

func acquireKernelDriver(dev usbdev.Device, iface int, logFunc LogFunc) (*kernelDriverGuard, error) {
	active, err := dev.KernelDriverActive(iface)
	if err != nil {
		return nil, wrapTransport(err)
	}

	if active {
		if err := dev.DetachKernelDriver(iface); err != nil {
			return nil, wrapTransport(err)
		}
	}

	return &kernelDriverGuard{
		dev:      dev,
		iface:    iface,
		detached: active,
		logFunc:  logFunc,
	}, nil
}

func (g *kernelDriverGuard) Close() {
	if !g.detached {
		return
	}
	g.detached = false

	if err := g.dev.AttachKernelDriver(g.iface); err != nil && g.logFunc != nil {
		g.logFunc(1, "Failed to reattach kernel driver to interface %d: %v", g.iface, err)
	}
}

// interfaceGuard holds an exclusive claim on one interface. It references
// the device handle but does not own it.
type interfaceGuard struct {
	dev     usbdev.Device
	iface   int
	logFunc LogFunc
}

func claimInterface(dev usbdev.Device, iface int, logFunc LogFunc) (*interfaceGuard, error) {
	if err := dev.ClaimInterface(iface); err != nil {
		return nil, fmt.Errorf("%w: interface %d: %v", ErrorClaimFailed, iface, err)
	}

	return &interfaceGuard{
		dev:     dev,
		iface:   iface,
		logFunc: logFunc,
	}, nil
}

func (g *interfaceGuard) Close() {
	if err := g.dev.ReleaseInterface(g.iface); err != nil && g.logFunc != nil {
		g.logFunc(1, "Failed to release interface %d: %v", g.iface, err)
	}
}
