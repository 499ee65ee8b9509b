package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/relavak/temper-tools/temperhal"
	"github.com/relavak/temper-tools/usbdev"
)

func OpenDevice() (usbdev.Device, error) {
	if CLI.RawPath != "" {
		return usbdev.OpenRaw(CLI.RawPath)
	}

	dev, err := usbdev.Open(uint16(CLI.VID), uint16(CLI.PID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %04x:%04x", temperhal.ErrorDeviceNotFound, CLI.VID, CLI.PID)
	}

	return dev, err
}
