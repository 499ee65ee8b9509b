// +build !linux

package usbdev

import "errors"

func openRawInternal(path string) (Device, error) {
	return nil, errors.New("Raw hidraw access is only supported on linux")
}
