// Package temperhal drives a TEMPer-class USB HID thermometer: it claims
// the device's interfaces, runs the vendor handshake and decodes readings.
package temperhal

import (
	"fmt"

	"github.com/relavak/temper-tools/usbdev"
)

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	LogFunc LogFunc
}

// Session owns an open device handle for the duration of one run. The
// constructor walks the whole setup chain (configuration, driver detach,
// interface claims, type query, sensor reset); after that only reads remain.
type Session struct {
	dev    usbdev.Device
	config Config

	info DeviceInfo

	// Teardown stack, innermost acquisition last. Each entry swallows its
	// own failure so all of them always run.
	teardown []func()
}

func New(dev usbdev.Device, config Config) (*Session, error) {
	s := &Session{
		dev:    dev,
		config: config,
	}

	if err := dev.SetConfiguration(1); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorConfigFailed, err)
	}

	// The kernel driver must be off an interface before it can be claimed,
	// and must only come back after the claim is gone. The stack keeps that
	// pairing per interface.
	for iface := 0; iface <= 1; iface++ {
		kernel, err := acquireKernelDriver(dev, iface, config.LogFunc)
		if err != nil {
			s.unwind()
			return nil, err
		}
		s.teardown = append(s.teardown, kernel.Close)

		claim, err := claimInterface(dev, iface, config.LogFunc)
		if err != nil {
			s.unwind()
			return nil, err
		}
		s.teardown = append(s.teardown, claim.Close)
	}

	resp, err := s.readData(cmdQueryType)
	if err != nil {
		s.unwind()
		return nil, err
	}

	s.info, err = classifyDevice(resp)
	if err != nil {
		s.unwind()
		return nil, err
	}

	if s.config.LogFunc != nil {
		s.config.LogFunc(1, "Detected %s", s.info.Type)
	}

	// Calibration reset, fire and forget. Readings before this are junk.
	if err := s.Reset(); err != nil {
		s.unwind()
		return nil, err
	}

	return s, nil
}

func (s *Session) unwind() {
	for i := len(s.teardown) - 1; i >= 0; i-- {
		s.teardown[i]()
	}
	s.teardown = nil
}

// DeviceInfo returns the classification made during construction.
func (s *Session) DeviceInfo() DeviceInfo {
	return s.info
}

// Reset puts the sensor back into its calibrated mode. No response is read.
func (s *Session) Reset() error {
	return s.sendCommandSequence(cmdReset)
}

// RawReading performs an inner-sensor read and returns the full undecoded
// response buffer.
func (s *Session) RawReading() ([]byte, error) {
	return s.readData(cmdReadInner)
}

// Temperature performs an inner-sensor read and decodes it to degrees.
func (s *Session) Temperature() (float64, error) {
	resp, err := s.RawReading()
	if err != nil {
		return 0, err
	}

	return decodeTemperature(resp), nil
}

// Close releases the interfaces, reattaches kernel drivers in reverse
// acquisition order and closes the device handle.
func (s *Session) Close() error {
	s.unwind()
	return s.dev.Close()
}
