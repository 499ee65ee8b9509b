package temperhal

import (
	"encoding/hex"
	"fmt"
	"time"
)

// Wire protocol of the TEMPer HID bridge. Commands are 32-byte output
// reports, responses are 256-byte input reports, all on interface 1.
const (
	VendorID  = 0x1130
	ProductID = 0x660c

	setReportType  = 0x21
	setReport      = 0x09
	setReportValue = 0x0200

	getReportType  = 0xa1
	getReport      = 0x01
	getReportValue = 0x0300

	reportIndex = 0x0001

	commandLen  = 32
	responseLen = 256

	transferTimeout = 1000 * time.Millisecond

	// Command codes understood by the bridge.
	cmdQueryType byte = 0x52
	cmdReset     byte = 0x43
	cmdReadInner byte = 0x54
)

// The bridge multiplexes an I2C sensor behind HID. A transaction opens with
// the magic prologue (trailing 2 = command incoming), pads the bus with
// seven idle frames, and if data is wanted closes with the same magic
// carrying a 1.
var (
	framePrologue = [8]byte{0x0A, 0x0B, 0x0C, 0x0D, 0x00, 0x00, 0x02, 0x00}
	frameReadback = [8]byte{0x0A, 0x0B, 0x0C, 0x0D, 0x00, 0x00, 0x01, 0x00}
	framePadding  = [8]byte{}
)

const paddingFrames = 7

func (s *Session) send(frame [8]byte) error {
	var buf [commandLen]byte
	copy(buf[:], frame[:])

	if s.config.LogFunc != nil {
		s.config.LogFunc(3, "CmdOut:  %s", hex.EncodeToString(buf[:8]))
	}

	n, err := s.dev.ControlTransfer(setReportType, setReport, setReportValue, reportIndex, buf[:], transferTimeout)
	if err != nil {
		return wrapTransport(err)
	}
	if n != commandLen {
		return fmt.Errorf("%w: %d", ErrorShortWrite, n)
	}

	return nil
}

func (s *Session) receive() ([]byte, error) {
	buf := make([]byte, responseLen)

	n, err := s.dev.ControlTransfer(getReportType, getReport, getReportValue, reportIndex, buf, transferTimeout)
	if err != nil {
		return nil, wrapTransport(err)
	}
	if n < responseLen {
		return nil, fmt.Errorf("%w: %d", ErrorShortRead, n)
	}

	if s.config.LogFunc != nil {
		s.config.LogFunc(3, "CmdIn:   %s", hex.EncodeToString(buf[:8]))
	}

	return buf, nil
}

func (s *Session) sendCommandSequence(code byte) error {
	if err := s.send(framePrologue); err != nil {
		return err
	}

	cmd := [8]byte{code}
	if err := s.send(cmd); err != nil {
		return err
	}

	for i := 0; i < paddingFrames; i++ {
		if err := s.send(framePadding); err != nil {
			return err
		}
	}

	return nil
}

func (s *Session) readData(code byte) ([]byte, error) {
	if err := s.sendCommandSequence(code); err != nil {
		return nil, err
	}

	if err := s.send(frameReadback); err != nil {
		return nil, err
	}

	return s.receive()
}
