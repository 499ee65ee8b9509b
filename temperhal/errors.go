package temperhal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrorDeviceNotFound    = errors.New("No matching device found")
	ErrorConfigFailed      = errors.New("Could not select device configuration")
	ErrorClaimFailed       = errors.New("Could not claim interface")
	ErrorShortWrite        = errors.New("Wrong number of bytes written")
	ErrorShortRead         = errors.New("Wrong number of bytes read")
	ErrorTimeout           = errors.New("The operation did not complete in time")
	ErrorUnsupportedDevice = errors.New("Unsupported device found")
)

// wrapTransport folds transport failures into the local taxonomy. Timeouts
// get their own sentinel so callers can tell a dead bus from a dead device.
func wrapTransport(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timed out") || strings.Contains(msg, "timeout") {
		return fmt.Errorf("%w: %v", ErrorTimeout, err)
	}

	return err
}
