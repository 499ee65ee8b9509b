package temperhal

import "fmt"

// DeviceType is the 16-bit family code a TEMPer-class device reports in the
// first two bytes of its type-query response, high byte first as sent on the
// wire.
type DeviceType uint16

const (
	DeviceTEMPer1   DeviceType = 0x5857
	DeviceTEMPer1F  DeviceType = 0x5957
	DeviceTEMPerHUM DeviceType = 0x5A53
	DeviceTEMPer2   DeviceType = 0x5A57
	DeviceTEMPerNTC DeviceType = 0x5B57
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTEMPer1:
		return "TEMPer1"
	case DeviceTEMPer1F:
		return "TEMPer1F"
	case DeviceTEMPerHUM:
		return "TEMPerHUM"
	case DeviceTEMPer2:
		return "TEMPer2"
	case DeviceTEMPerNTC:
		return "TEMPerNTC"
	}
	return fmt.Sprintf("unknown (0x%04x)", uint16(t))
}

// Supported reports whether this implementation can decode readings from the
// family. Only the calibrated TEMPer1 is handled; the other known families
// use different sensors and coefficients.
func (t DeviceType) Supported() bool {
	return t == DeviceTEMPer1
}

// DeviceInfo is the decoded header of a type-query response.
type DeviceInfo struct {
	Type        DeviceType
	Calibration [2][2]byte
	Status      byte
}

// classifyDevice decodes the leading six bytes of a type-query response
// field by field. Offsets are fixed by the device firmware, so no struct
// overlay is used.
func classifyDevice(resp []byte) (DeviceInfo, error) {
	info := DeviceInfo{
		Type: DeviceType(uint16(resp[0])<<8 | uint16(resp[1])),
		Calibration: [2][2]byte{
			{resp[2], resp[3]},
			{resp[4], resp[5]},
		},
		Status: resp[6],
	}

	if !info.Type.Supported() {
		return info, fmt.Errorf("%w: %s", ErrorUnsupportedDevice, info.Type)
	}

	return info, nil
}

// decodeTemperature converts a sensor-read response into degrees. The device
// reports an integer part and a 1/256 fractional part in the first two
// bytes. Some drivers instead compute hi*100 + (lo>>4)*25/4 hundredths; that
// formula is deliberately not used here.
func decodeTemperature(resp []byte) float64 {
	return float64(resp[0]) + float64(resp[1])/256
}
