package temperhal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeResponse(hi, lo byte) []byte {
	resp := make([]byte, 256)
	resp[0] = hi
	resp[1] = lo
	return resp
}

func TestClassifyDeviceSupported(t *testing.T) {
	resp := typeResponse(0x58, 0x57)
	resp[2], resp[3], resp[4], resp[5] = 1, 2, 3, 4
	resp[6] = 0x31

	info, err := classifyDevice(resp)
	require.NoError(t, err)

	assert.Equal(t, DeviceTEMPer1, info.Type)
	assert.Equal(t, [2][2]byte{{1, 2}, {3, 4}}, info.Calibration)
	assert.Equal(t, byte(0x31), info.Status)
}

func TestClassifyDeviceRecognizedButUnsupported(t *testing.T) {
	for _, devType := range []DeviceType{DeviceTEMPer1F, DeviceTEMPerHUM, DeviceTEMPer2, DeviceTEMPerNTC} {
		info, err := classifyDevice(typeResponse(byte(devType>>8), byte(devType)))
		assert.True(t, errors.Is(err, ErrorUnsupportedDevice), "type %s", devType)
		assert.Equal(t, devType, info.Type)
	}
}

func TestClassifyDeviceUnknownCode(t *testing.T) {
	_, err := classifyDevice(typeResponse(0xde, 0xad))
	assert.True(t, errors.Is(err, ErrorUnsupportedDevice))
	assert.Contains(t, err.Error(), "0xdead")
}

func TestDeviceTypeString(t *testing.T) {
	assert.Equal(t, "TEMPer1", DeviceTEMPer1.String())
	assert.Equal(t, "TEMPerHUM", DeviceTEMPerHUM.String())
	assert.Equal(t, "unknown (0x0102)", DeviceType(0x0102).String())
}

func TestDecodeTemperature(t *testing.T) {
	cases := []struct {
		hi, lo byte
		want   float64
	}{
		{25, 128, 25.5},
		{0, 0, 0},
		{255, 255, 255.99609375},
		{20, 64, 20.25},
		{1, 1, 1 + 1.0/256},
	}

	for _, c := range cases {
		resp := make([]byte, 256)
		resp[0], resp[1] = c.hi, c.lo
		assert.Equal(t, c.want, decodeTemperature(resp))
	}
}
