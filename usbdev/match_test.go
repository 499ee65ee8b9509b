package usbdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstMatch(t *testing.T) {
	list := []DeviceID{
		{Vendor: 0x1d6b, Product: 0x0002},
		{Vendor: 0x1130, Product: 0x660c},
		{Vendor: 0x1130, Product: 0x660c},
	}

	assert.Equal(t, 1, FirstMatch(list, 0x1130, 0x660c))
	assert.Equal(t, -1, FirstMatch(list, 0x1130, 0x0001))
	assert.Equal(t, -1, FirstMatch(nil, 0x1130, 0x660c))
}
