package usbdev

// DeviceID is a vendor/product pair as reported by bus enumeration.
type DeviceID struct {
	Vendor  uint16
	Product uint16
}

// FirstMatch returns the index of the first entry matching vid/pid, or -1 if
// no entry matches. Enumeration order is whatever the transport reported.
func FirstMatch(list []DeviceID, vid uint16, pid uint16) int {
	for i, id := range list {
		if id.Vendor == vid && id.Product == pid {
			return i
		}
	}
	return -1
}
