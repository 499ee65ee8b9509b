package temperhal

import (
	"fmt"
	"time"
)

// fakeDevice is a scripted transport. It records every call in order so
// tests can assert on acquisition/teardown sequencing, captures outbound
// report buffers and replays queued inbound responses.
type fakeDevice struct {
	calls []string

	kernelActive map[int]bool
	claimErr     map[int]error
	releaseErr   map[int]error
	attachErr    map[int]error

	writes    [][]byte
	writeLen  int // overrides the reported out-transfer length when nonzero
	responses [][]byte
	readLen   int // overrides the reported in-transfer length when nonzero

	closed bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		kernelActive: map[int]bool{},
		claimErr:     map[int]error{},
		releaseErr:   map[int]error{},
		attachErr:    map[int]error{},
	}
}

// queueResponse registers the next get-report payload, zero-padded to the
// full response size.
func (f *fakeDevice) queueResponse(head ...byte) {
	buf := make([]byte, 256)
	copy(buf, head)
	f.responses = append(f.responses, buf)
}

func (f *fakeDevice) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeDevice) ControlTransfer(requestType byte, request byte, value uint16, index uint16, data []byte, timeout time.Duration) (int, error) {
	switch requestType {
	case 0x21:
		f.record("write %04x/%04x", value, index)
		buf := make([]byte, len(data))
		copy(buf, data)
		f.writes = append(f.writes, buf)
		if f.writeLen != 0 {
			return f.writeLen, nil
		}
		return len(data), nil

	case 0xa1:
		f.record("read %04x/%04x", value, index)
		if len(f.responses) == 0 {
			return 0, fmt.Errorf("unexpected read")
		}
		resp := f.responses[0]
		f.responses = f.responses[1:]
		n := copy(data, resp)
		if f.readLen != 0 {
			return f.readLen, nil
		}
		return n, nil
	}

	return 0, fmt.Errorf("unexpected request type %02x", requestType)
}

func (f *fakeDevice) SetConfiguration(config int) error {
	f.record("set-config %d", config)
	return nil
}

func (f *fakeDevice) KernelDriverActive(iface int) (bool, error) {
	f.record("kernel-active %d", iface)
	return f.kernelActive[iface], nil
}

func (f *fakeDevice) DetachKernelDriver(iface int) error {
	f.record("detach %d", iface)
	return nil
}

func (f *fakeDevice) AttachKernelDriver(iface int) error {
	f.record("attach %d", iface)
	return f.attachErr[iface]
}

func (f *fakeDevice) ClaimInterface(iface int) error {
	f.record("claim %d", iface)
	return f.claimErr[iface]
}

func (f *fakeDevice) ReleaseInterface(iface int) error {
	f.record("release %d", iface)
	return f.releaseErr[iface]
}

func (f *fakeDevice) Close() error {
	f.record("close")
	f.closed = true
	return nil
}

func (f *fakeDevice) countCalls(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeDevice) callIndex(call string) int {
	for i, c := range f.calls {
		if c == call {
			return i
		}
	}
	return -1
}
