package mem

import "fmt"

// Addr carries both the raw address as issued by the CPU and the address
// relative to the start of the device currently being accessed. Devices
// report both in diagnostics, so a misrouted access can be traced back to
// the original bus address.
type Addr struct {
	raw      uint16
	relative uint16
}

// NewAddr builds an Addr from a raw CPU address. No offset has been applied
// yet, so raw and relative start out equal.
func NewAddr(raw uint16) Addr {
	return Addr{raw: raw, relative: raw}
}

// Raw returns the address as originally issued on the bus.
func (a Addr) Raw() uint16 { return a.raw }

// Relative returns the address relative to the start of the current device.
func (a Addr) Relative() uint16 { return a.relative }

// Index returns the relative address widened for slice indexing.
func (a Addr) Index() int { return int(a.relative) }

// Offset returns the cumulative offset applied by enclosing devices.
func (a Addr) Offset() uint16 { return a.raw - a.relative }

// OffsetBy returns a copy of the address shifted into a nested device's
// window. Shifting past the start of the current window is a wiring bug.
func (a Addr) OffsetBy(shift uint16) Addr {
	if shift > a.relative {
		panic(fmt.Sprintf("mem: offsetting address %v by %#04x underflows", a, shift))
	}
	return Addr{raw: a.raw, relative: a.relative - shift}
}

func (a Addr) String() string {
	return fmt.Sprintf("%#04x(%#04x)", a.raw, a.relative)
}
