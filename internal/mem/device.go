// Package mem provides the address model and the memory devices that make
// up the Game Boy's byte-addressable space: plain RAM, the boot ROM, the
// hardware register block and the generic wrappers the bus composes them
// with. Addresses handed to a device are relative to the device's own
// window; an address beyond the device's size is a wiring bug in the
// emulator, not a runtime condition, and panics with both the raw and
// relative address.
package mem

import "fmt"

// Device is the capability every backing store on the bus implements.
type Device interface {
	Read(addr Addr) uint8
	Write(addr Addr, value uint8)
}

// ReadOnly wraps a device and drops writes. A write still performs the
// inner read so the wrapped device's own bounds check runs.
type ReadOnly struct {
	inner Device
}

// NewReadOnly wraps the given device.
func NewReadOnly(inner Device) ReadOnly {
	return ReadOnly{inner: inner}
}

func (r ReadOnly) Read(addr Addr) uint8 {
	return r.inner.Read(addr)
}

func (r ReadOnly) Write(addr Addr, _ uint8) {
	r.inner.Read(addr)
}

// Null is a device with no storage: reads return 0 and writes are
// discarded, but accesses are still bounds-checked against its size.
// Used where hardware is absent.
type Null struct {
	size int
}

// NewNull returns a null device spanning size bytes.
func NewNull(size int) Null {
	return Null{size: size}
}

func (n Null) Read(addr Addr) uint8 {
	if addr.Index() >= n.size {
		panic(fmt.Sprintf("mem: address %v out of range for %d byte null device", addr, n.size))
	}
	return 0
}

func (n Null) Write(addr Addr, _ uint8) {
	if addr.Index() >= n.size {
		panic(fmt.Sprintf("mem: address %v out of range for %d byte null device", addr, n.size))
	}
}

// RAM is a flat byte store.
type RAM []uint8

// NewRAM allocates a zeroed RAM device of the given size.
func NewRAM(size int) RAM {
	return make(RAM, size)
}

func (r RAM) Read(addr Addr) uint8 {
	if addr.Index() >= len(r) {
		panic(fmt.Sprintf("mem: address %v out of range for %d byte ram", addr, len(r)))
	}
	return r[addr.Index()]
}

func (r RAM) Write(addr Addr, value uint8) {
	if addr.Index() >= len(r) {
		panic(fmt.Sprintf("mem: address %v out of range for %d byte ram", addr, len(r)))
	}
	r[addr.Index()] = value
}
