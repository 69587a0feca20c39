package mem

import "fmt"

// MMIOSize is the width of the hardware register window at 0xFF00.
const MMIOSize = 0x80

// biosLatch is the BOOT register offset within the window (0xFF50 on the
// bus).
const biosLatch = 0x50

// MMIO models the hardware register block. Only the bios-disable latch is
// implemented; every other register reads 0xFF (bus lines pulled high) and
// ignores writes.
type MMIO struct {
	biosEnabled bool
}

// NewMMIO returns the register block in its power-on state, with the bios
// mapped in.
func NewMMIO() *MMIO {
	return &MMIO{biosEnabled: true}
}

// BiosEnabled reports whether the boot ROM is still mapped over
// 0x0000-0x00FF.
func (m *MMIO) BiosEnabled() bool {
	return m.biosEnabled
}

func (m *MMIO) Read(addr Addr) uint8 {
	switch r := addr.Relative(); {
	case r == biosLatch:
		if m.biosEnabled {
			return 1
		}
		return 0
	case r < MMIOSize:
		return 0xFF
	default:
		panic(fmt.Sprintf("mem: address %v out of range for mmio block", addr))
	}
}

func (m *MMIO) Write(addr Addr, value uint8) {
	switch r := addr.Relative(); {
	case r == biosLatch:
		// One-way latch: once the bios is unmapped it stays unmapped
		// until the whole bus is rebuilt.
		if value&1 != 0 {
			m.biosEnabled = false
		}
	case r < MMIOSize:
		// Unimplemented register stubs.
	default:
		panic(fmt.Sprintf("mem: address %v out of range for mmio block", addr))
	}
}
