// Package cart implements the cartridge slot: the MBC1 bank-switching
// controller and the empty slot used when no cartridge is inserted.
//
// Addresses handed to a cartridge are relative to the cartridge's own
// window: ROM at 0x0000-0x7FFF and the external RAM window directly after
// it at 0x8000-0x9FFF. On the real bus video RAM sits between the two; the
// bus re-offsets accesses before delegating here so the split is invisible
// to the controller.
package cart

import "github.com/gbemu/gbmem/internal/mem"

// Cartridge is the slot the bus reads and writes through. The set of
// implementations is closed: None and *MBC1.
type Cartridge interface {
	Read(addr mem.Addr) uint8
	Write(addr mem.Addr, value uint8)
}

// emptySlot backs None: a bounds-checked hole spanning the full cartridge
// address window.
var emptySlot = mem.NewNull(0x10000)

// None is the empty cartridge slot. Reads return 0 and writes are
// discarded rather than crashing the machine.
type None struct{}

func (None) Read(addr mem.Addr) uint8 {
	return emptySlot.Read(addr)
}

func (None) Write(addr mem.Addr, value uint8) {
	emptySlot.Write(addr, value)
}
