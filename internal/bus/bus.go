// Package bus implements the top-level address decoder: it owns every
// memory device in the system and routes each CPU access to the right one.
package bus

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gbemu/gbmem/internal/cart"
	"github.com/gbemu/gbmem/internal/mem"
)

// Bus is the root of the memory graph. The device topology is fixed at
// construction; the only mutable routing state is the bios latch inside
// the register block.
type Bus struct {
	// Mapped over 0x0000-0x00FF until the latch at 0xFF50 fires.
	bios mem.BiosRom
	// ROM at 0x0000-0x7FFF, external RAM window at 0xA000-0xBFFF.
	cart cart.Cartridge
	// Video RAM at 0x8000-0x9FFF.
	vram mem.RAM
	// Working RAM at 0xC000-0xDFFF, mirrored at 0xE000-0xFDFF.
	wram mem.RAM
	// Sprite attribute table at 0xFE00-0xFE9F.
	oam mem.RAM
	// Hardware registers at 0xFF00-0xFF7F.
	mmio *mem.MMIO
	// High RAM at 0xFF80-0xFFFE.
	hram mem.RAM

	log *logrus.Logger
}

// New builds a bus from a validated bios image and a cartridge. A nil
// cartridge means an empty slot. The bios starts out mapped in.
func New(bios mem.BiosRom, c cart.Cartridge) *Bus {
	if c == nil {
		c = cart.None{}
	}
	return &Bus{
		bios: bios,
		cart: c,
		vram: mem.NewRAM(0x2000),
		wram: mem.NewRAM(0x2000),
		oam:  mem.NewRAM(160),
		mmio: mem.NewMMIO(),
		hram: mem.NewRAM(127),
		log:  newLogger(),
	}
}

// BiosEnabled reports whether the bios overlay is still mapped over
// 0x0000-0x00FF.
func (b *Bus) BiosEnabled() bool {
	return b.mmio.BiosEnabled()
}

// Read services a CPU read anywhere in the 16-bit address space.
func (b *Bus) Read(addr uint16) uint8 {
	return b.read(mem.NewAddr(addr))
}

// Write services a CPU write anywhere in the 16-bit address space.
func (b *Bus) Write(addr uint16, value uint8) {
	b.write(mem.NewAddr(addr), value)
}

func (b *Bus) read(a mem.Addr) uint8 {
	b.checkRoot(a)
	// Every 16-bit value lands in exactly one case below; each device's
	// own bounds check is authoritative for the hand-off.
	switch r := a.Relative(); {
	case r < 0x0100 && b.mmio.BiosEnabled():
		return b.bios.Read(a)
	case r < 0x8000:
		return b.cart.Read(a)
	case r < 0xA000:
		return b.vram.Read(a.OffsetBy(0x8000))
	case r < 0xC000:
		// Shift by the size of vram only: the cartridge's decoder
		// expects its RAM window directly after its ROM window.
		return b.cart.Read(a.OffsetBy(0x2000))
	case r < 0xE000:
		return b.wram.Read(a.OffsetBy(0xC000))
	case r < 0xFE00:
		return b.wram.Read(a.OffsetBy(0xE000))
	case r < 0xFEA0:
		return b.oam.Read(a.OffsetBy(0xFE00))
	case r < 0xFF00:
		// Unmapped strip above the sprite table.
		return 0
	case r < 0xFF80:
		return b.mmio.Read(a.OffsetBy(0xFF00))
	case r < 0xFFFF:
		return b.hram.Read(a.OffsetBy(0xFF80))
	default:
		// 0xFFFF is unmapped here; the interrupt-enable register
		// belongs to the CPU core.
		return 0
	}
}

func (b *Bus) write(a mem.Addr, value uint8) {
	b.checkRoot(a)
	switch r := a.Relative(); {
	case r < 0x0100 && b.mmio.BiosEnabled():
		b.bios.Write(a, value)
	case r < 0x8000:
		b.cart.Write(a, value)
	case r < 0xA000:
		b.vram.Write(a.OffsetBy(0x8000), value)
	case r < 0xC000:
		b.cart.Write(a.OffsetBy(0x2000), value)
	case r < 0xE000:
		b.wram.Write(a.OffsetBy(0xC000), value)
	case r < 0xFE00:
		b.wram.Write(a.OffsetBy(0xE000), value)
	case r < 0xFEA0:
		b.oam.Write(a.OffsetBy(0xFE00), value)
	case r < 0xFF00:
		// Unmapped strip above the sprite table.
	case r < 0xFF80:
		wasEnabled := b.mmio.BiosEnabled()
		b.mmio.Write(a.OffsetBy(0xFF00), value)
		if wasEnabled && !b.mmio.BiosEnabled() {
			b.log.Debug("bios unmapped, cartridge visible at 0x0000")
		}
	case r < 0xFFFF:
		b.hram.Write(a.OffsetBy(0xFF80), value)
	default:
		// 0xFFFF is unmapped here.
	}
}

// checkRoot enforces that the root decoder only ever sees fresh,
// un-offset addresses. An offset address means the access was already
// routed through a sub-device.
func (b *Bus) checkRoot(a mem.Addr) {
	if a.Relative() != a.Raw() {
		panic(fmt.Sprintf("bus: root decoder invoked with offset address %v", a))
	}
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
