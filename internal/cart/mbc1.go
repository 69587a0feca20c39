package cart

import (
	"fmt"

	"github.com/gbemu/gbmem/internal/mem"
)

const (
	// ROMBankSize is the size of one switchable ROM bank.
	ROMBankSize = 0x4000
	// RAMBankSize is the size of one external RAM bank.
	RAMBankSize = 0x2000

	numROMBanks = 128
	numRAMBanks = 4
)

// MBC1 is the most common Game Boy bank controller: up to 2 MiB of ROM in
// 16 KiB banks and up to 32 KiB of RAM in 8 KiB banks, selected through
// four write-only registers. The 2-bit bank-set register is shared between
// the high ROM bank bits and the RAM bank select, which is what makes this
// chip fiddly: in ROM mode only RAM bank 0 is reachable, and in RAM mode
// only ROM banks 0-31 are.
type MBC1 struct {
	// Banks 32, 64 and 96 can never be produced by the register
	// arithmetic but are kept in place so bank indexing needs no special
	// case.
	romBanks [numROMBanks][ROMBankSize]uint8
	ramBanks [numRAMBanks][RAMBankSize]uint8

	// Capability flag, fixed at construction. Without RAM the enable and
	// mode registers are inert.
	hasRAM bool

	// Hardware registers.
	ramEnabled bool
	romBank    uint8 // low 5 bits of the ROM bank, never 0
	bankSet    uint8 // 2 bits shared between ROM high bits and RAM bank
	ramMode    bool
}

// NewMBC1 copies a raw cartridge image into the fixed bank layout. The
// image may be shorter than the full 2 MiB; trailing banks stay zeroed.
// Validating the image content is the loader's job, not done here.
func NewMBC1(rom []uint8, hasRAM bool) *MBC1 {
	m := &MBC1{hasRAM: hasRAM, romBank: 1}
	for bank := 0; bank < numROMBanks && bank*ROMBankSize < len(rom); bank++ {
		copy(m.romBanks[bank][:], rom[bank*ROMBankSize:])
	}
	return m
}

// effectiveROMBank resolves the switchable window's bank from the shared
// registers. Resolved on every access: the bank-set register is
// multiplexed between ROM and RAM selection, so a cached value would go
// stale on a mode flip.
func (m *MBC1) effectiveROMBank() int {
	high := m.bankSet
	if m.ramMode {
		high = 0
	}
	return int(high)<<5 | int(m.romBank)
}

// effectiveRAMBank resolves the RAM bank. Outside RAM mode only bank 0 is
// reachable.
func (m *MBC1) effectiveRAMBank() int {
	if m.ramMode {
		return int(m.bankSet)
	}
	return 0
}

func (m *MBC1) Read(addr mem.Addr) uint8 {
	switch r := addr.Relative(); {
	case r < 0x4000:
		return m.romBanks[0][addr.Index()]
	case r < 0x8000:
		return m.romBanks[m.effectiveROMBank()][addr.OffsetBy(0x4000).Index()]
	case r < 0xa000:
		if !m.ramEnabled {
			return 0
		}
		return m.ramBanks[m.effectiveRAMBank()][addr.OffsetBy(0x8000).Index()]
	default:
		panic(fmt.Sprintf("cart: address %v out of range for mbc1", addr))
	}
}

// Write drives the four control registers; only the RAM window writes to
// actual storage.
func (m *MBC1) Write(addr mem.Addr, value uint8) {
	switch r := addr.Relative(); {
	case r < 0x2000:
		// RAM enable: low nibble must be 0xA, and only on carts that
		// actually have RAM.
		m.ramEnabled = m.hasRAM && value&0x0f == 0x0a
	case r < 0x4000:
		// Low 5 bits of the ROM bank. Bank 0 is not selectable; the
		// hardware raises it to 1.
		m.romBank = value & 0x1f
		if m.romBank == 0 {
			m.romBank = 1
		}
	case r < 0x6000:
		m.bankSet = value & 0x03
	case r < 0x8000:
		m.ramMode = m.hasRAM && value&1 != 0
	case r < 0xa000:
		if m.hasRAM && m.ramEnabled {
			m.ramBanks[m.effectiveRAMBank()][addr.OffsetBy(0x8000).Index()] = value
		}
	default:
		panic(fmt.Sprintf("cart: address %v out of range for mbc1", addr))
	}
}
