package mem

import "fmt"

// BiosSize is the fixed length of the DMG boot ROM.
const BiosSize = 0x100

// BiosSizeError reports a bios image whose length is not exactly BiosSize
// bytes. It carries the actual length so the caller can report it.
type BiosSizeError struct {
	Len int
}

func (e BiosSizeError) Error() string {
	return fmt.Sprintf("bios image must be exactly %d bytes, got %d", BiosSize, e.Len)
}

// BiosRom is the boot ROM, mapped over 0x0000-0x00FF until the latch at
// register offset 0x50 disables it. It is read-only: writes are still
// range-checked but otherwise dropped.
type BiosRom struct {
	data [BiosSize]uint8
}

// NewBiosRom copies a 256-byte image into a BiosRom. Only the length is
// validated, not the content.
func NewBiosRom(data []uint8) (BiosRom, error) {
	if len(data) != BiosSize {
		return BiosRom{}, BiosSizeError{Len: len(data)}
	}
	var b BiosRom
	copy(b.data[:], data)
	return b, nil
}

func (b *BiosRom) Read(addr Addr) uint8 {
	if addr.Index() >= BiosSize {
		panic(fmt.Sprintf("mem: address %v out of range for %d byte bios rom", addr, BiosSize))
	}
	return b.data[addr.Index()]
}

func (b *BiosRom) Write(addr Addr, _ uint8) {
	if addr.Index() >= BiosSize {
		panic(fmt.Sprintf("mem: address %v out of range for %d byte bios rom", addr, BiosSize))
	}
}
