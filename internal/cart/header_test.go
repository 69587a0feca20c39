package cart

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gbemu/gbmem/internal/mem"
)

// buildROM makes a synthetic image with a valid header and checksums.
// size should match the ROM size code (e.g. 64 KiB for code 0x01).
func buildROM(title string, cartType, romSizeCode, ramSizeCode uint8, size int) []uint8 {
	rom := make([]uint8, size)

	tbytes := []uint8(title)
	if len(tbytes) > 16 {
		tbytes = tbytes[:16]
	}
	copy(rom[0x0134:0x0144], tbytes)

	rom[0x0147] = cartType
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramSizeCode
	rom[0x014B] = 0x33 // old licensee: defer to new licensee field

	// Header checksum over 0x0134-0x014C, Pan Docs algorithm.
	var hsum uint8
	for addr := 0x0134; addr <= 0x014C; addr++ {
		hsum = hsum - rom[addr] - 1
	}
	rom[0x014D] = hsum

	// Global checksum: sum of all bytes except its own two.
	var gsum uint16
	for i, v := range rom {
		if i == 0x014E || i == 0x014F {
			continue
		}
		gsum += uint16(v)
	}
	binary.BigEndian.PutUint16(rom[0x014E:0x0150], gsum)

	return rom
}

func TestParseHeader(t *testing.T) {
	rom := buildROM("BANKTEST", 0x03, 0x01, 0x03, 64*1024)

	h, err := ParseHeader(rom)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if h.Title != "BANKTEST" {
		t.Fatalf("title got %q want BANKTEST", h.Title)
	}
	if h.CartType != 0x03 {
		t.Fatalf("cart type got %02X want 03", h.CartType)
	}
	if h.ROMBanks != 4 || h.ROMSizeBytes != 64*1024 {
		t.Fatalf("rom size decoded as %d banks / %d bytes", h.ROMBanks, h.ROMSizeBytes)
	}
	if h.RAMSizeBytes != 32*1024 {
		t.Fatalf("ram size decoded as %d bytes", h.RAMSizeBytes)
	}
	if !HeaderChecksumOK(rom) {
		t.Fatalf("header checksum rejected")
	}

	rom[0x0134] ^= 0xFF
	if HeaderChecksumOK(rom) {
		t.Fatalf("corrupted header accepted")
	}
}

func TestParseHeaderTooSmall(t *testing.T) {
	_, err := ParseHeader(make([]uint8, 0x100))
	if !errors.Is(err, ErrNoHeader) {
		t.Fatalf("got %v, want ErrNoHeader", err)
	}
}

func TestLoadSelectsMBC1(t *testing.T) {
	rom := buildROM("RAMCART", 0x03, 0x01, 0x03, 64*1024)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	m, ok := c.(*MBC1)
	if !ok {
		t.Fatalf("loaded %T, want *MBC1", c)
	}

	// RAM capability must have come through from the header.
	m.Write(mem.NewAddr(0x0000), 0x0A)
	m.Write(mem.NewAddr(0x8000), 0x42)
	if got := m.Read(mem.NewAddr(0x8000)); got != 0x42 {
		t.Fatalf("ram capability not set on loaded cart: read %02X", got)
	}
}

func TestLoadROMOnlyHasNoRAM(t *testing.T) {
	rom := buildROM("PLAIN", 0x00, 0x00, 0x00, 32*1024)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	c.Write(mem.NewAddr(0x0000), 0x0A)
	c.Write(mem.NewAddr(0x8000), 0x42)
	if got := c.Read(mem.NewAddr(0x8000)); got != 0 {
		t.Fatalf("rom-only cart grew ram: read %02X", got)
	}
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	rom := buildROM("MBC5GAME", 0x19, 0x01, 0x00, 64*1024)
	if _, err := Load(rom); !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("got %v, want ErrUnsupportedMapper", err)
	}
}
