package cart

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const headerEnd = 0x014F

// ErrNoHeader reports an image too small to contain the header block at
// 0x0100-0x014F.
var ErrNoHeader = errors.New("image too small to contain a cartridge header")

// ErrUnsupportedMapper reports a cartridge-type byte this core has no
// controller for.
var ErrUnsupportedMapper = errors.New("unsupported mapper type")

// Header is the cartridge metadata block.
type Header struct {
	Title          string // 0x0134-0x0143, trimmed ASCII
	CartType       uint8  // 0x0147
	ROMSizeCode    uint8  // 0x0148
	RAMSizeCode    uint8  // 0x0149
	HeaderChecksum uint8  // 0x014D
	GlobalChecksum uint16 // 0x014E-0x014F

	// Decoded for convenience and logging.
	ROMSizeBytes int
	ROMBanks     int
	RAMSizeBytes int
}

// ParseHeader decodes the header block of a raw cartridge image.
func ParseHeader(rom []uint8) (*Header, error) {
	if len(rom) < headerEnd+1 {
		return nil, fmt.Errorf("%w: %d bytes", ErrNoHeader, len(rom))
	}

	h := &Header{
		Title:          strings.TrimRight(string(rom[0x0134:0x0144]), "\x00"),
		CartType:       rom[0x0147],
		ROMSizeCode:    rom[0x0148],
		RAMSizeCode:    rom[0x0149],
		HeaderChecksum: rom[0x014D],
		GlobalChecksum: binary.BigEndian.Uint16(rom[0x014E:0x0150]),
	}
	h.ROMSizeBytes, h.ROMBanks = decodeROMSize(h.ROMSizeCode)
	h.RAMSizeBytes = decodeRAMSize(h.RAMSizeCode)
	return h, nil
}

// HeaderChecksumOK verifies the header checksum over 0x0134-0x014C using
// the Pan Docs algorithm.
func HeaderChecksumOK(rom []uint8) bool {
	if len(rom) < headerEnd+1 {
		return false
	}
	var sum uint8
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	return sum == rom[0x014D]
}

func decodeROMSize(code uint8) (size, banks int) {
	if code > 0x08 {
		return 0, 0
	}
	banks = 2 << code
	return banks * ROMBankSize, banks
}

func decodeRAMSize(code uint8) int {
	switch code {
	case 0x02:
		return 8 * 1024
	case 0x03:
		return 32 * 1024
	default:
		return 0
	}
}

// Load parses a raw cartridge image and picks the controller for it. Only
// MBC1-class carts are supported; a plain 32 KiB ROM is served identically
// by an MBC1 with no RAM, so it shares the same controller.
func Load(rom []uint8) (Cartridge, error) {
	h, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"title":     h.Title,
		"cart_type": fmt.Sprintf("%#02x", h.CartType),
		"rom_banks": h.ROMBanks,
		"ram_bytes": h.RAMSizeBytes,
	}).Debug("decoded cartridge header")

	switch h.CartType {
	case 0x00, 0x01: // ROM only, MBC1
		return NewMBC1(rom, false), nil
	case 0x02, 0x03: // MBC1+RAM, MBC1+RAM+BATTERY
		return NewMBC1(rom, true), nil
	default:
		return nil, fmt.Errorf("%w: %#02x", ErrUnsupportedMapper, h.CartType)
	}
}
