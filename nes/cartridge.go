package nes

import (
	"errors"
	"fmt"
)

const (
	chrROMSizeUnit      int  = 0x2000 // 8 KiB
	prgROMSizeUnit      int  = 0x4000 // 16 KiB
	inesHeaderSizeBytes int  = 16
	msdosEOF            byte = 0x1A
)

// ErrMalformedRom is returned when the buffer does not start with the iNES
// magic or is truncated before the header says it should end.
var ErrMalformedRom = errors.New("nes: malformed rom")

// MirrorMode is the nametable mirroring arrangement selected by flag6 bit 0.
type MirrorMode int

const (
	MirrorHorizontal MirrorMode = iota
	MirrorVertical
)

// Cartridge holds the parsed iNES image: PRG/CHR banks and the header flags
// the mapper and PPU need to interpret them.
// Reference: https://www.nesdev.org/wiki/INES
type Cartridge struct {
	prgROM []byte
	chrROM []byte
	flags6 byte
	flags7 byte

	Mapper Mapper
}

func isValid(data []byte) bool {
	return len(data) >= inesHeaderSizeBytes &&
		data[0] == 'N' && data[1] == 'E' && data[2] == 'S' && data[3] == msdosEOF
}

// NewCartridge parses an iNES 1.0 image and constructs the mapper it names.
func NewCartridge(data []byte) (*Cartridge, error) {
	if !isValid(data) {
		return nil, fmt.Errorf("nes: reading header: %w", ErrMalformedRom)
	}
	prgUnits := int(data[4])
	chrUnits := int(data[5])
	prgEnd := inesHeaderSizeBytes + prgUnits*prgROMSizeUnit
	chrEnd := prgEnd + chrUnits*chrROMSizeUnit
	if len(data) < chrEnd {
		return nil, fmt.Errorf("nes: rom truncated, want %d bytes, got %d: %w", chrEnd, len(data), ErrMalformedRom)
	}
	c := &Cartridge{
		prgROM: data[inesHeaderSizeBytes:prgEnd],
		chrROM: data[prgEnd:chrEnd],
		flags6: data[6],
		flags7: data[7],
	}
	if chrUnits == 0 {
		// CHR RAM: mapper 3's CNROM banking still addresses an 8 KiB-per-bank
		// window, so give it one writable bank's worth of backing storage.
		c.chrROM = make([]byte, chrROMSizeUnit)
	}
	number := (c.flags6 >> 4) | (c.flags7 & 0xF0)
	mapper, err := NewMapper(number, c.prgROM, c.chrROM)
	if err != nil {
		return nil, err
	}
	c.Mapper = mapper
	return c, nil
}

// MirrorMode reports the nametable arrangement from flag6 bit 0.
func (c *Cartridge) MirrorMode() MirrorMode {
	if c.flags6&1 == 1 {
		return MirrorVertical
	}
	return MirrorHorizontal
}
