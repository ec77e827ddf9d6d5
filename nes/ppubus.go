package nes

import "fmt"

// PPUBus decodes the PPU's 14-bit address space.
type PPUBus struct {
	vram      *RAM
	cartridge *Cartridge
}

// NewPPUBus creates a new Bus for PPU.
func NewPPUBus(vram *RAM, cartridge *Cartridge) *PPUBus {
	return &PPUBus{vram, cartridge}
}

// mirrorAddress folds the 4 logical 1KiB nametables down to the 2 physical
// 1KiB pages a cartridge actually wires, and into the 2KiB VRAM's address
// space (page<<10 | offset). Horizontal mirroring ties nametables 0/1
// together and 2/3 together, so the surviving page selector is bit 11;
// vertical mirroring ties 0/2 and 1/3 together, so it's bit 10. Addresses
// $3000-$3EFF mirror $2000-$2EFF first.
func (b *PPUBus) mirrorAddress(address uint16) uint16 {
	if address >= 0x3000 {
		address -= 0x1000
	}
	a := address - 0x2000
	offset := a & 0x03FF
	var page uint16
	if b.cartridge.MirrorMode() == MirrorHorizontal {
		page = (a >> 11) & 1
	} else {
		page = (a >> 10) & 1
	}
	return page<<10 | offset
}

// read reads data.
// Address        Size	  Description
// -------------------------------------
// $0000-$0FFF	  $1000	  Pattern table 0
// $1000-$1FFF	  $1000	  Pattern table 1
// $2000-$23FF	  $0400	  Nametable 0
// $2400-$27FF	  $0400	  Nametable 1
// $2800-$2BFF	  $0400	  Nametable 2
// $2C00-$2FFF	  $0400	  Nametable 3
// $3000-$3EFF	  $0F00	  Mirrors of $2000-$2EFF
// $3F00-$3F1F	  $0020	  Palette RAM indexes (handled by PPU directly)
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) read(address uint16) (byte, error) {
	switch {
	case address < 0x2000:
		return b.cartridge.Mapper.ReadCHR(address), nil
	case address < 0x3F00:
		return b.vram.read(b.mirrorAddress(address)), nil
	default:
		return 0, fmt.Errorf("nes: unknown PPU bus read: 0x%04x", address)
	}
}

// write writes data.
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) write(address uint16, data byte) error {
	switch {
	case address < 0x2000:
		b.cartridge.Mapper.WriteCHR(address, data)
		return nil
	case address < 0x3F00:
		b.vram.write(b.mirrorAddress(address), data)
	default:
		return fmt.Errorf("nes: unknown PPU bus write: address=0x%04x, data=0x%02x", address, data)
	}
	return nil
}
