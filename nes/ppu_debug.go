package nes

import "image"

// DebugCHRTable renders both 4KiB pattern tables side by side (256x128) using
// palette 0, for --show-chr-table.
func (p *PPU) DebugCHRTable() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 256, 128))
	for table := 0; table < 2; table++ {
		base := uint16(table) * 0x1000
		for tile := 0; tile < 256; tile++ {
			tileX := (tile % 16) * 8
			tileY := (tile / 16) * 8
			for row := 0; row < 8; row++ {
				lo, _ := p.bus.read(base + uint16(tile)*16 + uint16(row))
				hi, _ := p.bus.read(base + uint16(tile)*16 + uint16(row) + 8)
				for col := 0; col < 8; col++ {
					shift := 7 - col
					v := (lo>>shift)&1 + (hi>>shift)&1
					c := colors[p.paletteRAM.read(0x3F00|uint16(v))]
					img.SetRGBA(table*128+tileX+col, tileY+row, c)
				}
			}
		}
	}
	return img
}

// DebugNameTable renders nametable 0 ($2000) as 8x8 tile blocks,
// for --show-name-table. Scroll/attribute shading is not applied; this is a
// structural view of tile placement, not a pixel-accurate render.
func (p *PPU) DebugNameTable() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 256, 240))
	base := uint16(0x2000)
	for row := 0; row < 30; row++ {
		for col := 0; col < 32; col++ {
			nameByte, _ := p.bus.read(base + uint16(row)*32 + uint16(col))
			for y := 0; y < 8; y++ {
				lo, _ := p.bus.read(0x1000*uint16(p.backgroundTableFlag) + uint16(nameByte)*16 + uint16(y))
				hi, _ := p.bus.read(0x1000*uint16(p.backgroundTableFlag) + uint16(nameByte)*16 + uint16(y) + 8)
				for x := 0; x < 8; x++ {
					shift := 7 - x
					v := (lo>>shift)&1 + (hi>>shift)&1
					c := colors[p.paletteRAM.read(0x3F00|uint16(v))]
					img.SetRGBA(col*8+x, row*8+y, c)
				}
			}
		}
	}
	return img
}

// DebugSprites renders all 64 OAM entries in an 8x8 grid of 8x8 tiles, for
// --show-sprite.
func (p *PPU) DebugSprites() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < 64; i++ {
		tile := p.primaryOAM[i*4+1]
		cellX := (i % 8) * 8
		cellY := (i / 8) * 8
		for row := 0; row < 8; row++ {
			lo, _ := p.bus.read(0x1000*uint16(p.spriteTableFlag) + uint16(tile)*16 + uint16(row))
			hi, _ := p.bus.read(0x1000*uint16(p.spriteTableFlag) + uint16(tile)*16 + uint16(row) + 8)
			for col := 0; col < 8; col++ {
				shift := 7 - col
				v := (lo>>shift)&1 + (hi>>shift)&1
				c := colors[p.paletteRAM.read(0x3F10|uint16(v))]
				img.SetRGBA(cellX+col, cellY+row, c)
			}
		}
	}
	return img
}
