package nes

import (
	"fmt"
	"image"
	"image/color"
)

// NES PPU generates 256x240 pixels.
const (
	width  = 256
	height = 240

	// bgWidth/bgHeight cover the full 2x2 tiled nametable grid frameBG
	// rasterizes once per frame, so scrolling can wrap across all four
	// logical nametables without a per-cycle fetch pipeline.
	bgWidth  = width * 2
	bgHeight = height * 2
)

// Palatte colors borrowed from "RGB".
// Reference: https://emulation.gametechwiki.com/index.php/Famicom_color_palette
var colors = [64]color.RGBA{
	{0x6D, 0x6D, 0x6D, 255}, {0x00, 0x24, 0x92, 255}, {0x00, 0x00, 0xDB, 255}, {0x6D, 0x49, 0xDB, 255},
	{0x92, 0x00, 0x6D, 255}, {0xB6, 0x00, 0x6D, 255}, {0xB6, 0x24, 0x00, 255}, {0x92, 0x49, 0x00, 255},
	{0x6D, 0x49, 0x00, 255}, {0x24, 0x49, 0x00, 255}, {0x00, 0x6D, 0x24, 255}, {0x00, 0x92, 0x00, 255},
	{0x00, 0x49, 0x49, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xB6, 0xB6, 0xB6, 255}, {0x00, 0x6D, 0xDB, 255}, {0x00, 0x49, 0xFF, 255}, {0x92, 0x00, 0xFF, 255},
	{0xB6, 0x00, 0xFF, 255}, {0xFF, 0x00, 0x92, 255}, {0xFF, 0x00, 0x00, 255}, {0xDB, 0x6D, 0x00, 255},
	{0x92, 0x6D, 0x00, 255}, {0x24, 0x92, 0x00, 255}, {0x00, 0x92, 0x00, 255}, {0x00, 0xB6, 0x6D, 255},
	{0x00, 0x92, 0x92, 255}, {0x24, 0x24, 0x24, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xFF, 0xFF, 0xFF, 255}, {0x6D, 0xB6, 0xFF, 255}, {0x92, 0x92, 0xFF, 255}, {0xDB, 0x6D, 0xFF, 255},
	{0xFF, 0x00, 0xFF, 255}, {0xFF, 0x6D, 0xFF, 255}, {0xFF, 0x92, 0x00, 255}, {0xFF, 0xB6, 0x00, 255},
	{0xDB, 0xDB, 0x00, 255}, {0x6D, 0xDB, 0x00, 255}, {0x00, 0xFF, 0x00, 255}, {0x49, 0xFF, 0xDB, 255},
	{0x00, 0xFF, 0xFF, 255}, {0x49, 0x49, 0x49, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xFF, 0xFF, 0xFF, 255}, {0xB6, 0xDB, 0xFF, 255}, {0xDB, 0xB6, 0xFF, 255}, {0xFF, 0xB6, 0xFF, 255},
	{0xFF, 0x92, 0xFF, 255}, {0xFF, 0xB6, 0xB6, 255}, {0xFF, 0xDB, 0x92, 255}, {0xFF, 0xFF, 0x49, 255},
	{0xFF, 0xFF, 0x6D, 255}, {0xB6, 0xFF, 0x49, 255}, {0x92, 0xFF, 0x6D, 255}, {0x49, 0xFF, 0xDB, 255},
	{0x92, 0xDB, 0xFF, 255}, {0x92, 0x92, 0x92, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
}

// planePixel packs one pixel of a compositing plane into a byte: bit 7 marks
// the pixel opaque, bit 6 marks it as belonging to sprite index 0 (only
// meaningful on the sprite planes), and bits 0-4 hold the palette RAM offset
// from $3F00 to read the actual color from.
type planePixel = byte

const (
	planeOpaque    planePixel = 0x80
	planeSpriteZero planePixel = 0x40
	planeAddrMask  planePixel = 0x1F
)

// PPU has an internal palette RAM
type paletteRAM struct {
	ram [32]byte
}

func (r *paletteRAM) read(address uint16) byte {
	// $3F20-$3FFF	  $00E0	  Mirrors of $3F00-$3F1F
	mirrored := (address-0x3F00)%0x20 + 0x3F00
	switch address {
	case 0x3F10, 0x3F14, 0x3F18, 0x3F1C:
		mirrored = address - 0x10
	case 0x3F04, 0x3F08, 0x3F0C:
		// These addresses are writable, but not readable.
		// failback to 0.
		mirrored = 0x3F00
	}
	mirrored -= 0x3F00
	return r.ram[mirrored]
}

func (r *paletteRAM) write(address uint16, data byte) {
	// $3F20-$3FFF	  $00E0	  Mirrors of $3F00-$3F1F
	mirrored := (address-0x3F00)%0x20 + 0x3F00
	switch address {
	case 0x3F10, 0x3F14, 0x3F18, 0x3F1C:
		mirrored = address - 0x10
	}
	mirrored -= 0x3F00
	r.ram[mirrored] = data
}

// PPU stands for Picture Processing Unit, renders 256px x 240px image for a screen.
// Rendering commits to scanline granularity, not per-dot accuracy: once per
// frame it rasterizes the full 2x2 tiled nametable and all 64 OAM sprites
// into compositing planes, then composites one scanline at a time from
// those planes rather than re-fetching tiles every cycle.
// This implementation emulates NTSC not PAL or other ways.
//
// This PPU implementation includes PPU regsters as well.
// References:
//   https://www.nesdev.org/wiki/PPU
//   https://www.nesdev.org/wiki/PPU_registers
//   https://www.nesdev.org/wiki/PPU_scrolling
type PPU struct {
	bus *PPUBus

	picture *image.RGBA

	// oam
	oamAddress byte
	primaryOAM [256]byte // PPU has internal memory for Object Attribute Memory.

	spriteOverflow bool
	spriteZeroHit  bool

	// Current VRAM address (15bits), for PPUADDR $2006
	// yyy NN YYYYY XXXXX
	// ||| || ||||| +++++-- coarse X scroll
	// ||| || +++++-------- coarse Y scroll
	// ||| ++-------------- nametable select
	// +++----------------- fine Y scroll
	v uint16
	// Temporary VRAM address (15bits)
	t uint16
	// fine x scroll (3bits)
	x byte
	// w is a shared write toggle.
	w bool
	// buffer for PPUDATA $2007
	buffer byte

	// NMI https://www.nesdev.org/wiki/NMI
	nmiOccurred bool
	oldNMI      bool
	nmiOutput   bool

	// $2000
	nameTableFlag         byte // 0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00
	vramIncrementFlag     byte // 0: add 1, going across; 1: add 32, going down
	spriteTableFlag       byte // 0: $0000; 1: $1000; ignored in 8x16 mode
	backgroundTableFlag   byte // 0: $0000; 1: $1000
	spriteSizeFlag        byte // 0: 8x8 pixels; 1: 8x16 pixels
	masterSlaveSelectFlag byte // 0: read backdrop from EXT pins; 1: output color on EXT pins

	// $2001. Stored for register readback; this simplified rasterizer always
	// composes background and sprites regardless of the enable bits.
	grayScale          bool // unused.
	showLeftBackground bool
	showLeftSprite     bool
	showBackground     bool
	showSprite         bool
	emphasizeRed       bool // I have no idea about these, probably for PAL not NTSC.
	emphasizeGreen     bool // Same above.
	emphasizeBlue      bool // Same above.

	// $2002
	register byte

	// PPU has an internal RAM for palette data.
	paletteRAM paletteRAM

	// Compositing planes, rebuilt once per frame at (cycle==1, scanline==0)
	// and read back one scanline at a time. frameBG covers the full 2x2
	// tiled nametable grid so scrolled reads can wrap; the sprite planes
	// cover only the visible 256x240 screen.
	frameBG        [bgWidth * bgHeight]planePixel
	frameSpriteFG  [width * height]planePixel
	frameSpriteBG  [width * height]planePixel
	scrollX        int
	scrollY        int

	// cycle, scanline indicates which pixel is processing.
	cycle    int
	scanline int
}

// NewPPU creates a PPU.
func NewPPU(bus *PPUBus) *PPU {
	p := &PPU{
		bus:     bus,
		picture: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	return p
}

func (p *PPU) Reset() {
	// TODO(jyane): Configure correct state, I'm not sure where it starts, this may vary.
	// Here just starts from vblank.
	p.cycle = 0
	p.scanline = 240
}

func (p *PPU) Frame() (bool, *image.RGBA) {
	if p.cycle == 257 && p.scanline == 239 {
		return true, p.picture
	} else {
		return false, nil
	}
}

// writePPUCTRL writes PPUCTRL ($2000).
func (p *PPU) writePPUCTRL(data byte) {
	p.nameTableFlag = data & 3
	p.vramIncrementFlag = (data >> 2) & 1
	p.spriteTableFlag = (data >> 3) & 1
	p.backgroundTableFlag = (data >> 4) & 1
	p.spriteSizeFlag = (data >> 5) & 1
	p.masterSlaveSelectFlag = (data >> 6) & 1
	p.nmiOutput = (data>>7)&1 == 1
	// t: ...GH.. ........ <- d: ......GH
	p.t = (p.t & 0xF3FF) | ((uint16(data) & 0x03) << 10)
}

// writePPUMASK writes PPUMASK ($2001).
func (p *PPU) writePPUMASK(data byte) {
	p.grayScale = data&1 == 1
	p.showLeftBackground = (data>>1)&1 == 1
	p.showLeftSprite = (data>>2)&1 == 1
	p.showBackground = (data>>3)&1 == 1
	p.showSprite = (data>>4)&1 == 1
	p.emphasizeRed = (data>>5)&1 == 1
	p.emphasizeGreen = (data>>6)&1 == 1
	p.emphasizeBlue = (data>>7)&1 == 1
}

// readPPUSTATUS reads PPUSTATUS ($2002).
func (p *PPU) readPPUSTATUS() byte {
	res := p.register & 0x1F
	if p.spriteOverflow {
		res |= 1 << 5
	}
	if p.spriteZeroHit {
		res |= 1 << 6
	}
	// Some implementations return current NMI, but as per nesdev:
	// "Return old status of NMI_occurred in bit 7, then set NMI_occurred to false."
	// https://www.nesdev.org/wiki/NMI
	if p.oldNMI {
		res |= 1 << 7
	}
	p.updateNMI(false)
	p.w = false
	return res
}

// writeOAMADDR writes OAMADDR ($2003).
func (p *PPU) writeOAMADDR(data byte) {
	p.oamAddress = data
}

// readOAMDATA reads OAMDATA ($2004).
func (p *PPU) readOAMDATA() byte {
	return p.primaryOAM[p.oamAddress]
}

// writeOAMDATA writes OAMDATA ($2004).
func (p *PPU) writeOAMDATA(data byte) {
	p.primaryOAM[p.oamAddress] = data
	p.oamAddress++
}

// writePPUSCROLL writes PPUSCROLL ($2005).
func (p *PPU) writePPUSCROLL(data byte) {
	if !p.w {
		// x-scroll
		// t: ....... ...ABCDE <- d: ABCDE...
		// x:              FGH <- d: .....FGH
		// w:                  <- 1
		p.t = (p.t & 0xFFE0) | (uint16(data) >> 3)
		p.x = data & 7
		p.w = true
	} else {
		// y-scroll
		// t: FGH..AB CDE..... <- d: ABCDEFGH
		// w:                  <- 0
		// ->
		// t: .FGH .... .... .... <- d: .... .FGH
		p.t = (p.t & 0x8FFF) | ((uint16(data) & 0x07) << 12)
		// t: .... ..AB CDE. .... <- d: ABCD E...
		p.t = (p.t & 0xFC1F) | ((uint16(data) & 0xF8) << 2)
		p.w = false
	}
}

// writePPUADDR writes PPUADDR ($2006).
func (p *PPU) writePPUADDR(data byte) {
	if !p.w {
		// t: ..CD EFGH .... .... <- d: ..CDEFGH
		//    <unused>     <- d: AB......
		// t: Z...... ........ <- 0 (bit Z is cleared)
		// w:                  <- 1
		p.t = (p.t & 0x00FF) | ((uint16(data) & 0x3F) << 8)
		p.w = true
	} else {
		// t: ....... ABCDEFGH <- d: ABCDEFGH
		// v: <...all bits...> <- t: <...all bits...>
		// w:                  <- 0
		p.t = (p.t & 0xFF00) | uint16(data)
		p.v = p.t
		p.w = false
	}
}

// writePPUDATA writes PPUDATA ($2007).
func (p *PPU) writePPUDATA(data byte) error {
	// writing to paletteRAM
	if 0x3F00 <= p.v {
		p.paletteRAM.write(p.v, data)
	} else {
		if err := p.bus.write(p.v, data); err != nil {
			return fmt.Errorf("Failed to write PPUDATA: %w", err)
		}
	}
	if p.vramIncrementFlag == 0 {
		p.v++
	} else {
		p.v += 32
	}
	return nil
}

// readPPUDATA reads PPUDATA ($2007).
func (p *PPU) readPPUDATA() (byte, error) {
	var data byte
	// Here buffers data if the address is not paletteRAM, because paletteRAM access is faster than bus access.
	if p.v < 0x3F00 {
		read, err := p.bus.read(p.v)
		if err != nil {
			return 0, fmt.Errorf("Failed to read PPUDATA: %w", err)
		}
		data = p.buffer
		p.buffer = read
	} else {
		// Palette reads return directly; the buffer is refilled from the
		// nametable byte underneath ($2F00-$2FFF).
		data = p.paletteRAM.read(p.v)
		read, err := p.bus.read(p.v - 0x1000)
		if err != nil {
			return 0, fmt.Errorf("Failed to read PPUDATA: %w", err)
		}
		p.buffer = read
	}
	if p.vramIncrementFlag == 0 {
		p.v++
	} else {
		p.v += 32
	}
	return data, nil
}

func (p *PPU) updateNMI(flag bool) {
	p.nmiOccurred = flag
	p.oldNMI = p.nmiOccurred
}

// buildFrame rasterizes the background and sprite compositing planes once
// per frame, and snapshots the scroll position the scanline compositor will
// read back for every visible line.
func (p *PPU) buildFrame() error {
	for i := range p.frameBG {
		p.frameBG[i] = 0
	}
	for i := range p.frameSpriteFG {
		p.frameSpriteFG[i] = 0
		p.frameSpriteBG[i] = 0
	}

	coarseX := p.t & 0x001F
	coarseY := (p.t >> 5) & 0x001F
	fineY := (p.t >> 12) & 0x0007
	ntX := (p.t >> 10) & 1
	ntY := (p.t >> 11) & 1
	p.scrollX = int(coarseX)*8 + int(p.x) + width*int(ntX)
	p.scrollY = int(coarseY)*8 + int(fineY) + height*int(ntY)

	if err := p.rasterizeBackground(); err != nil {
		return fmt.Errorf("Failed to rasterize background: %w", err)
	}
	if err := p.rasterizeSprites(); err != nil {
		return fmt.Errorf("Failed to rasterize sprites: %w", err)
	}
	return nil
}

// rasterizeBackground renders the full 2x2 tiled nametable grid (mirrored
// per the cartridge's MirrorMode) into frameBG.
// Reference: https://www.nesdev.org/wiki/PPU_scrolling (attribute layout)
func (p *PPU) rasterizeBackground() error {
	for tileY := 0; tileY < bgHeight/8; tileY++ {
		nt := 0
		if tileY/30 == 1 {
			nt += 2
		}
		localTileY := tileY % 30
		for tileX := 0; tileX < bgWidth/8; tileX++ {
			tableNT := nt
			if tileX/32 == 1 {
				tableNT++
			}
			localTileX := tileX % 32

			nameAddr := uint16(0x2000+tableNT*0x400) + uint16(localTileY)*32 + uint16(localTileX)
			nameByte, err := p.bus.read(nameAddr)
			if err != nil {
				return err
			}
			attrAddr := uint16(0x23C0+tableNT*0x400) + uint16(localTileY/4)*8 + uint16(localTileX/4)
			attrByte, err := p.bus.read(attrAddr)
			if err != nil {
				return err
			}
			quadrant := byte((localTileY%4)/2)<<1 | byte((localTileX%4)/2)
			palette := (attrByte >> (quadrant * 2)) & 3

			for fineY := uint16(0); fineY < 8; fineY++ {
				address := 0x1000*uint16(p.backgroundTableFlag) + uint16(nameByte)*16 + fineY
				lowTileByte, err := p.bus.read(address)
				if err != nil {
					return err
				}
				highTileByte, err := p.bus.read(address + 8)
				if err != nil {
					return err
				}
				y := tileY*8 + int(fineY)
				for fineX := 0; fineX < 8; fineX++ {
					shift := 7 - fineX
					value := (lowTileByte>>shift)&1 + (highTileByte>>shift)&1
					if value == 0 {
						continue
					}
					x := tileX*8 + fineX
					p.frameBG[y*bgWidth+x] = planeOpaque | (palette<<2+value)&planeAddrMask
				}
			}
		}
	}
	return nil
}

// rasterizeSprites renders all 64 OAM entries into frameSpriteFG/
// frameSpriteBG, lower OAM indices taking priority on overlap within the
// same plane; only 8x8 sprites are supported.
// Reference: https://www.nesdev.org/wiki/PPU_OAM
func (p *PPU) rasterizeSprites() error {
	for i := 0; i < 64; i++ {
		y := int(p.primaryOAM[i*4])
		tile := p.primaryOAM[i*4+1]
		attribute := p.primaryOAM[i*4+2]
		x := int(p.primaryOAM[i*4+3])
		priority := (attribute >> 5) & 1
		horizontalFlip := (attribute>>6)&1 == 1
		verticalFlip := (attribute>>7)&1 == 1
		palette := attribute & 3

		target := &p.frameSpriteFG
		if priority == 1 {
			target = &p.frameSpriteBG
		}
		var marker planePixel
		if i == 0 {
			marker = planeSpriteZero
		}

		for row := 0; row < 8; row++ {
			screenY := y - 1 + row
			if screenY < 0 || screenY >= height {
				continue
			}
			h := row
			if verticalFlip {
				h = 7 - row
			}
			address := 0x1000*uint16(p.spriteTableFlag) + uint16(tile)*16 + uint16(h)
			lowTileByte, err := p.bus.read(address)
			if err != nil {
				return err
			}
			highTileByte, err := p.bus.read(address + 8)
			if err != nil {
				return err
			}
			for col := 0; col < 8; col++ {
				screenX := x + col
				if screenX >= width {
					continue
				}
				shift := 7 - col
				if horizontalFlip {
					shift = col
				}
				value := (lowTileByte>>shift)&1 + (highTileByte>>shift)&1
				if value == 0 {
					continue
				}
				idx := screenY*width + screenX
				if target[idx]&planeOpaque != 0 {
					continue // a lower OAM index already claimed this pixel
				}
				addr := ((palette+4)*4 + value) & planeAddrMask
				target[idx] = planeOpaque | marker | addr
			}
		}
	}
	return nil
}

// compositeScanline draws one visible scanline from the frame's compositing
// planes: foreground sprite, then scrolled background, then background
// sprite, then the universal backdrop. A sprite-0 marker overlapping an
// opaque background pixel latches the sprite-0-hit flag.
func (p *PPU) compositeScanline(y int) {
	bgRow := ((p.scrollY + y) % bgHeight) * bgWidth
	for x := 0; x < width; x++ {
		bg := p.frameBG[bgRow+(p.scrollX+x)%bgWidth]
		fg := p.frameSpriteFG[y*width+x]
		back := p.frameSpriteBG[y*width+x]

		bgOpaque := bg&planeOpaque != 0
		if bgOpaque && (fg&planeSpriteZero != 0 || back&planeSpriteZero != 0) {
			p.spriteZeroHit = true
		}

		var paletteAddr uint16
		switch {
		case fg&planeOpaque != 0:
			paletteAddr = 0x3F00 | uint16(fg&planeAddrMask)
		case bgOpaque:
			paletteAddr = 0x3F00 | uint16(bg&planeAddrMask)
		case back&planeOpaque != 0:
			paletteAddr = 0x3F00 | uint16(back&planeAddrMask)
		default:
			paletteAddr = 0x3F00
		}
		p.picture.SetRGBA(x, y, colors[p.paletteRAM.read(paletteAddr)])
	}
}

// Step emulates a cycle of PPU. Per spec.md §4.3: at the start of the frame
// the compositing planes are rebuilt, and each visible scanline is
// composited from them at the start of that line.
// Reference:
//   https://www.nesdev.org/wiki/PPU_rendering
//   https://www.nesdev.org/wiki/File:Ntsc_timing.png
func (p *PPU) Step() (bool, error) {
	// tick.
	p.cycle++
	if p.cycle == 341 {
		p.cycle = 0
		p.scanline++
		if p.scanline == 262 {
			p.scanline = 0
		}
	}
	if p.cycle == 1 {
		if p.scanline == 0 {
			if err := p.buildFrame(); err != nil {
				return false, fmt.Errorf("Failed to build a frame: %w", err)
			}
		}
		if p.scanline < height {
			p.compositeScanline(p.scanline)
		}
	}
	// set vblank
	if p.scanline == 241 && p.cycle == 1 {
		p.updateNMI(true)
	}
	// clear vblank
	if p.scanline == 261 && p.cycle == 1 {
		p.spriteOverflow = false
		p.spriteZeroHit = false
		p.updateNMI(false)
	}
	// Here makes sure that only 1 NMI happens per frame.
	if p.nmiOutput && p.nmiOccurred && p.scanline == 241 && p.cycle == 1 {
		return true, nil
	} else {
		return false, nil
	}
}
