package nes

import (
	"fmt"

	"github.com/golang/glog"
)

// CPUBus decodes the CPU's 16-bit address space.
// 0x0000 - 0x07FF	WRAM
// 0x0800 - 0x1FFF	WRAM Mirror
// 0x2000 - 0x2007	PPU Registers
// 0x2008 - 0x3FFF	PPU Registers Mirror
// 0x4000 - 0x4013	APU Registers
// 0x4014		OAMDMA (serviced by CPU, see CPU.write)
// 0x4015		APU Status
// 0x4016		Controller 1
// 0x4017		APU frame counter / Controller 2 (2P not implemented)
// 0x4018 - 0x401F	Unused
// 0x4020 - 0x5FFF	Extended RAM (not implemented)
// 0x6000 - 0x7FFF	Battery Backup RAM (not implemented)
// 0x8000 - 0xFFFF	PRG ROM, via the cartridge's Mapper
type CPUBus struct {
	wram       *RAM
	ppu        *PPU
	apu        *APU
	cartridge  *Cartridge
	controller *Controller
}

// NewCPUBus creates a new Bus for CPU.
func NewCPUBus(wram *RAM, ppu *PPU, apu *APU, cartridge *Cartridge, controller *Controller) *CPUBus {
	return &CPUBus{wram, ppu, apu, cartridge, controller}
}

// writeOAMDMA writes OAMDATA to PPU; called by CPU once it has read all 256
// bytes from the source page.
func (b *CPUBus) writeOAMDMA(data [256]byte) {
	b.ppu.primaryOAM = data
}

func (b *CPUBus) readPPURegister(address uint16) (byte, error) {
	switch address {
	case 0x2002:
		return b.ppu.readPPUSTATUS(), nil
	case 0x2004:
		return b.ppu.readOAMDATA(), nil
	case 0x2007:
		return b.ppu.readPPUDATA()
	default:
		// Write-only registers read back open bus; we return 0 rather than
		// modeling it, per spec.md §1 open-bus non-goal.
		return 0, nil
	}
}

// read reads a byte.
func (b *CPUBus) read(address uint16) (byte, error) {
	switch {
	case address < 0x2000:
		return b.wram.read(address % 0x0800), nil
	case address < 0x4000:
		return b.readPPURegister(0x2000 + (address-0x2000)%8)
	case address == 0x4015:
		return b.apu.readStatus(), nil
	case address == 0x4016:
		return b.controller.read(), nil
	case address == 0x4017:
		return 0, nil // second controller, not implemented
	case address < 0x4020:
		glog.V(2).Infof("nes: unimplemented CPU bus read: address=0x%04x", address)
		return 0, nil
	case 0x8000 <= address:
		return b.cartridge.Mapper.ReadPRG(address), nil
	default:
		glog.V(2).Infof("nes: unmapped CPU bus read: address=0x%04x", address)
		return 0, nil
	}
}

// read16 reads 2 bytes, little-endian.
func (b *CPUBus) read16(address uint16) (uint16, error) {
	lo, err := b.read(address)
	if err != nil {
		return 0, err
	}
	hi, err := b.read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (b *CPUBus) writeToPPURegisters(address uint16, data byte) error {
	switch address {
	case 0x2000:
		b.ppu.writePPUCTRL(data)
	case 0x2001:
		b.ppu.writePPUMASK(data)
	case 0x2003:
		b.ppu.writeOAMADDR(data)
	case 0x2004:
		b.ppu.writeOAMDATA(data)
	case 0x2005:
		b.ppu.writePPUSCROLL(data)
	case 0x2006:
		b.ppu.writePPUADDR(data)
	case 0x2007:
		return b.ppu.writePPUDATA(data)
	}
	return nil
}

// write writes a byte.
func (b *CPUBus) write(address uint16, data byte) error {
	switch {
	case address < 0x2000:
		b.wram.write(address%0x0800, data)
	case address < 0x4000:
		return b.writeToPPURegisters(0x2000+(address-0x2000)%8, data)
	case address == 0x4014:
		return fmt.Errorf("nes: CPUBus.write illegally called for OAMDMA ($4014); CPU.write must handle it")
	case 0x4000 <= address && address <= 0x4013:
		b.apu.writeRegister(address, data)
	case address == 0x4015:
		b.apu.writeStatus(data)
	case address == 0x4016:
		b.controller.write(data)
	case address == 0x4017:
		b.apu.writeFrameCounter(data)
	case address < 0x4020:
		glog.V(2).Infof("nes: unimplemented CPU bus write: address=0x%04x, data=0x%02x", address, data)
	case 0x8000 <= address:
		b.cartridge.Mapper.WritePRG(address, data)
	default:
		glog.V(2).Infof("nes: unmapped CPU bus write: address=0x%04x, data=0x%02x", address, data)
	}
	return nil
}
