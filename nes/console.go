package nes

import "image"

// Console is the assembled machine: CPU+PPU+APU+cartridge+controller wired
// together and stepped in lockstep by the driver loop (spec.md §4.6/§5).
type Console interface {
	Reset() error
	Step() (int, error)
	Frame() (*image.RGBA, bool)
	SetAudioOut(chan float32)
	SetButtons([8]bool)
	SetPC(uint16)
	SetTraceSink(func(string))
	DebugCHRTable() *image.RGBA
	DebugNameTable() *image.RGBA
	DebugSprites() *image.RGBA
}

type NesConsole struct {
	cpu          *CPU
	ppu          *PPU
	apu          *APU
	controller   *Controller
	lastFrame    uint64
	currentFrame uint64
	buffer       *image.RGBA
}

// NewConsole creates a console wired up and reset, ready to Step.
func NewConsole(cartridge *Cartridge) (Console, error) {
	controller := NewController()
	ppuBus := NewPPUBus(NewRAM(), cartridge)
	ppu := NewPPU(ppuBus)
	apu := NewAPU()
	cpuBus := NewCPUBus(NewRAM(), ppu, apu, cartridge, controller)
	cpu := NewCPU(cpuBus)
	console := &NesConsole{cpu: cpu, ppu: ppu, apu: apu, controller: controller}
	if err := console.Reset(); err != nil {
		return nil, err
	}
	return console, nil
}

func (c *NesConsole) Reset() error {
	c.currentFrame = 0
	c.lastFrame = 0
	if err := c.cpu.Reset(); err != nil {
		return err
	}
	c.ppu.Reset()
	return nil
}

// Step executes one CPU instruction and returns how many CPU cycles were
// consumed, after ticking the PPU 3x and the APU 1x per cycle, the
// canonical NES clock ratio.
func (c *NesConsole) Step() (int, error) {
	cycles, err := c.cpu.Step()
	if err != nil {
		return cycles, err
	}
	for i := 0; i < cycles; i++ {
		c.apu.Step()
	}
	if c.apu.TakeIRQ() {
		c.cpu.TriggerIRQ()
	}
	for i := 0; i < cycles*3; i++ {
		nmi, err := c.ppu.Step()
		if err != nil {
			return cycles, err
		}
		if nmi {
			c.cpu.TriggerNMI()
		}
		if ok, f := c.ppu.Frame(); ok {
			c.currentFrame++
			c.buffer = f
		}
	}
	return cycles, nil
}

// Frame returns the most recently completed frame, and whether it is new
// since the last call.
func (c *NesConsole) Frame() (*image.RGBA, bool) {
	if c.lastFrame < c.currentFrame {
		c.lastFrame = c.currentFrame
		return c.buffer, true
	}
	return c.buffer, false
}

func (c *NesConsole) SetAudioOut(channel chan float32) {
	c.apu.SetAudioOut(channel)
}

func (c *NesConsole) SetButtons(buttons [8]bool) {
	c.controller.Set(buttons)
}

// SetPC overrides the CPU's program counter, for --start-addr.
func (c *NesConsole) SetPC(pc uint16) {
	c.cpu.SetPC(pc)
}

// SetTraceSink installs the per-instruction debug trace callback, for
// --debug.
func (c *NesConsole) SetTraceSink(sink func(string)) {
	c.cpu.SetTraceSink(sink)
}

// DebugCHRTable renders the pattern tables, for --show-chr-table.
func (c *NesConsole) DebugCHRTable() *image.RGBA {
	return c.ppu.DebugCHRTable()
}

// DebugNameTable renders the active nametable, for --show-name-table.
func (c *NesConsole) DebugNameTable() *image.RGBA {
	return c.ppu.DebugNameTable()
}

// DebugSprites renders the OAM sprite grid, for --show-sprite.
func (c *NesConsole) DebugSprites() *image.RGBA {
	return c.ppu.DebugSprites()
}
