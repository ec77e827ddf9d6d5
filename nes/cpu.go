package nes

import "fmt"

// CPU emulates NES CPU - a custom 6502 made by RICOH.
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   http://www.6502.org/tutorials/6502opcodes.html
//   https://www.nesdev.org/6502_cpu.txt (unofficial opcodes)

const CPUFrequency = 1789773

type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immdiate
	zeropage
	zeropageX
	zeropageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
)

// status holds the processor flags: C,Z,I,D,B,U,V,N.
type status struct {
	C bool // carry
	Z bool // zero
	I bool // IRQ disable
	D bool // decimal - unused on NES
	B bool // break
	U bool // unused, always read back as 1
	V bool // overflow
	N bool // negative
}

// encode encodes the status to a byte.
func (s *status) encode() byte {
	var res byte
	if s.C {
		res |= 1 << 0
	}
	if s.Z {
		res |= 1 << 1
	}
	if s.I {
		res |= 1 << 2
	}
	if s.D {
		res |= 1 << 3
	}
	if s.B {
		res |= 1 << 4
	}
	if s.U {
		res |= 1 << 5
	}
	if s.V {
		res |= 1 << 6
	}
	if s.N {
		res |= 1 << 7
	}
	return res
}

// decodeFrom decodes a byte to the status.
func (s *status) decodeFrom(data byte) {
	s.C = (data>>0)&1 == 1
	s.Z = (data>>1)&1 == 1
	s.I = (data>>2)&1 == 1
	s.D = (data>>3)&1 == 1
	s.B = (data>>4)&1 == 1
	s.U = true // bit 5 is not stored; it always reads back as 1
	s.V = (data>>6)&1 == 1
	s.N = (data>>7)&1 == 1
}

// execute runs one instruction's semantics given its decoded operand
// address; the returned bool is only meaningful for branch instructions and
// reports whether the branch was taken.
type instruction struct {
	mnemonic     string
	mode         addressingMode
	execute      func(*CPU, addressingMode, uint16) (bool, error)
	size         uint16
	cycles       int
	crossPenalty bool // +1 cycle if the addressing mode crosses a page boundary
	isBranch     bool
	undefined    bool
}

// CPU is the register file plus the bus it executes against.
type CPU struct {
	p  status
	a  byte
	x  byte
	y  byte
	pc uint16
	s  byte

	lastExecution string // for debug
	stall         uint64 // stall cycles, e.g. from OAMDMA

	bus          *CPUBus
	instructions [256]instruction

	nmiTriggered bool
	irqTriggered bool

	traceSink func(line string)
}

// NewCPU creates a new NES CPU. Call Reset before use.
func NewCPU(bus *CPUBus) *CPU {
	c := &CPU{bus: bus}
	c.instructions = createInstructions()
	return c
}

// SetTraceSink installs (or clears, with nil) the per-instruction trace
// callback used by --debug.
func (c *CPU) SetTraceSink(sink func(line string)) {
	c.traceSink = sink
}

// Reset does the power-up/reset sequence: P=0x24, S=0xFD, PC from 0xFFFC.
func (c *CPU) Reset() error {
	pc, err := c.bus.read16(0xFFFC)
	if err != nil {
		return fmt.Errorf("nes: reading reset vector: %w", err)
	}
	c.pc = pc
	c.s = 0xFD
	c.p.decodeFrom(0x24)
	return nil
}

// write wraps c.bus.write to service OAMDMA, since the CPU itself pays the
// stall cycles for it.
func (c *CPU) write(address uint16, data byte) error {
	if address == 0x4014 {
		var oamData [256]byte
		offset := uint16(data) << 8
		for i := 0; i < 256; i++ {
			v, err := c.bus.read(offset + uint16(i))
			if err != nil {
				return fmt.Errorf("nes: OAMDMA read: %w", err)
			}
			oamData[i] = v
		}
		c.bus.writeOAMDMA(oamData)
		// The real stall is 513 cycles, or 514 when the write lands on an
		// odd CPU cycle; this always charges the 513-cycle (even) cost.
		c.stall += 513
		return nil
	}
	return c.bus.write(address, data)
}

func (c *CPU) setN(x byte) { c.p.N = x&0x80 != 0 }
func (c *CPU) setZ(x byte) { c.p.Z = x == 0 }
func (c *CPU) setNZ(x byte) {
	c.setN(x)
	c.setZ(x)
}

// push pushes data to stack. "With the 6502, the stack is always on page
// one ($100-$1FF) and works top down."
func (c *CPU) push(x byte) error {
	err := c.write(0x100|uint16(c.s), x)
	c.s--
	return err
}

// pop pops data from stack.
func (c *CPU) pop() (byte, error) {
	c.s++
	return c.bus.read(0x100 | uint16(c.s))
}

func (c *CPU) pushAddress(addr uint16) error {
	if err := c.push(byte(addr >> 8)); err != nil {
		return err
	}
	return c.push(byte(addr))
}

func (c *CPU) popAddress() (uint16, error) {
	lo, err := c.pop()
	if err != nil {
		return 0, err
	}
	hi, err := c.pop()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// dispatchInterrupt performs the shared push-vector-load sequence for
// NMI/IRQ/BRK. brk distinguishes a software BRK (pushes flags with B set)
// from a hardware interrupt (B clear).
func (c *CPU) dispatchInterrupt(vector uint16, brk bool) (int, error) {
	if err := c.pushAddress(c.pc); err != nil {
		return 0, err
	}
	saved := c.p
	saved.B = brk
	saved.U = true
	if err := c.push(saved.encode()); err != nil {
		return 0, err
	}
	c.p.I = true
	pc, err := c.bus.read16(vector)
	if err != nil {
		return 0, err
	}
	c.pc = pc
	return 7, nil
}

// SetPC overrides the program counter, bypassing the reset vector. Used by
// --start-addr to boot test ROMs like nestest at a fixed entry point.
func (c *CPU) SetPC(pc uint16) {
	c.pc = pc
}

// TriggerNMI latches a pending non-maskable interrupt, drained by Step.
// This is called by the PPU when it enters vblank with NMI output enabled.
func (c *CPU) TriggerNMI() {
	c.nmiTriggered = true
}

// TriggerIRQ latches a pending maskable interrupt, drained by Step unless I
// is set. The console calls it when the APU's frame sequencer latches an
// IRQ.
func (c *CPU) TriggerIRQ() {
	c.irqTriggered = true
}

// Step performs one instruction cycle - fetch, decode, execute - or
// services a latched interrupt in place of a fetch. Returns the number of
// CPU cycles consumed.
func (c *CPU) Step() (int, error) {
	if 0 < c.stall {
		c.stall--
		c.lastExecution = fmt.Sprintf("CPU stall, pc=0x%04x, a=0x%02x, x=0x%02x, y=0x%02x, s=0x%02x", c.pc, c.a, c.x, c.y, c.s)
		return 1, nil
	}
	if c.nmiTriggered {
		c.nmiTriggered = false
		c.lastExecution = fmt.Sprintf("NMI, pc=0x%04x, a=0x%02x, x=0x%02x, y=0x%02x, s=0x%02x", c.pc, c.a, c.x, c.y, c.s)
		return c.dispatchInterrupt(0xFFFA, false)
	}
	if c.irqTriggered {
		c.irqTriggered = false
		if !c.p.I {
			c.lastExecution = fmt.Sprintf("IRQ, pc=0x%04x, a=0x%02x, x=0x%02x, y=0x%02x, s=0x%02x", c.pc, c.a, c.x, c.y, c.s)
			return c.dispatchInterrupt(0xFFFE, false)
		}
	}

	pc := c.pc
	opcode, err := c.bus.read(c.pc)
	if err != nil {
		return 0, fmt.Errorf("nes: fetching opcode: %w", err)
	}
	inst := c.instructions[opcode]
	if inst.undefined {
		return 0, fmt.Errorf("nes: unknown opcode 0x%02x at pc=0x%04x", opcode, c.pc)
	}

	operand, pageCrossed, err := c.decodeAddress(inst.mode)
	if err != nil {
		return 0, fmt.Errorf("nes: decoding operand for %s at pc=0x%04x: %w", inst.mnemonic, pc, err)
	}
	c.pc += inst.size

	if c.traceSink != nil {
		c.lastExecution = formatTrace(c, pc, opcode, inst, operand)
		c.traceSink(c.lastExecution)
	} else {
		c.lastExecution = fmt.Sprintf("pc=0x%04x, a=0x%02x, x=0x%02x, y=0x%02x, s=0x%02x, opcode=0x%02x, mnemonic=%s, operand=0x%04x",
			pc, c.a, c.x, c.y, c.s, opcode, inst.mnemonic, operand)
	}

	cycles := inst.cycles
	if inst.crossPenalty && pageCrossed {
		cycles++
	}

	taken, err := inst.execute(c, inst.mode, operand)
	if err != nil {
		return 0, fmt.Errorf("nes: executing %s at pc=0x%04x: %w", inst.mnemonic, pc, err)
	}
	if inst.isBranch && taken {
		cycles++
		if (pc+inst.size)&0xFF00 != operand&0xFF00 {
			cycles++
		}
	}

	return cycles, nil
}
