package nes

// Opcode implementations. Each takes the decoded operand address (already
// resolved by decodeAddress) and returns whether a branch was taken (always
// false for non-branch instructions).

func (c *CPU) adc(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	x := uint16(c.a)
	y := uint16(m)
	var carry uint16
	if c.p.C {
		carry = 1
	}
	res := x + y + carry
	c.p.C = res > 0xFF
	c.p.V = (x^y)&0x80 == 0 && (x^res)&0x80 != 0
	c.a = byte(res)
	c.setNZ(c.a)
	return false, nil
}

func (c *CPU) and(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.a &= m
	c.setNZ(c.a)
	return false, nil
}

func (c *CPU) asl(mode addressingMode, operand uint16) (bool, error) {
	if mode == accumulator {
		c.p.C = (c.a>>7)&1 == 1
		c.a <<= 1
		c.setNZ(c.a)
		return false, nil
	}
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.p.C = (m>>7)&1 == 1
	m <<= 1
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.setNZ(m)
	return false, nil
}

func (c *CPU) bcc(mode addressingMode, operand uint16) (bool, error) {
	if !c.p.C {
		c.pc = operand
		return true, nil
	}
	return false, nil
}

func (c *CPU) bcs(mode addressingMode, operand uint16) (bool, error) {
	if c.p.C {
		c.pc = operand
		return true, nil
	}
	return false, nil
}

func (c *CPU) beq(mode addressingMode, operand uint16) (bool, error) {
	if c.p.Z {
		c.pc = operand
		return true, nil
	}
	return false, nil
}

func (c *CPU) bit(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.setZ(c.a & m)
	c.p.N = (m>>7)&1 == 1
	c.p.V = (m>>6)&1 == 1
	return false, nil
}

func (c *CPU) bmi(mode addressingMode, operand uint16) (bool, error) {
	if c.p.N {
		c.pc = operand
		return true, nil
	}
	return false, nil
}

func (c *CPU) bne(mode addressingMode, operand uint16) (bool, error) {
	if !c.p.Z {
		c.pc = operand
		return true, nil
	}
	return false, nil
}

func (c *CPU) bpl(mode addressingMode, operand uint16) (bool, error) {
	if !c.p.N {
		c.pc = operand
		return true, nil
	}
	return false, nil
}

func (c *CPU) brk(mode addressingMode, operand uint16) (bool, error) {
	c.pc++ // BRK pushes PC+1, i.e. it skips the padding byte following it.
	_, err := c.dispatchInterrupt(0xFFFE, true)
	return false, err
}

func (c *CPU) bvc(mode addressingMode, operand uint16) (bool, error) {
	if !c.p.V {
		c.pc = operand
		return true, nil
	}
	return false, nil
}

func (c *CPU) bvs(mode addressingMode, operand uint16) (bool, error) {
	if c.p.V {
		c.pc = operand
		return true, nil
	}
	return false, nil
}

func (c *CPU) clc(mode addressingMode, operand uint16) (bool, error) {
	c.p.C = false
	return false, nil
}

func (c *CPU) cld(mode addressingMode, operand uint16) (bool, error) {
	c.p.D = false // decimal mode has no effect on NES hardware, but the flag is real
	return false, nil
}

func (c *CPU) cli(mode addressingMode, operand uint16) (bool, error) {
	c.p.I = false
	return false, nil
}

func (c *CPU) clv(mode addressingMode, operand uint16) (bool, error) {
	c.p.V = false
	return false, nil
}

func (c *CPU) compare(reg byte, operand uint16) error {
	m, err := c.bus.read(operand)
	if err != nil {
		return err
	}
	c.p.C = reg >= m
	c.setNZ(reg - m)
	return nil
}

func (c *CPU) cmp(mode addressingMode, operand uint16) (bool, error) { return false, c.compare(c.a, operand) }
func (c *CPU) cpx(mode addressingMode, operand uint16) (bool, error) { return false, c.compare(c.x, operand) }
func (c *CPU) cpy(mode addressingMode, operand uint16) (bool, error) { return false, c.compare(c.y, operand) }

func (c *CPU) dec(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	m--
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.setNZ(m)
	return false, nil
}

func (c *CPU) dex(mode addressingMode, operand uint16) (bool, error) {
	c.x--
	c.setNZ(c.x)
	return false, nil
}

func (c *CPU) dey(mode addressingMode, operand uint16) (bool, error) {
	c.y--
	c.setNZ(c.y)
	return false, nil
}

func (c *CPU) eor(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.a ^= m
	c.setNZ(c.a)
	return false, nil
}

func (c *CPU) inc(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	m++
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.setNZ(m)
	return false, nil
}

func (c *CPU) inx(mode addressingMode, operand uint16) (bool, error) {
	c.x++
	c.setNZ(c.x)
	return false, nil
}

func (c *CPU) iny(mode addressingMode, operand uint16) (bool, error) {
	c.y++
	c.setNZ(c.y)
	return false, nil
}

func (c *CPU) jmp(mode addressingMode, operand uint16) (bool, error) {
	c.pc = operand
	return false, nil
}

func (c *CPU) jsr(mode addressingMode, operand uint16) (bool, error) {
	ret := c.pc - 1
	if err := c.pushAddress(ret); err != nil {
		return false, err
	}
	c.pc = operand
	return false, nil
}

func (c *CPU) lda(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.a = m
	c.setNZ(c.a)
	return false, nil
}

func (c *CPU) ldx(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.x = m
	c.setNZ(c.x)
	return false, nil
}

func (c *CPU) ldy(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.y = m
	c.setNZ(c.y)
	return false, nil
}

func (c *CPU) lsr(mode addressingMode, operand uint16) (bool, error) {
	if mode == accumulator {
		c.p.C = c.a&1 == 1
		c.a >>= 1
		c.setNZ(c.a)
		return false, nil
	}
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.p.C = m&1 == 1
	m >>= 1
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.setNZ(m)
	return false, nil
}

func (c *CPU) nop(mode addressingMode, operand uint16) (bool, error) { return false, nil }

func (c *CPU) ora(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.a |= m
	c.setNZ(c.a)
	return false, nil
}

func (c *CPU) pha(mode addressingMode, operand uint16) (bool, error) { return false, c.push(c.a) }

func (c *CPU) php(mode addressingMode, operand uint16) (bool, error) {
	saved := c.p
	saved.B = true
	saved.U = true
	return false, c.push(saved.encode())
}

func (c *CPU) pla(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.pop()
	if err != nil {
		return false, err
	}
	c.a = m
	c.setNZ(c.a)
	return false, nil
}

func (c *CPU) plp(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.pop()
	if err != nil {
		return false, err
	}
	c.p.decodeFrom(m)
	return false, nil
}

func (c *CPU) rol(mode addressingMode, operand uint16) (bool, error) {
	var carry byte
	if c.p.C {
		carry = 1
	}
	if mode == accumulator {
		c.p.C = (c.a>>7)&1 == 1
		c.a = (c.a << 1) | carry
		c.setNZ(c.a)
		return false, nil
	}
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.p.C = (m>>7)&1 == 1
	m = (m << 1) | carry
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.setNZ(m)
	return false, nil
}

func (c *CPU) ror(mode addressingMode, operand uint16) (bool, error) {
	var carry byte
	if c.p.C {
		carry = 1
	}
	if mode == accumulator {
		c.p.C = c.a&1 == 1
		c.a = (c.a >> 1) | (carry << 7)
		c.setNZ(c.a)
		return false, nil
	}
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.p.C = m&1 == 1
	m = (m >> 1) | (carry << 7)
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.setNZ(m)
	return false, nil
}

func (c *CPU) rti(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.pop()
	if err != nil {
		return false, err
	}
	c.p.decodeFrom(m)
	pc, err := c.popAddress()
	if err != nil {
		return false, err
	}
	c.pc = pc
	return false, nil
}

func (c *CPU) rts(mode addressingMode, operand uint16) (bool, error) {
	pc, err := c.popAddress()
	if err != nil {
		return false, err
	}
	c.pc = pc + 1
	return false, nil
}

// sbc's carry-out is the "no borrow occurred" flag: d = A + (0xFF - M) + C,
// and d>0xFF means the subtraction did not need to borrow, matching the
// 6502's actual addition of the one's complement of the operand.
func (c *CPU) sbc(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	x := uint16(c.a)
	y := uint16(m)
	var carry uint16
	if c.p.C {
		carry = 1
	}
	d := x + (0xFF - y) + carry
	c.p.C = d > 0xFF
	c.p.V = (x^y)&0x80 != 0 && (x^d)&0x80 != 0
	c.a = byte(d)
	c.setNZ(c.a)
	return false, nil
}

func (c *CPU) sec(mode addressingMode, operand uint16) (bool, error) {
	c.p.C = true
	return false, nil
}

func (c *CPU) sed(mode addressingMode, operand uint16) (bool, error) {
	c.p.D = true
	return false, nil
}

func (c *CPU) sei(mode addressingMode, operand uint16) (bool, error) {
	c.p.I = true
	return false, nil
}

func (c *CPU) sta(mode addressingMode, operand uint16) (bool, error) {
	return false, c.write(operand, c.a)
}

func (c *CPU) stx(mode addressingMode, operand uint16) (bool, error) {
	return false, c.write(operand, c.x)
}

func (c *CPU) sty(mode addressingMode, operand uint16) (bool, error) {
	return false, c.write(operand, c.y)
}

func (c *CPU) tax(mode addressingMode, operand uint16) (bool, error) {
	c.x = c.a
	c.setNZ(c.x)
	return false, nil
}

func (c *CPU) tay(mode addressingMode, operand uint16) (bool, error) {
	c.y = c.a
	c.setNZ(c.y)
	return false, nil
}

func (c *CPU) tsx(mode addressingMode, operand uint16) (bool, error) {
	c.x = c.s
	c.setNZ(c.x)
	return false, nil
}

func (c *CPU) txa(mode addressingMode, operand uint16) (bool, error) {
	c.a = c.x
	c.setNZ(c.a)
	return false, nil
}

func (c *CPU) txs(mode addressingMode, operand uint16) (bool, error) {
	c.s = c.x
	return false, nil
}

func (c *CPU) tya(mode addressingMode, operand uint16) (bool, error) {
	c.a = c.y
	c.setNZ(c.a)
	return false, nil
}

// --- unofficial opcodes, grounded on https://www.nesdev.org/6502_cpu.txt ---

// lax loads both A and X from memory in one instruction.
func (c *CPU) lax(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.a = m
	c.x = m
	c.setNZ(c.a)
	return false, nil
}

// sax stores A&X, untouched by flags.
func (c *CPU) sax(mode addressingMode, operand uint16) (bool, error) {
	return false, c.write(operand, c.a&c.x)
}

// dcp decrements memory then compares it against A (DEC+CMP fused).
func (c *CPU) dcp(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	m--
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.p.C = c.a >= m
	c.setNZ(c.a - m)
	return false, nil
}

// isb increments memory then subtracts it from A with carry (INC+SBC fused).
func (c *CPU) isb(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	m++
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	x := uint16(c.a)
	y := uint16(m)
	var carry uint16
	if c.p.C {
		carry = 1
	}
	d := x + (0xFF - y) + carry
	c.p.C = d > 0xFF
	c.p.V = (x^y)&0x80 != 0 && (x^d)&0x80 != 0
	c.a = byte(d)
	c.setNZ(c.a)
	return false, nil
}

// slo shifts memory left then ORs it into A (ASL+ORA fused).
func (c *CPU) slo(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.p.C = (m>>7)&1 == 1
	m <<= 1
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.a |= m
	c.setNZ(c.a)
	return false, nil
}

// rla rotates memory left then ANDs it into A (ROL+AND fused).
func (c *CPU) rla(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	var carry byte
	if c.p.C {
		carry = 1
	}
	c.p.C = (m>>7)&1 == 1
	m = (m << 1) | carry
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.a &= m
	c.setNZ(c.a)
	return false, nil
}

// sre shifts memory right then EORs it into A (LSR+EOR fused).
func (c *CPU) sre(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	c.p.C = m&1 == 1
	m >>= 1
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	c.a ^= m
	c.setNZ(c.a)
	return false, nil
}

// rra rotates memory right then adds it into A with carry (ROR+ADC fused).
func (c *CPU) rra(mode addressingMode, operand uint16) (bool, error) {
	m, err := c.bus.read(operand)
	if err != nil {
		return false, err
	}
	var carry byte
	if c.p.C {
		carry = 1
	}
	newCarry := m&1 == 1
	m = (m >> 1) | (carry << 7)
	if err := c.write(operand, m); err != nil {
		return false, err
	}
	x := uint16(c.a)
	y := uint16(m)
	var addCarry uint16
	if newCarry {
		addCarry = 1
	}
	res := x + y + addCarry
	c.p.C = res > 0xFF
	c.p.V = (x^y)&0x80 == 0 && (x^res)&0x80 != 0
	c.a = byte(res)
	c.setNZ(c.a)
	return false, nil
}
