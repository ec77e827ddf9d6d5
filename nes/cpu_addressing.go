package nes

// decodeAddress resolves the effective address (for immediate, the address
// of the operand byte; for relative, the branch target) for mode at the
// current PC, and reports whether the
// base and indexed addresses land in different pages (used for the +1
// page-cross cycle penalty on read-only indexed modes).
// Reference: http://www.6502.org/tutorials/6502opcodes.html#ADDR
func (c *CPU) decodeAddress(mode addressingMode) (uint16, bool, error) {
	switch mode {
	case implied, accumulator:
		return 0, false, nil
	case immdiate:
		return c.pc + 1, false, nil
	case zeropage:
		v, err := c.bus.read(c.pc + 1)
		return uint16(v), false, err
	case zeropageX:
		v, err := c.bus.read(c.pc + 1)
		if err != nil {
			return 0, false, err
		}
		return uint16(v+c.x) & 0xFF, false, nil
	case zeropageY:
		v, err := c.bus.read(c.pc + 1)
		if err != nil {
			return 0, false, err
		}
		return uint16(v+c.y) & 0xFF, false, nil
	case relative:
		offset, err := c.bus.read(c.pc + 1)
		if err != nil {
			return 0, false, err
		}
		if offset < 0x80 {
			return c.pc + 2 + uint16(offset), false, nil
		}
		return c.pc + 2 + uint16(offset) - 0x100, false, nil
	case absolute:
		v, err := c.bus.read16(c.pc + 1)
		return v, false, err
	case absoluteX:
		base, err := c.bus.read16(c.pc + 1)
		if err != nil {
			return 0, false, err
		}
		addr := base + uint16(c.x)
		return addr, (base & 0xFF00) != (addr & 0xFF00), nil
	case absoluteY:
		base, err := c.bus.read16(c.pc + 1)
		if err != nil {
			return 0, false, err
		}
		addr := base + uint16(c.y)
		return addr, (base & 0xFF00) != (addr & 0xFF00), nil
	case indirect:
		// JMP ($xxFF) famously fails to cross a page: the high byte is
		// fetched from $xx00, not $(xx+1)00.
		ptr, err := c.bus.read16(c.pc + 1)
		if err != nil {
			return 0, false, err
		}
		lo, err := c.bus.read(ptr)
		if err != nil {
			return 0, false, err
		}
		hiAddr := (ptr & 0xFF00) | uint16(byte(ptr)+1)
		hi, err := c.bus.read(hiAddr)
		if err != nil {
			return 0, false, err
		}
		return uint16(hi)<<8 | uint16(lo), false, nil
	case indirectX:
		base, err := c.bus.read(c.pc + 1)
		if err != nil {
			return 0, false, err
		}
		ptr := uint16(base+c.x) & 0xFF
		lo, err := c.bus.read(ptr)
		if err != nil {
			return 0, false, err
		}
		hi, err := c.bus.read((ptr + 1) & 0xFF)
		if err != nil {
			return 0, false, err
		}
		return uint16(hi)<<8 | uint16(lo), false, nil
	case indirectY:
		base, err := c.bus.read(c.pc + 1)
		if err != nil {
			return 0, false, err
		}
		lo, err := c.bus.read(uint16(base))
		if err != nil {
			return 0, false, err
		}
		hi, err := c.bus.read(uint16(base+1) & 0xFF)
		if err != nil {
			return 0, false, err
		}
		dest := uint16(hi)<<8 | uint16(lo)
		addr := dest + uint16(c.y)
		return addr, (dest & 0xFF00) != (addr & 0xFF00), nil
	}
	return 0, false, nil
}
