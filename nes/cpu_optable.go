package nes

// createInstructions builds the 256-entry opcode table: all documented
// opcodes plus the unofficial opcodes commonly relied on by NES software
// and test ROMs (NOP/DOP/TOP multi-byte no-ops, LAX, SAX, the duplicate SBC
// at 0xEB, DCP, ISB, SLO, RLA, SRE, RRA). Remaining unofficial opcodes (JAM
// and the unstable ANC/ALR/ARR/XAA/AHX/TAS/SHY/SHX/LAS/AXS family) are left
// as undefined entries; Step reports an error rather than guessing at their
// notoriously unstable semantics.
// Reference: https://www.nesdev.org/6502_cpu.txt
func createInstructions() [256]instruction {
	u := instruction{undefined: true}
	var t [256]instruction
	t = [256]instruction{
		0x00: {"BRK", implied, (*CPU).brk, 1, 7, false, false, false},
		0x01: {"ORA", indirectX, (*CPU).ora, 2, 6, false, false, false},
		0x02: u,
		0x03: {"SLO", indirectX, (*CPU).slo, 2, 8, false, false, false},
		0x04: {"NOP", zeropage, (*CPU).nop, 2, 3, false, false, false},
		0x05: {"ORA", zeropage, (*CPU).ora, 2, 3, false, false, false},
		0x06: {"ASL", zeropage, (*CPU).asl, 2, 5, false, false, false},
		0x07: {"SLO", zeropage, (*CPU).slo, 2, 5, false, false, false},
		0x08: {"PHP", implied, (*CPU).php, 1, 3, false, false, false},
		0x09: {"ORA", immdiate, (*CPU).ora, 2, 2, false, false, false},
		0x0A: {"ASL", accumulator, (*CPU).asl, 1, 2, false, false, false},
		0x0B: u,
		0x0C: {"NOP", absolute, (*CPU).nop, 3, 4, false, false, false},
		0x0D: {"ORA", absolute, (*CPU).ora, 3, 4, false, false, false},
		0x0E: {"ASL", absolute, (*CPU).asl, 3, 6, false, false, false},
		0x0F: {"SLO", absolute, (*CPU).slo, 3, 6, false, false, false},
		0x10: {"BPL", relative, (*CPU).bpl, 2, 2, false, true, false},
		0x11: {"ORA", indirectY, (*CPU).ora, 2, 5, true, false, false},
		0x12: u,
		0x13: {"SLO", indirectY, (*CPU).slo, 2, 8, false, false, false},
		0x14: {"NOP", zeropageX, (*CPU).nop, 2, 4, false, false, false},
		0x15: {"ORA", zeropageX, (*CPU).ora, 2, 4, false, false, false},
		0x16: {"ASL", zeropageX, (*CPU).asl, 2, 6, false, false, false},
		0x17: {"SLO", zeropageX, (*CPU).slo, 2, 6, false, false, false},
		0x18: {"CLC", implied, (*CPU).clc, 1, 2, false, false, false},
		0x19: {"ORA", absoluteY, (*CPU).ora, 3, 4, true, false, false},
		0x1A: {"NOP", implied, (*CPU).nop, 1, 2, false, false, false},
		0x1B: {"SLO", absoluteY, (*CPU).slo, 3, 7, false, false, false},
		0x1C: {"NOP", absoluteX, (*CPU).nop, 3, 4, true, false, false},
		0x1D: {"ORA", absoluteX, (*CPU).ora, 3, 4, true, false, false},
		0x1E: {"ASL", absoluteX, (*CPU).asl, 3, 7, false, false, false},
		0x1F: {"SLO", absoluteX, (*CPU).slo, 3, 7, false, false, false},
		0x20: {"JSR", absolute, (*CPU).jsr, 3, 6, false, false, false},
		0x21: {"AND", indirectX, (*CPU).and, 2, 6, false, false, false},
		0x22: u,
		0x23: {"RLA", indirectX, (*CPU).rla, 2, 8, false, false, false},
		0x24: {"BIT", zeropage, (*CPU).bit, 2, 3, false, false, false},
		0x25: {"AND", zeropage, (*CPU).and, 2, 3, false, false, false},
		0x26: {"ROL", zeropage, (*CPU).rol, 2, 5, false, false, false},
		0x27: {"RLA", zeropage, (*CPU).rla, 2, 5, false, false, false},
		0x28: {"PLP", implied, (*CPU).plp, 1, 4, false, false, false},
		0x29: {"AND", immdiate, (*CPU).and, 2, 2, false, false, false},
		0x2A: {"ROL", accumulator, (*CPU).rol, 1, 2, false, false, false},
		0x2B: u,
		0x2C: {"BIT", absolute, (*CPU).bit, 3, 4, false, false, false},
		0x2D: {"AND", absolute, (*CPU).and, 3, 4, false, false, false},
		0x2E: {"ROL", absolute, (*CPU).rol, 3, 6, false, false, false},
		0x2F: {"RLA", absolute, (*CPU).rla, 3, 6, false, false, false},
		0x30: {"BMI", relative, (*CPU).bmi, 2, 2, false, true, false},
		0x31: {"AND", indirectY, (*CPU).and, 2, 5, true, false, false},
		0x32: u,
		0x33: {"RLA", indirectY, (*CPU).rla, 2, 8, false, false, false},
		0x34: {"NOP", zeropageX, (*CPU).nop, 2, 4, false, false, false},
		0x35: {"AND", zeropageX, (*CPU).and, 2, 4, false, false, false},
		0x36: {"ROL", zeropageX, (*CPU).rol, 2, 6, false, false, false},
		0x37: {"RLA", zeropageX, (*CPU).rla, 2, 6, false, false, false},
		0x38: {"SEC", implied, (*CPU).sec, 1, 2, false, false, false},
		0x39: {"AND", absoluteY, (*CPU).and, 3, 4, true, false, false},
		0x3A: {"NOP", implied, (*CPU).nop, 1, 2, false, false, false},
		0x3B: {"RLA", absoluteY, (*CPU).rla, 3, 7, false, false, false},
		0x3C: {"NOP", absoluteX, (*CPU).nop, 3, 4, true, false, false},
		0x3D: {"AND", absoluteX, (*CPU).and, 3, 4, true, false, false},
		0x3E: {"ROL", absoluteX, (*CPU).rol, 3, 7, false, false, false},
		0x3F: {"RLA", absoluteX, (*CPU).rla, 3, 7, false, false, false},
		0x40: {"RTI", implied, (*CPU).rti, 1, 6, false, false, false},
		0x41: {"EOR", indirectX, (*CPU).eor, 2, 6, false, false, false},
		0x42: u,
		0x43: {"SRE", indirectX, (*CPU).sre, 2, 8, false, false, false},
		0x44: {"NOP", zeropage, (*CPU).nop, 2, 3, false, false, false},
		0x45: {"EOR", zeropage, (*CPU).eor, 2, 3, false, false, false},
		0x46: {"LSR", zeropage, (*CPU).lsr, 2, 5, false, false, false},
		0x47: {"SRE", zeropage, (*CPU).sre, 2, 5, false, false, false},
		0x48: {"PHA", implied, (*CPU).pha, 1, 3, false, false, false},
		0x49: {"EOR", immdiate, (*CPU).eor, 2, 2, false, false, false},
		0x4A: {"LSR", accumulator, (*CPU).lsr, 1, 2, false, false, false},
		0x4B: u,
		0x4C: {"JMP", absolute, (*CPU).jmp, 3, 3, false, false, false},
		0x4D: {"EOR", absolute, (*CPU).eor, 3, 4, false, false, false},
		0x4E: {"LSR", absolute, (*CPU).lsr, 3, 6, false, false, false},
		0x4F: {"SRE", absolute, (*CPU).sre, 3, 6, false, false, false},
		0x50: {"BVC", relative, (*CPU).bvc, 2, 2, false, true, false},
		0x51: {"EOR", indirectY, (*CPU).eor, 2, 5, true, false, false},
		0x52: u,
		0x53: {"SRE", indirectY, (*CPU).sre, 2, 8, false, false, false},
		0x54: {"NOP", zeropageX, (*CPU).nop, 2, 4, false, false, false},
		0x55: {"EOR", zeropageX, (*CPU).eor, 2, 4, false, false, false},
		0x56: {"LSR", zeropageX, (*CPU).lsr, 2, 6, false, false, false},
		0x57: {"SRE", zeropageX, (*CPU).sre, 2, 6, false, false, false},
		0x58: {"CLI", implied, (*CPU).cli, 1, 2, false, false, false},
		0x59: {"EOR", absoluteY, (*CPU).eor, 3, 4, true, false, false},
		0x5A: {"NOP", implied, (*CPU).nop, 1, 2, false, false, false},
		0x5B: {"SRE", absoluteY, (*CPU).sre, 3, 7, false, false, false},
		0x5C: {"NOP", absoluteX, (*CPU).nop, 3, 4, true, false, false},
		0x5D: {"EOR", absoluteX, (*CPU).eor, 3, 4, true, false, false},
		0x5E: {"LSR", absoluteX, (*CPU).lsr, 3, 7, false, false, false},
		0x5F: {"SRE", absoluteX, (*CPU).sre, 3, 7, false, false, false},
		0x60: {"RTS", implied, (*CPU).rts, 1, 6, false, false, false},
		0x61: {"ADC", indirectX, (*CPU).adc, 2, 6, false, false, false},
		0x62: u,
		0x63: {"RRA", indirectX, (*CPU).rra, 2, 8, false, false, false},
		0x64: {"NOP", zeropage, (*CPU).nop, 2, 3, false, false, false},
		0x65: {"ADC", zeropage, (*CPU).adc, 2, 3, false, false, false},
		0x66: {"ROR", zeropage, (*CPU).ror, 2, 5, false, false, false},
		0x67: {"RRA", zeropage, (*CPU).rra, 2, 5, false, false, false},
		0x68: {"PLA", implied, (*CPU).pla, 1, 4, false, false, false},
		0x69: {"ADC", immdiate, (*CPU).adc, 2, 2, false, false, false},
		0x6A: {"ROR", accumulator, (*CPU).ror, 1, 2, false, false, false},
		0x6B: u,
		0x6C: {"JMP", indirect, (*CPU).jmp, 3, 5, false, false, false},
		0x6D: {"ADC", absolute, (*CPU).adc, 3, 4, false, false, false},
		0x6E: {"ROR", absolute, (*CPU).ror, 3, 6, false, false, false},
		0x6F: {"RRA", absolute, (*CPU).rra, 3, 6, false, false, false},
		0x70: {"BVS", relative, (*CPU).bvs, 2, 2, false, true, false},
		0x71: {"ADC", indirectY, (*CPU).adc, 2, 5, true, false, false},
		0x72: u,
		0x73: {"RRA", indirectY, (*CPU).rra, 2, 8, false, false, false},
		0x74: {"NOP", zeropageX, (*CPU).nop, 2, 4, false, false, false},
		0x75: {"ADC", zeropageX, (*CPU).adc, 2, 4, false, false, false},
		0x76: {"ROR", zeropageX, (*CPU).ror, 2, 6, false, false, false},
		0x77: {"RRA", zeropageX, (*CPU).rra, 2, 6, false, false, false},
		0x78: {"SEI", implied, (*CPU).sei, 1, 2, false, false, false},
		0x79: {"ADC", absoluteY, (*CPU).adc, 3, 4, true, false, false},
		0x7A: {"NOP", implied, (*CPU).nop, 1, 2, false, false, false},
		0x7B: {"RRA", absoluteY, (*CPU).rra, 3, 7, false, false, false},
		0x7C: {"NOP", absoluteX, (*CPU).nop, 3, 4, true, false, false},
		0x7D: {"ADC", absoluteX, (*CPU).adc, 3, 4, true, false, false},
		0x7E: {"ROR", absoluteX, (*CPU).ror, 3, 7, false, false, false},
		0x7F: {"RRA", absoluteX, (*CPU).rra, 3, 7, false, false, false},
		0x80: {"NOP", immdiate, (*CPU).nop, 2, 2, false, false, false},
		0x81: {"STA", indirectX, (*CPU).sta, 2, 6, false, false, false},
		0x82: {"NOP", immdiate, (*CPU).nop, 2, 2, false, false, false},
		0x83: {"SAX", indirectX, (*CPU).sax, 2, 6, false, false, false},
		0x84: {"STY", zeropage, (*CPU).sty, 2, 3, false, false, false},
		0x85: {"STA", zeropage, (*CPU).sta, 2, 3, false, false, false},
		0x86: {"STX", zeropage, (*CPU).stx, 2, 3, false, false, false},
		0x87: {"SAX", zeropage, (*CPU).sax, 2, 3, false, false, false},
		0x88: {"DEY", implied, (*CPU).dey, 1, 2, false, false, false},
		0x89: {"NOP", immdiate, (*CPU).nop, 2, 2, false, false, false},
		0x8A: {"TXA", implied, (*CPU).txa, 1, 2, false, false, false},
		0x8B: u,
		0x8C: {"STY", absolute, (*CPU).sty, 3, 4, false, false, false},
		0x8D: {"STA", absolute, (*CPU).sta, 3, 4, false, false, false},
		0x8E: {"STX", absolute, (*CPU).stx, 3, 4, false, false, false},
		0x8F: {"SAX", absolute, (*CPU).sax, 3, 4, false, false, false},
		0x90: {"BCC", relative, (*CPU).bcc, 2, 2, false, true, false},
		0x91: {"STA", indirectY, (*CPU).sta, 2, 6, false, false, false},
		0x92: u,
		0x93: u,
		0x94: {"STY", zeropageX, (*CPU).sty, 2, 4, false, false, false},
		0x95: {"STA", zeropageX, (*CPU).sta, 2, 4, false, false, false},
		0x96: {"STX", zeropageY, (*CPU).stx, 2, 4, false, false, false},
		0x97: {"SAX", zeropageY, (*CPU).sax, 2, 4, false, false, false},
		0x98: {"TYA", implied, (*CPU).tya, 1, 2, false, false, false},
		0x99: {"STA", absoluteY, (*CPU).sta, 3, 5, false, false, false},
		0x9A: {"TXS", implied, (*CPU).txs, 1, 2, false, false, false},
		0x9B: u,
		0x9C: u,
		0x9D: {"STA", absoluteX, (*CPU).sta, 3, 5, false, false, false},
		0x9E: u,
		0x9F: u,
		0xA0: {"LDY", immdiate, (*CPU).ldy, 2, 2, false, false, false},
		0xA1: {"LDA", indirectX, (*CPU).lda, 2, 6, false, false, false},
		0xA2: {"LDX", immdiate, (*CPU).ldx, 2, 2, false, false, false},
		0xA3: {"LAX", indirectX, (*CPU).lax, 2, 6, false, false, false},
		0xA4: {"LDY", zeropage, (*CPU).ldy, 2, 3, false, false, false},
		0xA5: {"LDA", zeropage, (*CPU).lda, 2, 3, false, false, false},
		0xA6: {"LDX", zeropage, (*CPU).ldx, 2, 3, false, false, false},
		0xA7: {"LAX", zeropage, (*CPU).lax, 2, 3, false, false, false},
		0xA8: {"TAY", implied, (*CPU).tay, 1, 2, false, false, false},
		0xA9: {"LDA", immdiate, (*CPU).lda, 2, 2, false, false, false},
		0xAA: {"TAX", implied, (*CPU).tax, 1, 2, false, false, false},
		0xAB: u,
		0xAC: {"LDY", absolute, (*CPU).ldy, 3, 4, false, false, false},
		0xAD: {"LDA", absolute, (*CPU).lda, 3, 4, false, false, false},
		0xAE: {"LDX", absolute, (*CPU).ldx, 3, 4, false, false, false},
		0xAF: {"LAX", absolute, (*CPU).lax, 3, 4, false, false, false},
		0xB0: {"BCS", relative, (*CPU).bcs, 2, 2, false, true, false},
		0xB1: {"LDA", indirectY, (*CPU).lda, 2, 5, true, false, false},
		0xB2: u,
		0xB3: {"LAX", indirectY, (*CPU).lax, 2, 5, true, false, false},
		0xB4: {"LDY", zeropageX, (*CPU).ldy, 2, 4, false, false, false},
		0xB5: {"LDA", zeropageX, (*CPU).lda, 2, 4, false, false, false},
		0xB6: {"LDX", zeropageY, (*CPU).ldx, 2, 4, false, false, false},
		0xB7: {"LAX", zeropageY, (*CPU).lax, 2, 4, false, false, false},
		0xB8: {"CLV", implied, (*CPU).clv, 1, 2, false, false, false},
		0xB9: {"LDA", absoluteY, (*CPU).lda, 3, 4, true, false, false},
		0xBA: {"TSX", implied, (*CPU).tsx, 1, 2, false, false, false},
		0xBB: u,
		0xBC: {"LDY", absoluteX, (*CPU).ldy, 3, 4, true, false, false},
		0xBD: {"LDA", absoluteX, (*CPU).lda, 3, 4, true, false, false},
		0xBE: {"LDX", absoluteY, (*CPU).ldx, 3, 4, true, false, false},
		0xBF: {"LAX", absoluteY, (*CPU).lax, 3, 4, true, false, false},
		0xC0: {"CPY", immdiate, (*CPU).cpy, 2, 2, false, false, false},
		0xC1: {"CMP", indirectX, (*CPU).cmp, 2, 6, false, false, false},
		0xC2: {"NOP", immdiate, (*CPU).nop, 2, 2, false, false, false},
		0xC3: {"DCP", indirectX, (*CPU).dcp, 2, 8, false, false, false},
		0xC4: {"CPY", zeropage, (*CPU).cpy, 2, 3, false, false, false},
		0xC5: {"CMP", zeropage, (*CPU).cmp, 2, 3, false, false, false},
		0xC6: {"DEC", zeropage, (*CPU).dec, 2, 5, false, false, false},
		0xC7: {"DCP", zeropage, (*CPU).dcp, 2, 5, false, false, false},
		0xC8: {"INY", implied, (*CPU).iny, 1, 2, false, false, false},
		0xC9: {"CMP", immdiate, (*CPU).cmp, 2, 2, false, false, false},
		0xCA: {"DEX", implied, (*CPU).dex, 1, 2, false, false, false},
		0xCB: u,
		0xCC: {"CPY", absolute, (*CPU).cpy, 3, 4, false, false, false},
		0xCD: {"CMP", absolute, (*CPU).cmp, 3, 4, false, false, false},
		0xCE: {"DEC", absolute, (*CPU).dec, 3, 6, false, false, false},
		0xCF: {"DCP", absolute, (*CPU).dcp, 3, 6, false, false, false},
		0xD0: {"BNE", relative, (*CPU).bne, 2, 2, false, true, false},
		0xD1: {"CMP", indirectY, (*CPU).cmp, 2, 5, true, false, false},
		0xD2: u,
		0xD3: {"DCP", indirectY, (*CPU).dcp, 2, 8, false, false, false},
		0xD4: {"NOP", zeropageX, (*CPU).nop, 2, 4, false, false, false},
		0xD5: {"CMP", zeropageX, (*CPU).cmp, 2, 4, false, false, false},
		0xD6: {"DEC", zeropageX, (*CPU).dec, 2, 6, false, false, false},
		0xD7: {"DCP", zeropageX, (*CPU).dcp, 2, 6, false, false, false},
		0xD8: {"CLD", implied, (*CPU).cld, 1, 2, false, false, false},
		0xD9: {"CMP", absoluteY, (*CPU).cmp, 3, 4, true, false, false},
		0xDA: {"NOP", implied, (*CPU).nop, 1, 2, false, false, false},
		0xDB: {"DCP", absoluteY, (*CPU).dcp, 3, 7, false, false, false},
		0xDC: {"NOP", absoluteX, (*CPU).nop, 3, 4, true, false, false},
		0xDD: {"CMP", absoluteX, (*CPU).cmp, 3, 4, true, false, false},
		0xDE: {"DEC", absoluteX, (*CPU).dec, 3, 7, false, false, false},
		0xDF: {"DCP", absoluteX, (*CPU).dcp, 3, 7, false, false, false},
		0xE0: {"CPX", immdiate, (*CPU).cpx, 2, 2, false, false, false},
		0xE1: {"SBC", indirectX, (*CPU).sbc, 2, 6, false, false, false},
		0xE2: {"NOP", immdiate, (*CPU).nop, 2, 2, false, false, false},
		0xE3: {"ISB", indirectX, (*CPU).isb, 2, 8, false, false, false},
		0xE4: {"CPX", zeropage, (*CPU).cpx, 2, 3, false, false, false},
		0xE5: {"SBC", zeropage, (*CPU).sbc, 2, 3, false, false, false},
		0xE6: {"INC", zeropage, (*CPU).inc, 2, 5, false, false, false},
		0xE7: {"ISB", zeropage, (*CPU).isb, 2, 5, false, false, false},
		0xE8: {"INX", implied, (*CPU).inx, 1, 2, false, false, false},
		0xE9: {"SBC", immdiate, (*CPU).sbc, 2, 2, false, false, false},
		0xEA: {"NOP", implied, (*CPU).nop, 1, 2, false, false, false},
		0xEB: {"SBC", immdiate, (*CPU).sbc, 2, 2, false, false, false},
		0xEC: {"CPX", absolute, (*CPU).cpx, 3, 4, false, false, false},
		0xED: {"SBC", absolute, (*CPU).sbc, 3, 4, false, false, false},
		0xEE: {"INC", absolute, (*CPU).inc, 3, 6, false, false, false},
		0xEF: {"ISB", absolute, (*CPU).isb, 3, 6, false, false, false},
		0xF0: {"BEQ", relative, (*CPU).beq, 2, 2, false, true, false},
		0xF1: {"SBC", indirectY, (*CPU).sbc, 2, 5, true, false, false},
		0xF2: u,
		0xF3: {"ISB", indirectY, (*CPU).isb, 2, 8, false, false, false},
		0xF4: {"NOP", zeropageX, (*CPU).nop, 2, 4, false, false, false},
		0xF5: {"SBC", zeropageX, (*CPU).sbc, 2, 4, false, false, false},
		0xF6: {"INC", zeropageX, (*CPU).inc, 2, 6, false, false, false},
		0xF7: {"ISB", zeropageX, (*CPU).isb, 2, 6, false, false, false},
		0xF8: {"SED", implied, (*CPU).sed, 1, 2, false, false, false},
		0xF9: {"SBC", absoluteY, (*CPU).sbc, 3, 4, true, false, false},
		0xFA: {"NOP", implied, (*CPU).nop, 1, 2, false, false, false},
		0xFB: {"ISB", absoluteY, (*CPU).isb, 3, 7, false, false, false},
		0xFC: {"NOP", absoluteX, (*CPU).nop, 3, 4, true, false, false},
		0xFD: {"SBC", absoluteX, (*CPU).sbc, 3, 4, true, false, false},
		0xFE: {"INC", absoluteX, (*CPU).inc, 3, 7, false, false, false},
		0xFF: {"ISB", absoluteX, (*CPU).isb, 3, 7, false, false, false},
	}
	return t
}
