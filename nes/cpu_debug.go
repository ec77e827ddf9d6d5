package nes

import (
	"fmt"
	"strings"
)

// unofficialOpcodes marks every byte whose mnemonic is shared with a
// documented opcode (the multi-byte NOP/DOP/TOP family and the duplicate SBC
// at 0xEB) or is itself an unofficial combo op (LAX/SAX/DCP/ISB/SLO/RLA/SRE/
// RRA), so formatTrace can mark it with nestest's "*" prefix by opcode byte
// rather than by mnemonic string, which both share with documented opcodes.
var unofficialOpcodes = map[byte]bool{
	0x04: true, 0x0C: true, 0x14: true, 0x1A: true, 0x1C: true,
	0x34: true, 0x3A: true, 0x3C: true, 0x44: true, 0x54: true,
	0x5A: true, 0x5C: true, 0x64: true, 0x74: true, 0x7A: true,
	0x7C: true, 0x80: true, 0x82: true, 0x89: true, 0xC2: true,
	0xD4: true, 0xDA: true, 0xDC: true, 0xE2: true, 0xEB: true,
	0xF4: true, 0xFA: true, 0xFC: true,
	0xA3: true, 0xA7: true, 0xAF: true, 0xB3: true, 0xB7: true, 0xBF: true,
	0x83: true, 0x87: true, 0x8F: true, 0x97: true,
	0xC3: true, 0xC7: true, 0xCF: true, 0xD3: true, 0xD7: true, 0xDB: true, 0xDF: true,
	0xE3: true, 0xE7: true, 0xEF: true, 0xF3: true, 0xF7: true, 0xFB: true, 0xFF: true,
	0x03: true, 0x07: true, 0x0F: true, 0x13: true, 0x17: true, 0x1B: true, 0x1F: true,
	0x23: true, 0x27: true, 0x2F: true, 0x33: true, 0x37: true, 0x3B: true, 0x3F: true,
	0x43: true, 0x47: true, 0x4F: true, 0x53: true, 0x57: true, 0x5B: true, 0x5F: true,
	0x63: true, 0x67: true, 0x6F: true, 0x73: true, 0x77: true, 0x7B: true, 0x7F: true,
}

// formatTrace renders one nestest-style trace line: PC, raw opcode bytes,
// disassembly, and register state, in nestest.log's column order.
// Reference: spec.md §6 "Debug trace format". Lines do not byte-match
// nestest.log: operands are shown as resolved addresses without nestest's
// "= value" annotations, and no PPU or CYC columns are emitted.
func formatTrace(c *CPU, pc uint16, opcode byte, inst instruction, operand uint16) string {
	bytes := make([]string, 0, 3)
	bytes = append(bytes, fmt.Sprintf("%02X", opcode))
	for i := uint16(1); i < inst.size; i++ {
		b, err := c.bus.read(pc + i)
		if err != nil {
			b = 0
		}
		bytes = append(bytes, fmt.Sprintf("%02X", b))
	}
	bytesStr := strings.Join(bytes, " ")

	prefix := " "
	if inst.undefined || unofficialOpcodes[opcode] {
		prefix = "*"
	}

	asm := fmt.Sprintf("%s%s", prefix, inst.mnemonic)
	switch inst.mode {
	case immdiate:
		asm += fmt.Sprintf(" #$%02X", operand&0xFF)
	case zeropage:
		asm += fmt.Sprintf(" $%02X", operand)
	case zeropageX, zeropageY:
		asm += fmt.Sprintf(" $%02X", operand)
	case absolute:
		asm += fmt.Sprintf(" $%04X", operand)
	case absoluteX, absoluteY:
		asm += fmt.Sprintf(" $%04X", operand)
	case indirect:
		asm += fmt.Sprintf(" ($%04X)", operand)
	case indirectX, indirectY:
		asm += fmt.Sprintf(" ($%02X)", operand&0xFF)
	case relative:
		asm += fmt.Sprintf(" $%04X", operand)
	case accumulator:
		asm += " A"
	}

	return fmt.Sprintf("%04X  %-9s %-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		pc, bytesStr, asm, c.a, c.x, c.y, c.p.encode(), c.s)
}
