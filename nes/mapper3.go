package nes

// mapper3 is CNROM: PRG behaves like NROM; CHR is bank-switched in 8 KiB
// windows selected by the low 2 bits of any write to 0x8000..0xFFFF.
// Reference: https://www.nesdev.org/wiki/INES_Mapper_003, spec.md §3/§4.1.
type mapper3 struct {
	prgROM []byte
	chrROM []byte
	bank   int
}

func newMapper3(prgROM, chrROM []byte) *mapper3 {
	return &mapper3{prgROM: prgROM, chrROM: chrROM}
}

func (m *mapper3) ReadPRG(address uint16) byte {
	return m.prgROM[int(address-0x8000)%len(m.prgROM)]
}

func (m *mapper3) WritePRG(address uint16, value byte) {
	m.bank = int(value&0x3) * chrROMSizeUnit
}

func (m *mapper3) ReadCHR(address uint16) byte {
	i := m.bank + int(address)
	if i >= len(m.chrROM) {
		return 0
	}
	return m.chrROM[i]
}

func (m *mapper3) WriteCHR(address uint16, value byte) {
	i := m.bank + int(address)
	if i < len(m.chrROM) {
		m.chrROM[i] = value
	}
}
