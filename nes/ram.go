package nes

// RAM is the 2 KiB block used for both CPU work RAM and PPU nametable RAM.
// Hardware powers up with an observed repeating pattern rather than all
// zeroes; spec.md §3 documents it as [0,0,0,0,0xFF,0xFF,0xFF,0xFF] repeated.
type RAM struct {
	data [2048]byte
}

// NewRAM creates a RAM block with the hardware power-up pattern.
func NewRAM() *RAM {
	r := &RAM{}
	pattern := [8]byte{0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}
	for i := range r.data {
		r.data[i] = pattern[i%len(pattern)]
	}
	return r
}

func (r *RAM) read(address uint16) byte {
	return r.data[address]
}

func (r *RAM) write(address uint16, x byte) {
	r.data[address] = x
}
