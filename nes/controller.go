package nes

// Reference:
//   http://hp.vector.co.jp/authors/VA042397/nes/joypad.html (In Japanese)
//   https://www.nesdev.org/wiki/Controller_reading

type button int

// Controller bit assignments, 1 means pressed otherwise 0.
// bit    7 6      5     4  3    2    1     0
// button A B Select Start Up Down Left Right
const (
	ButtonA button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is the latched shift register of 8 button states described in
// spec.md §3: each read returns the state at the current cursor and
// advances the cursor modulo 8. Writes are not exposed by this core (spec.md
// §3: "strobe behavior not exposed").
type Controller struct {
	buttons [8]bool
	index   byte
}

func NewController() *Controller {
	return &Controller{}
}

// Set replaces the latched button states; called once per frame by the UI.
func (c *Controller) Set(buttons [8]bool) {
	c.buttons = buttons
}

func (c *Controller) read() byte {
	ret := byte(0)
	if c.buttons[c.index] {
		ret = 1
	}
	c.index = (c.index + 1) % 8
	return ret
}

func (c *Controller) write(data byte) {
	// Strobe behavior is not exposed by this core, per spec.md §3.
}
