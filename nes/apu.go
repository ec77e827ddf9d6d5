package nes

// APU emulates the NES Audio Processing Unit: two pulse channels, a
// triangle channel, a noise channel, and a DMC stub, mixed through the
// canonical NESdev nonlinear lookup tables into 44.1kHz float32 samples.
// References:
//   https://www.nesdev.org/wiki/APU
//   https://www.nesdev.org/wiki/APU_Mixer

const apuSampleRate = 44100

var lengthTable = [32]byte{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

var dutyTable = [4][8]byte{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

var triangleTable = [32]byte{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// NTSC noise period table.
var noisePeriodTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// pulseTable[i] and tndTable[i] are the precomputed NESdev mixer curves.
var pulseTable [31]float32
var tndTable [203]float32

func init() {
	for i := range pulseTable {
		if i == 0 {
			continue
		}
		pulseTable[i] = float32(95.52 / (8128.0/float64(i) + 100.0))
	}
	for i := range tndTable {
		if i == 0 {
			continue
		}
		tndTable[i] = float32(163.67 / (24329.0/float64(i) + 100.0))
	}
}

type envelope struct {
	start       bool
	loop        bool
	constant    bool
	volume      byte
	decayVolume byte
	divider     byte
}

func (e *envelope) write(data byte) {
	e.loop = data&0x20 != 0
	e.constant = data&0x10 != 0
	e.volume = data & 0x0F
}

func (e *envelope) clock() {
	if e.start {
		e.start = false
		e.decayVolume = 15
		e.divider = e.volume
		return
	}
	if e.divider > 0 {
		e.divider--
		return
	}
	e.divider = e.volume
	if e.decayVolume > 0 {
		e.decayVolume--
	} else if e.loop {
		e.decayVolume = 15
	}
}

func (e *envelope) output() byte {
	if e.constant {
		return e.volume
	}
	return e.decayVolume
}

type pulse struct {
	channel2 bool // pulse2 negates sweep with two's complement, pulse1 one's
	enabled  bool

	dutyMode byte
	dutyPos  byte

	timer      uint16
	timerValue uint16

	lengthCounter byte
	lengthHalt    bool

	env envelope

	sweepEnabled bool
	sweepPeriod  byte
	sweepDivider byte
	sweepNegate  bool
	sweepShift   byte
	sweepReload  bool
}

func (p *pulse) writeControl(data byte) {
	p.dutyMode = (data >> 6) & 3
	p.lengthHalt = data&0x20 != 0
	p.env.write(data)
}

func (p *pulse) writeSweep(data byte) {
	p.sweepEnabled = data&0x80 != 0
	p.sweepPeriod = (data >> 4) & 7
	p.sweepNegate = data&0x08 != 0
	p.sweepShift = data & 7
	p.sweepReload = true
}

func (p *pulse) writeTimerLow(data byte) {
	p.timer = (p.timer & 0xFF00) | uint16(data)
}

func (p *pulse) writeTimerHigh(data byte) {
	p.timer = (p.timer & 0x00FF) | (uint16(data&7) << 8)
	p.timerValue = p.timer
	p.dutyPos = 0
	p.env.start = true
	if p.enabled {
		p.lengthCounter = lengthTable[(data>>3)&0x1F]
	}
}

func (p *pulse) sweepTarget() uint16 {
	change := int(p.timer) >> p.sweepShift
	if p.sweepNegate {
		if p.channel2 {
			return uint16(int(p.timer) - change) // two's complement
		}
		return uint16(int(p.timer) - change - 1) // one's complement
	}
	return uint16(int(p.timer) + change)
}

func (p *pulse) muted() bool {
	return p.timer < 8 || p.sweepTarget() > 0x7FF
}

func (p *pulse) clockSweep() {
	if p.sweepDivider == 0 && p.sweepEnabled && p.sweepShift > 0 && !p.muted() {
		p.timer = p.sweepTarget()
	}
	if p.sweepDivider == 0 || p.sweepReload {
		p.sweepDivider = p.sweepPeriod
		p.sweepReload = false
	} else {
		p.sweepDivider--
	}
}

func (p *pulse) clockLength() {
	if !p.lengthHalt && p.lengthCounter > 0 {
		p.lengthCounter--
	}
}

func (p *pulse) step() {
	if p.timerValue == 0 {
		p.timerValue = p.timer
		p.dutyPos = (p.dutyPos + 1) % 8
	} else {
		p.timerValue--
	}
}

func (p *pulse) output() byte {
	if !p.enabled || p.lengthCounter == 0 || p.muted() {
		return 0
	}
	if dutyTable[p.dutyMode][p.dutyPos] == 0 {
		return 0
	}
	return p.env.output()
}

type triangle struct {
	enabled bool

	timer      uint16
	timerValue uint16

	lengthCounter byte
	lengthHalt    bool

	linearCounter   byte
	linearReload    byte
	linearReloadSet bool

	pos byte
}

func (t *triangle) writeControl(data byte) {
	t.lengthHalt = data&0x80 != 0
	t.linearReload = data & 0x7F
}

func (t *triangle) writeTimerLow(data byte) {
	t.timer = (t.timer & 0xFF00) | uint16(data)
}

func (t *triangle) writeTimerHigh(data byte) {
	t.timer = (t.timer & 0x00FF) | (uint16(data&7) << 8)
	t.linearReloadSet = true
	if t.enabled {
		t.lengthCounter = lengthTable[(data>>3)&0x1F]
	}
}

func (t *triangle) clockLinear() {
	if t.linearReloadSet {
		t.linearCounter = t.linearReload
	} else if t.linearCounter > 0 {
		t.linearCounter--
	}
	if !t.lengthHalt {
		t.linearReloadSet = false
	}
}

func (t *triangle) clockLength() {
	if !t.lengthHalt && t.lengthCounter > 0 {
		t.lengthCounter--
	}
}

func (t *triangle) step() {
	if t.timerValue == 0 {
		t.timerValue = t.timer
		if t.lengthCounter > 0 && t.linearCounter > 0 {
			t.pos = (t.pos + 1) % 32
		}
	} else {
		t.timerValue--
	}
}

func (t *triangle) output() byte {
	return triangleTable[t.pos]
}

type noise struct {
	enabled bool

	mode       bool
	timer      uint16
	timerValue uint16

	lengthCounter byte
	lengthHalt    bool

	env envelope

	shift uint16
}

func newNoise() *noise {
	return &noise{shift: 1}
}

func (n *noise) writeControl(data byte) {
	n.lengthHalt = data&0x20 != 0
	n.env.write(data)
}

func (n *noise) writePeriod(data byte) {
	n.mode = data&0x80 != 0
	n.timer = noisePeriodTable[data&0x0F]
}

func (n *noise) writeLength(data byte) {
	n.env.start = true
	if n.enabled {
		n.lengthCounter = lengthTable[(data>>3)&0x1F]
	}
}

func (n *noise) clockLength() {
	if !n.lengthHalt && n.lengthCounter > 0 {
		n.lengthCounter--
	}
}

func (n *noise) step() {
	if n.timerValue == 0 {
		n.timerValue = n.timer
		var bit uint16
		if n.mode {
			bit = (n.shift ^ (n.shift >> 6)) & 1
		} else {
			bit = (n.shift ^ (n.shift >> 1)) & 1
		}
		n.shift >>= 1
		n.shift |= bit << 14
	} else {
		n.timerValue--
	}
}

func (n *noise) output() byte {
	if !n.enabled || n.lengthCounter == 0 || n.shift&1 == 1 {
		return 0
	}
	return n.env.output()
}

// dmc is a stub: it absorbs register writes but never fetches samples or
// raises an IRQ, per spec.md's DMC-sample-fetch non-goal.
type dmc struct {
	value byte
}

func (d *dmc) writeControl(data byte)    {}
func (d *dmc) writeValue(data byte)      { d.value = data & 0x7F }
func (d *dmc) writeSampleAddress(byte)   {}
func (d *dmc) writeSampleLength(byte)    {}
func (d *dmc) output() byte              { return d.value }

type APU struct {
	pulse1   pulse
	pulse2   pulse
	triangle triangle
	noise    *noise
	dmc      dmc

	out chan float32

	frameCounterMode byte // 0: 4-step, 1: 5-step
	frameIRQInhibit  bool
	frameCycle       int
	irqPending       bool

	cycle       uint64
	sampleTimer float64
}

func NewAPU() *APU {
	a := &APU{noise: newNoise()}
	a.pulse1.channel2 = false
	a.pulse2.channel2 = true
	return a
}

func (a *APU) SetAudioOut(c chan float32) {
	a.out = c
}

// readStatus reads $4015: channel length-counter-nonzero bits.
func (a *APU) readStatus() byte {
	var res byte
	if a.pulse1.lengthCounter > 0 {
		res |= 1
	}
	if a.pulse2.lengthCounter > 0 {
		res |= 2
	}
	if a.triangle.lengthCounter > 0 {
		res |= 4
	}
	if a.noise.lengthCounter > 0 {
		res |= 8
	}
	if a.irqPending {
		res |= 0x40
	}
	a.irqPending = false
	return res
}

// writeStatus writes $4015: per-channel enable, which also silences the
// length counter for any channel being disabled.
func (a *APU) writeStatus(data byte) {
	a.pulse1.enabled = data&1 != 0
	a.pulse2.enabled = data&2 != 0
	a.triangle.enabled = data&4 != 0
	a.noise.enabled = data&8 != 0
	if !a.pulse1.enabled {
		a.pulse1.lengthCounter = 0
	}
	if !a.pulse2.enabled {
		a.pulse2.lengthCounter = 0
	}
	if !a.triangle.enabled {
		a.triangle.lengthCounter = 0
	}
	if !a.noise.enabled {
		a.noise.lengthCounter = 0
	}
}

// writeFrameCounter writes $4017: frame sequencer mode and IRQ inhibit.
func (a *APU) writeFrameCounter(data byte) {
	a.frameCounterMode = (data >> 7) & 1
	a.frameIRQInhibit = data&0x40 != 0
	if a.frameIRQInhibit {
		a.irqPending = false
	}
	a.frameCycle = 0
}

// TakeIRQ returns and clears the frame sequencer's latched IRQ, mirroring
// the PPU's nmiOccurred/updateNMI drain-on-read pattern.
func (a *APU) TakeIRQ() bool {
	pending := a.irqPending
	a.irqPending = false
	return pending
}

func (a *APU) writeRegister(address uint16, data byte) {
	switch address {
	case 0x4000:
		a.pulse1.writeControl(data)
	case 0x4001:
		a.pulse1.writeSweep(data)
	case 0x4002:
		a.pulse1.writeTimerLow(data)
	case 0x4003:
		a.pulse1.writeTimerHigh(data)
	case 0x4004:
		a.pulse2.writeControl(data)
	case 0x4005:
		a.pulse2.writeSweep(data)
	case 0x4006:
		a.pulse2.writeTimerLow(data)
	case 0x4007:
		a.pulse2.writeTimerHigh(data)
	case 0x4008:
		a.triangle.writeControl(data)
	case 0x400A:
		a.triangle.writeTimerLow(data)
	case 0x400B:
		a.triangle.writeTimerHigh(data)
	case 0x400C:
		a.noise.writeControl(data)
	case 0x400E:
		a.noise.writePeriod(data)
	case 0x400F:
		a.noise.writeLength(data)
	case 0x4010:
		a.dmc.writeControl(data)
	case 0x4011:
		a.dmc.writeValue(data)
	case 0x4012:
		a.dmc.writeSampleAddress(data)
	case 0x4013:
		a.dmc.writeSampleLength(data)
	}
}

func (a *APU) clockQuarterFrame() {
	a.pulse1.env.clock()
	a.pulse2.env.clock()
	a.noise.env.clock()
	a.triangle.clockLinear()
}

func (a *APU) clockHalfFrame() {
	a.pulse1.clockSweep()
	a.pulse2.clockSweep()
	a.pulse1.clockLength()
	a.pulse2.clockLength()
	a.triangle.clockLength()
	a.noise.clockLength()
}

// stepFrameSequencer advances the 4/5-step frame sequencer; reload points
// per spec.md §4.4 (7457/14913/22371/29829/29830 for 4-step,
// 7457/14913/22371/37281 for 5-step).
func (a *APU) stepFrameSequencer() {
	a.frameCycle++
	if a.frameCounterMode == 0 {
		switch a.frameCycle {
		case 7457:
			a.clockQuarterFrame()
		case 14913:
			a.clockQuarterFrame()
			a.clockHalfFrame()
		case 22371:
			a.clockQuarterFrame()
		case 29829:
			a.clockQuarterFrame()
			a.clockHalfFrame()
			if !a.frameIRQInhibit {
				a.irqPending = true
			}
		case 29830:
			a.frameCycle = 0
		}
	} else {
		switch a.frameCycle {
		case 7457:
			a.clockQuarterFrame()
		case 14913:
			a.clockQuarterFrame()
			a.clockHalfFrame()
		case 22371:
			a.clockQuarterFrame()
		case 37281:
			a.clockQuarterFrame()
			a.clockHalfFrame()
			a.frameCycle = 0
		}
	}
}

// mix combines channel outputs through the NESdev nonlinear tables.
func (a *APU) mix() float32 {
	p1 := a.pulse1.output()
	p2 := a.pulse2.output()
	t := a.triangle.output()
	n := a.noise.output()
	d := a.dmc.output()
	pulseOut := pulseTable[p1+p2]
	tndOut := tndTable[3*uint16(t)+uint16(n)+uint16(d)]
	return pulseOut + tndOut
}

// Step advances the APU by one CPU cycle. Channel timers (except the
// triangle, which ticks at CPU rate) tick once per APU cycle, i.e. every
// other CPU cycle; the frame sequencer and sample emission run at CPU rate
// to keep timing simple and exact division-free.
func (a *APU) Step() {
	a.cycle++
	if a.cycle%2 == 0 {
		a.pulse1.step()
		a.pulse2.step()
		a.noise.step()
	}
	a.triangle.step()
	a.stepFrameSequencer()

	a.sampleTimer += float64(apuSampleRate) / float64(CPUFrequency)
	if a.sampleTimer >= 1.0 {
		a.sampleTimer -= 1.0
		a.emit(a.mix())
	}
}

func (a *APU) emit(sample float32) {
	if a.out == nil {
		return
	}
	select {
	case a.out <- sample:
	default:
	}
	select {
	case a.out <- sample:
	default:
	}
}
