// Package paddle emulates an Apple II analog game paddle as a countdown
// timer scaled by the clock, mimicking the 558 timer's RC discharge curve.
//
// Ported from reinette-II-plus-dot-py's paddle.py.
package paddle

import "github.com/ArthurFerreira2/reinette-go/internal/clock"

// timerDivisor scales elapsed clock ticks into countdown units, matching the
// 558 timer constant the original author measured against real hardware.
const timerDivisor = 5.6

// Paddle tracks one analog axis: a 0-255 position, the push-button state,
// and the countdown timer driven by reset/read.
type Paddle struct {
	clk *clock.Clock

	position   byte
	pushButton byte

	countdown        float64
	countdownTrigger uint64
}

// New returns a paddle centered at 127 with the button released, reading
// elapsed time from clk.
func New(clk *clock.Clock) *Paddle {
	return &Paddle{clk: clk, position: 127}
}

// Update sets the analog position (0 = full left, 255 = full right).
func (p *Paddle) Update(value byte) {
	p.position = value
}

// SetButton drives the push-button line to $FF (pressed) or $00 (released).
func (p *Paddle) SetButton(pressed bool) {
	if pressed {
		p.pushButton = 0xFF
	} else {
		p.pushButton = 0x00
	}
}

// Button returns the latched push-button byte.
func (p *Paddle) Button() byte { return p.pushButton }

// Reset arms the countdown from the current position and records the
// triggering tick; a $C070 access calls this for both paddles at once.
func (p *Paddle) Reset() {
	p.countdown = float64(p.position) * float64(p.position)
	p.countdownTrigger = p.clk.Ticks
}

// Read drains the countdown by the ticks elapsed since the last Reset and
// returns $80 while it is still positive, $00 once it has been exhausted.
// countdownTrigger is only ever updated by Reset, so repeated reads against
// a growing tick count keep subtracting the full elapsed-since-reset span.
func (p *Paddle) Read() byte {
	elapsed := p.clk.Ticks - p.countdownTrigger
	p.countdown -= float64(elapsed) / timerDivisor
	if p.countdown <= 0 {
		p.countdown = 0
		return 0x00
	}
	return 0x80
}
