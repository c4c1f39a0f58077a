// Package speaker implements the Apple II speaker soft-switch hook: a
// boolean that flips on every $C03x access and a timestamp an external
// audio layer can poll to compute pulse widths. No sample synthesis lives
// here; that is explicitly out of scope.
//
// Ported from reinette-II-plus-dot-py's speaker.py, stripped of its SDL
// audio device and buffer management.
package speaker

import "github.com/ArthurFerreira2/reinette-go/internal/clock"

// Speaker tracks the SPKR line and the tick of its last transition.
type Speaker struct {
	clk *clock.Clock

	spkr         bool
	lastToggleAt uint64
}

// New returns a speaker with SPKR high, matching the original's power-on
// state.
func New(clk *clock.Clock) *Speaker {
	return &Speaker{clk: clk, spkr: true}
}

// ToggleOnAccess services any $C020-$C03F bus access: it flips SPKR and
// records the current tick, regardless of whether the access was a read or
// a write.
func (s *Speaker) ToggleOnAccess() {
	s.spkr = !s.spkr
	s.lastToggleAt = s.clk.Ticks
}

// State returns the current SPKR line level.
func (s *Speaker) State() bool { return s.spkr }

// LastToggleTick returns the clock tick at which SPKR last flipped, so a
// host audio layer can derive the pulse width since the previous toggle.
func (s *Speaker) LastToggleTick() uint64 { return s.lastToggleAt }
