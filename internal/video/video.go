// Package video holds the four Apple II display mode flags. Frame
// composition and rendering are external collaborators; this package only
// exposes the flags an external renderer reads alongside raw RAM.
//
// Ported from reinette-II-plus-dot-py's memory.py screen accessors
// (setTEXT/setMIXED/setPAGE2/setHIRES).
package video

// Video is the set of soft-switch-controlled display mode flags.
type Video struct {
	text  bool
	mixed bool
	page2 bool
	hires bool
}

// New returns a Video in the power-on display mode: TEXT, not mixed, page 1,
// not hi-res.
func New() *Video {
	return &Video{text: true}
}

func (v *Video) SetTEXT(on bool)  { v.text = on }
func (v *Video) TEXT() bool       { return v.text }
func (v *Video) SetMIXED(on bool) { v.mixed = on }
func (v *Video) MIXED() bool      { return v.mixed }
func (v *Video) SetPAGE2(on bool) { v.page2 = on }
func (v *Video) PAGE2() bool      { return v.page2 }
func (v *Video) SetHIRES(on bool) { v.hires = on }
func (v *Video) HIRES() bool      { return v.hires }
