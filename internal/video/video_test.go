package video

import "testing"

func TestPowerOnState(t *testing.T) {
	v := New()
	if !v.TEXT() || v.MIXED() || v.PAGE2() || v.HIRES() {
		t.Fatalf("power-on state = %+v, want TEXT only", v)
	}
}

func TestAccessorsAreIndependent(t *testing.T) {
	v := New()
	v.SetTEXT(false)
	v.SetMIXED(true)
	v.SetPAGE2(true)
	v.SetHIRES(true)

	if v.TEXT() {
		t.Fatalf("TEXT() should be off")
	}
	if !v.MIXED() || !v.PAGE2() || !v.HIRES() {
		t.Fatalf("MIXED/PAGE2/HIRES should all be on")
	}
}
