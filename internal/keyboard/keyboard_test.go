package keyboard

import "testing"

func TestLatchHoldsKeyUntilStrobed(t *testing.T) {
	k := New()
	k.SetKey(0xC1)
	k.SetKey(0xC2)

	if got := k.GetKey(); got != 0xC1 {
		t.Fatalf("first read = %#x, want 0xC1", got)
	}
	if got := k.GetKey(); got != 0xC1 {
		t.Fatalf("repeated read = %#x, want 0xC1 (unstrobed key must not advance)", got)
	}
}

// Strobing clears the head's high bit in place; the byte remains the
// current key (now without its high bit) until a successor is produced on
// a later access, per the latch's own two-stage dequeue rule.
func TestStrobeThenReadRevealsSuccessorOnNextAccess(t *testing.T) {
	k := New()
	k.SetKey(0xC1)
	k.SetKey(0xC2)

	k.GetKey()
	k.GetKey()
	k.Strobe()

	if got := k.GetKey(); got != 0x41 {
		t.Fatalf("read immediately after strobe = %#x, want 0x41 (stale key, strobe cleared)", got)
	}
	if got := k.GetKey(); got != 0xC2 {
		t.Fatalf("next read = %#x, want 0xC2", got)
	}
}

func TestStrobeOnEmptyQueueIsNoOp(t *testing.T) {
	k := New()
	k.Strobe()
	if got := k.GetKey(); got != 0x00 {
		t.Fatalf("GetKey on empty keyboard = %#x, want 0x00", got)
	}
}

func TestSetKeyFromSymSkipsUnmappedModifierCell(t *testing.T) {
	k := New()
	k.SetKeyFromSym('a', ModShift) // keymap['a'][ModShift] == 0x00
	if k.Len() != 0 {
		t.Fatalf("queue len = %d, want 0 (unmapped cell must be skipped)", k.Len())
	}

	k.SetKeyFromSym('a', ModNone)
	if k.Len() != 1 {
		t.Fatalf("queue len = %d, want 1", k.Len())
	}
	if got := k.GetKey(); got != 0xC1 {
		t.Fatalf("GetKey = %#x, want 0xC1", got)
	}
}

func TestSetKeyFromSymUnknownSymIsIgnored(t *testing.T) {
	k := New()
	k.SetKeyFromSym(0x7FFFFFF, ModNone)
	if k.Len() != 0 {
		t.Fatalf("queue len = %d, want 0", k.Len())
	}
}

func TestQueueCapacityDropsOverflow(t *testing.T) {
	k := New()
	for i := 0; i < queueCapacity+10; i++ {
		k.SetKey(0xC1)
	}
	if k.Len() != queueCapacity {
		t.Fatalf("queue len = %d, want %d", k.Len(), queueCapacity)
	}
}
