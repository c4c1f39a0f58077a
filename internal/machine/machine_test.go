package machine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestLoadROMRejectsWrongSize(t *testing.T) {
	m := New()
	dir := t.TempDir()
	path := writeFixture(t, dir, "bad.rom", make([]byte, 100))
	if err := m.LoadROM(path); err == nil {
		t.Fatalf("LoadROM accepted a wrongly-sized image")
	}
}

func TestLoadROMAndResetReachesResetVector(t *testing.T) {
	m := New()
	dir := t.TempDir()
	rom := make([]byte, 0x3000)
	// RESET vector $FFFC/D sits at ROM offsets 0x2FFC/0x2FFD ($FFFC is
	// $D000+0x2FFC); ROM spans $D000-$FFFF.
	rom[0x2FFC] = 0x00
	rom[0x2FFD] = 0xD0 // -> $D000, the start of ROM
	path := writeFixture(t, dir, "appleII+.rom", rom)

	if err := m.LoadROM(path); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	m.Reset()
	if m.CPU.PC != 0xD000 {
		t.Fatalf("PC = %#x, want $D000", m.CPU.PC)
	}
}

func TestColdResetZeroesPowerUpByteButKeepsRAM(t *testing.T) {
	m := New()
	m.Memory.Write(powerUpByteAddr, 0xA5)
	m.Memory.Write(0x1234, 0x42)
	m.ColdReset()
	if got := m.Memory.Read(powerUpByteAddr); got != 0 {
		t.Fatalf("power-up byte = %#x, want 0", got)
	}
	if got := m.Memory.Read(0x1234); got != 0x42 {
		t.Fatalf("unrelated RAM byte = %#x, want unchanged $42", got)
	}
}

func TestInsertFloppyFailsOnMissingFile(t *testing.T) {
	m := New()
	if err := m.InsertFloppy(filepath.Join(t.TempDir(), "missing.nib")); err == nil {
		t.Fatalf("InsertFloppy accepted a nonexistent path")
	}
}
