// Package machine wires the clock, memory bus, CPU, and every peripheral
// into a single Apple II+ instance, the way the teacher's MachineBus
// (machine_bus.go) wires a system bus to its CPU and chips — except this
// machine owns concrete peripheral structs directly rather than mapping
// I/O-port ranges to handler callbacks, since the soft-switch decoder
// already lives in internal/memory.
package machine

import (
	"fmt"
	"os"

	"github.com/ArthurFerreira2/reinette-go/internal/clock"
	"github.com/ArthurFerreira2/reinette-go/internal/cpu"
	"github.com/ArthurFerreira2/reinette-go/internal/disk"
	"github.com/ArthurFerreira2/reinette-go/internal/keyboard"
	"github.com/ArthurFerreira2/reinette-go/internal/memory"
	"github.com/ArthurFerreira2/reinette-go/internal/paddle"
	"github.com/ArthurFerreira2/reinette-go/internal/speaker"
	"github.com/ArthurFerreira2/reinette-go/internal/video"
)

// powerUpByteAddr is RAM[$03F4], the "power-up byte" Apple DOS/ProDOS
// inspect on reset to distinguish a warm reset from a cold boot.
const powerUpByteAddr = 0x03F4

// Machine is a complete, runnable Apple II+: one clock, one CPU, one
// memory bus, and the peripherals the bus dispatches soft switches to.
type Machine struct {
	Clock    *clock.Clock
	CPU      *cpu.CPU
	Memory   *memory.Bus
	Disk     *disk.Disk
	Keyboard *keyboard.Keyboard
	Paddle0  *paddle.Paddle
	Paddle1  *paddle.Paddle
	Video    *video.Video
	Speaker  *speaker.Speaker
}

// New assembles a Machine with every peripheral wired to a shared clock
// and memory bus, but does not load any ROM/PROM/floppy image or reset the
// CPU — callers do that via LoadROM/LoadDiskROM/InsertFloppy and Reset.
func New() *Machine {
	clk := clock.New()
	d := disk.New()
	kb := keyboard.New()
	p0 := paddle.New(clk)
	p1 := paddle.New(clk)
	v := video.New()
	spk := speaker.New(clk)
	mem := memory.New(d, kb, p0, p1, v, spk)

	return &Machine{
		Clock:    clk,
		CPU:      cpu.New(mem, clk),
		Memory:   mem,
		Disk:     d,
		Keyboard: kb,
		Paddle0:  p0,
		Paddle1:  p1,
		Video:    v,
		Speaker:  spk,
	}
}

// LoadROM loads the 12,288-byte system ROM image from filename.
func (m *Machine) LoadROM(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("machine: loading system ROM: %w", err)
	}
	if err := m.Memory.LoadROM(data); err != nil {
		return fmt.Errorf("machine: loading system ROM: %w", err)
	}
	return nil
}

// LoadDiskROM loads the 256-byte Disk II controller PROM from filename.
func (m *Machine) LoadDiskROM(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("machine: loading disk controller PROM: %w", err)
	}
	if err := m.Memory.LoadDiskROM(data); err != nil {
		return fmt.Errorf("machine: loading disk controller PROM: %w", err)
	}
	return nil
}

// InsertFloppy loads a .nib image into the Disk II drive.
func (m *Machine) InsertFloppy(filename string) error {
	if err := m.Disk.InsertFloppy(filename); err != nil {
		return fmt.Errorf("machine: inserting floppy: %w", err)
	}
	return nil
}

// Reset performs a warm reset: the CPU reloads PC from the reset vector
// and sets SP to $FD and the I and U flags, but RAM and every peripheral's state survive.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// ColdReset models a full power cycle: it zeroes the power-up byte Apple
// system software checks at $03F4 to distinguish a cold boot from a warm
// reset, then performs an ordinary Reset. RAM contents otherwise survive,
// matching the original's cold-reset routine, which never clears all of
// RAM either.
func (m *Machine) ColdReset() {
	m.Memory.Write(powerUpByteAddr, 0)
	m.Reset()
}
