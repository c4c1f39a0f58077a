// Command reinette runs an Apple II+ core: it loads the system ROM and
// Disk II controller PROM, optionally inserts a floppy image, and drives
// the machine either headlessly for a fixed number of frames or
// interactively with stdin feeding the keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ArthurFerreira2/reinette-go/internal/machine"
	"github.com/ArthurFerreira2/reinette-go/internal/scheduler"
)

func main() {
	romPath := flag.String("rom", "appleII+.rom", "system ROM image (12288 bytes)")
	diskROMPath := flag.String("diskrom", "diskII.rom", "Disk II controller PROM (256 bytes)")
	floppyPath := flag.String("disk", "", "floppy image to insert (.nib, 232960 bytes)")
	readOnly := flag.Bool("readonly", false, "write-protect the inserted floppy")
	frames := flag.Uint64("frames", 0, "run headlessly for this many frames and exit (0 = run interactively)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reinette [options]\n\nRuns an Apple II+ core.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  reinette -disk games/lode_runner.nib\n")
		fmt.Fprintf(os.Stderr, "  reinette -disk dos33.nib -frames 600\n")
	}
	flag.Parse()

	m := machine.New()

	if err := m.LoadROM(*romPath); err != nil {
		fmt.Fprintf(os.Stderr, "reinette: %v\n", err)
		os.Exit(1)
	}
	if err := m.LoadDiskROM(*diskROMPath); err != nil {
		fmt.Fprintf(os.Stderr, "reinette: %v\n", err)
		os.Exit(1)
	}
	if *floppyPath != "" {
		if err := m.InsertFloppy(*floppyPath); err != nil {
			fmt.Fprintf(os.Stderr, "reinette: %v\n", err)
			os.Exit(1)
		}
		m.Disk.SetReadOnly(*readOnly)
	}

	m.ColdReset()

	if *frames > 0 {
		runHeadless(m, *frames)
		return
	}
	if err := runInteractive(m); err != nil {
		fmt.Fprintf(os.Stderr, "reinette: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless drives exactly n frames with no video refresh and no
// keyboard input, for batch testing and scripted playback.
func runHeadless(m *machine.Machine, n uint64) {
	s := scheduler.NewDefault(m.CPU, m.Disk, nil)
	s.RunFrames(n)
}

// runInteractive drives the machine until Ctrl-C is typed, feeding stdin
// into the keyboard latch once per frame. Video rendering is left to an
// external frontend in this core; this command exercises the emulator
// headfully over the terminal only for keyboard input.
func runInteractive(m *machine.Machine) error {
	con := newConsole()
	if err := con.start(); err != nil {
		return err
	}
	defer con.stop()

	quit := false
	s := scheduler.NewDefault(m.CPU, m.Disk, nil)
	for !quit {
		con.pollQuit(m.Keyboard, &quit)
		s.Tick()
	}
	return nil
}
