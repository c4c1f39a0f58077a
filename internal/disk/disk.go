// Package disk implements the Disk II controller core: stepper-motor
// half-track arithmetic over a 3-deep phase history, and a nibble-stream
// read/write head over a pre-nibblized .nib track image.
//
// Ported from reinette-II-plus-dot-py's disk.py; see
// http://www.hackzapple.com/DISKII/DISKIITECH09.HTM and
// http://www.hackzapple.com/DISKII/DISKIITECH09D.HTM for the hardware
// background the original author cites.
package disk

import (
	"fmt"
	"io"
	"os"
)

const (
	tracks          = 35
	bytesPerTrack   = 6656
	imageSize       = tracks * bytesPerTrack
	maxHalfTrack    = 68
	numPhases       = 4
)

// Disk holds the nibblized image and the stepper/head state for a single
// Disk II drive.
type Disk struct {
	data [imageSize]byte

	readOnly  bool
	motorOn   bool
	writeMode bool

	phases   [numPhases]bool
	phasesB  [numPhases]bool
	phasesBB [numPhases]bool
	pIdx     int
	pIdxB    int

	track    int
	halfTrk  int
	nibble   int

	lastWrite bool // true if the most recent $C0EC access was a write
}

// New returns a drive with no image loaded, motor off, read/write mode
// clear, and the head parked at track 0, nibble 0.
func New() *Disk {
	return &Disk{}
}

// InsertFloppy loads a .nib image from filename. A well-formed image is
// exactly 232,960 bytes (35 tracks * 6,656 bytes); a shorter file is
// zero-padded and a longer one truncated, so insertion never fails on size
// alone. It does fail if the file cannot be opened or read.
func (d *Disk) InsertFloppy(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("disk: open %s: %w", filename, err)
	}
	defer f.Close()

	for i := range d.data {
		d.data[i] = 0
	}
	if _, err := io.ReadFull(f, d.data[:]); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("disk: read %s: %w", filename, err)
	}
	return nil
}

// SetWriteMode/WriteMode, SetMotorOn/MotorOn, SetReadOnly/ReadOnly are the
// soft-switch-facing getters and setters for disk ][ related state.

func (d *Disk) SetWriteMode(state bool) { d.writeMode = state }
func (d *Disk) WriteMode() bool         { return d.writeMode }

func (d *Disk) SetMotorOn(state bool) { d.motorOn = state }
func (d *Disk) MotorOn() bool         { return d.motorOn }

func (d *Disk) SetReadOnly(state bool) { d.readOnly = state }
func (d *Disk) ReadOnly() bool         { return d.readOnly }

// Track returns the current track (0-34).
func (d *Disk) Track() int { return d.track }

// HalfTrack returns the current half-track position (0-68).
func (d *Disk) HalfTrack() int { return d.halfTrk }

// Nibble returns the intra-track head offset (0-6655).
func (d *Disk) Nibble() int { return d.nibble }

// LastAccess reports the track/nibble/direction of the most recent $C0EC
// access, for host diagnostics (the Python original repurposes this to
// update a window title; we expose it without any windowing dependency).
func (d *Disk) LastAccess() (track, nibble int, writing bool) {
	return d.track, d.nibble, d.lastWrite
}

// Read spins the disk by one nibble under the head and returns the byte
// there.
func (d *Disk) Read() byte {
	d.nibble = (d.nibble + 1) % bytesPerTrack
	d.lastWrite = false
	return d.data[d.track*bytesPerTrack+d.nibble]
}

// Write spins the disk by one nibble and stores value under the head.
func (d *Disk) Write(value byte) {
	d.nibble = (d.nibble + 1) % bytesPerTrack
	d.lastWrite = true
	d.data[d.track*bytesPerTrack+d.nibble] = value
}

// StepMotor processes an access to one of the eight stepper soft switches
// ($C0E0-$C0E7). addr's low 3 bits select {phase index, on/off}.
//
// The controller keeps a 3-deep history of phase activations (phases,
// phasesB, phasesBB) because the direction of head travel is only knowable
// from the sequence of the last two distinct magnets energized, not from a
// single activation.
func (d *Disk) StepMotor(addr uint16) {
	addr &= 7
	phase := int(addr>>1) & 3
	on := addr&1 != 0

	d.phasesBB[d.pIdxB] = d.phasesB[d.pIdxB]
	d.phasesB[d.pIdx] = d.phases[d.pIdx]
	d.pIdxB = d.pIdx
	d.pIdx = phase

	if !on {
		d.phases[phase] = false
		return
	}

	if d.phasesBB[(phase+1)&3] {
		d.halfTrk--
		if d.halfTrk < 0 {
			d.halfTrk = 0
		}
	}
	if d.phasesBB[(phase+3)&3] {
		d.halfTrk++
		if d.halfTrk > maxHalfTrack {
			d.halfTrk = maxHalfTrack
		}
	}

	d.phases[phase] = true
	d.track = (d.halfTrk + 1) / 2
	d.nibble = 0
}
