// Package memory implements the Apple II+ memory bus: address decoding
// across RAM, ROM, the Language Card, and the disk controller PROM, plus
// the $C000-$C0FF soft-switch dispatcher that every access to that range
// runs through regardless of whether it is a read or a write. A read of
// $CFFF turns the disk motor off; a write there has no effect.
//
// Ported from reinette-II-plus-dot-py's memory.py.
package memory

import (
	"fmt"

	"github.com/ArthurFerreira2/reinette-go/internal/disk"
	"github.com/ArthurFerreira2/reinette-go/internal/keyboard"
	"github.com/ArthurFerreira2/reinette-go/internal/paddle"
	"github.com/ArthurFerreira2/reinette-go/internal/speaker"
	"github.com/ArthurFerreira2/reinette-go/internal/video"
)

const (
	ramSize = 0xC000
	romSize = 0x3000
	lgcSize = 0x3000
	bk2Size = 0x1000
	sl6Size = 0x0100

	romStart = 0xD000
	sl6Start = 0xC600
)

// Bus owns every byte of addressable memory and the soft-switch state that
// decides which region answers a given access.
type Bus struct {
	ram [ramSize]byte
	rom [romSize]byte
	lgc [lgcSize]byte
	bk2 [bk2Size]byte
	sl6 [sl6Size]byte

	lcRead     bool
	lcWrite    bool
	lcBank2    bool
	lcPrewrite bool
	dlatch     byte

	disk     *disk.Disk
	keyboard *keyboard.Keyboard
	paddle0  *paddle.Paddle
	paddle1  *paddle.Paddle
	video    *video.Video
	speaker  *speaker.Speaker
}

// New wires a Bus to the peripherals it dispatches soft-switch accesses to.
// The Language Card starts neither readable nor writable, with bank 2
// selected and the pre-write flip-flop clear: writes only become possible
// after two qualifying accesses have armed the flip-flop, matching real
// Language Card hardware.
func New(d *disk.Disk, kb *keyboard.Keyboard, p0, p1 *paddle.Paddle, v *video.Video, spk *speaker.Speaker) *Bus {
	return &Bus{
		lcBank2: true,

		disk:     d,
		keyboard: kb,
		paddle0:  p0,
		paddle1:  p1,
		video:    v,
		speaker:  spk,
	}
}

// LoadROM copies the 12,288-byte system ROM image into $D000-$FFFF's ROM
// bank.
func (b *Bus) LoadROM(data []byte) error {
	if len(data) != romSize {
		return fmt.Errorf("memory: ROM image is %d bytes, want %d", len(data), romSize)
	}
	copy(b.rom[:], data)
	return nil
}

// LoadDiskROM copies the 256-byte Disk II controller PROM into slot 6.
func (b *Bus) LoadDiskROM(data []byte) error {
	if len(data) != sl6Size {
		return fmt.Errorf("memory: disk PROM is %d bytes, want %d", len(data), sl6Size)
	}
	copy(b.sl6[:], data)
	return nil
}

// Read services a CPU fetch or operand read.
func (b *Bus) Read(addr uint16) byte {
	if addr < ramSize {
		return b.ram[addr]
	}
	if addr == 0xCFFF {
		b.disk.SetMotorOn(false)
		return 0
	}
	if addr&0xFF00 == 0xC000 {
		return b.softSwitch(addr, 0, false)
	}
	if addr&0xFF00 == sl6Start {
		return b.sl6[addr-sl6Start]
	}
	if addr >= romStart {
		if !b.lcRead {
			return b.rom[addr-romStart]
		}
		if b.lcBank2 && addr < 0xE000 {
			return b.bk2[addr-romStart]
		}
		return b.lgc[addr-romStart]
	}
	return 0
}

// Write services a CPU store.
func (b *Bus) Write(addr uint16, value byte) {
	if addr < ramSize {
		b.ram[addr] = value
		return
	}
	if addr&0xFF00 == 0xC000 {
		b.softSwitch(addr, value, true)
		return
	}
	if b.lcWrite && addr >= romStart {
		if b.lcBank2 && addr < 0xE000 {
			b.bk2[addr-romStart] = value
			return
		}
		b.lgc[addr-romStart] = value
	}
}

// softSwitch dispatches a $C000-$C0FF access. isWrite distinguishes a
// write (value is meaningful) from a read (value is ignored) the way the
// original's value-is-None sentinel does; the return value is only used by
// Read.
func (b *Bus) softSwitch(addr uint16, value byte, isWrite bool) byte {
	switch {
	case addr < 0xC080:
		return b.dispatchLow(addr, value, isWrite)
	case addr < 0xC0E0:
		return b.dispatchLanguageCard(addr, isWrite)
	default:
		return b.dispatchDisk(addr, value, isWrite)
	}
}

func (b *Bus) dispatchLow(addr uint16, value byte, isWrite bool) byte {
	switch {
	case addr < 0xC050:
		if addr >= 0xC020 && addr <= 0xC03F {
			b.speaker.ToggleOnAccess()
			return 0
		}
		switch addr {
		case 0xC000:
			return b.keyboard.GetKey()
		case 0xC010:
			b.keyboard.Strobe()
			return 0
		}
	case addr < 0xC060:
		switch addr {
		case 0xC050:
			b.video.SetTEXT(false)
		case 0xC051:
			b.video.SetTEXT(true)
		case 0xC052:
			b.video.SetMIXED(false)
		case 0xC053:
			b.video.SetMIXED(true)
		case 0xC054:
			b.video.SetPAGE2(false)
		case 0xC055:
			b.video.SetPAGE2(true)
		case 0xC056:
			b.video.SetHIRES(false)
		case 0xC057:
			b.video.SetHIRES(true)
		}
		return 0
	default:
		switch addr {
		case 0xC061:
			return b.paddle0.Button()
		case 0xC062:
			return b.paddle1.Button()
		case 0xC064:
			return b.paddle0.Read()
		case 0xC065:
			return b.paddle1.Read()
		case 0xC070:
			b.paddle0.Reset()
			b.paddle1.Reset()
		}
	}
	return 0
}

// dispatchLanguageCard handles the sixteen $C080-$C08F switches. The low
// nibble mod 4 selects the operation (read-only, write-arm, ROM-only,
// read+write-arm) and whether it is below $C088 selects bank 2 vs bank 1.
func (b *Bus) dispatchLanguageCard(addr uint16, isWrite bool) byte {
	if addr < 0xC080 || addr > 0xC08F {
		return 0
	}
	nibble := addr & 0xF
	b.lcBank2 = nibble < 8
	isRead := !isWrite

	switch nibble % 4 {
	case 0: // RD: LC/BK2 readable, not writable
		b.lcRead = true
		b.lcWrite = false
		b.lcPrewrite = false
	case 1: // WR: ROM readable, write arms on a second qualifying access
		b.lcRead = false
		b.lcWrite = b.lcWrite || b.lcPrewrite
		b.lcPrewrite = isRead
	case 2: // ROMONLY: neither readable nor writable
		b.lcRead = false
		b.lcWrite = false
		b.lcPrewrite = false
	case 3: // RW: LC/BK2 readable, write arms on a second qualifying access
		b.lcRead = true
		b.lcWrite = b.lcWrite || b.lcPrewrite
		b.lcPrewrite = isRead
	}
	return 0
}

func (b *Bus) dispatchDisk(addr uint16, value byte, isWrite bool) byte {
	switch {
	case addr == 0xC0EC:
		if b.disk.WriteMode() {
			b.disk.Write(b.dlatch)
		} else {
			b.dlatch = b.disk.Read()
		}
		return b.dlatch
	case addr >= 0xC0E0 && addr <= 0xC0E7:
		b.disk.StepMotor(addr)
		return 0
	case addr == 0xC0ED:
		if isWrite && value != 0 {
			b.dlatch = value
		}
		return 0
	case addr == 0xC0EE:
		b.disk.SetWriteMode(false)
		if b.disk.ReadOnly() {
			return 0x80
		}
		return 0x00
	case addr == 0xC0EF:
		b.disk.SetWriteMode(true)
		return 0
	case addr == 0xC0E8:
		b.disk.SetMotorOn(false)
		return 0
	case addr == 0xC0E9:
		b.disk.SetMotorOn(true)
		return 0
	}
	return 0
}
