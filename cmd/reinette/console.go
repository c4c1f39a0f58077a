package main

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/ArthurFerreira2/reinette-go/internal/keyboard"
)

// console reads raw stdin non-blockingly and feeds bytes into a
// keyboard.Keyboard, the way the teacher's TerminalHost (terminal_host.go)
// feeds a TerminalMMIO — but polled once per frame from the main loop
// instead of on a background goroutine, since the core this host drives is
// single-threaded cooperative: nothing in the emulator may block waiting on
// a reader that outlives the frame that started it.
type console struct {
	fd           int
	oldTermState *term.State
	nonblockSet  bool
}

// newConsole prepares a console reader over os.Stdin.
func newConsole() *console {
	return &console{fd: int(os.Stdin.Fd())}
}

// start puts stdin into raw, non-blocking mode. Call stop to restore it.
func (c *console) start() error {
	oldState, err := term.MakeRaw(c.fd)
	if err != nil {
		return fmt.Errorf("console: entering raw mode: %w", err)
	}
	c.oldTermState = oldState

	if err := syscall.SetNonblock(c.fd, true); err != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
		return fmt.Errorf("console: setting non-blocking stdin: %w", err)
	}
	c.nonblockSet = true
	return nil
}

// stop restores stdin to its original blocking, cooked mode.
func (c *console) stop() {
	if c.nonblockSet {
		_ = syscall.SetNonblock(c.fd, false)
		c.nonblockSet = false
	}
	if c.oldTermState != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
	}
}

// quitByte is Ctrl-C. Raw mode disables the terminal's own SIGINT
// handling, so the console itself has to recognize it as a request to
// shut down rather than forwarding it to the Apple II keyboard.
const quitByte = 0x03

// pollQuit drains whatever bytes are currently waiting on stdin (there may
// be none, since stdin is non-blocking) and feeds each one to kb, except
// for a Ctrl-C, which sets *quit instead. It never blocks, so it's safe to
// call once per scheduler Tick.
func (c *console) pollQuit(kb *keyboard.Keyboard, quit *bool) {
	buf := make([]byte, 64)
	for {
		n, err := syscall.Read(c.fd, buf)
		if n <= 0 {
			return
		}
		for _, b := range buf[:n] {
			if b == quitByte {
				*quit = true
				continue
			}
			c.feed(kb, b)
		}
		if err != nil {
			return
		}
	}
}

// shiftedDigits maps the shifted-digit ASCII punctuation a terminal sends
// (shift+1 through shift+0 on a US layout) back to the (digit, ModShift)
// pair the Apple II keymap expects, since the keymap tracks modifiers
// rather than the already-shifted ASCII byte.
var shiftedDigits = map[byte]byte{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
}

// feed translates one raw stdin byte into the key sym and modifier the
// Apple II keymap expects and appends it to kb. Modern terminals send DEL
// (0x7F) for Backspace; the real keyboard has no DEL key, so it's
// translated to BS the same way the teacher's TerminalHost does for its
// MMIO device.
func (c *console) feed(kb *keyboard.Keyboard, b byte) {
	if b == 0x7F {
		b = 0x08
	}

	switch {
	case b >= 0x01 && b <= 0x1A && b != 0x08 && b != 0x0D:
		// Ctrl+letter: raw mode delivers the control byte directly: Ctrl-A
		// is 0x01, Ctrl-Z is 0x1A. The Apple II has no lowercase, so the
		// keymap only has the lowercase sym for each letter key.
		kb.SetKeyFromSym(rune('a'+b-1), keyboard.ModCtrl)
	case b >= 'A' && b <= 'Z':
		// The Apple II keyboard always sends the uppercase code for a
		// letter key regardless of shift; fold the terminal's shifted
		// byte back to the unshifted sym the keymap indexes by.
		kb.SetKeyFromSym(rune(b-'A'+'a'), keyboard.ModNone)
	case shiftedDigits[b] != 0:
		kb.SetKeyFromSym(rune(shiftedDigits[b]), keyboard.ModShift)
	default:
		kb.SetKeyFromSym(rune(b), keyboard.ModNone)
	}
}
