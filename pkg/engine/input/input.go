// Package input turns device key events into game intents.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader decodes single key presses from a raw-mode terminal byte stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key has been read and returns its code.
// Unknown escape sequences are returned as "".
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return k.readEscape()
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a')), nil
	case b >= 32 && b < 127:
		return string(rune(b)), nil
	}
	return "", nil
}

// readEscape reads the rest of an escape sequence.
// Both CSI (ESC [) and SS3 (ESC O) forms are understood.
// A terminal writes a whole sequence at once, so an ESC with nothing
// buffered behind it is the Escape key on its own.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		// Escape typed just before another key; keep that key for the next read.
		if err := k.r.UnreadByte(); err != nil {
			return "", err
		}
		return "escape", nil
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Function keys: ESC [ <num> ~
	num := 0
	for b3 >= '0' && b3 <= '9' {
		num = num*10 + int(b3-'0')
		if b3, err = k.r.ReadByte(); err != nil {
			return "", err
		}
	}
	if b3 != '~' {
		return "", nil
	}
	switch num {
	case 15:
		return "f5", nil
	case 19:
		return "f8", nil
	}
	return "", nil
}

// Terminal reads key presses from stdin with the terminal in raw mode.
type Terminal struct {
	fd       int
	oldState *term.State
	keys     *KeyReader
}

// OpenTerminal puts stdin into raw mode.
func OpenTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &Terminal{fd: fd, oldState: oldState, keys: NewKeyReader(os.Stdin)}, nil
}

// ReadIntent blocks for the next key and maps it to an intent.
func (t *Terminal) ReadIntent() (Intent, error) {
	code, err := t.keys.ReadKey()
	if err != nil {
		return Intent{}, err
	}
	return IntentFor(DeviceTerminal, code), nil
}

// Restore returns the terminal to its previous mode.
func (t *Terminal) Restore() error {
	if t == nil || t.oldState == nil {
		return nil
	}
	return term.Restore(t.fd, t.oldState)
}
