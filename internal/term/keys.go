// Package term decodes the raw byte stream of a terminal-oriented
// transport into discrete key events.
//
// The decoder is incremental: bytes arrive one at a time from the SSH
// channel (clients send keystrokes unbuffered in raw mode) and may
// split multi-byte UTF-8 runes or CSI escape sequences across reads.
// Unrecognized control input is discarded, never fatal.
package term

import "unicode/utf8"

// KeyKind classifies a decoded key event.
type KeyKind int

const (
	KeyRune KeyKind = iota // printable rune in Key.Rune
	KeyEnter
	KeyBackspace
	KeyTab
	KeyCtrlC
	KeyCtrlD
	KeyLeft
	KeyRight
)

// Key is one decoded input event.
type Key struct {
	Kind KeyKind
	Rune rune // set for KeyRune only
}

// decoder states
const (
	stNormal = iota
	stEscape // saw ESC, deciding between CSI and a bare sequence
	stCSI    // inside ESC [ ... , consuming until the final byte
)

// Decoder turns bytes into key events.  The zero value is ready to
// use.  Feed returns (key, true) when a byte completes an event and
// (zero, false) when the byte was consumed silently (escape-sequence
// interior, UTF-8 continuation, or discarded control input).
type Decoder struct {
	state   int
	pending [utf8.UTFMax]byte
	have    int // pending bytes accumulated
	need    int // total bytes the current rune requires
}

// Feed consumes one byte.
func (d *Decoder) Feed(b byte) (Key, bool) {
	switch d.state {
	case stEscape:
		if b == '[' || b == 'O' {
			d.state = stCSI
			return Key{}, false
		}
		// Bare ESC followed by anything else: swallow both.
		d.state = stNormal
		return Key{}, false

	case stCSI:
		// Parameter (0x30–0x3F) and intermediate (0x20–0x2F) bytes
		// continue the sequence; a final byte (0x40–0x7E) ends it.
		if b >= 0x40 && b <= 0x7e {
			d.state = stNormal
			switch b {
			case 'D':
				return Key{Kind: KeyLeft}, true
			case 'C':
				return Key{Kind: KeyRight}, true
			}
			// Up/Down, Home/End, function keys: recognized and dropped.
			return Key{}, false
		}
		return Key{}, false
	}

	if d.need > 0 {
		return d.feedContinuation(b)
	}

	switch b {
	case '\r', '\n':
		return Key{Kind: KeyEnter}, true
	case 0x7f, 0x08:
		return Key{Kind: KeyBackspace}, true
	case '\t':
		return Key{Kind: KeyTab}, true
	case 0x03:
		return Key{Kind: KeyCtrlC}, true
	case 0x04:
		return Key{Kind: KeyCtrlD}, true
	case 0x1b:
		d.state = stEscape
		return Key{}, false
	}

	if b < 0x20 {
		// Other control bytes are protocol noise; discard.
		return Key{}, false
	}
	if b < utf8.RuneSelf {
		return Key{Kind: KeyRune, Rune: rune(b)}, true
	}
	return d.startRune(b)
}

// startRune begins accumulating a multi-byte UTF-8 rune.
func (d *Decoder) startRune(b byte) (Key, bool) {
	switch {
	case b&0xe0 == 0xc0:
		d.need = 2
	case b&0xf0 == 0xe0:
		d.need = 3
	case b&0xf8 == 0xf0:
		d.need = 4
	default:
		// Stray continuation or invalid leader; discard.
		return Key{}, false
	}
	d.pending[0] = b
	d.have = 1
	return Key{}, false
}

func (d *Decoder) feedContinuation(b byte) (Key, bool) {
	if b&0xc0 != 0x80 {
		// Broken sequence: drop it and reprocess b from scratch.
		d.have, d.need = 0, 0
		return d.Feed(b)
	}
	d.pending[d.have] = b
	d.have++
	if d.have < d.need {
		return Key{}, false
	}
	r, _ := utf8.DecodeRune(d.pending[:d.have])
	d.have, d.need = 0, 0
	if r == utf8.RuneError {
		return Key{}, false
	}
	return Key{Kind: KeyRune, Rune: r}, true
}
