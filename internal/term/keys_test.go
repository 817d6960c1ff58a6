package term

import (
	"reflect"
	"testing"
)

// feedAll runs every byte through a fresh decoder and collects the
// emitted key events.
func feedAll(input []byte) []Key {
	var d Decoder
	var out []Key
	for _, b := range input {
		if k, ok := d.Feed(b); ok {
			out = append(out, k)
		}
	}
	return out
}

func TestDecodeBasicKeys(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []Key
	}{
		{"ascii", []byte("hi"), []Key{{KeyRune, 'h'}, {KeyRune, 'i'}}},
		{"enter cr", []byte{'\r'}, []Key{{Kind: KeyEnter}}},
		{"enter lf", []byte{'\n'}, []Key{{Kind: KeyEnter}}},
		{"backspace del", []byte{0x7f}, []Key{{Kind: KeyBackspace}}},
		{"backspace bs", []byte{0x08}, []Key{{Kind: KeyBackspace}}},
		{"tab", []byte{'\t'}, []Key{{Kind: KeyTab}}},
		{"ctrl-c", []byte{0x03}, []Key{{Kind: KeyCtrlC}}},
		{"ctrl-d", []byte{0x04}, []Key{{Kind: KeyCtrlD}}},
		{"arrow left", []byte("\x1b[D"), []Key{{Kind: KeyLeft}}},
		{"arrow right", []byte("\x1b[C"), []Key{{Kind: KeyRight}}},
		{"ss3 arrow right", []byte("\x1bOC"), []Key{{Kind: KeyRight}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := feedAll(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("feedAll(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeDiscardsUnrecognized(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"arrow up", []byte("\x1b[A")},
		{"arrow down", []byte("\x1b[B")},
		{"home", []byte("\x1b[H")},
		{"delete key with param", []byte("\x1b[3~")},
		{"bare escape pair", []byte("\x1bq")},
		{"control noise", []byte{0x01, 0x02, 0x1a}},
		{"stray utf8 continuation", []byte{0x80, 0x81}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feedAll(tt.input); len(got) != 0 {
				t.Errorf("feedAll(%q) = %v, want no events", tt.input, got)
			}
		})
	}
}

func TestDecodeUTF8(t *testing.T) {
	got := feedAll([]byte("é✓")) // 2-byte and 3-byte runes
	want := []Key{{KeyRune, 'é'}, {KeyRune, '✓'}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeUTF8SplitAcrossFeeds(t *testing.T) {
	// Feeding the bytes of 'é' one at a time must emit exactly one
	// event, on the final byte.
	var d Decoder
	raw := []byte("é")

	if _, ok := d.Feed(raw[0]); ok {
		t.Fatal("leader byte must not emit an event")
	}
	k, ok := d.Feed(raw[1])
	if !ok || k.Kind != KeyRune || k.Rune != 'é' {
		t.Fatalf("continuation byte: got (%v, %v), want é", k, ok)
	}
}

func TestDecodeBrokenUTF8Recovers(t *testing.T) {
	// A leader followed by a plain ASCII byte drops the partial rune
	// and still delivers the ASCII key.
	got := feedAll([]byte{0xc3, 'a'})
	want := []Key{{KeyRune, 'a'}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeInterleavedSequences(t *testing.T) {
	// Typing, an arrow key, more typing, then Enter.
	got := feedAll([]byte("ab\x1b[Dc\r"))
	want := []Key{
		{KeyRune, 'a'}, {KeyRune, 'b'},
		{Kind: KeyLeft},
		{KeyRune, 'c'},
		{Kind: KeyEnter},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
