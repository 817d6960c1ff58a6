// Package editor implements the per-session input line: a rune buffer
// with cursor editing and bash-style tab completion.
//
// A LineEditor is owned by exactly one session handler and is never
// shared between goroutines.  The invariant 0 ≤ cursor ≤ len(buffer)
// holds after every operation.
package editor

// LineEditor maintains one in-progress input line.
// The zero value is an empty buffer ready for use.
type LineEditor struct {
	buf    []rune
	cursor int
}

// Insert places r at the cursor and advances the cursor past it.
func (e *LineEditor) Insert(r rune) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = r
	e.cursor++
}

// Backspace removes the rune immediately before the cursor.
// At cursor 0 it is a no-op, not an error.
func (e *LineEditor) Backspace() {
	if e.cursor == 0 {
		return
	}
	copy(e.buf[e.cursor-1:], e.buf[e.cursor:])
	e.buf = e.buf[:len(e.buf)-1]
	e.cursor--
}

// MoveCursor shifts the cursor by delta, clamping into [0, len].
func (e *LineEditor) MoveCursor(delta int) {
	e.cursor += delta
	if e.cursor < 0 {
		e.cursor = 0
	}
	if e.cursor > len(e.buf) {
		e.cursor = len(e.buf)
	}
}

// Submit returns the accumulated line and unconditionally resets the
// buffer and cursor, even when the line is empty.
func (e *LineEditor) Submit() string {
	line := string(e.buf)
	e.buf = e.buf[:0]
	e.cursor = 0
	return line
}

// String returns the current buffer contents without mutating them.
func (e *LineEditor) String() string { return string(e.buf) }

// Len returns the buffer length in runes.
func (e *LineEditor) Len() int { return len(e.buf) }

// Cursor returns the current cursor position.
func (e *LineEditor) Cursor() int { return e.cursor }

// replaceHead swaps the text before the cursor for s, keeping any tail
// after the cursor, and leaves the cursor at the end of s.
func (e *LineEditor) replaceHead(s string) {
	head := []rune(s)
	tail := append([]rune(nil), e.buf[e.cursor:]...)
	e.buf = append(head, tail...)
	e.cursor = len(head)
}
