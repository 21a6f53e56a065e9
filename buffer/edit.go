package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// InsertText inserts text at the cursor. CRLF and CR line endings are
// normalized to LF.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	prev := b.snapshot()

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	line := b.lines[row]
	before := grapheme.Join(line, 0, col)
	after := grapheme.Join(line, col, len(line))

	parts := strings.Split(s, "\n")
	parts[0] = before + parts[0]
	last := len(parts) - 1
	cursorCol := grapheme.Count(parts[last])
	parts[last] += after

	inserted := make([][]string, 0, len(parts))
	for _, p := range parts {
		inserted = append(inserted, grapheme.Split(p))
	}

	next := make([][]string, 0, len(b.lines)+last)
	next = append(next, b.lines[:row]...)
	next = append(next, inserted...)
	next = append(next, b.lines[row+1:]...)
	b.lines = next

	b.cursor = b.clampPos(Pos{Row: row + last, GraphemeCol: cursorCol})
	b.commit(prev)
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	if row == 0 && col == 0 {
		return
	}
	prev := b.snapshot()

	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(append([]string{}, line[:col-1]...), line[col:]...)
		b.cursor = Pos{Row: row, GraphemeCol: col - 1}
		b.commit(prev)
		return
	}

	// Join with the previous line.
	joinCol := len(b.lines[row-1])
	b.joinLines(row - 1)
	b.cursor = Pos{Row: row - 1, GraphemeCol: joinCol}
	b.commit(prev)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}
	prev := b.snapshot()

	if col < len(b.lines[row]) {
		line := b.lines[row]
		b.lines[row] = append(append([]string{}, line[:col]...), line[col+1:]...)
		b.commit(prev)
		return
	}

	b.joinLines(row)
	b.commit(prev)
}

// joinLines merges row+1 into row. Clusters are re-segmented across the seam.
func (b *Buffer) joinLines(row int) {
	merged := grapheme.Split(strings.Join(b.lines[row], "") + strings.Join(b.lines[row+1], ""))
	next := make([][]string, 0, len(b.lines)-1)
	next = append(next, b.lines[:row]...)
	next = append(next, merged)
	next = append(next, b.lines[row+2:]...)
	b.lines = next
}

func (b *Buffer) commit(prev bufferSnapshot) {
	b.version++
	b.recordUndo(prev)
}
