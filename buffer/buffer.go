package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables history
}

// Buffer is the pure document state: text and cursor.
type Buffer struct {
	lines   [][]string
	version uint64

	cursor Pos

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range line {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// SetText replaces the whole document. The cursor moves to the document
// start and the undo history is dropped. It is a no-op when text is already
// the current content.
func (b *Buffer) SetText(text string) {
	if text == b.Text() {
		return
	}
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.hist = historyState{}
	b.version++
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// LineCount returns the number of logical lines (at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return strings.Join(b.lines[row], "")
}

// IsEmpty reports whether the document holds no text at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
