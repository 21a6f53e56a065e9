package buffer

import "github.com/iw2rmb/quill/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// Move describes a cursor movement.
//
// MoveLine only honors DirHome/DirEnd/DirUp/DirDown; MoveGrapheme and MoveWord
// honor DirLeft/DirRight (DirUp/DirDown fall through to line moves).
type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move moves the cursor and reports whether it changed.
func (b *Buffer) Move(m Move) bool {
	prev := b.cursor
	next := prev

	switch {
	case m.Dir == DirUp:
		next = b.clampPos(Pos{Row: prev.Row - 1, GraphemeCol: prev.GraphemeCol})
	case m.Dir == DirDown:
		next = b.clampPos(Pos{Row: prev.Row + 1, GraphemeCol: prev.GraphemeCol})
	case m.Dir == DirHome:
		next = Pos{Row: prev.Row}
	case m.Dir == DirEnd:
		next = Pos{Row: prev.Row, GraphemeCol: b.lineLen(prev.Row)}
	case m.Unit == MoveWord && m.Dir == DirLeft:
		next = b.wordLeft(prev)
	case m.Unit == MoveWord && m.Dir == DirRight:
		next = b.wordRight(prev)
	case m.Dir == DirLeft:
		next = b.graphemeLeft(prev)
	case m.Dir == DirRight:
		next = b.graphemeRight(prev)
	}

	if next == prev {
		return false
	}
	b.cursor = next
	b.version++
	return true
}

func (b *Buffer) graphemeLeft(p Pos) Pos {
	if p.GraphemeCol > 0 {
		return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol - 1}
	}
	if p.Row > 0 {
		return Pos{Row: p.Row - 1, GraphemeCol: b.lineLen(p.Row - 1)}
	}
	return p
}

func (b *Buffer) graphemeRight(p Pos) Pos {
	if p.GraphemeCol < b.lineLen(p.Row) {
		return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol + 1}
	}
	if p.Row < len(b.lines)-1 {
		return Pos{Row: p.Row + 1}
	}
	return p
}

func (b *Buffer) wordLeft(p Pos) Pos {
	if p.GraphemeCol == 0 {
		return b.graphemeLeft(p)
	}
	line := b.lines[p.Row]
	col := p.GraphemeCol
	for col > 0 && grapheme.IsSpace(line[col-1]) {
		col--
	}
	for col > 0 && !grapheme.IsSpace(line[col-1]) {
		col--
	}
	return Pos{Row: p.Row, GraphemeCol: col}
}

func (b *Buffer) wordRight(p Pos) Pos {
	line := b.lines[p.Row]
	if p.GraphemeCol >= len(line) {
		return b.graphemeRight(p)
	}
	col := p.GraphemeCol
	for col < len(line) && !grapheme.IsSpace(line[col]) {
		col++
	}
	for col < len(line) && grapheme.IsSpace(line[col]) {
		col++
	}
	return Pos{Row: p.Row, GraphemeCol: col}
}
