package buffer

import "testing"

func TestMove_Graphemes(t *testing.T) {
	b := New("ab\nc", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	if !b.Move(Move{Unit: MoveGrapheme, Dir: DirRight}) {
		t.Fatalf("expected move across line end")
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}

	if !b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft}) {
		t.Fatalf("expected move back across line start")
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestMove_NoOpReportsFalse(t *testing.T) {
	b := New("a", Options{})
	v := b.Version()
	if b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft}) {
		t.Fatalf("move at doc start must report false")
	}
	if b.Version() != v {
		t.Fatalf("version changed on no-op move")
	}
}

func TestMove_Words(t *testing.T) {
	b := New("one two  three", Options{})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor().GraphemeCol, 4; got != want {
		t.Fatalf("word right: got %d, want %d", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor().GraphemeCol, 9; got != want {
		t.Fatalf("word right twice: got %d, want %d", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got, want := b.Cursor().GraphemeCol, 4; got != want {
		t.Fatalf("word left: got %d, want %d", got, want)
	}
}

func TestMove_LinesClampColumn(t *testing.T) {
	b := New("long line\nab", Options{})
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got, want := b.Cursor(), (Pos{Row: 1}); got != want {
		t.Fatalf("home: got %v, want %v", got, want)
	}
}
