package buffer

import "testing"

func TestUndoRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.InsertText("b")

	if !b.Undo() {
		t.Fatalf("undo: expected true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("after undo: got %q, want %q", got, want)
	}
	if !b.Redo() {
		t.Fatalf("redo: expected true")
	}
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("after redo: got %q, want %q", got, want)
	}
	if b.Redo() {
		t.Fatalf("second redo: expected false")
	}
}

func TestUndo_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	b.InsertText("z")
	if b.CanRedo() {
		t.Fatalf("redo stack must be cleared by a new edit")
	}
}

func TestHistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	n := 0
	for b.Undo() {
		n++
	}
	if n != 2 {
		t.Fatalf("undo steps: got %d, want %d", n, 2)
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("oldest reachable state: got %q, want %q", got, want)
	}
}

func TestHistoryDisabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("negative limit disables history")
	}
}
