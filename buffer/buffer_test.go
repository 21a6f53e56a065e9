package buffer

import "testing"

func TestNew_SplitsLines(t *testing.T) {
	b := New("<p>a</p>\n<p>b</p>", Options{})
	if got, want := b.LineCount(), 2; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if got, want := b.Line(1), "<p>b</p>"; got != want {
		t.Fatalf("line 1: got %q, want %q", got, want)
	}
	if got := b.Line(5); got != "" {
		t.Fatalf("out of range line: got %q, want empty", got)
	}
}

func TestText_RoundTripsExactly(t *testing.T) {
	cases := []string{
		"",
		"\n",
		"<p>héllo</p>\n\n<p>👍🏽</p>\n",
		"trailing space ",
	}
	for _, text := range cases {
		b := New(text, Options{})
		if got := b.Text(); got != text {
			t.Fatalf("round trip: got %q, want %q", got, text)
		}
	}
}

func TestSetText_ResetsCursorAndHistory(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	b.InsertText("c")
	if !b.CanUndo() {
		t.Fatalf("expected undo history after insert")
	}

	v := b.Version()
	b.SetText("<p>x</p>")
	if got := b.Text(); got != "<p>x</p>" {
		t.Fatalf("text: got %q", got)
	}
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor: got %v, want origin", got)
	}
	if b.CanUndo() {
		t.Fatalf("undo history must be dropped by SetText")
	}
	if b.Version() == v {
		t.Fatalf("version must advance on SetText")
	}
}

func TestSetText_SameContentIsNoOp(t *testing.T) {
	b := New("same", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	v := b.Version()

	b.SetText("same")
	if b.Version() != v {
		t.Fatalf("version changed on no-op SetText")
	}
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("cursor moved on no-op SetText: %v", got)
	}
}

func TestIsEmpty(t *testing.T) {
	if !New("", Options{}).IsEmpty() {
		t.Fatalf("empty buffer must report empty")
	}
	if New("\n", Options{}).IsEmpty() {
		t.Fatalf("newline-only buffer is not empty")
	}
}
