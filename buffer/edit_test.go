package buffer

import "testing"

func TestInsertText_AtCursor(t *testing.T) {
	b := New("<p></p>", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 3})
	b.InsertText("hi")

	if got, want := b.Text(), "<p>hi</p>"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 5}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestInsertText_MultilineNormalizesCRLF(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	b.InsertText("x\r\ny\rz")

	if got, want := b.Text(), "ax\ny\nzb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 2, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestInsertNewline_SplitsLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	b.InsertNewline()

	if got, want := b.Text(), "a\nb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestDeleteBackward(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		cursor     Pos
		wantText   string
		wantCursor Pos
	}{
		{name: "doc start is no-op", text: "ab", cursor: Pos{}, wantText: "ab", wantCursor: Pos{}},
		{name: "within line", text: "ab", cursor: Pos{Row: 0, GraphemeCol: 2}, wantText: "a", wantCursor: Pos{Row: 0, GraphemeCol: 1}},
		{name: "joins lines", text: "ab\ncd", cursor: Pos{Row: 1, GraphemeCol: 0}, wantText: "abcd", wantCursor: Pos{Row: 0, GraphemeCol: 2}},
		{name: "whole cluster", text: "a👍🏽", cursor: Pos{Row: 0, GraphemeCol: 2}, wantText: "a", wantCursor: Pos{Row: 0, GraphemeCol: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text, Options{})
			b.SetCursor(tc.cursor)
			b.DeleteBackward()
			if got := b.Text(); got != tc.wantText {
				t.Fatalf("text: got %q, want %q", got, tc.wantText)
			}
			if got := b.Cursor(); got != tc.wantCursor {
				t.Fatalf("cursor: got %v, want %v", got, tc.wantCursor)
			}
		})
	}
}

func TestDeleteForward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("join: got %q, want %q", got, want)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 0})
	b.DeleteForward()
	if got, want := b.Text(), "bcd"; got != want {
		t.Fatalf("delete: got %q, want %q", got, want)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 3})
	v := b.Version()
	b.DeleteForward()
	if b.Version() != v {
		t.Fatalf("delete at doc end must be a no-op")
	}
}
