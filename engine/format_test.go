package engine

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

func TestApply_WrapsAndPlacesCursorInside(t *testing.T) {
	e := New(withToolbar(testConfig(""), "bold"))
	var events []string
	e.OnChange(func(c string) { events = append(events, c) })

	if !e.Apply("bold") {
		t.Fatalf("Apply(bold): expected true")
	}
	e.Buffer().InsertText("hi")

	if got, _ := e.GetContent(); got != "<strong>hi</strong>" {
		t.Fatalf("content: got %q", got)
	}
	if len(events) != 1 || events[0] != "<strong></strong>" {
		t.Fatalf("toolbar actions are user changes: got %q", events)
	}
}

func TestApply_IgnoresItemsMissingFromToolbar(t *testing.T) {
	e := New(withToolbar(testConfig(""), "italic"))
	if e.Apply("bold") {
		t.Fatalf("Apply(bold) without toolbar item must be ignored")
	}
	if got, _ := e.GetContent(); got != "" {
		t.Fatalf("content: got %q", got)
	}
}

func TestApply_LinkUsesConfiguredProtocol(t *testing.T) {
	cfg := withToolbar(testConfig(""), "link")
	e := New(cfg)
	e.Apply("link")
	e.Buffer().InsertText("example.com")

	want := `<a href="https://example.com" target="_blank" rel="noopener noreferrer"></a>`
	if got, _ := e.GetContent(); got != want {
		t.Fatalf("link: got %q, want %q", got, want)
	}

	cfg.Editor.Link.AddTargetToExternalLinks = false
	e = New(cfg)
	e.Apply("link")
	if got, _ := e.GetContent(); got != `<a href="https://"></a>` {
		t.Fatalf("link without target: got %q", got)
	}
}

func TestApply_Headings(t *testing.T) {
	e := New(withToolbar(testConfig(""), "heading"))
	if !e.Apply("heading2") {
		t.Fatalf("Apply(heading2): expected true")
	}
	if got, _ := e.GetContent(); got != "<h2></h2>" {
		t.Fatalf("heading: got %q", got)
	}
	if e.Apply("heading") {
		t.Fatalf("the heading dropdown itself is not an action")
	}
	if e.Apply("heading9") {
		t.Fatalf("unknown heading model must be ignored")
	}

	e = New(withToolbar(testConfig(""), "bold"))
	if e.Apply("heading1") {
		t.Fatalf("headings require the heading toolbar item")
	}
}

func TestApply_IndentOutdent(t *testing.T) {
	e := New(withToolbar(testConfig("<p>a</p>"), "indent", "outdent"))
	e.Buffer().SetCursor(buffer.Pos{Row: 0, GraphemeCol: 3})

	e.Apply("indent")
	if got, _ := e.GetContent(); got != "\t<p>a</p>" {
		t.Fatalf("indent: got %q", got)
	}
	if got := e.Buffer().Cursor(); got != (buffer.Pos{Row: 0, GraphemeCol: 4}) {
		t.Fatalf("cursor after indent: got %v", got)
	}

	e.Apply("outdent")
	if got, _ := e.GetContent(); got != "<p>a</p>" {
		t.Fatalf("outdent: got %q", got)
	}
	if e.Apply("outdent") {
		t.Fatalf("outdent without indentation must report false")
	}
}

func TestShortcut_AppliesToolbarItem(t *testing.T) {
	e := New(withToolbar(testConfig(""), "italic"))
	_ = e.Focus()
	e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i"), Alt: true})
	if got, _ := e.GetContent(); got != "<i></i>" {
		t.Fatalf("alt+i: got %q", got)
	}
}
