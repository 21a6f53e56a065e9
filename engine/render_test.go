package engine

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestView_LineNumbersAndWrap(t *testing.T) {
	cfg := testConfig("one\ntwo three four")
	cfg.Editor.ShowLineNums = true
	cfg.Width, cfg.Height = 8, 4
	e := New(cfg)

	got := viewLines(e)
	want := []string{
		"1 one",
		"2 two th",
		"  ree fo",
		"  ur",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_PlaceholderWhileEmpty(t *testing.T) {
	cfg := testConfig("")
	cfg.Placeholder = "Type or paste your content here!"
	cfg.Width, cfg.Height = 12, 1
	e := New(cfg)

	if got := viewLines(e)[0]; got != "Type or pas…" {
		t.Fatalf("placeholder: got %q", got)
	}

	e.SetPlaceholder("Write")
	if got := viewLines(e)[0]; got != "Write" {
		t.Fatalf("updated placeholder: got %q", got)
	}

	_ = e.SetContent("x")
	if got := viewLines(e)[0]; got != "x" {
		t.Fatalf("placeholder must hide once content exists: got %q", got)
	}
}

func TestView_ToolbarGroupsOverflow(t *testing.T) {
	cfg := withToolbar(testConfig(""), "bold", "italic", "|", "underline", "link")
	cfg.Width, cfg.Height = 10, 3
	e := New(cfg)

	lines := viewLines(e)
	if got := lines[0]; got != " B  I │⋯" {
		t.Fatalf("grouped toolbar: got %q", got)
	}
	if got := len(lines); got != 3 {
		t.Fatalf("view height: got %d, want 3", got)
	}

	cfg.Editor.ShouldNotGroupWhenFull = true
	e = New(cfg)
	lines = viewLines(e)
	if lines[0] != " B  I │ U" || lines[1] != " Link" {
		t.Fatalf("wrapped toolbar: got %q", lines[:2])
	}
}

func TestView_CursorFollowsAfterEdits(t *testing.T) {
	cfg := testConfig(strings.Repeat("x\n", 9) + "last")
	cfg.Width, cfg.Height = 10, 3
	e := New(cfg)
	_ = e.Focus()

	for range 9 {
		e.Update(keyDown)
	}
	lines := viewLines(e)
	if got := lines[len(lines)-1]; got != "last" {
		t.Fatalf("last visible line: got %q, want %q", got, "last")
	}
}

func TestView_MarkupHighlightToggle(t *testing.T) {
	r := lipgloss.DefaultRenderer()
	prev := r.ColorProfile()
	r.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { r.SetColorProfile(prev) })

	cfg := withToolbar(testConfig("<b>x</b>"), "sourceEditing")
	cfg.Style = Style{Markup: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00"))}
	e := New(cfg)

	if !strings.Contains(e.View(), "\x1b[") {
		t.Fatalf("markup must be styled when highlighting is on")
	}
	e.Apply("sourceEditing")
	if strings.Contains(e.View(), "\x1b[") {
		t.Fatalf("markup must be plain when highlighting is off: %q", e.View())
	}
}

var keyDown = tea.KeyMsg{Type: tea.KeyDown}
