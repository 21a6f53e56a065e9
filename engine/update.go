package engine

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

func (e *Editor) updateKey(msg tea.KeyMsg) {
	if !e.focused || !e.attached {
		return
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		e.buf.InsertText(string(msg.Runes))
		return
	}

	km := e.cfg.KeyMap
	if e.applyShortcut(msg, km) {
		return
	}

	switch {
	case key.Matches(msg, km.WordLeft):
		e.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		e.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Left):
		e.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		e.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		e.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		e.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.Home):
		e.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		e.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		e.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		e.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		e.buf.InsertNewline()

	case key.Matches(msg, km.Undo):
		_ = e.buf.Undo()
	case key.Matches(msg, km.Redo):
		_ = e.buf.Redo()

	default:
		if msg.Type == tea.KeyTab {
			e.buf.InsertRune('\t')
			return
		}
		if msg.Type == tea.KeySpace {
			e.buf.InsertRune(' ')
			return
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			e.buf.InsertText(string(msg.Runes))
		}
	}
}

func (e *Editor) applyShortcut(msg tea.KeyMsg, km KeyMap) bool {
	shortcuts := []struct {
		binding key.Binding
		item    string
	}{
		{km.Bold, "bold"},
		{km.Italic, "italic"},
		{km.Underline, "underline"},
		{km.Link, "link"},
		{km.BlockQuote, "blockQuote"},
		{km.BulletedList, "bulletedList"},
		{km.NumberedList, "numberedList"},
		{km.Indent, "indent"},
		{km.Outdent, "outdent"},
		{km.SourceEditing, "sourceEditing"},
		{km.Paragraph, "paragraph"},
	}
	for i, b := range km.Headings {
		shortcuts = append(shortcuts, struct {
			binding key.Binding
			item    string
		}{b, "heading" + string(rune('1'+i))})
	}

	for _, s := range shortcuts {
		if key.Matches(msg, s.binding) {
			e.Apply(s.item)
			return true
		}
	}
	return false
}

// lineIndent returns the leading tab/space prefix of s.
func lineIndent(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
