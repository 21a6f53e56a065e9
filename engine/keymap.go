package engine

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Undo, Redo key.Binding

	// Toolbar shortcuts. A shortcut only fires when its item is present in
	// the configured toolbar.
	Bold, Italic, Underline key.Binding
	Link, BlockQuote        key.Binding
	BulletedList            key.Binding
	NumberedList            key.Binding
	Indent, Outdent         key.Binding
	SourceEditing           key.Binding
	Paragraph               key.Binding
	Headings                [6]key.Binding
}

func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Bold:          key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "bold")),
		Italic:        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underline:     key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "underline")),
		Link:          key.NewBinding(key.WithKeys("alt+k"), key.WithHelp("alt+k", "link")),
		BlockQuote:    key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "block quote")),
		BulletedList:  key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "bulleted list")),
		NumberedList:  key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "numbered list")),
		Indent:        key.NewBinding(key.WithKeys("alt+]"), key.WithHelp("alt+]", "indent")),
		Outdent:       key.NewBinding(key.WithKeys("alt+["), key.WithHelp("alt+[", "outdent")),
		SourceEditing: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "toggle markup highlighting")),
		Paragraph:     key.NewBinding(key.WithKeys("alt+0"), key.WithHelp("alt+0", "paragraph")),
	}
	for i := range km.Headings {
		k := "alt+" + string(rune('1'+i))
		km.Headings[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, "heading "+string(rune('1'+i))))
	}
	return km
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Enter.Keys()) == 0
}
