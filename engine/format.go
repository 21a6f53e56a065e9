package engine

import (
	"strings"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// Apply runs a toolbar action and reports whether it did anything. Items
// missing from the configured toolbar are ignored. Heading models
// (paragraph, heading1..heading6) require the "heading" item and a matching
// configured heading option. Document changes made here are user-caused and
// reach the change handlers.
func (e *Editor) Apply(item string) bool {
	if e.destroyed || !e.itemEnabled(item) {
		return false
	}

	before := e.buf.Version()
	switch item {
	case "sourceEditing":
		e.highlight = !e.highlight
		e.rebuildContent()
		return true
	case "bold":
		e.wrap("<strong>", "</strong>")
	case "italic":
		e.wrap("<i>", "</i>")
	case "underline":
		e.wrap("<u>", "</u>")
	case "blockQuote":
		e.wrap("<blockquote><p>", "</p></blockquote>")
	case "bulletedList":
		e.wrap("<ul><li>", "</li></ul>")
	case "numberedList":
		e.wrap("<ol><li>", "</li></ol>")
	case "todoList":
		e.wrap(`<ul class="todo-list"><li>`, "</li></ul>")
	case "link":
		e.wrap(`<a href="`+e.cfg.Editor.Link.DefaultProtocol, `"`+e.linkAttrs()+`></a>`)
	case "insertImageViaUrl":
		e.wrap(`<img src="`+e.cfg.Editor.Link.DefaultProtocol, `">`)
	case "mediaEmbed":
		e.wrap(`<figure class="media"><oembed url="`+e.cfg.Editor.Link.DefaultProtocol, `"></oembed></figure>`)
	case "indent":
		e.indent()
	case "outdent":
		e.outdent()
	default:
		h, ok := e.cfg.Editor.HeadingByModel(item)
		if !ok {
			return false
		}
		e.wrap("<"+h.View+">", "</"+h.View+">")
	}

	changed := e.buf.Version() != before
	e.rebuildContent()
	e.followCursor()
	e.emitIfChanged()
	return changed
}

func (e *Editor) itemEnabled(item string) bool {
	if _, ok := e.cfg.Editor.HeadingByModel(item); ok {
		return e.cfg.Editor.HasToolbarItem("heading")
	}
	return e.cfg.Editor.HasToolbarItem(item)
}

func (e *Editor) linkAttrs() string {
	if !e.cfg.Editor.Link.AddTargetToExternalLinks {
		return ""
	}
	return ` target="_blank" rel="noopener noreferrer"`
}

// wrap inserts open+close at the cursor and leaves the cursor between them.
func (e *Editor) wrap(open, close string) {
	e.buf.InsertText(open + close)
	for range grapheme.Count(close) {
		e.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	}
}

func (e *Editor) indent() {
	cur := e.buf.Cursor()
	e.buf.SetCursor(buffer.Pos{Row: cur.Row})
	e.buf.InsertRune('\t')
	e.buf.SetCursor(buffer.Pos{Row: cur.Row, GraphemeCol: cur.GraphemeCol + 1})
}

func (e *Editor) outdent() {
	cur := e.buf.Cursor()
	prefix := lineIndent(e.buf.Line(cur.Row))
	n := 0
	switch {
	case strings.HasPrefix(prefix, "\t"):
		n = 1
	default:
		n = min(len(prefix), 4)
	}
	if n == 0 {
		return
	}
	e.buf.SetCursor(buffer.Pos{Row: cur.Row, GraphemeCol: n})
	for range n {
		e.buf.DeleteBackward()
	}
	e.buf.SetCursor(buffer.Pos{Row: cur.Row, GraphemeCol: max(cur.GraphemeCol-n, 0)})
}
