package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/quill/config"
	"github.com/iw2rmb/quill/internal/grapheme"
)

const tabWidth = 4

var toolbarLabels = map[string]string{
	"sourceEditing":     "Source",
	"heading":           "Heading",
	"bold":              "B",
	"italic":            "I",
	"underline":         "U",
	"link":              "Link",
	"insertImageViaUrl": "Image",
	"mediaEmbed":        "Media",
	"blockQuote":        "Quote",
	"bulletedList":      "•",
	"numberedList":      "1.",
	"todoList":          "☐",
	"outdent":           "⇤",
	"indent":            "⇥",
}

func (e *Editor) rebuildContent() {
	lines, cursorRow := e.renderContent()
	e.cursorRow = cursorRow
	e.viewport.SetContent(strings.Join(lines, "\n"))
}

func (e *Editor) followCursor() {
	h := e.viewport.Height - e.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := e.viewport.YOffset
	if e.cursorRow < y {
		e.viewport.SetYOffset(e.cursorRow)
		return
	}
	if e.cursorRow >= y+h {
		e.viewport.SetYOffset(e.cursorRow - h + 1)
	}
}

// renderContent renders every logical line, soft-wrapped to the content
// width, and returns the visual row holding the cursor.
func (e *Editor) renderContent() (lines []string, cursorRow int) {
	st := e.cfg.Style
	cursor := e.buf.Cursor()
	lineCount := e.buf.LineCount()

	digits := 0
	if e.cfg.Editor.ShowLineNums {
		digits = len(strconv.Itoa(lineCount))
	}
	contentWidth := 0
	if e.width > 0 {
		contentWidth = max(e.width-gutterWidth(digits), 1)
	}

	for row := range lineCount {
		text := e.buf.Line(row)
		clusters := grapheme.Split(text)
		var markup []bool
		if e.highlight {
			markup = markupMask(text, clusters)
		}
		cursorHere := e.focused && row == cursor.Row

		var sb strings.Builder
		cells := 0
		first := true
		startRow := func() {
			if digits == 0 {
				return
			}
			if !first {
				sb.WriteString(strings.Repeat(" ", gutterWidth(digits)))
				return
			}
			numStyle := st.LineNum
			if cursorHere {
				numStyle = st.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}
		flush := func() {
			lines = append(lines, sb.String())
			sb.Reset()
			cells = 0
			first = false
			startRow()
		}
		startRow()

		for i, g := range clusters {
			display, w := displayCluster(g)
			if contentWidth > 0 && cells > 0 && cells+w > contentWidth {
				flush()
			}
			style := st.Text
			switch {
			case cursorHere && i == cursor.GraphemeCol:
				style = st.Cursor
				cursorRow = len(lines)
			case markup != nil && markup[i]:
				style = st.Markup
			}
			sb.WriteString(style.Render(display))
			cells += w
		}

		if cursorHere && cursor.GraphemeCol >= len(clusters) {
			if contentWidth > 0 && cells > 0 && cells+1 > contentWidth {
				flush()
			}
			sb.WriteString(st.Cursor.Render(" "))
			cells++
			cursorRow = len(lines)
		}

		if row == 0 && e.buf.IsEmpty() && e.placeholder != "" {
			p := e.placeholder
			if contentWidth > 0 {
				p = runewidth.Truncate(p, max(contentWidth-cells, 0), "…")
			}
			sb.WriteString(st.Placeholder.Render(p))
		}

		lines = append(lines, sb.String())
	}
	return lines, cursorRow
}

func gutterWidth(digits int) int {
	if digits == 0 {
		return 0
	}
	return digits + 1
}

func displayCluster(g string) (string, int) {
	if g == "\t" {
		return strings.Repeat(" ", tabWidth), tabWidth
	}
	return g, max(runewidth.StringWidth(g), 1)
}

// toolbarLines renders the configured toolbar. Overflowing items are grouped
// behind "⋯" unless ShouldNotGroupWhenFull is set, in which case the toolbar
// wraps onto more lines.
func (e *Editor) toolbarLines() []string {
	items := e.cfg.Editor.Toolbar
	if len(items) == 0 || e.width <= 0 {
		return nil
	}
	st := e.cfg.Style

	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item == config.Separator {
			parts = append(parts, st.ToolbarSeparator.Render("│"))
			continue
		}
		label, ok := toolbarLabels[item]
		if !ok {
			label = item
		}
		parts = append(parts, st.Toolbar.Render(" "+label+" "))
	}

	var lines []string
	cur, curWidth := "", 0
	for i, part := range parts {
		w := lipgloss.Width(part)
		if curWidth+w <= e.width {
			cur += part
			curWidth += w
			continue
		}
		if !e.cfg.Editor.ShouldNotGroupWhenFull {
			more := st.Toolbar.Render("⋯")
			for curWidth+lipgloss.Width(more) > e.width && i > 0 && cur != "" {
				// Drop the last rendered part to make room for the marker.
				i--
				cur = strings.Join(parts[:i], "")
				curWidth = lipgloss.Width(cur)
			}
			return []string{cur + more}
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur, curWidth = part, w
	}
	return append(lines, cur)
}
