package engine

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/internal/grapheme"
)

// WordCount is the auxiliary status widget that reports the number of words
// and characters in the document's text content.
type WordCount struct {
	source func() string
	style  lipgloss.Style
}

func (w *WordCount) Name() string { return WidgetWordCount }

// Stats returns word and character counts. Characters are grapheme clusters
// of the text content, excluding line breaks between blocks.
func (w *WordCount) Stats() (words, characters int) {
	text := TextContent(w.source())
	return grapheme.Words(text), grapheme.Count(strings.ReplaceAll(text, "\n", ""))
}

func (w *WordCount) View() string {
	words, chars := w.Stats()
	return w.style.Render(fmt.Sprintf("Words: %d  Characters: %d", words, chars))
}
