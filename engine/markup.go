package engine

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type byteSpan struct{ start, end int }

// markupSpans returns the byte ranges of line that hold tags, comments or
// doctypes. An unterminated tag at the end of the line is treated as text.
func markupSpans(line string) []byteSpan {
	z := html.NewTokenizer(strings.NewReader(line))
	var spans []byteSpan
	off := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return spans
		}
		n := len(z.Raw())
		if tt != html.TextToken {
			spans = append(spans, byteSpan{start: off, end: off + n})
		}
		off += n
	}
}

// markupMask reports, per grapheme cluster of line, whether it belongs to
// markup rather than text content.
func markupMask(line string, clusters []string) []bool {
	spans := markupSpans(line)
	mask := make([]bool, len(clusters))
	if len(spans) == 0 {
		return mask
	}
	off, si := 0, 0
	for i, c := range clusters {
		for si < len(spans) && spans[si].end <= off {
			si++
		}
		if si < len(spans) && off >= spans[si].start {
			mask[i] = true
		}
		off += len(c)
	}
	return mask
}

// TextContent returns the text of a markup fragment with entities decoded.
// Block-level elements and <br> end a line; runs of spaces inside a line are
// collapsed.
func TextContent(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var sb strings.Builder
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return normalizeText(sb.String())
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if isBlockBoundary(atom.Lookup(name)) {
				sb.WriteByte('\n')
			}
		}
	}
}

func isBlockBoundary(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Br, atom.Li, atom.Ul, atom.Ol, atom.Blockquote,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Figure, atom.Figcaption, atom.Pre, atom.Table, atom.Tr, atom.Td, atom.Th:
		return true
	}
	return false
}

func normalizeText(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
