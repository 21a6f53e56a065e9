// Package buffer implements the document model behind the quill editor engine.
//
// Text is stored as lines of grapheme clusters. Coordinates are 0-based
// (Row, GraphemeCol). The buffer knows nothing about markup: it holds the
// serialized content verbatim so that Text always round-trips byte for byte
// with the last SetText plus local edits.
package buffer
