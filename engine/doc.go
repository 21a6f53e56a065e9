// Package engine provides the markup editing engine embedded by quill.
//
// Editor is a Bubble Tea text component over a buffer.Buffer that edits
// serialized markup (HTML source) verbatim. Hosts never hold it directly:
// they reach it through the Handle interface, which is all the bridge
// package depends on. Construction is asynchronous (Create returns a tea.Cmd
// that yields ReadyMsg) so embedders must cope with an absent instance.
package engine
