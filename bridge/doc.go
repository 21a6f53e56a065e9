// Package bridge keeps a host-owned string field and a live editor instance
// consistent.
//
// The host persists the document as a named field and can only talk to the
// embedding through string/boolean fields and registered commands. The
// editor holds its own in-memory copy. SyncBridge propagates changes in both
// directions and uses a one-shot origin flag so that a write caused by the
// editor is not pushed back into it when the host echoes it. CommandChannel
// offers SetValue, Clear, GetValue, Focus and Blur that are safe to call in
// every lifecycle phase, including before the editor exists. Component glues
// both to a Bubble Tea program: it waits for a nonzero layout, constructs the
// engine asynchronously and observes host re-renders.
//
// Everything in this package runs on a single event loop. Other goroutines
// reach a Component through tea.Program.Send with SetValueMsg, ClearMsg,
// FocusMsg and BlurMsg.
package bridge
