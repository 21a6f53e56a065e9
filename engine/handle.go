package engine

import "errors"

var (
	// ErrDestroyed is returned by every Handle method after Destroy.
	ErrDestroyed = errors.New("engine: editor destroyed")
	// ErrNotAttached is returned by view operations (focus, blur) while the
	// editor has no nonzero size.
	ErrNotAttached = errors.New("engine: view not attached")
)

// WidgetWordCount names the word count auxiliary widget.
const WidgetWordCount = "wordCount"

// Handle is the capability surface of a live editor instance.
type Handle interface {
	GetContent() (string, error)
	// SetContent replaces the document. It does not notify change handlers.
	SetContent(content string) error
	// OnChange registers a handler called with the full content after every
	// user-caused document change.
	OnChange(fn func(content string))
	Focus() error
	Blur() error
	// AuxiliaryWidget returns an optional status widget by name.
	AuxiliaryWidget(name string) (Widget, bool)
}

// Widget is an auxiliary status widget the host UI may place anywhere.
type Widget interface {
	Name() string
	View() string
}

var _ Handle = (*Editor)(nil)
