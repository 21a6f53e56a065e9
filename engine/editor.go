package engine

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// ReadyMsg is emitted by the command returned from Create once the editor
// has been constructed.
type ReadyMsg struct {
	Owner  string
	Editor *Editor
}

// Create returns a command that constructs an Editor off the update loop and
// reports it with ReadyMsg.
func Create(cfg Config) tea.Cmd {
	return func() tea.Msg {
		return ReadyMsg{Owner: cfg.Owner, Editor: New(cfg)}
	}
}

// Editor is a markup source editor. Unlike most Bubble Tea components it has
// reference semantics: hosts keep a *Editor (or a Handle) and mutate it in
// place.
type Editor struct {
	cfg Config
	buf *buffer.Buffer

	viewport  viewport.Model
	width     int
	height    int
	cursorRow int // visual row of the cursor in the rendered content

	focused   bool
	attached  bool
	destroyed bool
	highlight bool

	placeholder string
	lastText    string
	onChange    []func(string)

	widgets map[string]Widget
}

func New(cfg Config) *Editor {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	e := &Editor{
		cfg:         cfg,
		buf:         buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.Editor.HistoryLimit}),
		viewport:    viewport.New(0, 0),
		highlight:   true,
		placeholder: cfg.Placeholder,
		widgets:     map[string]Widget{},
	}
	e.lastText = e.buf.Text()
	if cfg.Editor.HasPlugin("WordCount") {
		e.widgets[WidgetWordCount] = &WordCount{source: e.buf.Text, style: cfg.Style.Widget}
	}
	e.SetSize(cfg.Width, cfg.Height)
	return e
}

// Buffer exposes the underlying document. Mutations made through it are not
// reported to change handlers.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) GetContent() (string, error) {
	if e.destroyed {
		return "", ErrDestroyed
	}
	return e.buf.Text(), nil
}

func (e *Editor) SetContent(content string) error {
	if e.destroyed {
		return ErrDestroyed
	}
	e.buf.SetText(content)
	e.lastText = content
	e.rebuildContent()
	e.followCursor()
	return nil
}

func (e *Editor) OnChange(fn func(content string)) {
	if fn == nil || e.destroyed {
		return
	}
	e.onChange = append(e.onChange, fn)
}

func (e *Editor) Focus() error {
	if err := e.viewReady(); err != nil {
		return err
	}
	if !e.focused {
		e.focused = true
		e.rebuildContent()
		e.followCursor()
	}
	return nil
}

func (e *Editor) Blur() error {
	if err := e.viewReady(); err != nil {
		return err
	}
	if e.focused {
		e.focused = false
		e.rebuildContent()
	}
	return nil
}

func (e *Editor) Focused() bool { return e.focused }

// Attached reports whether the view has a nonzero size.
func (e *Editor) Attached() bool { return e.attached && !e.destroyed }

func (e *Editor) AuxiliaryWidget(name string) (Widget, bool) {
	if e.destroyed {
		return nil, false
	}
	w, ok := e.widgets[name]
	return w, ok
}

// SetPlaceholder changes the text shown while the document is empty.
func (e *Editor) SetPlaceholder(p string) {
	if e.destroyed || p == e.placeholder {
		return
	}
	e.placeholder = p
	e.rebuildContent()
}

// SetSize resizes the view. A nonzero width and height attach it.
func (e *Editor) SetSize(width, height int) {
	if e.destroyed {
		return
	}
	width, height = max(width, 0), max(height, 0)
	e.width, e.height = width, height
	e.attached = width > 0 && height > 0

	e.viewport.Width = width
	e.viewport.Height = max(height-len(e.toolbarLines()), 0)
	e.rebuildContent()
	e.followCursor()
}

// Destroy tears the instance down. Every later Handle call fails with
// ErrDestroyed.
func (e *Editor) Destroy() {
	e.destroyed = true
	e.attached = false
	e.focused = false
	e.onChange = nil
	e.widgets = nil
}

func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if e.destroyed {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		e.updateKey(msg)
		e.rebuildContent()
		e.followCursor()
		e.emitIfChanged()
	case tea.MouseMsg:
		var cmd tea.Cmd
		e.viewport, cmd = e.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (e *Editor) View() string {
	if !e.Attached() {
		return ""
	}
	out := ""
	for _, line := range e.toolbarLines() {
		out += line + "\n"
	}
	return out + e.viewport.View()
}

func (e *Editor) viewReady() error {
	if e.destroyed {
		return ErrDestroyed
	}
	if !e.attached {
		return ErrNotAttached
	}
	return nil
}

func (e *Editor) emitIfChanged() {
	text := e.buf.Text()
	if text == e.lastText {
		return
	}
	e.lastText = text
	handlers := append([]func(string){}, e.onChange...)
	for _, fn := range handlers {
		fn(text)
	}
}
