package bridge

import (
	"errors"

	"github.com/iw2rmb/quill/engine"
)

// mapFields is a host that never notifies; tests call the bridge by hand.
type mapFields struct {
	strings map[string]string
	bools   map[string]bool
	writes  int
}

func newMapFields() *mapFields {
	return &mapFields{strings: map[string]string{}, bools: map[string]bool{}}
}

func (f *mapFields) ReadString(name string) (string, bool) {
	v, ok := f.strings[name]
	return v, ok
}

func (f *mapFields) ReadBool(name string) (bool, bool) {
	v, ok := f.bools[name]
	return v, ok
}

func (f *mapFields) WriteString(name, value string) {
	f.writes++
	f.strings[name] = value
}

func (f *mapFields) WriteBool(name string, value bool) {
	f.writes++
	f.bools[name] = value
}

var errBroken = errors.New("broken")

type fakeEditor struct {
	content  string
	sets     []string
	focused  bool
	handlers []func(string)
	widgets  map[string]engine.Widget

	getErr   error
	setPanic bool
}

func (f *fakeEditor) GetContent() (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.content, nil
}

func (f *fakeEditor) SetContent(s string) error {
	if f.setPanic {
		panic("setContent exploded")
	}
	f.sets = append(f.sets, s)
	f.content = s
	return nil
}

func (f *fakeEditor) OnChange(fn func(string)) { f.handlers = append(f.handlers, fn) }

func (f *fakeEditor) Focus() error { f.focused = true; return nil }
func (f *fakeEditor) Blur() error  { f.focused = false; return nil }

func (f *fakeEditor) AuxiliaryWidget(name string) (engine.Widget, bool) {
	w, ok := f.widgets[name]
	return w, ok
}

// edit simulates a user edit inside the editor.
func (f *fakeEditor) edit(s string) {
	f.content = s
	for _, fn := range f.handlers {
		fn(s)
	}
}

type fakeWidget string

func (w fakeWidget) Name() string { return string(w) }
func (w fakeWidget) View() string { return "view:" + string(w) }
