package bridge

import (
	"log/slog"

	"github.com/iw2rmb/quill/engine"
	"github.com/iw2rmb/quill/host"
	"github.com/iw2rmb/quill/internal/logging"
)

// Options configures SyncBridge and Component.
type Options struct {
	Fields FieldNames
	Logger *slog.Logger

	// OnAuxiliaryWidgetReady, when set, receives every auxiliary widget the
	// editor exposes once it becomes ready. Hosts may ignore it.
	OnAuxiliaryWidgetReady func(name string, w engine.Widget)
}

var auxiliaryWidgets = []string{engine.WidgetWordCount}

// SyncBridge propagates the content value between the host field and the
// editor instance.
//
// The host field is authoritative for inbound sync, the editor's change
// event for outbound sync. The origin flag is armed right before the bridge
// writes the field and consumed by the next observation, which is the echo
// of that write.
type SyncBridge struct {
	fields host.Fields
	names  FieldNames
	log    *slog.Logger
	guard  guard
	onAux  func(string, engine.Widget)

	lastSeen   string
	observed   bool
	originFlag bool
	editor     engine.Handle
}

func NewSyncBridge(fields host.Fields, opts Options) *SyncBridge {
	log := logging.OrDiscard(opts.Logger)
	return &SyncBridge{
		fields: fields,
		names:  opts.Fields.withDefaults(),
		log:    log,
		guard:  guard{log: log},
		onAux:  opts.OnAuxiliaryWidgetReady,
	}
}

// OnFieldExternallyChanged is called whenever the host field differs from
// the last value the bridge saw, whatever the cause.
func (b *SyncBridge) OnFieldExternallyChanged(value string) {
	b.lastSeen = value
	b.observed = true

	if b.originFlag {
		// Our own write echoing back.
		b.originFlag = false
		return
	}
	if b.editor == nil {
		// Delivered by OnEditorBecameReady.
		return
	}

	var current string
	if !b.guard.call("getContent", func() (err error) {
		current, err = b.editor.GetContent()
		return err
	}) {
		return
	}
	if current == value {
		return
	}
	b.guard.call("setContent", func() error { return b.editor.SetContent(value) })
}

// OnEditorChanged is the editor's change handler.
func (b *SyncBridge) OnEditorChanged(content string) {
	if cur, ok := b.fields.ReadString(b.names.Value); ok && cur == content {
		// Nothing to write, so no echo will arrive to consume the flag.
		return
	}
	// The flag must be armed before the write: the write may re-enter
	// OnFieldExternallyChanged before it returns.
	b.armFor(content)
	b.fields.WriteString(b.names.Value, content)
}

// OnEditorBecameReady stores the instance, wires its change event and pushes
// the current host value into it. It reports false, leaving the bridge
// unchanged, when an editor is already attached.
func (b *SyncBridge) OnEditorBecameReady(h engine.Handle) bool {
	if h == nil {
		return false
	}
	if b.editor != nil {
		b.log.Debug("editor already attached; ignoring second instance")
		return false
	}
	b.editor = h

	b.guard.call("onChange", func() error {
		h.OnChange(func(content string) {
			if b.editor != h {
				// Detached or replaced instance.
				return
			}
			b.OnEditorChanged(content)
		})
		return nil
	})

	if value, ok := b.currentValue(); ok {
		b.guard.call("setContent", func() error { return h.SetContent(value) })
	}

	if b.onAux != nil {
		for _, name := range auxiliaryWidgets {
			var (
				w  engine.Widget
				ok bool
			)
			b.guard.call("auxiliaryWidget", func() error {
				w, ok = h.AuxiliaryWidget(name)
				return nil
			})
			if ok {
				b.onAux(name, w)
			}
		}
	}
	return true
}

// Detach releases the editor instance. Later calls behave as if the editor
// was never created.
func (b *SyncBridge) Detach() {
	b.editor = nil
	b.originFlag = false
}

// Editor returns the attached instance, if any.
func (b *SyncBridge) Editor() (engine.Handle, bool) {
	return b.editor, b.editor != nil
}

// Observes reports whether an observation of value must be delivered to
// OnFieldExternallyChanged: nothing was observed yet, or value differs from
// the last observed one. Observers and the origin flag share this rule, so
// an armed flag always has an echo that consumes it.
func (b *SyncBridge) Observes(value string) bool {
	return !b.observed || value != b.lastSeen
}

// armFor arms the origin flag for a write of value when that write will be
// observed.
func (b *SyncBridge) armFor(value string) {
	if b.Observes(value) {
		b.originFlag = true
	}
}

// LastSeen returns the last observed host field value.
func (b *SyncBridge) LastSeen() string { return b.lastSeen }

// OriginPending reports whether a self-caused write is waiting for its echo.
func (b *SyncBridge) OriginPending() bool { return b.originFlag }

// currentValue returns the host field value, or the last observed value when
// the field holds no string.
func (b *SyncBridge) currentValue() (string, bool) {
	if v, ok := b.fields.ReadString(b.names.Value); ok {
		return v, true
	}
	return b.lastSeen, b.observed
}
