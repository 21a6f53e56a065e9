package bridge

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/quill/config"
	"github.com/iw2rmb/quill/engine"
	"github.com/iw2rmb/quill/host"
	"github.com/iw2rmb/quill/internal/logging"
)

// ComponentConfig configures a Component.
type ComponentConfig struct {
	Options

	Editor config.EditorConfig
	Style  engine.Style
	KeyMap engine.KeyMap

	// CommandPrefix is prepended to every registered command name. Leave it
	// empty for a single component per host; give each component on a shared
	// registering host its own prefix.
	CommandPrefix string
}

// subscriber is implemented by hosts that notify about field changes, such
// as host.Store. Other hosts must call Render themselves.
type subscriber interface {
	Subscribe(fn func(name string)) func()
}

// Component embeds an editor in a host and keeps it synchronized with the
// host's fields. Like engine.Editor it has reference semantics.
//
// Render is the host's re-render: call it after the host changes any field.
// Hosts that implement Subscribe get this for free.
type Component struct {
	id    string
	host  host.Fields
	names FieldNames
	cfg   ComponentConfig
	log   *slog.Logger

	life     Lifecycle
	bridge   *SyncBridge
	commands *CommandChannel
	editor   *engine.Editor

	width, height int
	requested     bool

	lastPlaceholder string
	lastExternal    string
	lastFocus       bool
	lastBlur        bool
	lastClear       bool

	unsubscribe func()
	registered  bool
}

func NewComponent(h host.Fields, cfg ComponentConfig) *Component {
	id := uuid.NewString()
	cfg.Fields = cfg.Fields.withDefaults()
	cfg.Logger = logging.OrDiscard(cfg.Logger).With("component", id)

	b := NewSyncBridge(h, cfg.Options)
	return &Component{
		id:       id,
		host:     h,
		names:    cfg.Fields,
		cfg:      cfg,
		log:      cfg.Logger,
		bridge:   b,
		commands: NewCommandChannel(b),
	}
}

func (c *Component) ID() string                { return c.id }
func (c *Component) Phase() Phase              { return c.life.Phase() }
func (c *Component) Bridge() *SyncBridge       { return c.bridge }
func (c *Component) Commands() *CommandChannel { return c.commands }

// CommandsRegistered reports whether Mount exposed the commands on the host.
func (c *Component) CommandsRegistered() bool { return c.registered }

// Editor returns the live editor instance, if any.
func (c *Component) Editor() (*engine.Editor, bool) {
	return c.editor, c.editor != nil
}

// Init mounts the component.
func (c *Component) Init() tea.Cmd { return c.Mount() }

// Mount registers commands, subscribes to host changes and takes the first
// observation of the host fields. Edge-triggered fields start from their
// current values, so a flag that is already set does not fire.
func (c *Component) Mount() tea.Cmd {
	if !c.life.Mount() {
		return nil
	}
	c.log.Debug("mounted")

	c.registered = c.commands.RegisterAs(c.host, c.cfg.CommandPrefix)

	c.lastPlaceholder = c.placeholder()
	c.lastExternal, _ = c.host.ReadString(c.names.ExternalValue)
	c.lastFocus, _ = c.host.ReadBool(c.names.FocusFlag)
	c.lastBlur, _ = c.host.ReadBool(c.names.BlurFlag)
	c.lastClear, _ = c.host.ReadBool(c.names.ClearFlag)

	if s, ok := c.host.(subscriber); ok {
		c.unsubscribe = s.Subscribe(func(string) { c.Render() })
	}
	c.Render()
	return c.maybeCreate()
}

// Unmount detaches the bridge and destroys the editor. An instance still
// under construction is destroyed when its ReadyMsg arrives.
func (c *Component) Unmount() {
	if !c.life.Unmount() {
		return
	}
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.bridge.Detach()
	if c.editor != nil {
		c.editor.Destroy()
		c.editor = nil
	}
	c.log.Debug("unmounted")
}

// SetSize lays the component out. The first nonzero size while layout is
// pending starts editor construction.
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width, c.height = width, height
	if c.editor != nil {
		c.editor.SetSize(width, height)
		return nil
	}
	return c.maybeCreate()
}

func (c *Component) maybeCreate() tea.Cmd {
	if c.life.Phase() != PhaseLayoutPending || c.requested {
		return nil
	}
	if c.width <= 0 || c.height <= 0 {
		return nil
	}
	c.requested = true
	text, _ := c.host.ReadString(c.names.Value)
	c.log.Debug("creating editor", "width", c.width, "height", c.height)
	return engine.Create(engine.Config{
		Owner:       c.id,
		Text:        text,
		Placeholder: c.lastPlaceholder,
		Editor:      c.cfg.Editor,
		Style:       c.cfg.Style,
		KeyMap:      c.cfg.KeyMap,
		Width:       c.width,
		Height:      c.height,
	})
}

func (c *Component) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case engine.ReadyMsg:
		if msg.Owner != c.id {
			return nil
		}
		c.onReady(msg.Editor)
		return nil
	case tea.WindowSizeMsg:
		return c.SetSize(msg.Width, msg.Height)
	case SetValueMsg:
		if c.addressed(msg.Target) {
			c.commands.SetValue(msg.HTML)
		}
		return nil
	case ClearMsg:
		if c.addressed(msg.Target) {
			c.commands.Clear()
		}
		return nil
	case FocusMsg:
		if c.addressed(msg.Target) {
			c.commands.Focus()
		}
		return nil
	case BlurMsg:
		if c.addressed(msg.Target) {
			c.commands.Blur()
		}
		return nil
	}
	if c.editor != nil {
		return c.editor.Update(msg)
	}
	return nil
}

func (c *Component) View() string {
	if c.editor == nil {
		return ""
	}
	return c.editor.View()
}

func (c *Component) addressed(target string) bool {
	return target == "" || target == c.id
}

func (c *Component) onReady(e *engine.Editor) {
	if e == nil {
		return
	}
	if !c.life.Ready() {
		c.log.Debug("editor ready after unmount; destroying", "phase", c.life.Phase())
		e.Destroy()
		return
	}
	c.editor = e
	e.SetSize(c.width, c.height)
	e.SetPlaceholder(c.lastPlaceholder)
	c.bridge.OnEditorBecameReady(e)
	c.log.Debug("editor ready")
}

// Render observes the host fields: value changes go through the bridge,
// placeholder changes are applied live, externalValue overrides the content
// whenever it changes and the flags fire on a false to true transition.
//
// Render may re-enter itself through host notifications; every remembered
// value is updated before the action it triggers.
func (c *Component) Render() {
	if !c.life.Active() {
		return
	}

	if v, ok := c.host.ReadString(c.names.Value); ok && c.bridge.Observes(v) {
		c.bridge.OnFieldExternallyChanged(v)
	}

	if p := c.placeholder(); p != c.lastPlaceholder {
		c.lastPlaceholder = p
		if c.editor != nil {
			c.editor.SetPlaceholder(p)
		}
	}

	if x, ok := c.host.ReadString(c.names.ExternalValue); ok && x != c.lastExternal {
		c.lastExternal = x
		c.commands.SetValue(x)
	}

	c.edge(c.names.FocusFlag, &c.lastFocus, c.commands.Focus)
	c.edge(c.names.BlurFlag, &c.lastBlur, c.commands.Blur)
	c.edge(c.names.ClearFlag, &c.lastClear, c.commands.Clear)
}

// edge fires on a rising flag and acknowledges it by writing false back.
func (c *Component) edge(name string, last *bool, fire func()) {
	v, _ := c.host.ReadBool(name)
	rising := v && !*last
	*last = v
	if !rising {
		return
	}
	fire()
	*last = false
	c.host.WriteBool(name, false)
}

func (c *Component) placeholder() string {
	if p, ok := c.host.ReadString(c.names.Placeholder); ok {
		return p
	}
	return c.cfg.Editor.Placeholder
}
