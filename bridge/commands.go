package bridge

import (
	"fmt"

	"github.com/iw2rmb/quill/host"
)

// Command names registered with hosts that implement host.CommandRegistrar.
const (
	CommandSetValue = "setValue"
	CommandClear    = "clear"
	CommandGetValue = "getValue"
	CommandFocus    = "focus"
	CommandBlur     = "blur"
)

// CommandChannel is the imperative API hosts use to drive the editor. Every
// operation is valid in every lifecycle phase; editor calls are skipped while
// no instance is attached.
type CommandChannel struct {
	b *SyncBridge
}

func NewCommandChannel(b *SyncBridge) *CommandChannel {
	return &CommandChannel{b: b}
}

// SetValue writes html to the host field and pushes it into the editor.
func (c *CommandChannel) SetValue(html string) {
	b := c.b
	b.armFor(html)
	b.fields.WriteString(b.names.Value, html)

	if b.editor != nil {
		b.guard.call("setContent", func() error { return b.editor.SetContent(html) })
	}
}

func (c *CommandChannel) Clear() { c.SetValue("") }

// GetValue returns the editor content, falling back to the host field and
// then to the last observed value.
func (c *CommandChannel) GetValue() string {
	b := c.b
	if b.editor != nil {
		var content string
		if b.guard.call("getContent", func() (err error) {
			content, err = b.editor.GetContent()
			return err
		}) {
			return content
		}
	}
	if v, ok := b.fields.ReadString(b.names.Value); ok {
		return v
	}
	return b.lastSeen
}

func (c *CommandChannel) Focus() {
	if e := c.b.editor; e != nil {
		c.b.guard.call("focus", e.Focus)
	}
}

func (c *CommandChannel) Blur() {
	if e := c.b.editor; e != nil {
		c.b.guard.call("blur", e.Blur)
	}
}

// Commands returns the host-invocable form of the channel.
func (c *CommandChannel) Commands() map[string]host.Command {
	return map[string]host.Command{
		CommandSetValue: func(args ...string) (string, error) {
			if len(args) != 1 {
				return "", fmt.Errorf("%w: %s takes 1 argument, got %d", host.ErrInvalidArguments, CommandSetValue, len(args))
			}
			c.SetValue(args[0])
			return "", nil
		},
		CommandClear: func(...string) (string, error) {
			c.Clear()
			return "", nil
		},
		CommandGetValue: func(...string) (string, error) {
			return c.GetValue(), nil
		},
		CommandFocus: func(...string) (string, error) {
			c.Focus()
			return "", nil
		},
		CommandBlur: func(...string) (string, error) {
			c.Blur()
			return "", nil
		},
	}
}

// Register exposes the commands on h when it supports registration. Hosts
// without the capability are skipped silently.
func (c *CommandChannel) Register(h any) bool {
	return c.RegisterAs(h, "")
}

// RegisterAs is Register with every command name prefixed. A registering
// host holds one set of unprefixed names, so each further component on the
// same host needs its own prefix.
func (c *CommandChannel) RegisterAs(h any, prefix string) bool {
	reg, ok := h.(host.CommandRegistrar)
	if !ok {
		c.b.log.Debug("host cannot register commands; skipping")
		return false
	}
	cmds := c.Commands()
	if prefix != "" {
		named := make(map[string]host.Command, len(cmds))
		for name, fn := range cmds {
			named[prefix+name] = fn
		}
		cmds = named
	}
	if err := reg.RegisterCommands(cmds); err != nil {
		c.b.log.Warn("register commands; set a distinct command prefix per component", "prefix", prefix, "err", err)
		return false
	}
	return true
}
