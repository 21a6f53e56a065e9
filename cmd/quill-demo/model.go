package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/bridge"
	"github.com/iw2rmb/quill/config"
	"github.com/iw2rmb/quill/engine"
	"github.com/iw2rmb/quill/host"
)

var sampleDocuments = []string{
	"<h2>Quill demo</h2>\n<p>Edit the markup. The host field follows every change.</p>",
	"<p>Reset from <b>externalValue</b>.</p>",
	"<ul>\n<li>one</li>\n<li>two</li>\n</ul>",
}

const statusLines = 3

type keyMap struct {
	Quit  key.Binding
	Focus key.Binding
	Blur  key.Binding
	Clear key.Binding
	Reset key.Binding
	Get   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:  key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		Focus: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "focus")),
		Blur:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "blur")),
		Clear: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Reset: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Get:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "get value")),
	}
}

// widgets is shared by model copies; the component reports into it.
type widgets struct {
	wordCount engine.Widget
}

type model struct {
	rt    *host.Runtime
	names bridge.FieldNames
	comp  *bridge.Component
	aux   *widgets
	keys  keyMap

	resets int
	status string
	help   lipgloss.Style
}

func newModel(rt *host.Runtime, cfg *config.Config, logger *slog.Logger) model {
	aux := &widgets{}
	names := bridge.FieldNamesFromConfig(cfg.Fields)
	comp := bridge.NewComponent(rt, bridge.ComponentConfig{
		Options: bridge.Options{
			Fields: names,
			Logger: logger,
			OnAuxiliaryWidgetReady: func(name string, w engine.Widget) {
				if name == engine.WidgetWordCount {
					aux.wordCount = w
				}
			},
		},
		Editor: cfg.Editor,
		Style:  engine.DefaultStyle(),
	})
	return model{
		rt:    rt,
		names: names,
		comp:  comp,
		aux:   aux,
		keys:  defaultKeyMap(),
		help:  lipgloss.NewStyle().Faint(true),
	}
}

func (m model) Init() tea.Cmd { return m.comp.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.comp.SetSize(msg.Width, max(msg.Height-statusLines, 0))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.comp.Unmount()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.rt.WriteBool(m.names.FocusFlag, true)
			return m, nil
		case key.Matches(msg, m.keys.Blur):
			m.rt.WriteBool(m.names.BlurFlag, true)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.rt.WriteBool(m.names.ClearFlag, true)
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.resets++
			m.rt.WriteString(m.names.ExternalValue, sampleDocuments[m.resets%len(sampleDocuments)])
			return m, nil
		case key.Matches(msg, m.keys.Get):
			v, err := m.rt.Invoke(bridge.CommandGetValue)
			if err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("getValue: %d bytes", len(v))
			}
			return m, nil
		}
	}
	return m, m.comp.Update(msg)
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.comp.View())
	sb.WriteString("\n")

	value, _ := m.rt.ReadString(m.names.Value)
	line := fmt.Sprintf("phase: %s  field: %d bytes", m.comp.Phase(), len(value))
	if m.aux.wordCount != nil {
		line += "  " + m.aux.wordCount.View()
	}
	if m.status != "" {
		line += "  " + m.status
	}
	sb.WriteString(line + "\n")

	k := m.keys
	sb.WriteString(m.help.Render(helpLine(k.Focus, k.Blur, k.Clear, k.Reset, k.Get, k.Quit)))
	return sb.String()
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
