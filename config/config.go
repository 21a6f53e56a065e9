// Package config holds the static editor configuration: toolbar contents,
// plugin list, heading levels, image/link/list options and the license key,
// plus the host field names and logging settings of the demo program.
//
// A Config is loaded once at startup and treated as immutable afterwards.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. QUILL_EDITOR_LICENSE_KEY.
const EnvPrefix = "QUILL"

// Config is the complete quill configuration.
type Config struct {
	Editor  EditorConfig  `mapstructure:"editor" yaml:"editor"`
	Fields  FieldsConfig  `mapstructure:"fields" yaml:"fields"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// EditorConfig is passed to the engine at construction time.
type EditorConfig struct {
	// LicenseKey is carried through to the engine unchanged.
	LicenseKey string `mapstructure:"license_key" yaml:"license_key"`
	// Placeholder is used when the host does not provide a placeholder field.
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`

	// Toolbar lists toolbar items in display order; "|" is a separator.
	Toolbar []string `mapstructure:"toolbar" yaml:"toolbar"`
	// ShouldNotGroupWhenFull keeps every toolbar item visible on narrow
	// widths instead of collapsing the overflow.
	ShouldNotGroupWhenFull bool     `mapstructure:"should_not_group_when_full" yaml:"should_not_group_when_full"`
	BalloonToolbar         []string `mapstructure:"balloon_toolbar" yaml:"balloon_toolbar"`
	Plugins                []string `mapstructure:"plugins" yaml:"plugins"`

	Headings []Heading  `mapstructure:"headings" yaml:"headings"`
	Image    ImageConfig `mapstructure:"image" yaml:"image"`
	Link     LinkConfig  `mapstructure:"link" yaml:"link"`
	List     ListConfig  `mapstructure:"list" yaml:"list"`

	ShowLineNums bool `mapstructure:"show_line_nums" yaml:"show_line_nums"`
	HistoryLimit int  `mapstructure:"history_limit" yaml:"history_limit"`
}

// Heading maps a heading option to its markup element.
type Heading struct {
	Model string `mapstructure:"model" yaml:"model"`
	View  string `mapstructure:"view" yaml:"view"`
	Title string `mapstructure:"title" yaml:"title"`
	Class string `mapstructure:"class" yaml:"class"`
}

type ImageConfig struct {
	Toolbar []string `mapstructure:"toolbar" yaml:"toolbar"`
}

type LinkConfig struct {
	AddTargetToExternalLinks bool                     `mapstructure:"add_target_to_external_links" yaml:"add_target_to_external_links"`
	DefaultProtocol          string                   `mapstructure:"default_protocol" yaml:"default_protocol"`
	Decorators               map[string]LinkDecorator `mapstructure:"decorators" yaml:"decorators"`
}

type LinkDecorator struct {
	Mode       string            `mapstructure:"mode" yaml:"mode"`
	Label      string            `mapstructure:"label" yaml:"label"`
	Attributes map[string]string `mapstructure:"attributes" yaml:"attributes"`
}

type ListConfig struct {
	Styles     bool `mapstructure:"styles" yaml:"styles"`
	StartIndex bool `mapstructure:"start_index" yaml:"start_index"`
	Reversed   bool `mapstructure:"reversed" yaml:"reversed"`
}

// FieldsConfig names the host fields the component reads and writes.
type FieldsConfig struct {
	Value         string `mapstructure:"value" yaml:"value"`
	Placeholder   string `mapstructure:"placeholder" yaml:"placeholder"`
	ExternalValue string `mapstructure:"external_value" yaml:"external_value"`
	FocusFlag     string `mapstructure:"focus_flag" yaml:"focus_flag"`
	BlurFlag      string `mapstructure:"blur_flag" yaml:"blur_flag"`
	ClearFlag     string `mapstructure:"clear_flag" yaml:"clear_flag"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// HasPlugin reports whether the named plugin is enabled.
func (c EditorConfig) HasPlugin(name string) bool {
	return slices.Contains(c.Plugins, name)
}

// HasToolbarItem reports whether item is present in the main toolbar.
func (c EditorConfig) HasToolbarItem(item string) bool {
	return item != Separator && slices.Contains(c.Toolbar, item)
}

// HeadingByModel returns the heading option with the given model name.
func (c EditorConfig) HeadingByModel(model string) (Heading, bool) {
	for _, h := range c.Headings {
		if h.Model == model {
			return h, true
		}
	}
	return Heading{}, false
}

// Load reads configuration from defaults, QUILL_* environment variables and
// the optional file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper registers defaults and environment binding on v and decodes the
// result. Values already set on v (flags, config files) take precedence over
// the defaults.
func FromViper(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("editor.license_key", d.Editor.LicenseKey)
	v.SetDefault("editor.placeholder", d.Editor.Placeholder)
	v.SetDefault("editor.toolbar", d.Editor.Toolbar)
	v.SetDefault("editor.should_not_group_when_full", d.Editor.ShouldNotGroupWhenFull)
	v.SetDefault("editor.balloon_toolbar", d.Editor.BalloonToolbar)
	v.SetDefault("editor.plugins", d.Editor.Plugins)
	v.SetDefault("editor.headings", d.Editor.Headings)
	v.SetDefault("editor.image.toolbar", d.Editor.Image.Toolbar)
	v.SetDefault("editor.link.add_target_to_external_links", d.Editor.Link.AddTargetToExternalLinks)
	v.SetDefault("editor.link.default_protocol", d.Editor.Link.DefaultProtocol)
	v.SetDefault("editor.link.decorators", d.Editor.Link.Decorators)
	v.SetDefault("editor.list.styles", d.Editor.List.Styles)
	v.SetDefault("editor.list.start_index", d.Editor.List.StartIndex)
	v.SetDefault("editor.list.reversed", d.Editor.List.Reversed)
	v.SetDefault("editor.show_line_nums", d.Editor.ShowLineNums)
	v.SetDefault("editor.history_limit", d.Editor.HistoryLimit)

	v.SetDefault("fields.value", d.Fields.Value)
	v.SetDefault("fields.placeholder", d.Fields.Placeholder)
	v.SetDefault("fields.external_value", d.Fields.ExternalValue)
	v.SetDefault("fields.focus_flag", d.Fields.FocusFlag)
	v.SetDefault("fields.blur_flag", d.Fields.BlurFlag)
	v.SetDefault("fields.clear_flag", d.Fields.ClearFlag)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}
