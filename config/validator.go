package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iw2rmb/quill/internal/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration and returns every problem at once.
func (c *Config) Validate() error {
	var errs []error

	for i, item := range c.Editor.Toolbar {
		if item != Separator && !slices.Contains(ToolbarItems, item) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("editor.toolbar[%d]", i),
				Message: fmt.Sprintf("unknown toolbar item %q", item),
			})
		}
	}

	seen := map[string]bool{}
	for i, h := range c.Editor.Headings {
		if !isHeadingView(h.View) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("editor.headings[%d].view", i),
				Message: fmt.Sprintf("must be p or h1..h6, got %q", h.View),
			})
		}
		if h.Model == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("editor.headings[%d].model", i), Message: "must not be empty"})
		} else if seen[h.Model] {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("editor.headings[%d].model", i), Message: fmt.Sprintf("duplicate model %q", h.Model)})
		}
		seen[h.Model] = true
	}

	if p := c.Editor.Link.DefaultProtocol; p != "" && !strings.HasSuffix(p, "://") {
		errs = append(errs, ValidationError{Field: "editor.link.default_protocol", Message: fmt.Sprintf("must end with ://, got %q", p)})
	}
	if c.Editor.HistoryLimit < -1 {
		errs = append(errs, ValidationError{Field: "editor.history_limit", Message: "must be >= -1"})
	}

	names := map[string]string{
		"fields.value":          c.Fields.Value,
		"fields.placeholder":    c.Fields.Placeholder,
		"fields.external_value": c.Fields.ExternalValue,
		"fields.focus_flag":     c.Fields.FocusFlag,
		"fields.blur_flag":      c.Fields.BlurFlag,
		"fields.clear_flag":     c.Fields.ClearFlag,
	}
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	used := map[string]string{}
	for _, key := range keys {
		name := names[key]
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{Field: key, Message: "must not be empty"})
			continue
		}
		if other, ok := used[name]; ok {
			errs = append(errs, ValidationError{Field: key, Message: fmt.Sprintf("field name %q already used by %s", name, other)})
			continue
		}
		used[name] = key
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, ValidationError{Field: "logging.level", Message: err.Error()})
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "text", "json":
	default:
		errs = append(errs, ValidationError{Field: "logging.format", Message: fmt.Sprintf("must be text or json, got %q", c.Logging.Format)})
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func isHeadingView(view string) bool {
	switch view {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}
