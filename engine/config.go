package engine

import "github.com/iw2rmb/quill/config"

// Config configures an Editor.
type Config struct {
	// Owner identifies the component that requested construction. It is
	// copied into ReadyMsg so instances are never delivered to the wrong
	// component.
	Owner string

	// Initial document content.
	Text        string
	Placeholder string

	// Static editor options: toolbar, plugins, headings, link options.
	Editor config.EditorConfig

	// Style is used as is; the zero Style renders without decoration.
	Style  Style
	KeyMap KeyMap

	// Initial size. A nonzero width and height attach the view immediately.
	Width, Height int
}
