package config

// Separator splits toolbar groups.
const Separator = "|"

// DefaultLicenseKey is used when no key is configured.
const DefaultLicenseKey = "GPL"

// Toolbar item names understood by the engine.
var ToolbarItems = []string{
	"sourceEditing",
	"heading",
	"bold",
	"italic",
	"underline",
	"link",
	"insertImageViaUrl",
	"mediaEmbed",
	"blockQuote",
	"bulletedList",
	"numberedList",
	"todoList",
	"outdent",
	"indent",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			LicenseKey:  DefaultLicenseKey,
			Placeholder: "Type or paste your content here!",
			Toolbar: []string{
				"sourceEditing", Separator,
				"heading", Separator,
				"bold", "italic", "underline", Separator,
				"link", "insertImageViaUrl", "mediaEmbed", "blockQuote", Separator,
				"bulletedList", "numberedList", "todoList", "outdent", "indent",
			},
			BalloonToolbar: []string{"bold", "italic", Separator, "link", Separator, "bulletedList", "numberedList"},
			Plugins: []string{
				"Autoformat", "AutoImage", "Autosave", "BalloonToolbar", "BlockQuote",
				"Bold", "CloudServices", "Essentials", "Heading", "ImageBlock",
				"ImageCaption", "ImageInline", "ImageInsertViaUrl", "ImageResize",
				"ImageStyle", "ImageTextAlternative", "ImageToolbar", "ImageUpload",
				"Indent", "IndentBlock", "Italic", "Link", "LinkImage", "List",
				"ListProperties", "MediaEmbed", "Paragraph", "PasteFromOffice",
				"SourceEditing", "TextTransformation", "TodoList", "Underline",
				"WordCount",
			},
			Headings: []Heading{
				{Model: "paragraph", View: "p", Title: "Paragraph", Class: "ck-heading_paragraph"},
				{Model: "heading1", View: "h1", Title: "Heading 1", Class: "ck-heading_heading1"},
				{Model: "heading2", View: "h2", Title: "Heading 2", Class: "ck-heading_heading2"},
				{Model: "heading3", View: "h3", Title: "Heading 3", Class: "ck-heading_heading3"},
				{Model: "heading4", View: "h4", Title: "Heading 4", Class: "ck-heading_heading4"},
				{Model: "heading5", View: "h5", Title: "Heading 5", Class: "ck-heading_heading5"},
				{Model: "heading6", View: "h6", Title: "Heading 6", Class: "ck-heading_heading6"},
			},
			Image: ImageConfig{
				Toolbar: []string{
					"toggleImageCaption", "imageTextAlternative", Separator,
					"imageStyle:inline", "imageStyle:wrapText", "imageStyle:breakText", Separator,
					"resizeImage",
				},
			},
			Link: LinkConfig{
				AddTargetToExternalLinks: true,
				DefaultProtocol:          "https://",
				Decorators: map[string]LinkDecorator{
					"toggleDownloadable": {
						Mode:       "manual",
						Label:      "Downloadable",
						Attributes: map[string]string{"download": "file"},
					},
				},
			},
			List: ListConfig{Styles: true, StartIndex: true, Reversed: true},

			ShowLineNums: true,
			HistoryLimit: 1000,
		},
		Fields: FieldsConfig{
			Value:         "value",
			Placeholder:   "placeholder",
			ExternalValue: "externalValue",
			FocusFlag:     "focusFlag",
			BlurFlag:      "blurFlag",
			ClearFlag:     "clearFlag",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
