package engine

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/quill/config"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func viewLines(e *Editor) []string {
	lines := strings.Split(stripANSI(e.View()), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func testConfig(text string) Config {
	ed := config.Default().Editor
	ed.ShowLineNums = false
	ed.Toolbar = nil
	return Config{Text: text, Editor: ed, Width: 40, Height: 5}
}

func withToolbar(cfg Config, items ...string) Config {
	cfg.Editor.Toolbar = items
	return cfg
}
