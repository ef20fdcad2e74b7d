// Package tui holds the terminal presentation helpers: markdown preview
// rendering and colored status lines.
package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// RenderMarkdown renders a markdown document for terminal display,
// auto-detecting the light/dark background style.
func RenderMarkdown(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

// Fail paints a status line in the failure color.
func Fail(s string) string {
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color("#fb7185")).String()
}

// Success paints a status line in the success color.
func Success(s string) string {
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color("#34d399")).String()
}
