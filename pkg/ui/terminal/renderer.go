// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/arthur-debert/wpconf/pkg/ui/text"
	"github.com/charmbracelet/lipgloss"
)

// Renderer is the text renderer decorated with lipgloss styles
type Renderer struct {
	*text.Renderer
}

// New creates a terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{
		Renderer: text.NewStyled(w, text.Styles{
			Title:   render(titleStyle),
			Success: render(successStyle),
			Error:   render(errorStyle),
			Muted:   render(mutedStyle),
			Path:    render(pathStyle),
			Added:   render(addedStyle),
			Removed: render(removedStyle),
		}),
	}
}

// render adapts a lipgloss style's variadic Render to func(string) string
func render(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}
