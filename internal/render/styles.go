package render

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss styles bound to one output renderer, so colour
// support is detected for the actual destination rather than os.Stdout.
type styles struct {
	title lipgloss.Style
	error lipgloss.Style
	faint lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true),
		error: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		faint: r.NewStyle().Faint(true),
	}
}
