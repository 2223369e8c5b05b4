package console

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for the console.
type Styles struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Hit     lipgloss.Style
	Missed  lipgloss.Style
}

// NewStyles builds the styles against r so colour is only emitted when the
// output is a terminal.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title:   r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:    r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Hit:     r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Missed:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
}
