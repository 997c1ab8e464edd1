package console

import "github.com/charmbracelet/lipgloss"

// Styles controls the console's rendering.
type Styles struct {
	Panel      lipgloss.Style
	Title      lipgloss.Style
	Symbol     lipgloss.Style
	Price      lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Above      lipgloss.Style
	Below      lipgloss.Style
	Inside     lipgloss.Style
	Buy        lipgloss.Style
	Sell       lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Prompt     lipgloss.Style
	Cursor     lipgloss.Style
	ModeEdit   lipgloss.Style
	ModeNormal lipgloss.Style
}

// DefaultStyles builds the styles on r. A nil r uses the default renderer.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	muted := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Styles{
		Panel:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		Title:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		Symbol:     r.NewStyle().Bold(true),
		Price:      r.NewStyle().Foreground(lipgloss.Color("229")),
		Muted:      muted,
		Selected:   r.NewStyle().Reverse(true),
		Above:      r.NewStyle().Foreground(lipgloss.Color("203")),
		Below:      r.NewStyle().Foreground(lipgloss.Color("114")),
		Inside:     r.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
		Buy:        r.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		Sell:       r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Status:     muted,
		Error:      r.NewStyle().Foreground(lipgloss.Color("196")),
		Prompt:     r.NewStyle().Foreground(lipgloss.Color("111")),
		Cursor:     r.NewStyle().Reverse(true),
		ModeEdit:   r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("111")).Padding(0, 1),
		ModeNormal: r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("245")).Padding(0, 1),
	}
}
