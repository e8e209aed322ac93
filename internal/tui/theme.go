package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Border         lipgloss.Color
	Header         lipgloss.Style
	Title          lipgloss.Style
	Card           lipgloss.Style
	CardFocused    lipgloss.Style
	StatusTodo     lipgloss.Style
	StatusProgress lipgloss.Style
	StatusDone     lipgloss.Style
	PriorityHigh   lipgloss.Style
	PriorityMed    lipgloss.Style
	PriorityLow    lipgloss.Style
	ActiveBadge    lipgloss.Style
	Input          lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
	Highlight      lipgloss.Style
	Today          lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("63"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Title:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Card:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		CardFocused:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		StatusTodo:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		StatusDone:     lipgloss.NewStyle().Foreground(lipgloss.Color("41")).Bold(true),
		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		PriorityMed:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ActiveBadge:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Padding(0, 1).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Today:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true),
	},
	"dracula": {
		Name:           "Dracula",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("62"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Title:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Card:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		CardFocused:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		StatusTodo:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		StatusProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		StatusDone:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		PriorityMed:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		ActiveBadge:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("212")).Padding(0, 1).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Today:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
	},
}

// CurrentTheme holds the currently active theme. Initialized to
// default to avoid nil lookups before SetTheme runs.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// memberStyle colors an avatar chip with the member's palette color.
func memberStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(color)).Bold(true)
}

// statusStyle picks the style matching a task status.
func (t Theme) statusStyle(status string) lipgloss.Style {
	switch status {
	case "in-progress":
		return t.StatusProgress
	case "done":
		return t.StatusDone
	}
	return t.StatusTodo
}
