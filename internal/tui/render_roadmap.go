package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mhartveld/sprintdeck/internal/config"
)

func (m DashboardModel) renderRoadmap() string {
	window := m.roadmap.Window()
	epics := m.roadmap.Epics()
	weekWidth := 7 * config.RoadmapDayWidth

	var b strings.Builder
	b.WriteString(m.sectionTitle(fmt.Sprintf("Roadmap  %s – %s",
		window.Day(0).Format("Jan 2"),
		window.Day(window.TotalDays-1).Format("Jan 2"))))
	b.WriteString("\n\n")

	// Week header row.
	b.WriteString(strings.Repeat(" ", config.SidebarWidth))
	for week := 0; week < config.RoadmapWeeks; week++ {
		label := window.Day(week * 7).Format("Jan 2")
		b.WriteString(m.theme.Dim.Render(padLabel(label, weekWidth)))
	}
	b.WriteString("\n")

	for row, e := range epics {
		label := truncateLabel(e.Title, config.SidebarWidth-3)
		switch {
		case m.roadmap.Dragging() && row == m.roadmap.cursor:
			label = m.theme.Highlight.Render("◆ " + label)
		case row == m.roadmap.cursor:
			label = m.theme.Focused.Render("▸ " + label)
		default:
			label = "  " + label
		}
		b.WriteString(padLabel(label, config.SidebarWidth))

		bar := window.Bar(config.RoadmapDayWidth, config.BarGutter, e.StartDate, e.EndDate)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color))
		b.WriteString(strings.Repeat(" ", bar.Offset))
		b.WriteString(style.Render(strings.Repeat("█", bar.Width)))
		if n := len(e.TaskIDs); n > 0 {
			b.WriteString(m.theme.Dim.Render(fmt.Sprintf(" %d linked", n)))
		}
		b.WriteString("\n")
	}
	if len(epics) == 0 {
		b.WriteString(m.theme.Dim.Render("No epics yet. Press n to add one."))
		b.WriteString("\n")
	}

	if m.roadmap.cursor < len(epics) {
		e := epics[m.roadmap.cursor]
		b.WriteString("\n")
		detail := fmt.Sprintf("%s  %s – %s", e.Title,
			e.StartDate.Format("Jan 2, 2006"), e.EndDate.Format("Jan 2, 2006"))
		if e.Description != "" {
			detail += "\n" + m.theme.Dim.Render(e.Description)
		}
		b.WriteString(m.boxed(detail))
	}
	return b.String()
}
