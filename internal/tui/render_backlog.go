package tui

import (
	"fmt"
	"strings"

	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/query"
)

func (m DashboardModel) renderBacklog() string {
	var b strings.Builder
	b.WriteString(m.sectionTitle("Sprints"))
	b.WriteString("\n\n")

	filtered := m.filteredTasks()
	for row, sp := range m.snap.Sprints {
		tasks := query.InSprint(filtered, sp.ID)
		stats := query.Stats(tasks)

		marker := "▸"
		if m.expanded[sp.ID] {
			marker = "▾"
		}
		line := fmt.Sprintf("%s %s  %s – %s  %d/%d done",
			marker, sp.Name,
			sp.StartDate.Format("Jan 2"), sp.EndDate.Format("Jan 2"),
			stats.Done, stats.Total)
		if row == m.backlogRow {
			line = m.theme.Focused.Render(line)
		}
		if sp.IsActive {
			line += "  " + m.theme.ActiveBadge.Render("ACTIVE")
		}
		b.WriteString(line)
		b.WriteString("\n")

		if m.expanded[sp.ID] {
			for _, t := range tasks {
				b.WriteString(fmt.Sprintf("    %s %s %s\n",
					m.statusBadge(t.Status),
					truncateLabel(t.Title, config.MaxTitleLength/2),
					m.avatarChips(t.Assignees, config.MaxAvatarsDisplayed)))
			}
			if len(tasks) == 0 {
				b.WriteString(m.theme.Dim.Render("    (no tasks)"))
				b.WriteString("\n")
			}
		}
	}
	if len(m.snap.Sprints) == 0 {
		b.WriteString(m.theme.Dim.Render("No sprints yet. Press n to add one."))
	}
	return b.String()
}
