package tui

import (
	"fmt"
	"strings"

	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/query"
	"github.com/mhartveld/sprintdeck/internal/util"
)

func (m DashboardModel) renderIssues() string {
	tasks := m.issueTasks()

	var b strings.Builder
	header := fmt.Sprintf("Issues (%d)", len(tasks))
	if m.issueStatus != query.StatusAll {
		header += "  " + m.theme.Highlight.Render("status:"+string(m.issueStatus))
	}
	b.WriteString(m.sectionTitle(header))
	b.WriteString("\n")
	if m.issueSearching {
		b.WriteString(m.theme.Focused.Render("search> ") + m.issueInput.View())
		b.WriteString("\n")
	} else if q := m.issueInput.Value(); q != "" {
		b.WriteString(m.theme.Highlight.Render(fmt.Sprintf("search:%q", q)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	titleWidth := util.Clamp(m.width-52, 20, config.MaxTitleLength)
	for row, t := range tasks {
		cursor := "  "
		if row == m.issueRow {
			cursor = m.theme.Focused.Render("▸ ")
		}
		sprint := m.theme.Dim.Render("backlog")
		for _, sp := range m.snap.Sprints {
			if sp.ID == t.SprintID {
				sprint = m.theme.Dim.Render(sp.Name)
				break
			}
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s  %s\n",
			cursor,
			padLabel(truncateLabel(t.Title, titleWidth), titleWidth),
			padLabel(m.statusBadge(t.Status), 13),
			padLabel(m.priorityBadge(t.Priority), 5),
			padLabel(sprint, 10),
			m.avatarChips(t.Assignees, config.MaxAvatarsDisplayed)))
	}
	if len(tasks) == 0 {
		b.WriteString(m.theme.Dim.Render("No issues match the current filters."))
	}
	return b.String()
}
