package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/query"
)

func (m DashboardModel) renderBoard() string {
	tasks := m.sprintTasks()
	if _, ok := m.snap.ActiveSprint(); !ok {
		return m.theme.Dim.Render("No active sprint. Activate one in the Backlog view.")
	}

	var b strings.Builder
	b.WriteString(m.renderSprintProgress(tasks))
	b.WriteString("\n\n")

	colWidth := m.width/len(models.Statuses) - 4
	if colWidth < config.MinColumnWidth {
		colWidth = config.MinColumnWidth
	}

	var columns []string
	for col, status := range models.Statuses {
		columns = append(columns, m.renderColumn(col, status, colWidth))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	return b.String()
}

// renderSprintProgress shows the completed-over-total ratio for the
// active sprint with a gradient bar.
func (m DashboardModel) renderSprintProgress(tasks []models.Task) string {
	stats := query.Stats(tasks)
	pct := query.CompletionPercent(stats.Done, stats.Total)
	label := fmt.Sprintf("%d of %d tasks completed (%d%%)", stats.Done, stats.Total, pct)
	return m.theme.Title.Render(label) + "  " + m.progress.ViewAs(float64(pct)/100)
}

func (m DashboardModel) renderColumn(col int, status models.Status, width int) string {
	tasks := m.columnTasks(status)
	focused := m.view == ViewBoard && col == m.boardCol

	header := fmt.Sprintf("%s (%d)", status.Label(), len(tasks))
	if focused {
		header = m.theme.Focused.Render(header)
	} else {
		header = m.theme.Title.Render(header)
	}

	lines := []string{header, ""}
	for row, t := range tasks {
		if row == config.MaxVisibleTasks {
			lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("… %d more", len(tasks)-row)))
			break
		}
		lines = append(lines, m.renderCard(t, width-4, focused && row == m.boardRow))
	}
	if len(tasks) == 0 {
		lines = append(lines, m.theme.Dim.Render("(empty)"))
	}

	body := strings.Join(lines, "\n")
	style := m.theme.Card
	if focused {
		style = m.theme.CardFocused
	}
	return style.Width(width).Render(body)
}

func (m DashboardModel) renderCard(t models.Task, width int, focused bool) string {
	title := truncateLabel(t.Title, width)
	if focused {
		title = m.theme.Focused.Render("▸ " + title)
	} else {
		title = "  " + title
	}

	meta := []string{m.priorityBadge(t.Priority)}
	if badge := m.subtaskBadge(t); badge != "" {
		meta = append(meta, badge)
	}
	if chips := m.avatarChips(t.Assignees, config.MaxAvatarsDisplayed); chips != "" {
		meta = append(meta, chips)
	}
	return title + "\n  " + strings.Join(meta, " ")
}
