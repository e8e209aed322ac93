package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/query"
)

const reportBarWidth = 24

func (m DashboardModel) renderReports() string {
	tasks := m.snap.Tasks
	stats := query.Stats(tasks)

	var b strings.Builder
	b.WriteString(m.sectionTitle("Project Report"))
	b.WriteString("\n\n")

	headline := fmt.Sprintf(
		"%d tasks | %d%% complete | %d high priority | %d unassigned",
		stats.Total,
		query.CompletionPercent(stats.Done, stats.Total),
		stats.HighPriority,
		stats.Unassigned)
	b.WriteString(m.boxed(headline))
	b.WriteString("\n\n")

	left := m.renderStatusDistribution(tasks)
	right := m.renderPriorityBreakdown(tasks)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	b.WriteString("\n\n")

	b.WriteString(m.renderWorkloadReport(tasks))
	b.WriteString("\n")
	b.WriteString(m.renderSprintOverview())
	return b.String()
}

func (m DashboardModel) renderStatusDistribution(tasks []models.Task) string {
	counts := query.StatusCounts(tasks)
	lines := []string{m.theme.Title.Render("By Status"), ""}
	for _, status := range models.Statuses {
		lines = append(lines, fmt.Sprintf("%s %s %d",
			padLabel(status.Label(), 12),
			m.ratioBar(counts[status], len(tasks), reportBarWidth, m.theme.statusStyle(string(status))),
			counts[status]))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderPriorityBreakdown(tasks []models.Task) string {
	counts := query.PriorityCounts(tasks)
	styles := map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   m.theme.PriorityHigh,
		models.PriorityMedium: m.theme.PriorityMed,
		models.PriorityLow:    m.theme.PriorityLow,
	}
	lines := []string{m.theme.Title.Render("By Priority"), ""}
	for _, p := range models.Priorities {
		lines = append(lines, fmt.Sprintf("%s %s %d",
			padLabel(p.Label(), 12),
			m.ratioBar(counts[p], len(tasks), reportBarWidth, styles[p]),
			counts[p]))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderWorkloadReport(tasks []models.Task) string {
	lines := []string{m.theme.Title.Render("Team Workload"), ""}
	maxLoad := 0
	loads := query.Workload(m.snap.Members, tasks)
	for _, load := range loads {
		if load.Total > maxLoad {
			maxLoad = load.Total
		}
	}
	for _, load := range loads {
		lines = append(lines, fmt.Sprintf("%s %s %d (%d done)",
			padLabel(load.Member.Name, 16),
			m.ratioBar(load.Total, maxLoad, reportBarWidth, memberStyle(load.Member.Color)),
			load.Total, load.Done))
	}
	if len(loads) == 0 {
		lines = append(lines, m.theme.Dim.Render("(no members)"))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderSprintOverview() string {
	lines := []string{m.theme.Title.Render("Sprints"), ""}
	for _, sp := range m.snap.Sprints {
		stats := query.Stats(query.InSprint(m.snap.Tasks, sp.ID))
		pct := query.CompletionPercent(stats.Done, stats.Total)
		name := sp.Name
		if sp.IsActive {
			name += " " + m.theme.ActiveBadge.Render("ACTIVE")
		}
		lines = append(lines, fmt.Sprintf("%s %s – %s  %d tasks, %d%% complete",
			padLabel(name, 24),
			sp.StartDate.Format("Jan 2"), sp.EndDate.Format("Jan 2"),
			stats.Total, pct))
	}
	return strings.Join(lines, "\n")
}
