package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/query"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

func padLabel(text string, width int) string {
	w := ansi.StringWidth(text)
	if w >= width {
		return truncateLabel(text, width)
	}
	return text + strings.Repeat(" ", width-w)
}

// avatarChips renders the assigned members' initials in their palette
// colors, capped at the display limit.
func (m DashboardModel) avatarChips(assignees []string, max int) string {
	var chips []string
	for _, id := range assignees {
		if len(chips) == max {
			chips = append(chips, m.theme.Dim.Render(fmt.Sprintf("+%d", len(assignees)-max)))
			break
		}
		if member, ok := m.snap.Member(id); ok {
			chips = append(chips, memberStyle(member.Color).Render(member.Avatar))
		}
	}
	return strings.Join(chips, " ")
}

func (m DashboardModel) statusBadge(s models.Status) string {
	return m.theme.statusStyle(string(s)).Render(s.Label())
}

func (m DashboardModel) priorityBadge(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return m.theme.PriorityHigh.Render("High")
	case models.PriorityMedium:
		return m.theme.PriorityMed.Render("Med")
	}
	return m.theme.PriorityLow.Render("Low")
}

// ratioBar draws a fixed-width bar filled proportionally to value/max.
func (m DashboardModel) ratioBar(value, max, width int, style lipgloss.Style) string {
	if max <= 0 || width <= 0 {
		return strings.Repeat("░", width)
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return style.Render(strings.Repeat("█", filled)) + m.theme.Dim.Render(strings.Repeat("░", width-filled))
}

// subtaskBadge renders "2/3" checklist progress, or nothing when the
// task has no subtasks.
func (m DashboardModel) subtaskBadge(task models.Task) string {
	done, total := query.SubtaskProgress(task)
	if total == 0 {
		return ""
	}
	style := m.theme.Dim
	if done == total {
		style = m.theme.StatusDone
	}
	return style.Render(fmt.Sprintf("☑ %d/%d", done, total))
}

// boxed wraps content in the themed border.
func (m DashboardModel) boxed(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Render(content)
}

func (m DashboardModel) sectionTitle(text string) string {
	return m.theme.Title.Render(text)
}
