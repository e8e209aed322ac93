package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mhartveld/sprintdeck/internal/query"
)

func (m DashboardModel) renderTeam() string {
	var b strings.Builder
	b.WriteString(m.sectionTitle(fmt.Sprintf("Team (%d members)", len(m.snap.Members))))
	b.WriteString("\n\n")

	loads := query.Workload(m.snap.Members, m.snap.Tasks)
	var cards []string
	for row, load := range loads {
		member := load.Member
		lines := []string{
			memberStyle(member.Color).Render(" "+member.Avatar+" ") + " " + m.theme.Title.Render(member.Name),
			m.theme.Dim.Render(member.Email),
			"",
			fmt.Sprintf("%s %d  %s %d  %s %d",
				m.theme.StatusTodo.Render("todo"), load.Todo,
				m.theme.StatusProgress.Render("active"), load.InProgress,
				m.theme.StatusDone.Render("done"), load.Done),
			fmt.Sprintf("%d tasks total", load.Total),
		}
		style := m.theme.Card
		if row == m.teamRow {
			style = m.theme.CardFocused
		}
		cards = append(cards, style.Width(34).Render(strings.Join(lines, "\n")))
	}
	if len(cards) == 0 {
		return b.String() + m.theme.Dim.Render("No team members yet. Press n to add one.")
	}

	// Two cards per row.
	for i := 0; i < len(cards); i += 2 {
		rowCards := cards[i:min(i+2, len(cards))]
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rowCards...))
		b.WriteString("\n")
	}
	return b.String()
}
