package tui

import (
	"fmt"
	"strings"

	"github.com/mhartveld/sprintdeck/internal/query"
)

func renderLogo() string {
	return CurrentTheme.Focused.Render("sprint") + CurrentTheme.Highlight.Render("deck")
}

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.modal != nil {
		b.WriteString(m.renderModal())
	} else {
		switch m.view {
		case ViewBoard:
			b.WriteString(m.renderBoard())
		case ViewTimeline:
			b.WriteString(m.renderTimeline())
		case ViewBacklog:
			b.WriteString(m.renderBacklog())
		case ViewTeam:
			b.WriteString(m.renderTeam())
		case ViewReports:
			b.WriteString(m.renderReports())
		case ViewRoadmap:
			b.WriteString(m.renderRoadmap())
		case ViewIssues:
			b.WriteString(m.renderIssues())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return m.theme.Base.Render(b.String())
}

func (m DashboardModel) renderHeader() string {
	title := fmt.Sprintf("%s v%s | %s", renderLogo(), AppVersion, viewNames[m.view])

	sprintInfo := "no active sprint"
	if sp, ok := m.snap.ActiveSprint(); ok {
		sprintInfo = fmt.Sprintf("%s  %s – %s",
			sp.Name,
			sp.StartDate.Format("Jan 2"),
			sp.EndDate.Format("Jan 2"))
	}

	var filters []string
	if q := m.searchInput.Value(); q != "" {
		filters = append(filters, fmt.Sprintf("search:%q", q))
	}
	if m.statusFilter != query.StatusAll {
		filters = append(filters, "status:"+string(m.statusFilter))
	}
	if m.memberFilter != query.MemberAll {
		name := m.memberFilter
		if member, ok := m.snap.Member(m.memberFilter); ok {
			name = member.Name
		}
		filters = append(filters, "member:"+name)
	}
	filterInfo := ""
	if len(filters) > 0 {
		filterInfo = "  " + m.theme.Highlight.Render("["+strings.Join(filters, " ")+"]")
	}

	line := title + "  " + m.theme.Dim.Render(sprintInfo) + filterInfo
	if m.searching {
		line += "\n" + m.theme.Focused.Render("search> ") + m.searchInput.View()
	}
	return line
}

func (m DashboardModel) renderFooter() string {
	help := viewHelp[m.view]
	if m.modal != nil {
		help = modalHelp[m.modal.Type()]
	}
	footer := m.theme.Dim.Render(help)
	if m.Message != "" {
		footer += "\n" + m.theme.Focused.Render(m.Message)
	}
	return footer
}
