package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/query"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.modal != nil {
			return m.updateModal(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.issueSearching {
			return m.updateIssueSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Message = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.view = ViewBoard
		return m, nil
	case "2":
		m.view = ViewTimeline
		return m, nil
	case "3":
		m.view = ViewBacklog
		return m, nil
	case "4":
		m.view = ViewTeam
		return m, nil
	case "5":
		m.view = ViewReports
		return m, nil
	case "6":
		m.view = ViewRoadmap
		return m, nil
	case "7":
		m.view = ViewIssues
		return m, nil
	case "tab":
		m.view = (m.view + 1) % (ViewIssues + 1)
		return m, nil
	case "/":
		if m.view == ViewIssues {
			m.issueSearching = true
			return m, m.issueInput.Focus()
		}
		m.searching = true
		return m, m.searchInput.Focus()
	case "S":
		m.statusFilter = nextStatusFilter(m.statusFilter)
		m.clampCursors()
		return m, nil
	case "M":
		m.memberFilter = m.nextMemberFilter(m.memberFilter)
		m.clampCursors()
		return m, nil
	case "ctrl+r":
		// Clear every global filter.
		m.searchInput.SetValue("")
		m.statusFilter = query.StatusAll
		m.memberFilter = query.MemberAll
		m.clampCursors()
		return m, nil
	case "T":
		m.toggleTheme()
		return m, nil
	}

	switch m.view {
	case ViewBoard:
		return m.updateBoardKeys(msg)
	case ViewTimeline:
		return m.updateTimelineKeys(msg)
	case ViewBacklog:
		return m.updateBacklogKeys(msg)
	case ViewTeam:
		return m.updateTeamKeys(msg)
	case ViewReports:
		return m.updateReportsKeys(msg)
	case ViewRoadmap:
		return m.updateRoadmapKeys(msg)
	case ViewIssues:
		return m.updateIssueKeys(msg)
	}
	return m, nil
}

func (m DashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		if msg.Type == tea.KeyEsc {
			m.searchInput.SetValue("")
		}
		m.searching = false
		m.searchInput.Blur()
		m.clampCursors()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.clampCursors()
	return m, cmd
}

func (m DashboardModel) updateIssueSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		if msg.Type == tea.KeyEsc {
			m.issueInput.SetValue("")
		}
		m.issueSearching = false
		m.issueInput.Blur()
		m.clampCursors()
		return m, nil
	}
	var cmd tea.Cmd
	m.issueInput, cmd = m.issueInput.Update(msg)
	m.clampCursors()
	return m, cmd
}

// nextStatusFilter cycles all -> todo -> in-progress -> done -> all.
func nextStatusFilter(s models.Status) models.Status {
	switch s {
	case query.StatusAll:
		return models.StatusTodo
	case models.StatusTodo:
		return models.StatusInProgress
	case models.StatusInProgress:
		return models.StatusDone
	}
	return query.StatusAll
}

// nextMemberFilter cycles all -> each member in order -> all.
func (m DashboardModel) nextMemberFilter(current string) string {
	if len(m.snap.Members) == 0 {
		return query.MemberAll
	}
	if current == query.MemberAll {
		return m.snap.Members[0].ID
	}
	for i, member := range m.snap.Members {
		if member.ID == current {
			if i+1 < len(m.snap.Members) {
				return m.snap.Members[i+1].ID
			}
			return query.MemberAll
		}
	}
	return query.MemberAll
}

func (m *DashboardModel) toggleTheme() {
	if m.theme.Name == Themes["default"].Name {
		SetTheme("dracula")
	} else {
		SetTheme("default")
	}
	m.theme = CurrentTheme
}
