package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/schedule"
	"github.com/mhartveld/sprintdeck/internal/store"
	"github.com/mhartveld/sprintdeck/internal/util"
)

func (m DashboardModel) updateBacklogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.backlogRow > 0 {
			m.backlogRow--
		}
	case "down", "j":
		if m.backlogRow < len(m.snap.Sprints)-1 {
			m.backlogRow++
		}
	case "enter", " ":
		if m.backlogRow < len(m.snap.Sprints) {
			id := m.snap.Sprints[m.backlogRow].ID
			m.expanded[id] = !m.expanded[id]
		}
	case "a":
		if m.backlogRow < len(m.snap.Sprints) {
			sp := m.snap.Sprints[m.backlogRow]
			m.repo.SetActiveSprint(sp.ID)
			m.refresh()
			m.Message = fmt.Sprintf("%s is now the active sprint", sp.Name)
		}
	case "n":
		m.addFollowingSprint()
	}
	return m, nil
}

// addFollowingSprint appends a week-long sprint starting the day after
// the last sprint ends, or this week's Monday when none exist.
func (m *DashboardModel) addFollowingSprint() {
	start := schedule.StartOfWeek(time.Now())
	if n := len(m.snap.Sprints); n > 0 {
		start = schedule.AddDays(m.snap.Sprints[n-1].EndDate, 1)
	}
	id := m.repo.AddSprint(store.SprintSeed{
		Name:      fmt.Sprintf("Sprint %d", len(m.snap.Sprints)+1),
		StartDate: start,
		EndDate:   schedule.AddDays(start, 6),
	})
	m.refresh()
	m.expanded[id] = true
}

func (m DashboardModel) updateTeamKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.teamRow > 0 {
			m.teamRow--
		}
	case "down", "j":
		if m.teamRow < len(m.snap.Members)-1 {
			m.teamRow++
		}
	case "n":
		m.modal = newMemberAddState()
	case "d":
		if m.teamRow < len(m.snap.Members) {
			member := m.snap.Members[m.teamRow]
			id := member.ID
			m.modal = &ConfirmState{
				prompt: "Remove " + member.Name + " from the team?",
				apply: func(dm *DashboardModel) {
					dm.repo.RemoveTeamMember(id)
					dm.refresh()
				},
			}
		}
	}
	return m, nil
}

func (m DashboardModel) updateReportsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		path, err := GeneratePDFReport(m.snap, ".")
		if err != nil {
			util.LogError("pdf export", err)
			m.Message = fmt.Sprintf("PDF export failed: %v", err)
		} else {
			m.Message = "PDF report written to " + path
		}
	}
	return m, nil
}

func (m DashboardModel) updateIssueKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.issueRow > 0 {
			m.issueRow--
		}
	case "down", "j":
		if m.issueRow < len(m.issueTasks())-1 {
			m.issueRow++
		}
	case "s":
		m.issueStatus = nextStatusFilter(m.issueStatus)
		m.clampCursors()
	case "enter", "e":
		if tasks := m.issueTasks(); m.issueRow < len(tasks) {
			m.modal = newTaskEditState(tasks[m.issueRow])
		}
	}
	return m, nil
}
