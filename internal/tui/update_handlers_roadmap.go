package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/schedule"
)

func (m DashboardModel) updateRoadmapKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.roadmap.Dragging() {
		return m.updateRoadmapDrag(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.roadmap.cursor > 0 {
			m.roadmap.cursor--
		}
	case "down", "j":
		if m.roadmap.cursor < len(m.roadmap.Epics())-1 {
			m.roadmap.cursor++
		}
	case "g", " ":
		m.roadmap.Grab(schedule.DragMove)
	case "[":
		m.roadmap.Grab(schedule.DragResizeStart)
	case "]":
		m.roadmap.Grab(schedule.DragResizeEnd)
	case "n":
		m.modal = newEpicCreateState()
	case "enter", "e":
		if epics := m.roadmap.Epics(); m.roadmap.cursor < len(epics) {
			m.modal = newEpicEditState(epics[m.roadmap.cursor])
		}
	case "d":
		if epics := m.roadmap.Epics(); m.roadmap.cursor < len(epics) {
			id := epics[m.roadmap.cursor].ID
			title := epics[m.roadmap.cursor].Title
			m.modal = &ConfirmState{
				prompt: "Delete epic \"" + title + "\"?",
				apply: func(dm *DashboardModel) {
					dm.roadmap.DeleteEpic(id)
				},
			}
		}
	}
	return m, nil
}

func (m DashboardModel) updateRoadmapDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.roadmap.Nudge(-1)
	case "right", "l":
		m.roadmap.Nudge(1)
	case "enter", "g", " ":
		m.roadmap.Release()
	case "esc":
		m.roadmap.Cancel()
	}
	return m, nil
}
