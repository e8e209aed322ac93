package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/models"
)

func (m DashboardModel) updateBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.boardCol > 0 {
			m.boardCol--
			m.clampCursors()
		}
	case "right", "l":
		if m.boardCol < len(models.Statuses)-1 {
			m.boardCol++
			m.clampCursors()
		}
	case "up", "k":
		if m.boardRow > 0 {
			m.boardRow--
		}
	case "down", "j":
		if m.boardRow < len(m.columnTasks(models.Statuses[m.boardCol]))-1 {
			m.boardRow++
		}
	case "[":
		// Drag the focused card one column left.
		if task, ok := m.focusedBoardTask(); ok && m.boardCol > 0 {
			m.repo.MoveTask(task.ID, models.Statuses[m.boardCol-1])
			m.boardCol--
			m.refresh()
			m.focusTask(task.ID)
		}
	case "]":
		if task, ok := m.focusedBoardTask(); ok && m.boardCol < len(models.Statuses)-1 {
			m.repo.MoveTask(task.ID, models.Statuses[m.boardCol+1])
			m.boardCol++
			m.refresh()
			m.focusTask(task.ID)
		}
	case "n":
		m.modal = newTaskCreateState()
		return m, nil
	case "enter", "e":
		if task, ok := m.focusedBoardTask(); ok {
			m.modal = newTaskEditState(task)
		}
	case "a":
		if task, ok := m.focusedBoardTask(); ok {
			m.modal = &AssignState{taskID: task.ID}
		}
	case "t":
		if task, ok := m.focusedBoardTask(); ok {
			m.modal = newSubtasksState(task.ID)
		}
	case "d":
		if task, ok := m.focusedBoardTask(); ok {
			id := task.ID
			m.modal = &ConfirmState{
				prompt: "Delete task \"" + task.Title + "\"?",
				apply: func(dm *DashboardModel) {
					dm.repo.DeleteTask(id)
					dm.refresh()
				},
			}
		}
	}
	return m, nil
}

// focusTask moves the board cursor onto the given task within its
// current column.
func (m *DashboardModel) focusTask(id string) {
	for _, task := range m.snap.Tasks {
		if task.ID != id {
			continue
		}
		for ci, status := range models.Statuses {
			if status == task.Status {
				m.boardCol = ci
			}
		}
		for ri, t := range m.columnTasks(task.Status) {
			if t.ID == id {
				m.boardRow = ri
			}
		}
		return
	}
}
