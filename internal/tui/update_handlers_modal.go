package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/schedule"
	"github.com/mhartveld/sprintdeck/internal/store"
	"github.com/mhartveld/sprintdeck/internal/util"
)

func (m DashboardModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.(type) {
	case *TaskEditState:
		return m.updateTaskEdit(s, msg)
	case *EpicEditState:
		return m.updateEpicEdit(s, msg)
	case *MemberAddState:
		return m.updateMemberAdd(s, msg)
	case *AssignState:
		return m.updateAssign(s, msg)
	case *SubtasksState:
		return m.updateSubtasks(s, msg)
	case *ConfirmState:
		return m.updateConfirm(s, msg)
	}
	m.modal = nil
	return m, nil
}

// focusFormField wraps the form focus index and moves the textinput
// focus with it.
func focusFormField(inputs []textinput.Model, next int) int {
	if next < 0 {
		next = fieldCount - 1
	}
	if next >= fieldCount {
		next = 0
	}
	for i := range inputs {
		if i == next {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return next
}

func (m DashboardModel) updateTaskEdit(s *TaskEditState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return m, nil
	case "tab", "down":
		s.focus = focusFormField(s.inputs, s.focus+1)
		return m, nil
	case "shift+tab", "up":
		s.focus = focusFormField(s.inputs, s.focus-1)
		return m, nil
	case "ctrl+t":
		s.status = nextStatus(s.status)
		return m, nil
	case "ctrl+p":
		s.priority = nextPriority(s.priority)
		return m, nil
	case "enter":
		if s.focus < fieldCount-1 {
			s.focus = focusFormField(s.inputs, s.focus+1)
			return m, nil
		}
		m.saveTaskForm(s)
		m.modal = nil
		return m, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return m, cmd
}

func (m *DashboardModel) saveTaskForm(s *TaskEditState) {
	title := strings.TrimSpace(s.inputs[fieldTitle].Value())
	if title == "" {
		return
	}
	description := s.inputs[fieldDescription].Value()

	if s.taskID == "" {
		today := schedule.Normalize(time.Now())
		seed := store.TaskSeed{
			Title:       title,
			Description: description,
			Status:      s.status,
			Priority:    s.priority,
			StartDate:   parseFormDate(s.inputs[fieldStart].Value(), today),
			EndDate:     parseFormDate(s.inputs[fieldEnd].Value(), schedule.AddDays(today, 1)),
		}
		if sp, ok := m.snap.ActiveSprint(); ok {
			seed.SprintID = sp.ID
		}
		id := m.repo.AddTask(seed)
		m.refresh()
		m.focusTask(id)
		return
	}

	prev, ok := m.snap.Task(s.taskID)
	if !ok {
		return
	}
	m.repo.UpdateTask(s.taskID, store.TaskPatch{
		Title:       util.Ptr(title),
		Description: util.Ptr(description),
		Status:      util.Ptr(s.status),
		Priority:    util.Ptr(s.priority),
		StartDate:   util.Ptr(parseFormDate(s.inputs[fieldStart].Value(), prev.StartDate)),
		EndDate:     util.Ptr(parseFormDate(s.inputs[fieldEnd].Value(), prev.EndDate)),
	})
	m.refresh()
}

func (m DashboardModel) updateEpicEdit(s *EpicEditState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return m, nil
	case "tab", "down":
		s.focus = focusFormField(s.inputs, s.focus+1)
		return m, nil
	case "shift+tab", "up":
		s.focus = focusFormField(s.inputs, s.focus-1)
		return m, nil
	case "enter":
		if s.focus < fieldCount-1 {
			s.focus = focusFormField(s.inputs, s.focus+1)
			return m, nil
		}
		m.saveEpicForm(s)
		m.modal = nil
		return m, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return m, cmd
}

func (m *DashboardModel) saveEpicForm(s *EpicEditState) {
	title := strings.TrimSpace(s.inputs[fieldTitle].Value())
	if title == "" {
		return
	}
	description := s.inputs[fieldDescription].Value()
	start := parseFormDate(s.inputs[fieldStart].Value(), time.Time{})
	end := parseFormDate(s.inputs[fieldEnd].Value(), time.Time{})

	if s.epicID == "" {
		m.roadmap.AddEpic(title, description, start, end)
		m.roadmap.cursor = len(m.roadmap.Epics()) - 1
		return
	}
	m.roadmap.UpdateEpic(s.epicID, title, description, start, end)
}

func (m DashboardModel) updateMemberAdd(s *MemberAddState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return m, nil
	case "tab", "down", "shift+tab", "up":
		if s.focus == 0 {
			s.focus = 1
			s.name.Blur()
			return m, s.email.Focus()
		}
		s.focus = 0
		s.email.Blur()
		return m, s.name.Focus()
	case "enter":
		if s.focus == 0 {
			s.focus = 1
			s.name.Blur()
			return m, s.email.Focus()
		}
		name := strings.TrimSpace(s.name.Value())
		if name != "" {
			m.repo.AddTeamMember(store.MemberSeed{
				Name:  name,
				Email: strings.TrimSpace(s.email.Value()),
			})
			m.refresh()
		}
		m.modal = nil
		return m, nil
	}
	var cmd tea.Cmd
	if s.focus == 0 {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.email, cmd = s.email.Update(msg)
	}
	return m, cmd
}

func (m DashboardModel) updateAssign(s *AssignState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "a":
		m.modal = nil
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(m.snap.Members)-1 {
			s.cursor++
		}
	case " ":
		if s.cursor >= len(m.snap.Members) {
			break
		}
		member := m.snap.Members[s.cursor]
		task, ok := m.snap.Task(s.taskID)
		if !ok {
			break
		}
		if taskAssignedTo(task, member.ID) {
			m.repo.UnassignMember(s.taskID, member.ID)
		} else {
			m.repo.AssignMember(s.taskID, member.ID)
		}
		m.refresh()
	}
	return m, nil
}

func (m DashboardModel) updateSubtasks(s *SubtasksState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.adding {
		switch msg.Type {
		case tea.KeyEnter:
			title := strings.TrimSpace(s.input.Value())
			if title != "" {
				m.repo.AddSubtask(s.taskID, title)
				m.refresh()
			}
			s.input.SetValue("")
			s.adding = false
			s.input.Blur()
			return m, nil
		case tea.KeyEsc:
			s.adding = false
			s.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return m, cmd
	}

	task, ok := m.snap.Task(s.taskID)
	if !ok {
		m.modal = nil
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.modal = nil
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(task.Subtasks)-1 {
			s.cursor++
		}
	case " ", "enter":
		if s.cursor < len(task.Subtasks) {
			sub := task.Subtasks[s.cursor]
			m.repo.UpdateSubtask(s.taskID, sub.ID, store.SubtaskPatch{
				Completed: util.Ptr(!sub.Completed),
			})
			m.refresh()
		}
	case "n":
		s.adding = true
		return m, s.input.Focus()
	case "d":
		if s.cursor < len(task.Subtasks) {
			m.repo.DeleteSubtask(s.taskID, task.Subtasks[s.cursor].ID)
			m.refresh()
			if s.cursor > 0 {
				s.cursor--
			}
		}
	}
	return m, nil
}

func (m DashboardModel) updateConfirm(s *ConfirmState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		s.apply(&m)
		m.modal = nil
	case "n", "esc":
		m.modal = nil
	}
	return m, nil
}

func taskAssignedTo(task models.Task, memberID string) bool {
	for _, a := range task.Assignees {
		if a == memberID {
			return true
		}
	}
	return false
}

func nextStatus(s models.Status) models.Status {
	switch s {
	case models.StatusTodo:
		return models.StatusInProgress
	case models.StatusInProgress:
		return models.StatusDone
	}
	return models.StatusTodo
}

func nextPriority(p models.Priority) models.Priority {
	switch p {
	case models.PriorityLow:
		return models.PriorityMedium
	case models.PriorityMedium:
		return models.PriorityHigh
	}
	return models.PriorityLow
}
