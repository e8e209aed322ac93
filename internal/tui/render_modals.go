package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

func (m DashboardModel) renderModal() string {
	switch s := m.modal.(type) {
	case *TaskEditState:
		return m.renderTaskEdit(s)
	case *EpicEditState:
		return m.renderEpicEdit(s)
	case *MemberAddState:
		return m.renderMemberAdd(s)
	case *AssignState:
		return m.renderAssign(s)
	case *SubtasksState:
		return m.renderSubtasks(s)
	case *ConfirmState:
		return m.boxed(m.theme.Title.Render(s.prompt) + "\n\n" + m.theme.Dim.Render("y: confirm  n: cancel"))
	}
	return ""
}

var formLabels = [fieldCount]string{"Title", "Description", "Start", "End"}

func (m DashboardModel) renderFormInputs(inputs []textinput.Model, focus int) string {
	var lines []string
	for i, in := range inputs {
		label := formLabels[i]
		if i == focus {
			label = m.theme.Focused.Render(label)
		} else {
			label = m.theme.Dim.Render(label)
		}
		lines = append(lines, padLabel(label, 14)+in.View())
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderTaskEdit(s *TaskEditState) string {
	heading := "New Task"
	if s.taskID != "" {
		heading = "Edit Task"
	}
	body := m.theme.Title.Render(heading) + "\n\n" +
		m.renderFormInputs(s.inputs, s.focus) + "\n\n" +
		padLabel(m.theme.Dim.Render("Status"), 14) + m.statusBadge(s.status) +
		m.theme.Dim.Render("  (ctrl+t)") + "\n" +
		padLabel(m.theme.Dim.Render("Priority"), 14) + m.priorityBadge(s.priority) +
		m.theme.Dim.Render("  (ctrl+p)")
	return m.boxed(body)
}

func (m DashboardModel) renderEpicEdit(s *EpicEditState) string {
	heading := "New Epic"
	if s.epicID != "" {
		heading = "Edit Epic"
	}
	return m.boxed(m.theme.Title.Render(heading) + "\n\n" + m.renderFormInputs(s.inputs, s.focus))
}

func (m DashboardModel) renderMemberAdd(s *MemberAddState) string {
	nameLabel := m.theme.Dim.Render("Name")
	emailLabel := m.theme.Dim.Render("Email")
	if s.focus == 0 {
		nameLabel = m.theme.Focused.Render("Name")
	} else {
		emailLabel = m.theme.Focused.Render("Email")
	}
	body := m.theme.Title.Render("Add Team Member") + "\n\n" +
		padLabel(nameLabel, 14) + s.name.View() + "\n" +
		padLabel(emailLabel, 14) + s.email.View()
	return m.boxed(body)
}

func (m DashboardModel) renderAssign(s *AssignState) string {
	task, ok := m.snap.Task(s.taskID)
	if !ok {
		return ""
	}
	lines := []string{m.theme.Title.Render("Assign: " + truncateLabel(task.Title, 40)), ""}
	for i, member := range m.snap.Members {
		check := "[ ]"
		if taskAssignedTo(task, member.ID) {
			check = m.theme.StatusDone.Render("[x]")
		}
		line := fmt.Sprintf("%s %s %s", check,
			memberStyle(member.Color).Render(member.Avatar), member.Name)
		if i == s.cursor {
			line = m.theme.Focused.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(m.snap.Members) == 0 {
		lines = append(lines, m.theme.Dim.Render("(no members)"))
	}
	return m.boxed(strings.Join(lines, "\n"))
}

func (m DashboardModel) renderSubtasks(s *SubtasksState) string {
	task, ok := m.snap.Task(s.taskID)
	if !ok {
		return ""
	}
	lines := []string{m.theme.Title.Render("Subtasks: " + truncateLabel(task.Title, 40)), ""}
	for i, sub := range task.Subtasks {
		check := "[ ]"
		title := sub.Title
		if sub.Completed {
			check = m.theme.StatusDone.Render("[x]")
			title = m.theme.Dim.Render(title)
		}
		line := check + " " + title
		if i == s.cursor && !s.adding {
			line = m.theme.Focused.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(task.Subtasks) == 0 {
		lines = append(lines, m.theme.Dim.Render("(no subtasks)"))
	}
	if s.adding {
		lines = append(lines, "", m.theme.Focused.Render("add> ")+s.input.View())
	}
	return m.boxed(strings.Join(lines, "\n"))
}
