package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/schedule"
)

// ModalType identifies the open modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalTaskEdit
	ModalEpicEdit
	ModalMemberAdd
	ModalAssign
	ModalSubtasks
	ModalConfirm
)

// ModalState is the per-modal UI state. The dashboard holds at most
// one open modal at a time.
type ModalState interface {
	Type() ModalType
}

const dateLayout = "2006-01-02"

// Field order in the task and epic edit forms.
const (
	fieldTitle = iota
	fieldDescription
	fieldStart
	fieldEnd
	fieldCount
)

func newFormInputs(title, description string, start, end time.Time) []textinput.Model {
	mk := func(placeholder, value string, limit, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = width
		ti.SetValue(value)
		return ti
	}
	inputs := []textinput.Model{
		mk("Title", title, config.MaxTitleLength, 40),
		mk("Description", description, config.MaxDescriptionLength, 40),
		mk(dateLayout, "", 10, 12),
		mk(dateLayout, "", 10, 12),
	}
	if !start.IsZero() {
		inputs[fieldStart].SetValue(start.Format(dateLayout))
	}
	if !end.IsZero() {
		inputs[fieldEnd].SetValue(end.Format(dateLayout))
	}
	inputs[fieldTitle].Focus()
	return inputs
}

// parseFormDate reads a YYYY-MM-DD input, falling back when empty or
// malformed. Dates are not validated against each other; the
// placement arithmetic clamps inverted ranges at render time.
func parseFormDate(value string, fallback time.Time) time.Time {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return fallback
	}
	return schedule.Normalize(t)
}

// TaskEditState backs the create/edit task form.
type TaskEditState struct {
	taskID   string // empty = creating
	inputs   []textinput.Model
	focus    int
	status   models.Status
	priority models.Priority
}

func (s *TaskEditState) Type() ModalType { return ModalTaskEdit }

func newTaskCreateState() *TaskEditState {
	return &TaskEditState{
		inputs:   newFormInputs("", "", time.Time{}, time.Time{}),
		status:   models.StatusTodo,
		priority: models.PriorityMedium,
	}
}

func newTaskEditState(task models.Task) *TaskEditState {
	return &TaskEditState{
		taskID:   task.ID,
		inputs:   newFormInputs(task.Title, task.Description, task.StartDate, task.EndDate),
		status:   task.Status,
		priority: task.Priority,
	}
}

// EpicEditState backs the create/edit epic form on the roadmap.
type EpicEditState struct {
	epicID string // empty = creating
	inputs []textinput.Model
	focus  int
}

func (s *EpicEditState) Type() ModalType { return ModalEpicEdit }

func newEpicCreateState() *EpicEditState {
	today := schedule.Normalize(time.Now())
	return &EpicEditState{
		inputs: newFormInputs("", "", today, schedule.AddDays(today, config.DefaultEpicSpanDays)),
	}
}

func newEpicEditState(epic models.Epic) *EpicEditState {
	return &EpicEditState{
		epicID: epic.ID,
		inputs: newFormInputs(epic.Title, epic.Description, epic.StartDate, epic.EndDate),
	}
}

// MemberAddState backs the add-member form on the team view.
type MemberAddState struct {
	name  textinput.Model
	email textinput.Model
	focus int
}

func (s *MemberAddState) Type() ModalType { return ModalMemberAdd }

func newMemberAddState() *MemberAddState {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = config.MaxTitleLength
	name.Width = 30
	name.Focus()
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = config.MaxTitleLength
	email.Width = 30
	return &MemberAddState{name: name, email: email}
}

// AssignState backs the assignee picker for one task.
type AssignState struct {
	taskID string
	cursor int
}

func (s *AssignState) Type() ModalType { return ModalAssign }

// SubtasksState backs the subtask checklist editor for one task.
type SubtasksState struct {
	taskID string
	cursor int
	adding bool
	input  textinput.Model
}

func (s *SubtasksState) Type() ModalType { return ModalSubtasks }

func newSubtasksState(taskID string) *SubtasksState {
	ti := textinput.New()
	ti.Placeholder = "New subtask..."
	ti.CharLimit = config.MaxTitleLength
	ti.Width = 40
	return &SubtasksState{taskID: taskID, input: ti}
}

// ConfirmState backs yes/no prompts for destructive operations. The
// apply callback runs against the dashboard on confirmation.
type ConfirmState struct {
	prompt string
	apply  func(m *DashboardModel)
}

func (s *ConfirmState) Type() ModalType { return ModalConfirm }
