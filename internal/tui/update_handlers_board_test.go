package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/models"
)

func TestBoardCursorNavigation(t *testing.T) {
	m := setupTestDashboard(t)

	m = pressKey(t, m, runeKey("l"))
	if m.boardCol != 1 {
		t.Fatalf("boardCol after l = %d, want 1", m.boardCol)
	}
	m = pressKey(t, m, runeKey("j"))
	if m.boardRow != 1 {
		t.Fatalf("boardRow after j = %d, want 1", m.boardRow)
	}
	m = pressKey(t, m, runeKey("h"))
	if m.boardCol != 0 {
		t.Fatalf("boardCol after h = %d, want 0", m.boardCol)
	}
	// Todo column has a single task, so the row clamps back.
	if m.boardRow != 0 {
		t.Fatalf("boardRow after column change = %d, want 0", m.boardRow)
	}
}

func TestBoardCursorStopsAtEdges(t *testing.T) {
	m := setupTestDashboard(t)

	m = pressKey(t, m, runeKey("h"))
	if m.boardCol != 0 {
		t.Fatalf("boardCol went below 0")
	}
	for i := 0; i < 5; i++ {
		m = pressKey(t, m, runeKey("l"))
	}
	if m.boardCol != len(models.Statuses)-1 {
		t.Fatalf("boardCol = %d, want %d", m.boardCol, len(models.Statuses)-1)
	}
}

func TestMoveTaskToNextColumn(t *testing.T) {
	m := setupTestDashboard(t)

	task, ok := m.focusedBoardTask()
	if !ok {
		t.Fatalf("no focused task in todo column")
	}
	if task.Status != models.StatusTodo {
		t.Fatalf("focused task status = %q, want todo", task.Status)
	}

	m = pressKey(t, m, runeKey("]"))

	moved, ok := m.snap.Task(task.ID)
	if !ok {
		t.Fatalf("task disappeared after move")
	}
	if moved.Status != models.StatusInProgress {
		t.Fatalf("status after ] = %q, want in-progress", moved.Status)
	}
	if m.boardCol != 1 {
		t.Fatalf("boardCol did not follow the moved task, got %d", m.boardCol)
	}
	focused, ok := m.focusedBoardTask()
	if !ok || focused.ID != task.ID {
		t.Fatalf("cursor lost the moved task")
	}
}

func TestMoveTaskBackward(t *testing.T) {
	m := setupTestDashboard(t)
	m.boardCol = 1

	task, ok := m.focusedBoardTask()
	if !ok {
		t.Fatalf("no focused task in in-progress column")
	}
	m = pressKey(t, m, runeKey("["))

	moved, _ := m.snap.Task(task.ID)
	if moved.Status != models.StatusTodo {
		t.Fatalf("status after [ = %q, want todo", moved.Status)
	}
}

func TestMoveRejectedAtBoardEdge(t *testing.T) {
	m := setupTestDashboard(t)

	task, _ := m.focusedBoardTask()
	m = pressKey(t, m, runeKey("["))

	unchanged, _ := m.snap.Task(task.ID)
	if unchanged.Status != models.StatusTodo {
		t.Fatalf("task moved despite being in the leftmost column")
	}
}

func TestDeleteTaskRequiresConfirmation(t *testing.T) {
	m := setupTestDashboard(t)

	task, _ := m.focusedBoardTask()
	m = pressKey(t, m, runeKey("d"))
	if m.modal == nil || m.modal.Type() != ModalConfirm {
		t.Fatalf("expected confirm modal after d")
	}

	// Declining keeps the task.
	m = pressKey(t, m, runeKey("n"))
	if m.modal != nil {
		t.Fatalf("modal still open after decline")
	}
	if _, ok := m.snap.Task(task.ID); !ok {
		t.Fatalf("task deleted despite decline")
	}

	m = pressKey(t, m, runeKey("d"))
	m = pressKey(t, m, runeKey("y"))
	if _, ok := m.snap.Task(task.ID); ok {
		t.Fatalf("task still present after confirmed delete")
	}
}

func TestNewTaskOpensCreateModal(t *testing.T) {
	m := setupTestDashboard(t)

	m = pressKey(t, m, runeKey("n"))
	s, ok := m.modal.(*TaskEditState)
	if !ok {
		t.Fatalf("expected task edit modal, got %T", m.modal)
	}
	if s.taskID != "" {
		t.Fatalf("create modal carries a task id: %q", s.taskID)
	}
}

func TestEditOpensModalWithTaskValues(t *testing.T) {
	m := setupTestDashboard(t)

	task, _ := m.focusedBoardTask()
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	s, ok := m.modal.(*TaskEditState)
	if !ok {
		t.Fatalf("expected task edit modal, got %T", m.modal)
	}
	if s.taskID != task.ID {
		t.Fatalf("modal task id = %q, want %q", s.taskID, task.ID)
	}
	if got := s.inputs[fieldTitle].Value(); got != task.Title {
		t.Fatalf("modal title = %q, want %q", got, task.Title)
	}
}
