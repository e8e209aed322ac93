package store

import (
	"time"

	"github.com/mhartveld/sprintdeck/internal/models"
)

// TaskSeed carries the caller-supplied fields of a new task. Identity
// and creation timestamp are assigned by the store. Field contents are
// not validated.
type TaskSeed struct {
	Title       string
	Description string
	Status      models.Status
	Assignees   []string
	Subtasks    []SubtaskSeed
	SprintID    string
	Priority    models.Priority
	StartDate   time.Time
	EndDate     time.Time
}

// SubtaskSeed carries the caller-supplied fields of a new subtask.
type SubtaskSeed struct {
	Title     string
	Completed bool
}

// TaskPatch is a partial task update. Nil fields are left unchanged.
// Identity and CreatedAt cannot be patched. Assignees and subtasks
// have dedicated operations.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *models.Status
	SprintID    *string
	Priority    *models.Priority
	StartDate   *time.Time
	EndDate     *time.Time
}

// SubtaskPatch is a partial subtask update. Nil fields are left
// unchanged.
type SubtaskPatch struct {
	Title     *string
	Completed *bool
}

// AddTask appends a new task and returns its assigned id.
func (s *Store) AddTask(seed TaskSeed) string {
	task := models.Task{
		ID:          newID(),
		Title:       seed.Title,
		Description: seed.Description,
		Status:      seed.Status,
		SprintID:    seed.SprintID,
		Priority:    seed.Priority,
		StartDate:   seed.StartDate,
		EndDate:     seed.EndDate,
		CreatedAt:   time.Now(),
	}
	if len(seed.Assignees) > 0 {
		task.Assignees = append([]string(nil), seed.Assignees...)
	}
	for _, sub := range seed.Subtasks {
		task.Subtasks = append(task.Subtasks, models.Subtask{
			ID:        newID(),
			Title:     sub.Title,
			Completed: sub.Completed,
		})
	}
	s.tasks = append(s.tasks, task)
	return task.ID
}

// UpdateTask merges the patch into the matching task. No-op if the id
// is unknown.
func (s *Store) UpdateTask(id string, patch TaskPatch) {
	t := s.findTask(id)
	if t == nil {
		return
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.SprintID != nil {
		t.SprintID = *patch.SprintID
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.StartDate != nil {
		t.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = *patch.EndDate
	}
}

// DeleteTask removes the task. Subtasks are embedded, so no cascade is
// needed. No-op if the id is unknown.
func (s *Store) DeleteTask(id string) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// MoveTask changes only the task's status. This is the drag-and-drop
// entry point for the board.
func (s *Store) MoveTask(id string, status models.Status) {
	s.UpdateTask(id, TaskPatch{Status: &status})
}

// AddSubtask appends a subtask to the task's checklist and returns the
// subtask id, or "" when the task id is unknown.
func (s *Store) AddSubtask(taskID, title string) string {
	t := s.findTask(taskID)
	if t == nil {
		return ""
	}
	sub := models.Subtask{ID: newID(), Title: title}
	t.Subtasks = append(t.Subtasks, sub)
	return sub.ID
}

// UpdateSubtask merges the patch into one subtask of the task. No-op
// when either id is unknown.
func (s *Store) UpdateSubtask(taskID, subID string, patch SubtaskPatch) {
	t := s.findTask(taskID)
	if t == nil {
		return
	}
	for i := range t.Subtasks {
		if t.Subtasks[i].ID != subID {
			continue
		}
		if patch.Title != nil {
			t.Subtasks[i].Title = *patch.Title
		}
		if patch.Completed != nil {
			t.Subtasks[i].Completed = *patch.Completed
		}
		return
	}
}

// DeleteSubtask removes one subtask from the task's checklist. No-op
// when either id is unknown.
func (s *Store) DeleteSubtask(taskID, subID string) {
	t := s.findTask(taskID)
	if t == nil {
		return
	}
	for i, sub := range t.Subtasks {
		if sub.ID == subID {
			t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
			return
		}
	}
}

func (s *Store) findTask(id string) *models.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}
