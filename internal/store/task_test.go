package store

import (
	"testing"
	"time"

	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/util"
)

func TestAddTaskAssignsIdentityAndTimestamp(t *testing.T) {
	s := New()
	before := time.Now()
	id := s.AddTask(TaskSeed{Title: "Ship it", Status: models.StatusTodo})
	if id == "" {
		t.Fatalf("AddTask returned empty id")
	}
	task, ok := s.Snapshot().Task(id)
	if !ok {
		t.Fatalf("task %s not found after add", id)
	}
	if task.CreatedAt.Before(before) {
		t.Fatalf("CreatedAt = %v, want >= %v", task.CreatedAt, before)
	}

	other := s.AddTask(TaskSeed{Title: "Ship it again"})
	if other == id {
		t.Fatalf("two tasks share id %s", id)
	}
}

func TestUpdateTaskMergesPartialFields(t *testing.T) {
	s := New()
	id := s.AddTask(TaskSeed{Title: "Draft", Description: "v1", Status: models.StatusTodo, Priority: models.PriorityLow})
	created, _ := s.Snapshot().Task(id)

	s.UpdateTask(id, TaskPatch{
		Title:  util.Ptr("Final"),
		Status: util.Ptr(models.StatusDone),
	})

	task, _ := s.Snapshot().Task(id)
	if task.Title != "Final" || task.Status != models.StatusDone {
		t.Fatalf("patched task = %+v", task)
	}
	if task.Description != "v1" || task.Priority != models.PriorityLow {
		t.Fatalf("unpatched fields changed: %+v", task)
	}
	if !task.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt changed under update")
	}
}

func TestUpdateTaskUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.AddTask(TaskSeed{Title: "Only"})
	s.UpdateTask("nope", TaskPatch{Title: util.Ptr("Hijacked")})
	snap := s.Snapshot()
	if len(snap.Tasks) != 1 || snap.Tasks[0].Title != "Only" {
		t.Fatalf("unknown-id update mutated state: %+v", snap.Tasks)
	}
}

func TestDeleteTask(t *testing.T) {
	s := New()
	a := s.AddTask(TaskSeed{Title: "a"})
	b := s.AddTask(TaskSeed{Title: "b"})
	s.DeleteTask(a)
	snap := s.Snapshot()
	if len(snap.Tasks) != 1 || snap.Tasks[0].ID != b {
		t.Fatalf("Tasks = %+v, want only %s", snap.Tasks, b)
	}
	s.DeleteTask("nope") // no-op
	if len(s.Snapshot().Tasks) != 1 {
		t.Fatalf("unknown-id delete mutated state")
	}
}

func TestMoveTaskChangesOnlyStatus(t *testing.T) {
	s := New()
	id := s.AddTask(TaskSeed{Title: "Card", Status: models.StatusTodo, Priority: models.PriorityHigh})
	s.MoveTask(id, models.StatusInProgress)
	task, _ := s.Snapshot().Task(id)
	if task.Status != models.StatusInProgress {
		t.Fatalf("Status = %v, want in-progress", task.Status)
	}
	if task.Title != "Card" || task.Priority != models.PriorityHigh {
		t.Fatalf("MoveTask touched other fields: %+v", task)
	}
}

func TestSubtaskLifecycle(t *testing.T) {
	s := New()
	taskID := s.AddTask(TaskSeed{Title: "Parent"})
	subID := s.AddSubtask(taskID, "step one")
	if subID == "" {
		t.Fatalf("AddSubtask returned empty id")
	}

	s.UpdateSubtask(taskID, subID, SubtaskPatch{Completed: util.Ptr(true)})
	task, _ := s.Snapshot().Task(taskID)
	if len(task.Subtasks) != 1 || !task.Subtasks[0].Completed {
		t.Fatalf("Subtasks = %+v, want one completed", task.Subtasks)
	}

	s.DeleteSubtask(taskID, subID)
	task, _ = s.Snapshot().Task(taskID)
	if len(task.Subtasks) != 0 {
		t.Fatalf("Subtasks = %+v, want empty", task.Subtasks)
	}
}

func TestSubtaskOpsUnknownTaskAreNoops(t *testing.T) {
	s := New()
	if got := s.AddSubtask("nope", "x"); got != "" {
		t.Fatalf("AddSubtask on unknown task = %q, want empty", got)
	}
	s.UpdateSubtask("nope", "sub", SubtaskPatch{Completed: util.Ptr(true)})
	s.DeleteSubtask("nope", "sub")
	if len(s.Snapshot().Tasks) != 0 {
		t.Fatalf("unknown-task subtask ops mutated state")
	}
}
