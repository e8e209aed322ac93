package store

import "github.com/mhartveld/sprintdeck/internal/models"

// TaskRepository defines task and subtask operations.
type TaskRepository interface {
	AddTask(seed TaskSeed) string
	UpdateTask(id string, patch TaskPatch)
	DeleteTask(id string)
	MoveTask(id string, status models.Status)
	AddSubtask(taskID, title string) string
	UpdateSubtask(taskID, subID string, patch SubtaskPatch)
	DeleteSubtask(taskID, subID string)
}

// TeamRepository defines team-member operations.
type TeamRepository interface {
	AddTeamMember(seed MemberSeed) string
	UpdateTeamMember(id string, patch MemberPatch)
	RemoveTeamMember(id string)
	AssignMember(taskID, memberID string)
	UnassignMember(taskID, memberID string)
}

// SprintRepository defines sprint operations.
type SprintRepository interface {
	AddSprint(seed SprintSeed) string
	SetActiveSprint(id string)
}

// Repository combines every store operation plus snapshot access. The
// TUI depends on this interface so tests can substitute a fake.
type Repository interface {
	TaskRepository
	TeamRepository
	SprintRepository
	Snapshot() Snapshot
	ActiveSprint() (models.Sprint, bool)
}

var _ Repository = (*Store)(nil)
