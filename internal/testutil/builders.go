// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"fmt"
	"time"

	"github.com/mhartveld/sprintdeck/internal/models"
)

var fixtureDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

// Day returns the fixture date n days after the fixture origin.
func Day(n int) time.Time {
	return fixtureDay.AddDate(0, 0, n)
}

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

var taskSeq int

func NewTask() *TaskBuilder {
	taskSeq++
	return &TaskBuilder{
		task: models.Task{
			ID:        fmt.Sprintf("task-%d", taskSeq),
			Title:     "Test Task",
			Status:    models.StatusTodo,
			Priority:  models.PriorityMedium,
			StartDate: Day(0),
			EndDate:   Day(1),
			CreatedAt: fixtureDay,
		},
	}
}

func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithDescription(d string) *TaskBuilder {
	b.task.Description = d
	return b
}

func (b *TaskBuilder) WithStatus(s models.Status) *TaskBuilder {
	b.task.Status = s
	return b
}

func (b *TaskBuilder) WithPriority(p models.Priority) *TaskBuilder {
	b.task.Priority = p
	return b
}

func (b *TaskBuilder) WithSprint(id string) *TaskBuilder {
	b.task.SprintID = id
	return b
}

func (b *TaskBuilder) WithAssignees(ids ...string) *TaskBuilder {
	b.task.Assignees = ids
	return b
}

func (b *TaskBuilder) WithDates(start, end time.Time) *TaskBuilder {
	b.task.StartDate = start
	b.task.EndDate = end
	return b
}

func (b *TaskBuilder) WithSubtasks(subs ...models.Subtask) *TaskBuilder {
	b.task.Subtasks = subs
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// MemberBuilder provides a fluent API for creating test team members.
type MemberBuilder struct {
	member models.TeamMember
}

var memberSeq int

func NewMember() *MemberBuilder {
	memberSeq++
	return &MemberBuilder{
		member: models.TeamMember{
			ID:     fmt.Sprintf("member-%d", memberSeq),
			Name:   "Test Member",
			Email:  "member@example.com",
			Avatar: "TM",
			Color:  "33",
		},
	}
}

func (b *MemberBuilder) WithID(id string) *MemberBuilder {
	b.member.ID = id
	return b
}

func (b *MemberBuilder) WithName(name string) *MemberBuilder {
	b.member.Name = name
	return b
}

func (b *MemberBuilder) Build() models.TeamMember {
	return b.member
}

// SprintBuilder provides a fluent API for creating test sprints.
type SprintBuilder struct {
	sprint models.Sprint
}

var sprintSeq int

func NewSprint() *SprintBuilder {
	sprintSeq++
	return &SprintBuilder{
		sprint: models.Sprint{
			ID:        fmt.Sprintf("sprint-%d", sprintSeq),
			Name:      "Test Sprint",
			StartDate: Day(0),
			EndDate:   Day(6),
		},
	}
}

func (b *SprintBuilder) WithID(id string) *SprintBuilder {
	b.sprint.ID = id
	return b
}

func (b *SprintBuilder) WithName(name string) *SprintBuilder {
	b.sprint.Name = name
	return b
}

func (b *SprintBuilder) WithDates(start, end time.Time) *SprintBuilder {
	b.sprint.StartDate = start
	b.sprint.EndDate = end
	return b
}

func (b *SprintBuilder) Active() *SprintBuilder {
	b.sprint.IsActive = true
	return b
}

func (b *SprintBuilder) Build() models.Sprint {
	return b.sprint
}
