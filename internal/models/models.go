package models

import "time"

// Status enumerates the board columns a task can occupy.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in board-column order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label returns the human-readable form of a status.
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Priority enumerates task urgency levels.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Label returns the human-readable form of a priority.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return string(p)
}

// TeamMember represents a person tasks can be assigned to.
type TeamMember struct {
	ID     string
	Name   string
	Email  string
	Avatar string // two-letter initials shown on cards
	Color  string // palette entry assigned by the store
}

// Subtask is a checklist item embedded in a task. It is only ever
// addressed through its owning task.
type Subtask struct {
	ID        string
	Title     string
	Completed bool
}

// Task is the unit of work on the board.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Assignees   []string // TeamMember IDs, no duplicates
	Subtasks    []Subtask
	SprintID    string
	Priority    Priority
	StartDate   time.Time
	EndDate     time.Time // inclusive
	CreatedAt   time.Time // immutable once set
}

// Clone returns a deep copy so snapshot consumers never alias
// store-owned slices.
func (t Task) Clone() Task {
	c := t
	if t.Assignees != nil {
		c.Assignees = append([]string(nil), t.Assignees...)
	}
	if t.Subtasks != nil {
		c.Subtasks = append([]Subtask(nil), t.Subtasks...)
	}
	return c
}

// Sprint is a time-boxed period grouping tasks. At most one sprint is
// active at a time; the store enforces this.
type Sprint struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time // inclusive
	IsActive  bool
}

// Epic is a roadmap-level grouping with its own date range and color.
// Epics live in the roadmap view's local state, never in the store;
// TaskIDs are weak references and may dangle after a task is deleted.
type Epic struct {
	ID          string
	Title       string
	Description string
	Color       string
	StartDate   time.Time
	EndDate     time.Time // inclusive
	TaskIDs     []string
}
