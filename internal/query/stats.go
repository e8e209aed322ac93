package query

import (
	"math"

	"github.com/mhartveld/sprintdeck/internal/models"
)

// StatusCounts partitions tasks by status.
func StatusCounts(tasks []models.Task) map[models.Status]int {
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// PriorityCounts partitions tasks by priority.
func PriorityCounts(tasks []models.Task) map[models.Priority]int {
	counts := make(map[models.Priority]int, len(models.Priorities))
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return counts
}

// SprintStats are the headline numbers of the reports view.
type SprintStats struct {
	Total        int
	Todo         int
	InProgress   int
	Done         int
	HighPriority int
	Unassigned   int
}

// Stats aggregates the headline numbers over a task list.
func Stats(tasks []models.Task) SprintStats {
	var s SprintStats
	s.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case models.StatusTodo:
			s.Todo++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusDone:
			s.Done++
		}
		if t.Priority == models.PriorityHigh {
			s.HighPriority++
		}
		if len(t.Assignees) == 0 {
			s.Unassigned++
		}
	}
	return s
}

// MemberLoad is one member's share of a task list.
type MemberLoad struct {
	Member     models.TeamMember
	Total      int
	Todo       int
	InProgress int
	Done       int
}

// Workload computes per-member task counts over a task list, one entry
// per member in member order. Tasks with several assignees count once
// for each of them.
func Workload(members []models.TeamMember, tasks []models.Task) []MemberLoad {
	loads := make([]MemberLoad, len(members))
	for i, m := range members {
		loads[i].Member = m
		for _, t := range tasks {
			if !contains(t.Assignees, m.ID) {
				continue
			}
			loads[i].Total++
			switch t.Status {
			case models.StatusTodo:
				loads[i].Todo++
			case models.StatusInProgress:
				loads[i].InProgress++
			case models.StatusDone:
				loads[i].Done++
			}
		}
	}
	return loads
}

// CompletionPercent is the share of done tasks rounded to the nearest
// whole percent. Zero when total is zero, never a division by zero.
func CompletionPercent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// SubtaskProgress returns a task's completed and total subtask counts
// for the card badge.
func SubtaskProgress(t models.Task) (done, total int) {
	for _, sub := range t.Subtasks {
		if sub.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}
