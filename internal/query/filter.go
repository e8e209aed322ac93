// Package query provides the derived views computed over store
// snapshots: filtered task lists and the aggregate statistics behind
// the board header, team, and reports views. Every function is pure:
// same snapshot and parameters, same result.
package query

import (
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/store"
	"github.com/mhartveld/sprintdeck/internal/util"
)

// Sentinel filter values matching everything.
const (
	StatusAll models.Status = "all"
	MemberAll string        = "all"
)

// Params are the three conjunctive task filters: a free-text query, a
// status, and an assigned member. Zero values for Status and Member are
// treated as the match-all sentinels.
type Params struct {
	Query  string
	Status models.Status
	Member string
}

// Filter returns every task matching all three predicates, in the
// snapshot's original order. The text query is a case-insensitive
// substring match against the title, the description, or any assigned
// member's display name.
func Filter(snap store.Snapshot, p Params) []models.Task {
	if p.Status == "" {
		p.Status = StatusAll
	}
	if p.Member == "" {
		p.Member = MemberAll
	}

	var out []models.Task
	for _, task := range snap.Tasks {
		if !matchesText(snap, task, p.Query) {
			continue
		}
		if p.Status != StatusAll && task.Status != p.Status {
			continue
		}
		if p.Member != MemberAll && !contains(task.Assignees, p.Member) {
			continue
		}
		out = append(out, task)
	}
	return out
}

// InSprint narrows a task list to one sprint. An empty sprintID keeps
// every task.
func InSprint(tasks []models.Task, sprintID string) []models.Task {
	if sprintID == "" {
		return tasks
	}
	var out []models.Task
	for _, t := range tasks {
		if t.SprintID == sprintID {
			out = append(out, t)
		}
	}
	return out
}

func matchesText(snap store.Snapshot, task models.Task, q string) bool {
	if q == "" {
		return true
	}
	if util.ContainsFold(task.Title, q) || util.ContainsFold(task.Description, q) {
		return true
	}
	for _, id := range task.Assignees {
		if m, ok := snap.Member(id); ok && util.ContainsFold(m.Name, q) {
			return true
		}
	}
	return false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
