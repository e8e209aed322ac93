package store

import (
	"time"

	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/schedule"
)

// SeedIDs captures the identities assigned to the startup dataset so
// layers outside the store (the roadmap's epic seeds) can reference
// them. Slice order follows insertion order.
type SeedIDs struct {
	Members []string
	Sprints []string
	Tasks   []string
}

// Seeded returns a store pre-populated with the fixed startup dataset:
// four team members, two week-long sprints anchored to the current
// week's Monday, and five tasks. The exact values are seed data, not a
// contract.
func Seeded() (*Store, SeedIDs) {
	s := New()
	var ids SeedIDs
	week := schedule.StartOfWeek(time.Now())

	for _, m := range []MemberSeed{
		{Name: "Alex Johnson", Email: "alex@example.com"},
		{Name: "Sarah Miller", Email: "sarah@example.com"},
		{Name: "Mike Chen", Email: "mike@example.com"},
		{Name: "Emily Davis", Email: "emily@example.com"},
	} {
		ids.Members = append(ids.Members, s.AddTeamMember(m))
	}

	ids.Sprints = append(ids.Sprints, s.AddSprint(SprintSeed{
		Name:      "Sprint 1",
		StartDate: week,
		EndDate:   schedule.AddDays(week, 6),
		IsActive:  true,
	}))
	ids.Sprints = append(ids.Sprints, s.AddSprint(SprintSeed{
		Name:      "Sprint 2",
		StartDate: schedule.AddDays(week, 7),
		EndDate:   schedule.AddDays(week, 13),
	}))

	for _, t := range []TaskSeed{
		{
			Title:       "Design System Setup",
			Description: "Create and document the design system including colors, typography, and components.",
			Status:      models.StatusDone,
			Assignees:   []string{ids.Members[0], ids.Members[1]},
			Subtasks: []SubtaskSeed{
				{Title: "Define color palette", Completed: true},
				{Title: "Setup typography", Completed: true},
			},
			SprintID:  ids.Sprints[0],
			Priority:  models.PriorityHigh,
			StartDate: week,
			EndDate:   schedule.AddDays(week, 1),
		},
		{
			Title:       "User Authentication",
			Description: "Implement user login, registration, and password recovery.",
			Status:      models.StatusInProgress,
			Assignees:   []string{ids.Members[2]},
			Subtasks: []SubtaskSeed{
				{Title: "Login form", Completed: true},
				{Title: "Registration flow"},
				{Title: "Password reset"},
			},
			SprintID:  ids.Sprints[0],
			Priority:  models.PriorityHigh,
			StartDate: schedule.AddDays(week, 1),
			EndDate:   schedule.AddDays(week, 3),
		},
		{
			Title:       "Dashboard Layout",
			Description: "Build the main dashboard with sidebar navigation and header.",
			Status:      models.StatusInProgress,
			Assignees:   []string{ids.Members[0], ids.Members[3]},
			Subtasks: []SubtaskSeed{
				{Title: "Sidebar component", Completed: true},
				{Title: "Header component"},
			},
			SprintID:  ids.Sprints[0],
			Priority:  models.PriorityMedium,
			StartDate: schedule.AddDays(week, 2),
			EndDate:   schedule.AddDays(week, 4),
		},
		{
			Title:       "API Integration",
			Description: "Connect frontend with backend APIs.",
			Status:      models.StatusTodo,
			Assignees:   []string{ids.Members[1], ids.Members[2]},
			SprintID:    ids.Sprints[0],
			Priority:    models.PriorityMedium,
			StartDate:   schedule.AddDays(week, 4),
			EndDate:     schedule.AddDays(week, 6),
		},
		{
			Title:       "Performance Optimization",
			Description: "Optimize bundle size and loading performance.",
			Status:      models.StatusTodo,
			SprintID:    ids.Sprints[1],
			Priority:    models.PriorityLow,
			StartDate:   schedule.AddDays(week, 7),
			EndDate:     schedule.AddDays(week, 9),
		},
	} {
		ids.Tasks = append(ids.Tasks, s.AddTask(t))
	}

	return s, ids
}
