// Package store is the single source of truth for tasks, team members,
// and sprints. All mutation goes through named operations on Store;
// consumers read immutable snapshots. Every operation is total:
// referencing an unknown id is a documented no-op, never an error.
//
// The store is built for bubbletea's single-goroutine event loop: one
// logical writer, synchronous mutations, no locking.
package store

import "github.com/mhartveld/sprintdeck/internal/models"

// Store holds the full application state. Construct it with New or
// Seeded and pass the handle to every consumer.
type Store struct {
	tasks   []models.Task
	members []models.TeamMember
	sprints []models.Sprint
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Snapshot is the full state of the store at one point in time. The
// slices are deep copies, so a snapshot stays valid across later
// mutations and can never be used to reach store-owned memory.
type Snapshot struct {
	Tasks   []models.Task
	Members []models.TeamMember
	Sprints []models.Sprint
}

// Snapshot returns the current state as an immutable copy.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Tasks:   make([]models.Task, len(s.tasks)),
		Members: make([]models.TeamMember, len(s.members)),
		Sprints: make([]models.Sprint, len(s.sprints)),
	}
	for i, t := range s.tasks {
		snap.Tasks[i] = t.Clone()
	}
	copy(snap.Members, s.members)
	copy(snap.Sprints, s.sprints)
	return snap
}

// ActiveSprint returns the sprint currently flagged active, if any.
func (s *Store) ActiveSprint() (models.Sprint, bool) {
	for _, sp := range s.sprints {
		if sp.IsActive {
			return sp, true
		}
	}
	return models.Sprint{}, false
}

// ActiveSprint is the snapshot-side counterpart of Store.ActiveSprint.
func (snap Snapshot) ActiveSprint() (models.Sprint, bool) {
	for _, sp := range snap.Sprints {
		if sp.IsActive {
			return sp, true
		}
	}
	return models.Sprint{}, false
}

// Member looks a team member up by id within the snapshot.
func (snap Snapshot) Member(id string) (models.TeamMember, bool) {
	for _, m := range snap.Members {
		if m.ID == id {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// Task looks a task up by id within the snapshot.
func (snap Snapshot) Task(id string) (models.Task, bool) {
	for _, t := range snap.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}
