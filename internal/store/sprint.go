package store

import (
	"time"

	"github.com/mhartveld/sprintdeck/internal/models"
)

// SprintSeed carries the caller-supplied fields of a new sprint. The
// range is inclusive; start <= end is assumed, not enforced.
type SprintSeed struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
}

// AddSprint appends a new sprint and returns its assigned id. Seeding
// a sprint as active deactivates every other sprint, keeping the
// exclusive-selection invariant.
func (s *Store) AddSprint(seed SprintSeed) string {
	sp := models.Sprint{
		ID:        newID(),
		Name:      seed.Name,
		StartDate: seed.StartDate,
		EndDate:   seed.EndDate,
	}
	s.sprints = append(s.sprints, sp)
	if seed.IsActive {
		s.SetActiveSprint(sp.ID)
	}
	return sp.ID
}

// SetActiveSprint flags exactly the matching sprint active and every
// other sprint inactive. An unknown id therefore leaves no sprint
// active; callers treating that as an error must check the id first.
func (s *Store) SetActiveSprint(id string) {
	for i := range s.sprints {
		s.sprints[i].IsActive = s.sprints[i].ID == id
	}
}
