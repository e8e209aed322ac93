package store

import (
	"testing"
	"time"
)

func TestSetActiveSprintIsExclusive(t *testing.T) {
	s := New()
	a := s.AddSprint(SprintSeed{Name: "Sprint 1", IsActive: true})
	b := s.AddSprint(SprintSeed{Name: "Sprint 2"})

	s.SetActiveSprint(b)

	snap := s.Snapshot()
	active := 0
	for _, sp := range snap.Sprints {
		if sp.IsActive {
			active++
			if sp.ID != b {
				t.Fatalf("active sprint = %s, want %s", sp.ID, b)
			}
		}
	}
	if active != 1 {
		t.Fatalf("active count = %d, want 1", active)
	}
	_ = a
}

func TestSetActiveSprintUnknownIDDeactivatesAll(t *testing.T) {
	s := New()
	s.AddSprint(SprintSeed{Name: "Sprint 1", IsActive: true})
	s.SetActiveSprint("nope")
	if _, ok := s.ActiveSprint(); ok {
		t.Fatalf("expected no active sprint after unknown id")
	}
}

func TestAddActiveSprintDeactivatesOthers(t *testing.T) {
	s := New()
	s.AddSprint(SprintSeed{Name: "Sprint 1", IsActive: true})
	b := s.AddSprint(SprintSeed{Name: "Sprint 2", IsActive: true})
	sp, ok := s.ActiveSprint()
	if !ok || sp.ID != b {
		t.Fatalf("active = %+v (%v), want sprint %s", sp, ok, b)
	}
}

func TestSprintDatesRoundTrip(t *testing.T) {
	s := New()
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)
	id := s.AddSprint(SprintSeed{Name: "Sprint 1", StartDate: start, EndDate: end})
	snap := s.Snapshot()
	if snap.Sprints[0].ID != id || !snap.Sprints[0].StartDate.Equal(start) || !snap.Sprints[0].EndDate.Equal(end) {
		t.Fatalf("sprint = %+v", snap.Sprints[0])
	}
}
