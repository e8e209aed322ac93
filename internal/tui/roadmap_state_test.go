package tui

import (
	"testing"
	"time"

	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/schedule"
	"github.com/mhartveld/sprintdeck/internal/store"
)

var roadmapNow = time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC) // a Wednesday

func newTestRoadmap() *RoadmapState {
	return NewRoadmapState(roadmapNow)
}

func TestRoadmapWindowSpansTwelveWeeksFromMonday(t *testing.T) {
	r := newTestRoadmap()
	win := r.Window()

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !win.Origin.Equal(monday) {
		t.Fatalf("window origin = %v, want %v", win.Origin, monday)
	}
	if win.TotalDays != config.RoadmapTotalDays {
		t.Fatalf("window days = %d, want %d", win.TotalDays, config.RoadmapTotalDays)
	}
}

func TestSeedEpicsLinkSeededTasks(t *testing.T) {
	_, ids := store.Seeded()
	r := newTestRoadmap()
	r.SeedEpics(roadmapNow, ids)

	epics := r.Epics()
	if len(epics) != 3 {
		t.Fatalf("seeded %d epics, want 3", len(epics))
	}
	if len(epics[1].TaskIDs) != 2 {
		t.Fatalf("second epic links %d tasks, want 2", len(epics[1].TaskIDs))
	}
	for i, e := range epics {
		if e.ID == "" {
			t.Fatalf("epic %d has no id", i)
		}
		if e.Color != config.EpicPalette[i%len(config.EpicPalette)] {
			t.Fatalf("epic %d color = %q, want palette order", i, e.Color)
		}
	}
}

func TestAddEpicAssignsPaletteColorsInOrder(t *testing.T) {
	r := newTestRoadmap()

	var colors []string
	for i := 0; i < len(config.EpicPalette)+1; i++ {
		id := r.AddEpic("Epic", "", time.Time{}, time.Time{})
		e, ok := r.Epic(id)
		if !ok {
			t.Fatalf("epic %d not found after add", i)
		}
		colors = append(colors, e.Color)
	}
	for i, c := range colors {
		if c != config.EpicPalette[i%len(config.EpicPalette)] {
			t.Fatalf("epic %d color = %q, want %q", i, c, config.EpicPalette[i%len(config.EpicPalette)])
		}
	}
	// The palette wraps: the extra epic reuses the first color.
	if colors[len(config.EpicPalette)] != colors[0] {
		t.Fatalf("palette did not wrap")
	}
}

func TestAddEpicDefaultsToTwoWeekSpan(t *testing.T) {
	r := newTestRoadmap()
	id := r.AddEpic("Unplanned", "", time.Time{}, time.Time{})
	e, _ := r.Epic(id)

	if got := schedule.DaysBetween(e.StartDate, e.EndDate); got != config.DefaultEpicSpanDays {
		t.Fatalf("default span = %d days, want %d", got, config.DefaultEpicSpanDays)
	}
}

func TestUpdateEpicKeepsColorAndLinks(t *testing.T) {
	_, ids := store.Seeded()
	r := newTestRoadmap()
	r.SeedEpics(roadmapNow, ids)

	e := r.Epics()[1]
	r.UpdateEpic(e.ID, "Renamed", "new description", time.Time{}, time.Time{})

	got, _ := r.Epic(e.ID)
	if got.Title != "Renamed" || got.Description != "new description" {
		t.Fatalf("update did not apply: %+v", got)
	}
	if got.Color != e.Color {
		t.Fatalf("update changed color")
	}
	if len(got.TaskIDs) != len(e.TaskIDs) {
		t.Fatalf("update dropped task links")
	}
	if !got.StartDate.Equal(e.StartDate) {
		t.Fatalf("zero start date overwrote the existing one")
	}
}

func TestUpdateEpicUnknownIDIsNoop(t *testing.T) {
	r := newTestRoadmap()
	r.AddEpic("Only", "", time.Time{}, time.Time{})
	r.UpdateEpic("missing", "x", "", time.Time{}, time.Time{})

	if r.Epics()[0].Title != "Only" {
		t.Fatalf("unknown id mutated an epic")
	}
}

func TestDeleteEpicAdjustsCursor(t *testing.T) {
	r := newTestRoadmap()
	r.AddEpic("A", "", time.Time{}, time.Time{})
	id := r.AddEpic("B", "", time.Time{}, time.Time{})
	r.cursor = 1

	r.DeleteEpic(id)
	if len(r.Epics()) != 1 {
		t.Fatalf("epic not deleted")
	}
	if r.cursor != 0 {
		t.Fatalf("cursor = %d after delete, want 0", r.cursor)
	}
}

func TestRoadmapNudgeMovesEpicPreservingDuration(t *testing.T) {
	r := newTestRoadmap()
	id := r.AddEpic("Move me", "", day(0), day(13))
	r.cursor = 0

	if !r.Grab(schedule.DragMove) {
		t.Fatalf("grab failed")
	}
	r.Nudge(1)
	r.Nudge(1)
	r.Release()

	e, _ := r.Epic(id)
	if !e.StartDate.Equal(day(2)) || !e.EndDate.Equal(day(15)) {
		t.Fatalf("moved range = %v–%v, want day 2–15", e.StartDate, e.EndDate)
	}
	if r.Dragging() {
		t.Fatalf("still dragging after release")
	}
}

func TestRoadmapCancelRestoresOriginalRange(t *testing.T) {
	r := newTestRoadmap()
	id := r.AddEpic("Keep me", "", day(3), day(10))
	r.cursor = 0

	r.Grab(schedule.DragMove)
	r.Nudge(4)
	r.Cancel()

	e, _ := r.Epic(id)
	if !e.StartDate.Equal(day(3)) || !e.EndDate.Equal(day(10)) {
		t.Fatalf("cancel did not restore: %v–%v", e.StartDate, e.EndDate)
	}
	if r.Dragging() {
		t.Fatalf("still dragging after cancel")
	}
}

func TestRoadmapResizeStartRejectedAtEnd(t *testing.T) {
	r := newTestRoadmap()
	id := r.AddEpic("Rigid", "", day(3), day(5))
	r.cursor = 0

	r.Grab(schedule.DragResizeStart)
	r.Nudge(3) // would land on day 6, past the end
	r.Release()

	e, _ := r.Epic(id)
	if !e.StartDate.Equal(day(3)) || !e.EndDate.Equal(day(5)) {
		t.Fatalf("rejected resize changed the range: %v–%v", e.StartDate, e.EndDate)
	}
}

func TestRoadmapGrabWithoutEpicsFails(t *testing.T) {
	r := newTestRoadmap()
	if r.Grab(schedule.DragMove) {
		t.Fatalf("grab succeeded with no epics")
	}
}

func day(n int) time.Time {
	return schedule.AddDays(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), n)
}
