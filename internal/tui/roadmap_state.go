package tui

import (
	"time"

	"github.com/google/uuid"
	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/schedule"
	"github.com/mhartveld/sprintdeck/internal/store"
)

// RoadmapState owns the roadmap view's epics. Epics never enter the
// domain store; their task references are weak and may dangle after a
// task is deleted.
type RoadmapState struct {
	epics  []models.Epic
	window schedule.Window
	cursor int
	drag   schedule.DragState
	delta  int
}

// NewRoadmapState builds the roadmap's twelve-week window anchored to
// the current week's Monday.
func NewRoadmapState(now time.Time) *RoadmapState {
	return &RoadmapState{
		window: schedule.NewWindow(schedule.StartOfWeek(now), config.RoadmapTotalDays),
	}
}

// SeedEpics installs the startup epics, wiring their weak task
// references to the seeded task ids.
func (r *RoadmapState) SeedEpics(now time.Time, ids store.SeedIDs) {
	week := schedule.StartOfWeek(now)
	taskRef := func(i int) []string {
		if i < len(ids.Tasks) {
			return []string{ids.Tasks[i]}
		}
		return nil
	}
	r.epics = nil
	r.addSeeded(models.Epic{
		Title:       "User Authentication",
		Description: "Complete user auth system with login, signup, and password recovery",
		StartDate:   week,
		EndDate:     schedule.AddDays(week, 14),
		TaskIDs:     taskRef(1),
	})
	dash := models.Epic{
		Title:       "Dashboard Development",
		Description: "Build main dashboard with analytics and widgets",
		StartDate:   schedule.AddDays(week, 7),
		EndDate:     schedule.AddDays(week, 28),
	}
	if len(ids.Tasks) > 2 {
		dash.TaskIDs = []string{ids.Tasks[0], ids.Tasks[2]}
	}
	r.addSeeded(dash)
	r.addSeeded(models.Epic{
		Title:       "API Integration",
		Description: "Connect all frontend components with backend APIs",
		StartDate:   schedule.AddDays(week, 21),
		EndDate:     schedule.AddDays(week, 42),
		TaskIDs:     taskRef(3),
	})
}

func (r *RoadmapState) addSeeded(e models.Epic) {
	e.ID = uuid.NewString()
	e.Color = config.EpicPalette[len(r.epics)%len(config.EpicPalette)]
	r.epics = append(r.epics, e)
}

// Epics returns the epics in insertion order.
func (r *RoadmapState) Epics() []models.Epic {
	return r.epics
}

// Window returns the roadmap's grid window.
func (r *RoadmapState) Window() schedule.Window {
	return r.window
}

// AddEpic creates an epic with the next palette color and returns its
// id. An empty start range defaults to two weeks from today.
func (r *RoadmapState) AddEpic(title, description string, start, end time.Time) string {
	if start.IsZero() {
		start = schedule.Normalize(time.Now())
	}
	if end.IsZero() {
		end = schedule.AddDays(start, config.DefaultEpicSpanDays)
	}
	e := models.Epic{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Color:       config.EpicPalette[len(r.epics)%len(config.EpicPalette)],
		StartDate:   schedule.Normalize(start),
		EndDate:     schedule.Normalize(end),
	}
	r.epics = append(r.epics, e)
	return e.ID
}

// UpdateEpic rewrites an epic's editable fields. No-op if the id is
// unknown. Color and task references are kept.
func (r *RoadmapState) UpdateEpic(id, title, description string, start, end time.Time) {
	for i := range r.epics {
		if r.epics[i].ID != id {
			continue
		}
		r.epics[i].Title = title
		r.epics[i].Description = description
		if !start.IsZero() {
			r.epics[i].StartDate = schedule.Normalize(start)
		}
		if !end.IsZero() {
			r.epics[i].EndDate = schedule.Normalize(end)
		}
		return
	}
}

// DeleteEpic removes an epic. Task references are weak, so nothing
// else changes.
func (r *RoadmapState) DeleteEpic(id string) {
	for i, e := range r.epics {
		if e.ID == id {
			r.epics = append(r.epics[:i], r.epics[i+1:]...)
			if r.cursor >= len(r.epics) && r.cursor > 0 {
				r.cursor--
			}
			return
		}
	}
}

// Epic returns the epic with the given id.
func (r *RoadmapState) Epic(id string) (models.Epic, bool) {
	for _, e := range r.epics {
		if e.ID == id {
			return e, true
		}
	}
	return models.Epic{}, false
}

// Grab starts a move/resize gesture on the epic under the cursor.
func (r *RoadmapState) Grab(mode schedule.DragMode) bool {
	if r.cursor >= len(r.epics) {
		return false
	}
	e := r.epics[r.cursor]
	r.drag.Begin(e.ID, mode, e.StartDate, e.EndDate)
	r.delta = 0
	return true
}

// Nudge shifts the in-flight gesture by deltaDays and applies the
// recomputed range to the grabbed epic. No-op when idle.
func (r *RoadmapState) Nudge(deltaDays int) {
	d, ok := r.drag.Active()
	if !ok {
		return
	}
	r.delta += deltaDays
	start, end := d.Apply(r.delta)
	for i := range r.epics {
		if r.epics[i].ID == d.ItemID {
			r.epics[i].StartDate = start
			r.epics[i].EndDate = end
			return
		}
	}
}

// Release ends the gesture, keeping the applied range.
func (r *RoadmapState) Release() {
	r.drag.End()
	r.delta = 0
}

// Cancel ends the gesture and restores the original range.
func (r *RoadmapState) Cancel() {
	d, ok := r.drag.Active()
	if ok {
		for i := range r.epics {
			if r.epics[i].ID == d.ItemID {
				r.epics[i].StartDate = d.OriginalStart
				r.epics[i].EndDate = d.OriginalEnd
				break
			}
		}
	}
	r.drag.End()
	r.delta = 0
}

// Dragging reports whether a gesture is in flight.
func (r *RoadmapState) Dragging() bool {
	_, ok := r.drag.Active()
	return ok
}
