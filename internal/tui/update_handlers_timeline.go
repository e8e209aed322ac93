package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/schedule"
	"github.com/mhartveld/sprintdeck/internal/store"
	"github.com/mhartveld/sprintdeck/internal/util"
)

// Timeline gestures are keyboard driven: grab a bar (or one of its
// edges), nudge it day by day, then release or cancel. Exactly one
// gesture is in flight at a time, tracked by schedule.DragState.

func (m DashboardModel) updateTimelineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, dragging := m.tlDrag.Active(); dragging {
		return m.updateTimelineDrag(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.tlRow > 0 {
			m.tlRow--
		}
	case "down", "j":
		if m.tlRow < len(m.sprintTasks())-1 {
			m.tlRow++
		}
	case "g", " ":
		m.grabTimeline(schedule.DragMove)
	case "[":
		m.grabTimeline(schedule.DragResizeStart)
	case "]":
		m.grabTimeline(schedule.DragResizeEnd)
	case "enter", "e":
		if task, ok := m.focusedTimelineTask(); ok {
			m.modal = newTaskEditState(task)
		}
	}
	return m, nil
}

func (m *DashboardModel) grabTimeline(mode schedule.DragMode) {
	task, ok := m.focusedTimelineTask()
	if !ok {
		return
	}
	m.tlDrag.Begin(task.ID, mode, task.StartDate, task.EndDate)
	m.tlDelta = 0
}

func (m DashboardModel) updateTimelineDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	drag, _ := m.tlDrag.Active()

	switch msg.String() {
	case "left", "h":
		m.nudgeTimeline(drag, -1)
	case "right", "l":
		m.nudgeTimeline(drag, 1)
	case "enter", "g", " ":
		m.tlDrag.End()
		m.tlDelta = 0
	case "esc":
		// Restore the range captured at grab time.
		m.repo.UpdateTask(drag.ItemID, store.TaskPatch{
			StartDate: util.Ptr(drag.OriginalStart),
			EndDate:   util.Ptr(drag.OriginalEnd),
		})
		m.tlDrag.End()
		m.tlDelta = 0
		m.refresh()
	}
	return m, nil
}

// nudgeTimeline applies the accumulated day delta to the grabbed bar,
// clamped into the sprint window, and writes the recomputed range
// through the store.
func (m *DashboardModel) nudgeTimeline(drag schedule.Drag, delta int) {
	sp, ok := m.snap.ActiveSprint()
	if !ok {
		return
	}
	win := schedule.RangeWindow(sp.StartDate, sp.EndDate)

	next := m.tlDelta + delta
	if drag.Mode == schedule.DragMove {
		// Keep the whole bar inside the visible window.
		lo := -schedule.DaysBetween(win.Origin, drag.OriginalStart)
		hi := win.TotalDays - 1 - schedule.DaysBetween(win.Origin, drag.OriginalEnd)
		if hi < lo {
			hi = lo
		}
		next = util.Clamp(next, lo, hi)
	}
	m.tlDelta = next

	start, end := drag.Apply(m.tlDelta)
	m.repo.UpdateTask(drag.ItemID, store.TaskPatch{
		StartDate: util.Ptr(start),
		EndDate:   util.Ptr(end),
	})
	m.refresh()
}
