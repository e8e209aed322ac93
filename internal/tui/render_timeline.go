package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/schedule"
)

func (m DashboardModel) renderTimeline() string {
	sp, ok := m.snap.ActiveSprint()
	if !ok {
		return m.theme.Dim.Render("No active sprint. Activate one in the Backlog view.")
	}
	window := schedule.RangeWindow(sp.StartDate, sp.EndDate)
	tasks := m.sprintTasks()
	drag, dragging := m.tlDrag.Active()

	var b strings.Builder
	b.WriteString(m.sectionTitle(fmt.Sprintf("%s  %s – %s", sp.Name,
		sp.StartDate.Format("Jan 2"), sp.EndDate.Format("Jan 2"))))
	b.WriteString("\n\n")

	// Day header row aligned with the bar grid.
	b.WriteString(strings.Repeat(" ", config.SidebarWidth))
	today := schedule.Normalize(time.Now())
	for i := 0; i < window.TotalDays; i++ {
		day := window.Day(i)
		label := padLabel(day.Format("Mon 2"), config.TimelineDayWidth)
		if schedule.SameDay(day, today) {
			label = m.theme.Today.Render(label)
		} else {
			label = m.theme.Dim.Render(label)
		}
		b.WriteString(label)
	}
	b.WriteString("\n")

	for row, t := range tasks {
		focused := row == m.tlRow
		start, end := t.StartDate, t.EndDate
		if dragging && drag.ItemID == t.ID {
			start, end = drag.Apply(m.tlDelta)
		}

		label := truncateLabel(t.Title, config.SidebarWidth-3)
		switch {
		case dragging && drag.ItemID == t.ID:
			label = m.theme.Highlight.Render("◆ " + label)
		case focused:
			label = m.theme.Focused.Render("▸ " + label)
		default:
			label = "  " + label
		}
		b.WriteString(padLabel(label, config.SidebarWidth))

		bar := window.Bar(config.TimelineDayWidth, config.BarGutter, start, end)
		style := m.theme.statusStyle(string(t.Status))
		b.WriteString(strings.Repeat(" ", bar.Offset))
		b.WriteString(style.Render(strings.Repeat("█", bar.Width)))
		b.WriteString("\n")
	}
	if len(tasks) == 0 {
		b.WriteString(m.theme.Dim.Render("No tasks in this sprint."))
		b.WriteString("\n")
	}

	if dragging {
		b.WriteString("\n")
		mode := "moving"
		switch drag.Mode {
		case schedule.DragResizeStart:
			mode = "resizing start"
		case schedule.DragResizeEnd:
			mode = "resizing end"
		}
		start, end := drag.Apply(m.tlDelta)
		b.WriteString(m.theme.Highlight.Render(fmt.Sprintf("%s: %s – %s",
			mode, start.Format("Jan 2"), end.Format("Jan 2"))))
	}
	return b.String()
}
