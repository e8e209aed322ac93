package schedule

import (
	"math"
	"time"

	"github.com/mhartveld/sprintdeck/internal/util"
)

// Window is the visible span of a timeline grid: an origin day and a
// total day count. Day indices run [0, TotalDays-1].
type Window struct {
	Origin    time.Time
	TotalDays int
}

// NewWindow builds a window from an origin date and day count.
func NewWindow(origin time.Time, totalDays int) Window {
	if totalDays < 1 {
		totalDays = 1
	}
	return Window{Origin: Normalize(origin), TotalDays: totalDays}
}

// RangeWindow builds a window spanning an inclusive date range.
func RangeWindow(start, end time.Time) Window {
	return NewWindow(start, DaysBetween(start, end)+1)
}

// Day returns the normalized date at index i within the window,
// clamped into bounds.
func (w Window) Day(i int) time.Time {
	return AddDays(w.Origin, util.Clamp(i, 0, w.TotalDays-1))
}

// Bar is a horizontal placement within the grid, in the same unit the
// caller supplied (cells or pixels).
type Bar struct {
	Offset int
	Width  int
}

// Bar maps an inclusive date range onto the grid. Offset is the range
// start relative to the window origin, floored at zero; width covers
// the inclusive duration (minimum one day, so inverted ranges clamp
// here rather than failing) minus the visual gutter, and never extends
// past the window's right edge.
func (w Window) Bar(unit, gutter int, start, end time.Time) Bar {
	startOffset := DaysBetween(w.Origin, start)
	if startOffset < 0 {
		startOffset = 0
	}
	duration := DaysBetween(start, end) + 1
	if duration < 1 {
		duration = 1
	}
	width := duration * unit
	if max := (w.TotalDays - startOffset) * unit; width > max {
		width = max
	}
	if width < unit {
		width = unit
	}
	return Bar{Offset: startOffset * unit, Width: width - gutter}
}

// DayIndex converts a horizontal displacement into a day index, floored
// and clamped into the window bounds. Used for absolute positioning
// during resize.
func (w Window) DayIndex(x, unit int) int {
	return util.Clamp(x/unit, 0, w.TotalDays-1)
}

// DeltaDays converts a horizontal displacement into a signed whole-day
// delta, rounded to the nearest day. Used for move gestures.
func DeltaDays(dx, unit int) int {
	return int(math.Round(float64(dx) / float64(unit)))
}
