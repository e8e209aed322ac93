package schedule

import (
	"testing"
	"time"
)

var origin = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

func day(n int) time.Time { return AddDays(origin, n) }

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(origin, day(6)); got != 6 {
		t.Fatalf("DaysBetween = %d, want 6", got)
	}
	if got := DaysBetween(day(6), origin); got != -6 {
		t.Fatalf("DaysBetween reversed = %d, want -6", got)
	}
	// Time-of-day must not leak into day arithmetic.
	late := time.Date(2026, 3, 2, 23, 55, 0, 0, time.UTC)
	if got := DaysBetween(late, day(1)); got != 1 {
		t.Fatalf("DaysBetween with time-of-day = %d, want 1", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	for i := 0; i < 7; i++ {
		if got := StartOfWeek(day(i)); !got.Equal(origin) {
			t.Fatalf("StartOfWeek(day %d) = %v, want %v", i, got, origin)
		}
	}
}

func TestBarPlacement(t *testing.T) {
	w := NewWindow(origin, 7)
	unit, gutter := 12, 1

	// Two-day task starting on day 1.
	bar := w.Bar(unit, gutter, day(1), day(2))
	if bar.Offset != 12 {
		t.Fatalf("Offset = %d, want 12", bar.Offset)
	}
	if bar.Width != 2*unit-gutter {
		t.Fatalf("Width = %d, want %d", bar.Width, 2*unit-gutter)
	}

	// Start before the window floors at the origin.
	bar = w.Bar(unit, gutter, AddDays(origin, -3), day(1))
	if bar.Offset != 0 {
		t.Fatalf("Offset before origin = %d, want 0", bar.Offset)
	}

	// Single-day task still renders one unit wide.
	bar = w.Bar(unit, gutter, day(3), day(3))
	if bar.Width != unit-gutter {
		t.Fatalf("single day Width = %d, want %d", bar.Width, unit-gutter)
	}

	// Ranges running past the window clamp at the right edge.
	bar = w.Bar(unit, gutter, day(5), day(30))
	if bar.Width != 2*unit-gutter {
		t.Fatalf("clamped Width = %d, want %d", bar.Width, 2*unit-gutter)
	}

	// Inverted ranges clamp to a one-day bar instead of going negative.
	bar = w.Bar(unit, gutter, day(4), day(1))
	if bar.Width != unit-gutter {
		t.Fatalf("inverted Width = %d, want %d", bar.Width, unit-gutter)
	}
	if bar.Offset != 4*unit {
		t.Fatalf("inverted Offset = %d, want %d", bar.Offset, 4*unit)
	}
}

func TestDayIndexClamping(t *testing.T) {
	w := NewWindow(origin, 7)
	if got := w.DayIndex(30, 12); got != 2 {
		t.Fatalf("DayIndex(30) = %d, want 2", got)
	}
	if got := w.DayIndex(-5, 12); got != 0 {
		t.Fatalf("DayIndex(-5) = %d, want 0", got)
	}
	if got := w.DayIndex(1000, 12); got != 6 {
		t.Fatalf("DayIndex(1000) = %d, want 6", got)
	}
}

func TestDeltaDaysRounding(t *testing.T) {
	if got := DeltaDays(18, 12); got != 2 {
		t.Fatalf("DeltaDays(18,12) = %d, want 2", got)
	}
	if got := DeltaDays(5, 12); got != 0 {
		t.Fatalf("DeltaDays(5,12) = %d, want 0", got)
	}
	if got := DeltaDays(-18, 12); got != -2 {
		t.Fatalf("DeltaDays(-18,12) = %d, want -2", got)
	}
}

func TestWindowDay(t *testing.T) {
	w := NewWindow(origin, 7)
	if got := w.Day(3); !got.Equal(day(3)) {
		t.Fatalf("Day(3) = %v, want %v", got, day(3))
	}
	if got := w.Day(99); !got.Equal(day(6)) {
		t.Fatalf("Day(99) = %v, want %v", got, day(6))
	}
}
