package schedule

import "time"

// Move shifts both endpoints of a range by the same day delta,
// preserving duration exactly.
func Move(start, end time.Time, deltaDays int) (time.Time, time.Time) {
	return AddDays(start, deltaDays), AddDays(end, deltaDays)
}

// ResizeStart moves only the start of a range to target. The change is
// rejected when the resulting start would land on or after the current
// end: duration must stay at least one day. Returns the new start and
// whether the resize was accepted.
func ResizeStart(start, end, target time.Time) (time.Time, bool) {
	target = Normalize(target)
	if !target.Before(Normalize(end)) {
		return Normalize(start), false
	}
	return target, true
}

// ResizeEnd is the symmetric rule for the end of a range: rejected when
// the resulting end would land on or before the current start.
func ResizeEnd(start, end, target time.Time) (time.Time, bool) {
	target = Normalize(target)
	if !target.After(Normalize(start)) {
		return Normalize(end), false
	}
	return target, true
}

// DragMode identifies which edge of a bar a gesture is acting on.
type DragMode int

const (
	DragMove DragMode = iota
	DragResizeStart
	DragResizeEnd
)

// Drag is a single in-flight move/resize gesture. The original range
// is captured at gesture start so repeated applications of a growing
// delta never accumulate error.
type Drag struct {
	ItemID        string
	Mode          DragMode
	OriginalStart time.Time
	OriginalEnd   time.Time
}

// Apply computes the range the gesture produces at the given day
// delta. Rejected resizes return the original range unchanged.
func (d Drag) Apply(deltaDays int) (time.Time, time.Time) {
	start := Normalize(d.OriginalStart)
	end := Normalize(d.OriginalEnd)
	switch d.Mode {
	case DragMove:
		return Move(start, end, deltaDays)
	case DragResizeStart:
		s, _ := ResizeStart(start, end, AddDays(start, deltaDays))
		return s, end
	case DragResizeEnd:
		e, _ := ResizeEnd(start, end, AddDays(end, deltaDays))
		return start, e
	}
	return start, end
}

// DragState tracks the at-most-one gesture in flight. Beginning a new
// gesture while one is active replaces it (last writer wins).
type DragState struct {
	current *Drag
}

// Begin starts tracking a gesture over the given item and range.
func (s *DragState) Begin(itemID string, mode DragMode, start, end time.Time) {
	s.current = &Drag{
		ItemID:        itemID,
		Mode:          mode,
		OriginalStart: Normalize(start),
		OriginalEnd:   Normalize(end),
	}
}

// Active returns the in-flight gesture, if any.
func (s *DragState) Active() (Drag, bool) {
	if s.current == nil {
		return Drag{}, false
	}
	return *s.current, true
}

// End returns the state to idle.
func (s *DragState) End() {
	s.current = nil
}
