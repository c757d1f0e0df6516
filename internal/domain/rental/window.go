package rental

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("rental end must be after start")

// Precision matches PostgreSQL timestamptz.
const Precision = time.Microsecond

// Window is a half-open rental period [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

// NewWindow truncates both bounds to Precision before validating them.
func NewWindow(start, end time.Time) (Window, error) {
	start, end = start.Truncate(Precision), end.Truncate(Precision)
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

// Contains reports whether other lies entirely inside w.
// Partial overlaps and windows enclosing w are not contained.
func (w Window) Contains(other Window) bool {
	return !other.start.Before(w.start) && !other.end.After(w.end)
}

func (w Window) IsActiveAt(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}
