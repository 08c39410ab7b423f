package domain

// Money is an amount in minor currency units. The engine only carries it.
type Money int64

// Window is a range a mentor opened for booking on one lesson.
type Window struct {
	ID       string
	LessonID int64
	Interval
	Price    Money
	Capacity int
}

// Validate checks the window invariant start < end.
func (w Window) Validate() error {
	if !w.Valid() {
		return ErrInvalidWindow
	}
	return nil
}
