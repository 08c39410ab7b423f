package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 1, 10, hour, min, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{Start: at(10, 0), End: at(11, 0)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"inside", Interval{at(10, 15), at(10, 45)}, true},
		{"partial left", Interval{at(9, 30), at(10, 30)}, true},
		{"partial right", Interval{at(10, 30), at(11, 30)}, true},
		{"touching end", Interval{at(11, 0), at(12, 0)}, false},
		{"touching start", Interval{at(9, 0), at(10, 0)}, false},
		{"disjoint", Interval{at(13, 0), at(14, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestInterval_ContainsAndTouches(t *testing.T) {
	base := Interval{Start: at(9, 0), End: at(12, 0)}

	assert.True(t, base.Contains(Interval{at(9, 0), at(12, 0)}))
	assert.True(t, base.Contains(Interval{at(11, 0), at(12, 0)}))
	assert.False(t, base.Contains(Interval{at(11, 30), at(12, 30)}))

	assert.True(t, base.Touches(Interval{at(12, 0), at(13, 0)}))
	assert.False(t, base.Touches(Interval{at(12, 1), at(13, 0)}))
}

func TestInterval_Ordering(t *testing.T) {
	a := Interval{at(9, 0), at(10, 0)}
	b := Interval{at(9, 0), at(11, 0)}
	c := Interval{at(8, 0), at(12, 0)}

	assert.True(t, a.Less(b))
	assert.True(t, c.Less(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, b.Compare(a))
	assert.True(t, a.Equal(Interval{at(9, 0).In(time.FixedZone("KST", 9*3600)), at(10, 0)}))
}

func TestWindow_Validate(t *testing.T) {
	assert.NoError(t, Window{Interval: Interval{at(9, 0), at(10, 0)}}.Validate())
	assert.ErrorIs(t, Window{Interval: Interval{at(10, 0), at(10, 0)}}.Validate(), ErrInvalidWindow)
	assert.ErrorIs(t, Window{Interval: Interval{at(11, 0), at(10, 0)}}.Validate(), ErrInvalidWindow)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("%w: overlaps booking 10:00-11:00", ErrConflict)

	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.Equal(t, ReasonConflict, ReasonOf(wrapped))
	assert.Equal(t, ReasonOutOfRange, ReasonOf(ErrOutOfRange))
	assert.Equal(t, ErrorKind(""), KindOf(fmt.Errorf("db down")))
	assert.Equal(t, ReasonNone, ReasonOf(ErrInvalidWindow))

	assert.True(t, IsCallerBug(ErrInvalidRange))
	assert.False(t, IsCallerBug(wrapped))
	assert.False(t, IsCallerBug(nil))
}

func TestLessonSettings(t *testing.T) {
	now := time.Date(2025, 1, 10, 14, 20, 0, 0, time.UTC)

	s := DefaultLessonSettings(5, DefaultEngineLimits())
	assert.Equal(t, int64(5), s.LessonID)
	assert.Equal(t, DefaultSlotDurationMinutes, s.SlotDurationMinutes)
	assert.Equal(t, DefaultPickGranularityMinutes, s.PickGranularityMinutes)
	assert.False(t, s.HasAdvanceBookingLimit())
	assert.True(t, s.LatestDate(now).IsZero())
	assert.True(t, s.EarliestStart(now).Equal(now))

	s.AdvanceBookingDays = 14
	s.MinBookingNoticeMinutes = 90
	assert.True(t, s.LatestDate(now).Equal(time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.EarliestStart(now).Equal(time.Date(2025, 1, 10, 15, 50, 0, 0, time.UTC)))
}

func TestEngineLimits_DurationAllowed(t *testing.T) {
	l := DefaultEngineLimits()
	assert.True(t, l.DurationAllowed(10))
	assert.True(t, l.DurationAllowed(480))
	assert.False(t, l.DurationAllowed(5))
	assert.False(t, l.DurationAllowed(481))
}
