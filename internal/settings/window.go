package settings

import (
	"fmt"
	"time"
)

// MinuteOfDay is a clock position expressed as minutes since midnight.
type MinuteOfDay int

func MinuteOf(t time.Time) MinuteOfDay {
	return MinuteOfDay(t.Hour()*60 + t.Minute())
}

func ParseMinute(hhmm string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	return MinuteOf(t), nil
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// At anchors the minute onto a calendar date.
func (m MinuteOfDay) At(day time.Time) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, int(m)/60, int(m)%60, 0, 0, day.Location())
}

// TimeWindow is a daily interval. A window whose start is later than its
// end wraps past midnight (e.g. 22:00-02:00).
type TimeWindow struct {
	Start MinuteOfDay
	End   MinuteOfDay
}

func (w TimeWindow) Overnight() bool {
	return w.Start > w.End
}

// Contains tests window membership with wraparound.
func (w TimeWindow) Contains(m MinuteOfDay) bool {
	if w.Overnight() {
		return m >= w.Start || m <= w.End
	}
	return m >= w.Start && m <= w.End
}

// EndOn returns the wall-clock instant the window closes for a given day.
// Overnight windows close on the following calendar day.
func (w TimeWindow) EndOn(day time.Time) time.Time {
	end := w.End.At(day)
	if w.Overnight() {
		end = end.AddDate(0, 0, 1)
	}
	return end
}
