package period

import "time"

// DefaultWorkingDays is the fallback divisor for daily-rate math when a
// period resolves to zero working days. Payroll must always produce a
// number, so degenerate calendars never raise.
const DefaultWorkingDays = 22

// Span is a resolved pay period, normalized to day boundaries.
type Span struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive day count of the span.
func (s Span) Days() int {
	return int(s.End.Sub(s.Start).Hours()/24) + 1
}

// Contains reports whether t falls inside the span.
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

// Policy resolves the pay period containing a reference date.
type Policy interface {
	Name() string
	Resolve(ref time.Time) Span
}

// SemiMonthly is the canonical policy: day 1-15, then 16 to month end.
type SemiMonthly struct{}

func (SemiMonthly) Name() string { return "semi_monthly" }

func (SemiMonthly) Resolve(ref time.Time) Span {
	y, m, d := ref.Date()
	loc := ref.Location()

	if d <= 15 {
		return NewSpan(
			time.Date(y, m, 1, 0, 0, 0, 0, loc),
			time.Date(y, m, 15, 0, 0, 0, 0, loc),
		)
	}

	lastDay := time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
	return NewSpan(
		time.Date(y, m, 16, 0, 0, 0, 0, loc),
		time.Date(y, m, lastDay, 0, 0, 0, 0, loc),
	)
}

// RollingBiweekly strides 14-day periods from the first Monday of the year.
type RollingBiweekly struct{}

func (RollingBiweekly) Name() string { return "rolling_biweekly" }

func (RollingBiweekly) Resolve(ref time.Time) Span {
	anchor := firstMonday(ref.Year(), ref.Location())
	if ref.Before(anchor) {
		anchor = firstMonday(ref.Year()-1, ref.Location())
	}

	days := int(StartOfDay(ref).Sub(anchor).Hours() / 24)
	index := days / 14

	start := anchor.AddDate(0, 0, index*14)
	return NewSpan(start, start.AddDate(0, 0, 13))
}

func firstMonday(year int, loc *time.Location) time.Time {
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// NewSpan normalizes an explicit start/end pair to day boundaries.
func NewSpan(start, end time.Time) Span {
	return Span{Start: StartOfDay(start), End: EndOfDay(end)}
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// CapToToday limits a live period end so days that have not occurred yet
// never contribute deductions. Released snapshots are not capped.
func CapToToday(s Span, now time.Time) Span {
	today := EndOfDay(now)
	if s.End.After(today) {
		return Span{Start: s.Start, End: today}
	}
	return s
}

// WorkingDaysIn counts days of the span whose weekday is configured as a
// working day. Callers fall back to DefaultWorkingDays when this is zero.
func WorkingDaysIn(s Span, workdays map[time.Weekday]bool) int {
	count := 0
	for d := StartOfDay(s.Start); !d.After(s.End); d = d.AddDate(0, 0, 1) {
		if workdays[d.Weekday()] {
			count++
		}
	}
	return count
}

// DaysInMonth returns the calendar length of the month containing t,
// used for pro-rating the period base salary.
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
