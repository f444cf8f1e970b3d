package attendance

import (
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shift"
)

const (
	// FullShiftHours is the standard working shift.
	FullShiftHours = shift.FullHours
	// GraceMinutes is the allowance past the time-in window end before a
	// punch counts as late.
	GraceMinutes = 1
)

// ExpectedTimeIn is the last on-time instant: windowEnd + grace, anchored
// on the punch's calendar day.
func ExpectedTimeIn(day time.Time, w settings.TimeWindow) time.Time {
	return w.End.At(day).Add(GraceMinutes * time.Minute)
}

// ClassifyPunchIn decides PRESENT vs LATE for a first punch.
func ClassifyPunchIn(punch time.Time, w settings.TimeWindow) string {
	if punch.After(ExpectedTimeIn(punch, w)) {
		return StatusLate
	}
	return StatusPresent
}

// ClassifyPunchOut reclassifies a day once both punches exist: a short day
// becomes PARTIAL, otherwise the punch-in status stands.
func ClassifyPunchOut(current string, timeIn, timeOut time.Time) string {
	worked := timeOut.Sub(timeIn).Hours()
	if worked < FullShiftHours {
		return StatusPartial
	}
	return current
}

// InPunchWindow tests whether a wall-clock instant falls inside a
// configured window, including overnight windows.
func InPunchWindow(t time.Time, w settings.TimeWindow) bool {
	return w.Contains(settings.MinuteOf(t))
}

// AbsenceCutoffPassed reports whether the auto-absent cutoff (the end of
// the time-out window) has passed for the given day.
func AbsenceCutoffPassed(day, now time.Time, s settings.AttendanceSettings) bool {
	return now.After(s.TimeOutWindow().EndOn(day))
}
