package settings

import (
	"strings"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"

	"github.com/google/uuid"
)

// AttendanceSettings is a singleton row: the school runs one schedule.
type AttendanceSettings struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TimeInStart      string    `gorm:"column:time_in_start;type:varchar(5);not null;default:'07:00'"`
	TimeInEnd        string    `gorm:"column:time_in_end;type:varchar(5);not null;default:'08:00'"`
	TimeOutStart     string    `gorm:"column:time_out_start;type:varchar(5);not null;default:'16:00'"`
	TimeOutEnd       string    `gorm:"column:time_out_end;type:varchar(5);not null;default:'18:00'"`
	AutoMarkAbsent   bool      `gorm:"column:auto_mark_absent;not null;default:false"`
	EarlyOutPenalty  bool      `gorm:"column:early_out_penalty;not null;default:false"`
	WorkingDays      string    `gorm:"column:working_days;type:varchar(60);not null;default:'Mon,Tue,Wed,Thu,Fri'"`
	WorkingDaysCount int       `gorm:"column:working_days_count;not null;default:22"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (AttendanceSettings) TableName() string {
	return "attendance_settings"
}

// Defaults mirrors the schema defaults for callers that read settings
// before the row exists.
func Defaults() AttendanceSettings {
	return AttendanceSettings{
		TimeInStart:      "07:00",
		TimeInEnd:        "08:00",
		TimeOutStart:     "16:00",
		TimeOutEnd:       "18:00",
		AutoMarkAbsent:   false,
		EarlyOutPenalty:  false,
		WorkingDays:      "Mon,Tue,Wed,Thu,Fri",
		WorkingDaysCount: 22,
	}
}

// TimeInWindow returns the punch-in window; malformed values fall back to
// the schema defaults so classification never fails.
func (s AttendanceSettings) TimeInWindow() TimeWindow {
	return windowOrDefault(s.TimeInStart, s.TimeInEnd, "07:00", "08:00")
}

func (s AttendanceSettings) TimeOutWindow() TimeWindow {
	return windowOrDefault(s.TimeOutStart, s.TimeOutEnd, "16:00", "18:00")
}

func windowOrDefault(start, end, defStart, defEnd string) TimeWindow {
	ms, err := ParseMinute(start)
	if err != nil {
		ms, _ = ParseMinute(defStart)
	}
	me, err := ParseMinute(end)
	if err != nil {
		me, _ = ParseMinute(defEnd)
	}
	return TimeWindow{Start: ms, End: me}
}

var weekdayNames = map[string]time.Weekday{
	"Sun": time.Sunday, "Mon": time.Monday, "Tue": time.Tuesday,
	"Wed": time.Wednesday, "Thu": time.Thursday, "Fri": time.Friday,
	"Sat": time.Saturday,
}

// Workdays parses the comma-separated working-day list.
func (s AttendanceSettings) Workdays() map[time.Weekday]bool {
	out := make(map[time.Weekday]bool)
	for _, name := range strings.Split(s.WorkingDays, ",") {
		if wd, ok := weekdayNames[strings.TrimSpace(name)]; ok {
			out[wd] = true
		}
	}
	return out
}

// WorkingDaysFor is the divisor behind the daily rate: the configured
// monthly count, or the actual number of working weekdays in ref's month
// when the setting is unset.
func (s AttendanceSettings) WorkingDaysFor(ref time.Time) int {
	if s.WorkingDaysCount > 0 {
		return s.WorkingDaysCount
	}
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	month := period.NewSpan(first, first.AddDate(0, 1, -1))
	return period.WorkingDaysIn(month, s.Workdays())
}
