package events

import "time"

const AttendanceAbsentMarkedTopic = "attendance.absent.marked.v1"

const EventTypeAbsentMarked = "attendance.absent_marked"

// AttendanceAbsentMarkedEvent is emitted by the absence job for each
// employee it marks absent.
type AttendanceAbsentMarkedEvent struct {
	EventType      string    `json:"event_type"`
	EmployeeID     string    `json:"employee_id"`
	AttendanceDate string    `json:"attendance_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}
