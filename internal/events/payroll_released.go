package events

import "time"

const PayrollReleasedTopic = "payroll.entry.released.v1"

const EventTypePayrollReleased = "payroll.released"

// PayrollReleasedEvent is emitted once per released entry, after the
// snapshot transaction commits, via the outbox.
type PayrollReleasedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   string    `json:"payroll_id"`
	EmployeeID  string    `json:"employee_id"`
	RefNo       string    `json:"ref_no"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   string    `json:"period_end"`
	NetPay      string    `json:"net_pay"`
	ReleasedBy  string    `json:"released_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
