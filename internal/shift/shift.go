// Package shift holds the day-classification vocabulary and the standard
// shift length shared by attendance recording and deduction pricing.
package shift

const (
	StatusPending = "PENDING"
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusPartial = "PARTIAL"
	StatusAbsent  = "ABSENT"
)

// FullHours is the standard working shift.
const FullHours = 8
