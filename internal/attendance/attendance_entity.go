package attendance

import (
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shift"

	"github.com/google/uuid"
)

const (
	StatusPending = shift.StatusPending
	StatusPresent = shift.StatusPresent
	StatusLate    = shift.StatusLate
	StatusPartial = shift.StatusPartial
	StatusAbsent  = shift.StatusAbsent
)

// Attendance holds one row per employee per calendar date. Created on the
// first punch or by the absence job, mutated by the second punch, never
// deleted.
type Attendance struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID    `gorm:"type:uuid;not null;index:idx_employee_date,unique"`
	AttendanceDate time.Time    `gorm:"type:date;not null;index:idx_employee_date,unique"`
	TimeIn         *time.Time   `gorm:"column:time_in;type:timestamptz"`
	TimeOut        *time.Time   `gorm:"column:time_out;type:timestamptz"`
	Status         string       `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Notes          *string      `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// Terminal reports whether the day's classification is final.
func (a Attendance) Terminal() bool {
	switch a.Status {
	case StatusPresent, StatusLate, StatusPartial, StatusAbsent:
		return true
	}
	return false
}
