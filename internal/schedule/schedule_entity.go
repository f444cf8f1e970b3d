package schedule

import (
	"time"

	"github.com/google/uuid"
)

// ReleaseSchedule is the next planned payroll release. At most one row
// is active at a time; creating a new one deactivates the previous.
type ReleaseSchedule struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`
	ReleaseDate time.Time `gorm:"type:date;not null"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ReleaseSchedule) TableName() string {
	return "release_schedules"
}
