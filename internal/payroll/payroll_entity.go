package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusReleased = "RELEASED"
	StatusArchived = "ARCHIVED"
)

type PayrollEntry struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index:idx_employee_period"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	RefNo      *string      `gorm:"type:varchar(20);uniqueIndex"`

	PeriodStart time.Time `gorm:"type:date;not null;index:idx_employee_period"`
	PeriodEnd   time.Time `gorm:"type:date;not null;index:idx_employee_period"`

	BasicSalary     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OverloadPay     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	// Snapshot is the frozen, itemized breakdown serialized at release.
	// Once written it is the sole source of truth and is never recomputed.
	Snapshot []byte `gorm:"type:jsonb"`

	Status      string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ProcessedAt *time.Time `gorm:"type:timestamptz"`
	ReleasedAt  *time.Time `gorm:"type:timestamptz;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PayrollEntry) TableName() string {
	return "payroll_entries"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// OverloadItemRecord is an additional-pay row (overtime, bonus, position
// pay, 13th month) granted for a period.
type OverloadItemRecord struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(80);not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	GrantedAt  time.Time       `gorm:"type:timestamptz;not null;index"`
	CreatedAt  time.Time
}

func (OverloadItemRecord) TableName() string {
	return "overload_items"
}
