package deduction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Names reserved for deductions the engine derives from attendance. Records
// carrying these types are excluded from the standing bucket so live
// attendance math is never double counted.
var AttendanceTypeNames = map[string]bool{
	"Late":      true,
	"Absent":    true,
	"Partial":   true,
	"Early Out": true,
}

type DeductionType struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string          `gorm:"type:varchar(80);not null;uniqueIndex"`
	Description  string          `gorm:"type:text"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	IsPercentage bool            `gorm:"not null;default:false"` // percentage of monthly salary
	IsMandatory  bool            `gorm:"not null;default:false"` // applies every period regardless of date
	IsActive     bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DeductionType) TableName() string {
	return "deduction_types"
}

// ResolveAmount turns the type definition into a concrete amount for an
// employee's monthly salary.
func (t DeductionType) ResolveAmount(monthlySalary decimal.Decimal) decimal.Decimal {
	if t.IsPercentage {
		return monthlySalary.Mul(t.Amount).Div(decimal.NewFromInt(100)).Round(2)
	}
	return t.Amount.Round(2)
}

// DeductionRecord is immutable once created except for archival.
type DeductionRecord struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeductionTypeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type            *DeductionType  `gorm:"foreignKey:DeductionTypeID;references:ID"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AppliedAt       time.Time       `gorm:"type:timestamptz;not null;index"`
	Notes           *string         `gorm:"type:text"`
	CreatedAt       time.Time
	DeletedAt       gorm.DeletedAt  `gorm:"index"`
}

func (DeductionRecord) TableName() string {
	return "deduction_records"
}
