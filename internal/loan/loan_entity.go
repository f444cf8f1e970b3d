package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Loan balances are mutated only by the release orchestrator; previews
// read them and must never write.
type Loan struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Principal             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MonthlyPaymentPercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	TermMonths            int             `gorm:"not null"`
	Balance               decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status                string          `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	StartDate             time.Time       `gorm:"type:date;not null"`
	EndDate               *time.Time      `gorm:"type:date"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Loan) TableName() string {
	return "loans"
}
