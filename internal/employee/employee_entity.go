package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee rows are owned by the personnel system; the payroll engine
// reads them and never writes.
type Employee struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName        string         `gorm:"column:full_name;type:varchar(120);not null"`
	PersonnelTypeID *uuid.UUID     `gorm:"type:uuid;index"`
	PersonnelType   *PersonnelType `gorm:"foreignKey:PersonnelTypeID;references:ID"`
	IsActive        bool           `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

// PersonnelType carries the monthly basic salary an employee is paid on.
type PersonnelType struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string          `gorm:"type:varchar(80);not null"`
	MonthlySalary decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (PersonnelType) TableName() string {
	return "personnel_types"
}

// SalaryBasis is the resolved pay basis used by the engine.
type SalaryBasis struct {
	EmployeeID    uuid.UUID
	FullName      string
	MonthlySalary decimal.Decimal
}
