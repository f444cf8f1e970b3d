package employee

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindActive(ctx context.Context) ([]Employee, error)
	// FindSalaryBasis resolves the monthly salary for each employee.
	// Employees without an assigned personnel type are reported in the
	// missing list instead of failing the lookup.
	FindSalaryBasis(ctx context.Context, employeeIDs []string) (bases map[string]SalaryBasis, missing []string, err error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("PersonnelType").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindSalaryBasis(ctx context.Context, employeeIDs []string) (map[string]SalaryBasis, []string, error) {
	bases := make(map[string]SalaryBasis, len(employeeIDs))
	var missing []string

	for _, id := range employeeIDs {
		var e Employee
		err := r.db.WithContext(ctx).
			Preload("PersonnelType").
			First(&e, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			missing = append(missing, id)
			continue
		}
		if err != nil {
			return nil, nil, err
		}

		if e.PersonnelType == nil || e.PersonnelType.MonthlySalary.IsZero() {
			missing = append(missing, id)
			continue
		}

		bases[id] = SalaryBasis{
			EmployeeID:    e.ID,
			FullName:      e.FullName,
			MonthlySalary: e.PersonnelType.MonthlySalary,
		}
	}

	return bases, missing, nil
}
