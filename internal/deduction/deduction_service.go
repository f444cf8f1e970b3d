package deduction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	deductionerrors "github.com/Cjblack21/ckcm-payroll-sub001/internal/deduction/errors"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	CreateType(ctx context.Context, req CreateTypeRequest) (TypeResponse, error)
	ListTypes(ctx context.Context) ([]TypeResponse, error)
	UpdateType(ctx context.Context, id string, req UpdateTypeRequest) (TypeResponse, error)

	ApplyRecord(ctx context.Context, req ApplyRecordRequest) (RecordResponse, error)
	ListRecords(ctx context.Context, employeeID string) ([]RecordResponse, error)
	ArchiveRecord(ctx context.Context, id string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	now          func() time.Time
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository) Service {
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, now: time.Now}
}

func (s *service) CreateType(ctx context.Context, req CreateTypeRequest) (TypeResponse, error) {
	if AttendanceTypeNames[req.Name] {
		return TypeResponse{}, deductionerrors.ErrReservedTypeName
	}
	amount := decimal.NewFromFloat(req.Amount)
	if amount.IsNegative() {
		return TypeResponse{}, deductionerrors.ErrNegativeAmount
	}

	row := &DeductionType{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Amount:       amount,
		IsPercentage: req.IsPercentage,
		IsMandatory:  req.IsMandatory,
		IsActive:     true,
	}

	if err := s.repo.CreateType(ctx, row); err != nil {
		return TypeResponse{}, err
	}
	return mapTypeToResponse(*row), nil
}

func (s *service) ListTypes(ctx context.Context) ([]TypeResponse, error) {
	rows, err := s.repo.FindActiveTypes(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]TypeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapTypeToResponse(r)
	}
	return res, nil
}

func (s *service) UpdateType(ctx context.Context, id string, req UpdateTypeRequest) (TypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TypeResponse{}, deductionerrors.ErrInvalidTypeID
	}

	row, err := s.repo.FindTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TypeResponse{}, deductionerrors.ErrTypeNotFound
		}
		return TypeResponse{}, err
	}

	if req.Description != nil {
		row.Description = *req.Description
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		if amount.IsNegative() {
			return TypeResponse{}, deductionerrors.ErrNegativeAmount
		}
		row.Amount = amount
	}
	if req.IsPercentage != nil {
		row.IsPercentage = *req.IsPercentage
	}
	if req.IsMandatory != nil {
		row.IsMandatory = *req.IsMandatory
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateType(ctx, row); err != nil {
		return TypeResponse{}, err
	}
	return mapTypeToResponse(*row), nil
}

// ApplyRecord resolves the type's amount against the employee's monthly
// salary and persists an immutable record stamped now.
func (s *service) ApplyRecord(ctx context.Context, req ApplyRecordRequest) (RecordResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	typ, err := qtx.FindTypeByID(ctx, req.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, deductionerrors.ErrTypeNotFound
		}
		return RecordResponse{}, err
	}
	if !typ.IsActive {
		return RecordResponse{}, deductionerrors.ErrTypeInactive
	}

	bases, missing, err := s.employeeRepo.FindSalaryBasis(ctx, []string{req.EmployeeID})
	if err != nil {
		return RecordResponse{}, err
	}
	if len(missing) > 0 {
		return RecordResponse{}, deductionerrors.ErrInvalidEmployeeID
	}
	basis := bases[req.EmployeeID]

	row := &DeductionRecord{
		ID:              uuid.New(),
		EmployeeID:      uuid.MustParse(req.EmployeeID),
		DeductionTypeID: typ.ID,
		Type:            typ,
		Amount:          typ.ResolveAmount(basis.MonthlySalary),
		AppliedAt:       s.now(),
		Notes:           req.Notes,
	}

	if err := qtx.CreateRecord(ctx, row); err != nil {
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}
	return mapRecordToResponse(*row), nil
}

func (s *service) ListRecords(ctx context.Context, employeeID string) ([]RecordResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, deductionerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindRecordsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]RecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapRecordToResponse(r)
	}
	return res, nil
}

func (s *service) ArchiveRecord(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return deductionerrors.ErrInvalidTypeID
	}
	return s.repo.ArchiveRecord(ctx, id)
}

func mapTypeToResponse(t DeductionType) TypeResponse {
	return TypeResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		Description:  t.Description,
		Amount:       t.Amount.StringFixed(2),
		IsPercentage: t.IsPercentage,
		IsMandatory:  t.IsMandatory,
		IsActive:     t.IsActive,
	}
}

func mapRecordToResponse(r DeductionRecord) RecordResponse {
	resp := RecordResponse{
		ID:         r.ID.String(),
		EmployeeID: r.EmployeeID.String(),
		TypeID:     r.DeductionTypeID.String(),
		Amount:     r.Amount.StringFixed(2),
		AppliedAt:  r.AppliedAt.Format(time.RFC3339),
		Notes:      r.Notes,
	}
	if r.Type != nil {
		resp.TypeName = r.Type.Name
		resp.IsMandatory = r.Type.IsMandatory
	}
	return resp
}
