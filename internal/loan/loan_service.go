package loan

import (
	"context"
	"database/sql"
	"errors"
	"time"

	loanerrors "github.com/Cjblack21/ckcm-payroll-sub001/internal/loan/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=loan_service.go -destination=mock/loan_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LoanResponse, error)
	Cancel(ctx context.Context, id string) (LoanResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateLoanRequest) (LoanResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidEmployeeID
	}

	principal := decimal.NewFromFloat(req.Principal)
	if !principal.IsPositive() {
		return LoanResponse{}, loanerrors.ErrInvalidPrincipal
	}
	percent := decimal.NewFromFloat(req.MonthlyPaymentPercent)
	if !percent.IsPositive() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return LoanResponse{}, loanerrors.ErrInvalidPercent
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidDateFormat
	}
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		t, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return LoanResponse{}, loanerrors.ErrInvalidDateFormat
		}
		endDate = &t
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoanResponse{}, err
	}
	defer tx.Rollback()

	row := &Loan{
		ID:                    uuid.New(),
		EmployeeID:            employeeID,
		Principal:             principal,
		MonthlyPaymentPercent: percent,
		TermMonths:            req.TermMonths,
		Balance:               principal,
		Status:                StatusActive,
		StartDate:             startDate,
		EndDate:               endDate,
	}

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return LoanResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LoanResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LoanResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, loanerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]LoanResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id string) (LoanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidLoanID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoanResponse{}, loanerrors.ErrLoanNotFound
		}
		return LoanResponse{}, err
	}
	if row.Status != StatusActive {
		return LoanResponse{}, loanerrors.ErrNotActive
	}

	row.Status = StatusCancelled
	if err := qtx.Update(ctx, row); err != nil {
		return LoanResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LoanResponse{}, err
	}
	return mapToResponse(*row), nil
}

func mapToResponse(l Loan) LoanResponse {
	resp := LoanResponse{
		ID:                    l.ID.String(),
		EmployeeID:            l.EmployeeID.String(),
		Principal:             l.Principal.StringFixed(2),
		MonthlyPaymentPercent: l.MonthlyPaymentPercent.StringFixed(2),
		MonthlyPayment:        MonthlyPayment(l.Principal, l.MonthlyPaymentPercent).StringFixed(2),
		TermMonths:            l.TermMonths,
		Balance:               l.Balance.StringFixed(2),
		Status:                l.Status,
		StartDate:             l.StartDate.Format("2006-01-02"),
	}
	if l.EndDate != nil {
		v := l.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	return resp
}
