package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"
	payrollerrors "github.com/Cjblack21/ckcm-payroll-sub001/internal/payroll/errors"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, req PreviewRequest) ([]Breakdown, error)
	GetAll(ctx context.Context, req ListPayrollsRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	// GetBreakdown returns the frozen snapshot verbatim for released
	// entries, and a freshly computed breakdown for pending ones.
	GetBreakdown(ctx context.Context, id string) (json.RawMessage, error)
	Archive(ctx context.Context, id string) (PayrollResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	engine       *Engine
	employeeRepo employee.Repository
	settings     settings.Service
	policy       period.Policy
	now          func() time.Time

	previews singleflight.Group
}

func NewService(
	db *sql.DB,
	repo Repository,
	engine *Engine,
	employeeRepo employee.Repository,
	settingsService settings.Service,
	policy period.Policy,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		engine:       engine,
		employeeRepo: employeeRepo,
		settings:     settingsService,
		policy:       policy,
		now:          time.Now,
	}
}

func (s *service) Preview(ctx context.Context, req PreviewRequest) ([]Breakdown, error) {
	span, err := resolveSpan(s.policy, s.now(), req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	employeeIDs, err := s.resolveEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	// Concurrent identical previews collapse into one computation.
	key := previewKey(span, employeeIDs)
	result, err, _ := s.previews.Do(key, func() (any, error) {
		return s.computeAll(ctx, employeeIDs, span)
	})
	if err != nil {
		return nil, err
	}
	return result.([]Breakdown), nil
}

// computeAll builds one breakdown per employee. Employees without a
// salary basis degrade to a zeroed breakdown so one bad record cannot
// blank the whole preview.
func (s *service) computeAll(ctx context.Context, employeeIDs []string, span period.Span) ([]Breakdown, error) {
	cfg, err := s.settings.Current(ctx)
	if err != nil {
		return nil, err
	}

	bases, _, err := s.employeeRepo.FindSalaryBasis(ctx, employeeIDs)
	if err != nil {
		return nil, err
	}

	startStr := span.Start.Format("2006-01-02")
	endStr := span.End.Format("2006-01-02")

	out := make([]Breakdown, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		basis, ok := bases[id]
		if !ok {
			out = append(out, Zeroed(id, startStr, endStr))
			continue
		}
		b, err := s.engine.Compute(ctx, basis, span, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *service) GetAll(ctx context.Context, req ListPayrollsRequest) ([]PayrollResponse, error) {
	if req.EmployeeID != "" {
		if _, err := uuid.Parse(req.EmployeeID); err != nil {
			return nil, payrollerrors.ErrInvalidEmployeeID
		}
		rows, err := s.repo.FindByEmployee(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(rows), nil
	}

	rows, err := s.repo.FindAll(ctx, req.Status)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	entry, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*entry), nil
}

func (s *service) GetBreakdown(ctx context.Context, id string) (json.RawMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayrollID
	}

	entry, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	if err != nil {
		return nil, err
	}

	// Frozen snapshots are returned byte for byte, never recomputed.
	if len(entry.Snapshot) > 0 {
		return json.RawMessage(entry.Snapshot), nil
	}
	if entry.Status != StatusPending {
		return nil, payrollerrors.ErrNoSnapshot
	}

	cfg, err := s.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	employeeID := entry.EmployeeID.String()
	bases, _, err := s.employeeRepo.FindSalaryBasis(ctx, []string{employeeID})
	if err != nil {
		return nil, err
	}
	basis, ok := bases[employeeID]
	if !ok {
		return nil, payrollerrors.ErrMissingSalaryBasis
	}

	span := period.NewSpan(entry.PeriodStart, entry.PeriodEnd)
	b, err := s.engine.Compute(ctx, basis, span, cfg)
	if err != nil {
		return nil, err
	}
	return json.Marshal(b)
}

func (s *service) Archive(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := qtx.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
	}
	if err != nil {
		return PayrollResponse{}, err
	}
	if entry.Status == StatusArchived {
		return PayrollResponse{}, payrollerrors.ErrAlreadyArchived
	}

	if err := qtx.Archive(ctx, id); err != nil {
		return PayrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	entry.Status = StatusArchived
	return mapToResponse(*entry), nil
}

// resolveSpan parses an explicit period or falls back to the policy's
// span for the reference time.
func resolveSpan(policy period.Policy, now time.Time, startStr, endStr string) (period.Span, error) {
	if startStr == "" && endStr == "" {
		return policy.Resolve(now), nil
	}
	if startStr == "" || endStr == "" {
		return period.Span{}, payrollerrors.ErrInvalidPeriod
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return period.Span{}, payrollerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return period.Span{}, payrollerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return period.Span{}, payrollerrors.ErrInvalidPeriod
	}
	return period.NewSpan(start, end), nil
}

func (s *service) resolveEmployees(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) > 0 {
		for _, id := range ids {
			if _, err := uuid.Parse(id); err != nil {
				return nil, payrollerrors.ErrInvalidEmployeeID
			}
		}
		return ids, nil
	}

	active, err := s.employeeRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(active))
	for _, e := range active {
		out = append(out, e.ID.String())
	}
	return out, nil
}

func previewKey(span period.Span, employeeIDs []string) string {
	return fmt.Sprintf(
		"%s|%s|%s",
		span.Start.Format("2006-01-02"),
		span.End.Format("2006-01-02"),
		strings.Join(employeeIDs, ","),
	)
}
