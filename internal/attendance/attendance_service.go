package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "github.com/Cjblack21/ckcm-payroll-sub001/internal/attendance/errors"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	PunchIn(ctx context.Context, employeeID string, req PunchInRequest) (AttendanceResponse, error)
	PunchOut(ctx context.Context, employeeID string, req PunchOutRequest) (AttendanceResponse, error)
	List(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	settings settings.Service
	policy   period.Policy
	now      func() time.Time
}

func NewService(db *sql.DB, repo Repository, settingsService settings.Service, policy period.Policy) Service {
	return &service{db: db, repo: repo, settings: settingsService, policy: policy, now: time.Now}
}

// NewServiceWithClock pins the clock for tests.
func NewServiceWithClock(db *sql.DB, repo Repository, settingsService settings.Service, policy period.Policy, now func() time.Time) Service {
	return &service{db: db, repo: repo, settings: settingsService, policy: policy, now: now}
}

func (s *service) PunchIn(ctx context.Context, employeeID string, req PunchInRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	cfg, err := s.settings.Current(ctx)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := period.StartOfDay(now)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if existing != nil {
		if existing.Status == StatusAbsent {
			return AttendanceResponse{}, attendanceerrors.ErrDayMarkedAbsent
		}
		if existing.TimeIn != nil {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedIn
		}
	}

	status := ClassifyPunchIn(now, cfg.TimeInWindow())

	row := existing
	if row == nil {
		row = &Attendance{
			ID:             uuid.New(),
			EmployeeID:     uuid.MustParse(employeeID),
			AttendanceDate: today,
		}
	}
	row.TimeIn = &now
	row.Status = status
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if existing == nil {
		err = qtx.Create(ctx, row)
	} else {
		err = qtx.Update(ctx, row)
	}
	if err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) PunchOut(ctx context.Context, employeeID string, req PunchOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := period.StartOfDay(now)

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoPunchIn
		}
		return AttendanceResponse{}, err
	}
	if row.TimeIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoPunchIn
	}
	if row.TimeOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedOut
	}

	row.TimeOut = &now
	row.Status = ClassifyPunchOut(row.Status, *row.TimeIn, now)
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error) {
	span, err := s.resolveRange(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	var rows []Attendance
	if req.EmployeeID != "" {
		if _, parseErr := uuid.Parse(req.EmployeeID); parseErr != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
		rows, err = s.repo.FindByEmployeeAndRange(ctx, req.EmployeeID, span.Start, span.End)
	} else {
		rows, err = s.repo.FindAllByRange(ctx, span.Start, span.End)
	}
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) resolveRange(start, end string) (period.Span, error) {
	if start == "" && end == "" {
		return period.CapToToday(s.policy.Resolve(s.now()), s.now()), nil
	}

	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return period.Span{}, attendanceerrors.ErrInvalidDateRange
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return period.Span{}, attendanceerrors.ErrInvalidDateRange
	}
	if from.After(to) {
		return period.Span{}, attendanceerrors.ErrInvalidDateRange
	}
	return period.NewSpan(from, to), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		Notes:          a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	if a.TimeIn != nil {
		v := a.TimeIn.Format(time.RFC3339)
		resp.TimeIn = &v
	}
	if a.TimeOut != nil {
		v := a.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &v
	}
	return resp
}
