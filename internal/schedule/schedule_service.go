package schedule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	scheduleerrors "github.com/Cjblack21/ckcm-payroll-sub001/internal/schedule/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	GetActive(ctx context.Context) (ScheduleResponse, error)
	Deactivate(ctx context.Context) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error) {
	start, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidDateFormat
	}
	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidPeriod
	}
	if releaseDate.Before(end) {
		return ScheduleResponse{}, scheduleerrors.ErrReleaseBeforePeriodEnd
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Only one schedule is active at a time.
	if err := qtx.DeactivateAll(ctx); err != nil {
		return ScheduleResponse{}, err
	}

	row := &ReleaseSchedule{
		ID:          uuid.New(),
		PeriodStart: start,
		PeriodEnd:   end,
		ReleaseDate: releaseDate,
		IsActive:    true,
	}
	if err := qtx.Create(ctx, row); err != nil {
		return ScheduleResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ScheduleResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetActive(ctx context.Context) (ScheduleResponse, error) {
	row, err := s.repo.FindActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ScheduleResponse{}, scheduleerrors.ErrNoActiveSchedule
	}
	if err != nil {
		return ScheduleResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Deactivate(ctx context.Context) error {
	return s.repo.DeactivateAll(ctx)
}
