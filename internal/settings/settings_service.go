package settings

import (
	"context"
	"net/http"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/apperror"
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
	Current(ctx context.Context) (AttendanceSettings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}
	return mapToResponse(*row), nil
}

// Current exposes the raw entity for the classifier and the payroll engine.
func (s *service) Current(ctx context.Context) (AttendanceSettings, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		return AttendanceSettings{}, err
	}
	return *row, nil
}

func (s *service) Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	for _, v := range []string{req.TimeInStart, req.TimeInEnd, req.TimeOutStart, req.TimeOutEnd} {
		if _, err := ParseMinute(v); err != nil {
			return SettingsResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput,
				"time window values must be HH:MM", http.StatusBadRequest)
		}
	}

	row, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}

	row.TimeInStart = req.TimeInStart
	row.TimeInEnd = req.TimeInEnd
	row.TimeOutStart = req.TimeOutStart
	row.TimeOutEnd = req.TimeOutEnd
	row.AutoMarkAbsent = req.AutoMarkAbsent
	row.EarlyOutPenalty = req.EarlyOutPenalty
	row.WorkingDays = req.WorkingDays
	row.WorkingDaysCount = req.WorkingDaysCount

	if err := s.repo.Save(ctx, row); err != nil {
		return SettingsResponse{}, err
	}

	return mapToResponse(*row), nil
}

func mapToResponse(s AttendanceSettings) SettingsResponse {
	return SettingsResponse{
		TimeInStart:      s.TimeInStart,
		TimeInEnd:        s.TimeInEnd,
		TimeOutStart:     s.TimeOutStart,
		TimeOutEnd:       s.TimeOutEnd,
		AutoMarkAbsent:   s.AutoMarkAbsent,
		EarlyOutPenalty:  s.EarlyOutPenalty,
		WorkingDays:      s.WorkingDays,
		WorkingDaysCount: s.WorkingDaysCount,
	}
}
