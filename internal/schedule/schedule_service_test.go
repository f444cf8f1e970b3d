package schedule_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/schedule"
	scheduleerrors "github.com/Cjblack21/ckcm-payroll-sub001/internal/schedule/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeScheduleRepository struct {
	createFn        func(ctx context.Context, s *schedule.ReleaseSchedule) error
	findActiveFn    func(ctx context.Context) (*schedule.ReleaseSchedule, error)
	deactivateAllFn func(ctx context.Context) error
}

func (f *fakeScheduleRepository) WithTx(tx *sql.Tx) schedule.Repository { return f }
func (f *fakeScheduleRepository) Create(ctx context.Context, s *schedule.ReleaseSchedule) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}
func (f *fakeScheduleRepository) FindActive(ctx context.Context) (*schedule.ReleaseSchedule, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeScheduleRepository) DeactivateAll(ctx context.Context) error {
	if f.deactivateAllFn != nil {
		return f.deactivateAllFn(ctx)
	}
	return nil
}

func TestCreateScheduleDeactivatesPrevious(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	deactivated := false
	var created *schedule.ReleaseSchedule
	repo := &fakeScheduleRepository{
		deactivateAllFn: func(ctx context.Context) error {
			deactivated = true
			return nil
		},
		createFn: func(ctx context.Context, s *schedule.ReleaseSchedule) error {
			assert.True(t, deactivated, "previous schedules must be deactivated first")
			created = s
			return nil
		},
	}

	svc := schedule.NewService(db, repo)
	resp, err := svc.Create(context.Background(), schedule.CreateScheduleRequest{
		PeriodStart: "2025-09-01",
		PeriodEnd:   "2025-09-15",
		ReleaseDate: "2025-09-15",
	})
	assert.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "2025-09-15", resp.ReleaseDate)
	assert.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateScheduleRejectsEarlyRelease(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := schedule.NewService(db, &fakeScheduleRepository{})
	_, err = svc.Create(context.Background(), schedule.CreateScheduleRequest{
		PeriodStart: "2025-09-01",
		PeriodEnd:   "2025-09-15",
		ReleaseDate: "2025-09-10",
	})
	assert.ErrorIs(t, err, scheduleerrors.ErrReleaseBeforePeriodEnd)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateScheduleRejectsInvertedPeriod(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := schedule.NewService(db, &fakeScheduleRepository{})
	_, err = svc.Create(context.Background(), schedule.CreateScheduleRequest{
		PeriodStart: "2025-09-16",
		PeriodEnd:   "2025-09-15",
		ReleaseDate: "2025-09-30",
	})
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidPeriod)
}

func TestCreateScheduleRejectsBadDates(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := schedule.NewService(db, &fakeScheduleRepository{})
	_, err = svc.Create(context.Background(), schedule.CreateScheduleRequest{
		PeriodStart: "09/01/2025",
		PeriodEnd:   "2025-09-15",
		ReleaseDate: "2025-09-15",
	})
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidDateFormat)
}

func TestGetActiveSchedule(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeScheduleRepository{
		findActiveFn: func(ctx context.Context) (*schedule.ReleaseSchedule, error) {
			return &schedule.ReleaseSchedule{
				PeriodStart: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
				PeriodEnd:   time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
				ReleaseDate: time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
				IsActive:    true,
			}, nil
		},
	}

	svc := schedule.NewService(db, repo)
	resp, err := svc.GetActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "2025-09-01", resp.PeriodStart)
	assert.Equal(t, "2025-09-15", resp.PeriodEnd)
}

func TestGetActiveScheduleNone(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := schedule.NewService(db, &fakeScheduleRepository{})
	_, err = svc.GetActive(context.Background())
	assert.ErrorIs(t, err, scheduleerrors.ErrNoActiveSchedule)
}
