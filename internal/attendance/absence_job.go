package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/deduction"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/events"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/messaging/kafka"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AbsentTypeName is the reserved deduction type the job writes under.
const AbsentTypeName = "Absent"

// AbsenceMarker marks employees with no punch-in as ABSENT once the
// time-out window has closed, and writes the matching deduction record.
// Re-running it within the same day is a no-op for already-marked days.
type AbsenceMarker struct {
	db         *sql.DB
	attendance Repository
	deductions deduction.Repository
	employees  employee.Repository
	settings   settings.Service
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewAbsenceMarker(
	db *sql.DB,
	attendanceRepo Repository,
	deductionRepo deduction.Repository,
	employeeRepo employee.Repository,
	settingsService settings.Service,
	logger *zap.Logger,
) *AbsenceMarker {
	return &AbsenceMarker{
		db:         db,
		attendance: attendanceRepo,
		deductions: deductionRepo,
		employees:  employeeRepo,
		settings:   settingsService,
		logger:     logger.Named("attendance.absence_marker"),
		now:        time.Now,
	}
}

// WithClock pins the clock for tests.
func (m *AbsenceMarker) WithClock(now func() time.Time) *AbsenceMarker {
	m.now = now
	return m
}

// WithOutbox stages an event for every marked absence, inside the same
// transaction as the attendance write.
func (m *AbsenceMarker) WithOutbox(outbox kafka.OutboxRepository) *AbsenceMarker {
	m.outbox = outbox
	return m
}

// Run executes one pass. It returns the number of employees newly marked.
func (m *AbsenceMarker) Run(ctx context.Context) (int, error) {
	cfg, err := m.settings.Current(ctx)
	if err != nil {
		return 0, err
	}
	if !cfg.AutoMarkAbsent {
		return 0, nil
	}

	now := m.now()
	today := period.StartOfDay(now)

	if !cfg.Workdays()[today.Weekday()] {
		return 0, nil
	}
	if !AbsenceCutoffPassed(today, now, cfg) {
		return 0, nil
	}

	absentType, err := m.deductions.FindTypeByName(ctx, AbsentTypeName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	employees, err := m.employees.FindActive(ctx)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, emp := range employees {
		ok, err := m.markOne(ctx, emp, today, now, cfg, absentType)
		if err != nil {
			m.logger.Error("mark absent failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if ok {
			marked++
		}
	}

	if marked > 0 {
		m.logger.Info("absence pass complete",
			zap.String("date", today.Format("2006-01-02")),
			zap.Int("marked", marked),
		)
	}
	return marked, nil
}

func (m *AbsenceMarker) markOne(
	ctx context.Context,
	emp employee.Employee,
	today, now time.Time,
	cfg settings.AttendanceSettings,
	absentType *deduction.DeductionType,
) (bool, error) {
	existing, err := m.attendance.FindByEmployeeAndDate(ctx, emp.ID.String(), today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	// A punch-in, or a prior pass, settles the day.
	if existing != nil && (existing.TimeIn != nil || existing.Terminal()) {
		return false, nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := m.attendance.WithTx(tx)

	if existing == nil {
		err = qtx.Create(ctx, &Attendance{
			ID:             uuid.New(),
			EmployeeID:     emp.ID,
			AttendanceDate: today,
			Status:         StatusAbsent,
		})
	} else {
		existing.Status = StatusAbsent
		err = qtx.Update(ctx, existing)
	}
	if err != nil {
		return false, err
	}

	if absentType != nil {
		if err := m.writeAbsentDeduction(ctx, tx, emp, today, now, cfg, absentType); err != nil {
			return false, err
		}
	}

	if m.outbox != nil {
		if err := m.stageAbsentEvent(ctx, tx, emp, today, now); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (m *AbsenceMarker) writeAbsentDeduction(
	ctx context.Context,
	tx *sql.Tx,
	emp employee.Employee,
	today, now time.Time,
	cfg settings.AttendanceSettings,
	absentType *deduction.DeductionType,
) error {
	exists, err := m.deductions.HasRecordForDay(ctx, emp.ID.String(), absentType.ID.String(), today)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	bases, missing, err := m.employees.FindSalaryBasis(ctx, []string{emp.ID.String()})
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		// No salary basis, nothing to price. The release precondition
		// reports these employees loudly; the job stays quiet.
		return nil
	}

	amount := deduction.DailyRate(
		bases[emp.ID.String()].MonthlySalary,
		cfg.WorkingDaysFor(today),
	).Round(2)

	return m.deductions.WithTx(tx).CreateRecord(ctx, &deduction.DeductionRecord{
		ID:              uuid.New(),
		EmployeeID:      emp.ID,
		DeductionTypeID: absentType.ID,
		Amount:          amount,
		AppliedAt:       now,
	})
}

func (m *AbsenceMarker) stageAbsentEvent(
	ctx context.Context,
	tx *sql.Tx,
	emp employee.Employee,
	today, now time.Time,
) error {
	payload, err := json.Marshal(events.AttendanceAbsentMarkedEvent{
		EventType:      events.EventTypeAbsentMarked,
		EmployeeID:     emp.ID.String(),
		AttendanceDate: today.Format("2006-01-02"),
		OccurredAt:     now,
	})
	if err != nil {
		return err
	}

	return m.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "attendance",
		AggregateID:   emp.ID.String(),
		EventType:     events.EventTypeAbsentMarked,
		Topic:         events.AttendanceAbsentMarkedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
