package payroll_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/events"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/loan"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/messaging/kafka"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/payroll"
	payrollerrors "github.com/Cjblack21/ckcm-payroll-sub001/internal/payroll/errors"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func releaseClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.September, 20, 10, 0, 0, 0, time.UTC)
	}
}

func TestReleaseFreezesSnapshotAndSettlesLoans(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	empID := uuid.New()
	attendanceRepo, deductionRepo, loanRepo, payrollRepo := goldenScenario(empID)

	var created *payroll.PayrollEntry
	payrollRepo.createFn = func(ctx context.Context, e *payroll.PayrollEntry) error {
		created = e
		return nil
	}

	var settledLoan *loan.Loan
	loanRepo.updateFn = func(ctx context.Context, l *loan.Loan) error {
		settledLoan = l
		return nil
	}

	var staged []kafka.OutboxEvent
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			staged = append(staged, event)
			return nil
		},
	}

	employeeRepo := &fakeEmployeeRepository{
		findSalaryBasisFn: func(ctx context.Context, ids []string) (map[string]employee.SalaryBasis, []string, error) {
			return map[string]employee.SalaryBasis{empID.String(): goldenBasis(empID)}, nil, nil
		},
	}

	engine := payroll.NewEngine(attendanceRepo, deductionRepo, loanRepo, payrollRepo).
		WithClock(releaseClock())
	orchestrator := payroll.NewReleaseOrchestrator(
		db, payrollRepo, engine, employeeRepo, loanRepo,
		&fakeSettingsService{current: settings.Defaults()},
		outbox, &fakeCounterRepository{}, period.SemiMonthly{},
	).WithClock(releaseClock())

	resp, err := orchestrator.Release(context.Background(), "admin-1", payroll.ReleaseRequest{
		EmployeeIDs: []string{empID.String()},
		PeriodStart: "2025-09-01",
		PeriodEnd:   "2025-09-15",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Len(t, resp.Released, 1)
	assert.Equal(t, "8831.44", resp.Released[0].NetPay)
	assert.Equal(t, payroll.StatusReleased, resp.Released[0].Status)
	assert.Equal(t, "PR-2025-0001", *resp.Released[0].RefNo)

	// The snapshot is the exact breakdown, frozen.
	assert.NotNil(t, created)
	var frozen payroll.Breakdown
	assert.NoError(t, json.Unmarshal(created.Snapshot, &frozen))
	assert.Equal(t, "8831.44", frozen.NetPay.StringFixed(2))
	assert.Equal(t, "1168.56", frozen.TotalDeductions.StringFixed(2))

	// The loan balance moved by the same amount the snapshot shows.
	assert.NotNil(t, settledLoan)
	assert.Equal(t, "4750.00", settledLoan.Balance.StringFixed(2))
	assert.Equal(t, loan.StatusActive, settledLoan.Status)

	// One event staged, inside the transaction.
	assert.Len(t, staged, 1)
	assert.Equal(t, events.PayrollReleasedTopic, staged[0].Topic)
	assert.Equal(t, kafka.OutboxStatusPending, staged[0].Status)
}

func TestReleaseRefusesOverlappingPeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	empID := uuid.New()
	attendanceRepo, deductionRepo, loanRepo, payrollRepo := goldenScenario(empID)
	payrollRepo.hasReleasedOverlappingFn = func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
		return true, nil
	}

	employeeRepo := &fakeEmployeeRepository{
		findSalaryBasisFn: func(ctx context.Context, ids []string) (map[string]employee.SalaryBasis, []string, error) {
			return map[string]employee.SalaryBasis{empID.String(): goldenBasis(empID)}, nil, nil
		},
	}

	engine := payroll.NewEngine(attendanceRepo, deductionRepo, loanRepo, payrollRepo).
		WithClock(releaseClock())
	orchestrator := payroll.NewReleaseOrchestrator(
		db, payrollRepo, engine, employeeRepo, loanRepo,
		&fakeSettingsService{current: settings.Defaults()},
		&fakeOutboxRepository{}, &fakeCounterRepository{}, period.SemiMonthly{},
	).WithClock(releaseClock())

	_, err = orchestrator.Release(context.Background(), "admin-1", payroll.ReleaseRequest{
		EmployeeIDs: []string{empID.String()},
		PeriodStart: "2025-09-01",
		PeriodEnd:   "2025-09-15",
	})
	assert.ErrorIs(t, err, payrollerrors.ErrPeriodAlreadyReleased)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseFailsClosedOnMissingSalaryBasis(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	empID := uuid.New()
	attendanceRepo, deductionRepo, loanRepo, payrollRepo := goldenScenario(empID)

	employeeRepo := &fakeEmployeeRepository{
		findSalaryBasisFn: func(ctx context.Context, ids []string) (map[string]employee.SalaryBasis, []string, error) {
			return map[string]employee.SalaryBasis{}, []string{empID.String()}, nil
		},
	}

	engine := payroll.NewEngine(attendanceRepo, deductionRepo, loanRepo, payrollRepo).
		WithClock(releaseClock())
	orchestrator := payroll.NewReleaseOrchestrator(
		db, payrollRepo, engine, employeeRepo, loanRepo,
		&fakeSettingsService{current: settings.Defaults()},
		&fakeOutboxRepository{}, &fakeCounterRepository{}, period.SemiMonthly{},
	).WithClock(releaseClock())

	_, err = orchestrator.Release(context.Background(), "admin-1", payroll.ReleaseRequest{
		EmployeeIDs: []string{empID.String()},
		PeriodStart: "2025-09-01",
		PeriodEnd:   "2025-09-15",
	})
	assert.ErrorIs(t, err, payrollerrors.ErrMissingSalaryBasis)

	// Refused before any transaction was opened.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleasePromotesPendingEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	empID := uuid.New()
	attendanceRepo, deductionRepo, loanRepo, payrollRepo := goldenScenario(empID)

	pending := &payroll.PayrollEntry{
		ID:          uuid.New(),
		EmployeeID:  empID,
		PeriodStart: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC),
		Status:      payroll.StatusPending,
	}
	payrollRepo.findPendingByEmployeeAndPeriodFn = func(ctx context.Context, employeeID string, start, end time.Time) (*payroll.PayrollEntry, error) {
		return pending, nil
	}

	var updated *payroll.PayrollEntry
	payrollRepo.updateFn = func(ctx context.Context, e *payroll.PayrollEntry) error {
		updated = e
		return nil
	}
	payrollRepo.createFn = func(ctx context.Context, e *payroll.PayrollEntry) error {
		t.Fatal("pending entry must be promoted, not duplicated")
		return nil
	}

	employeeRepo := &fakeEmployeeRepository{
		findSalaryBasisFn: func(ctx context.Context, ids []string) (map[string]employee.SalaryBasis, []string, error) {
			return map[string]employee.SalaryBasis{empID.String(): goldenBasis(empID)}, nil, nil
		},
	}

	engine := payroll.NewEngine(attendanceRepo, deductionRepo, loanRepo, payrollRepo).
		WithClock(releaseClock())
	orchestrator := payroll.NewReleaseOrchestrator(
		db, payrollRepo, engine, employeeRepo, loanRepo,
		&fakeSettingsService{current: settings.Defaults()},
		&fakeOutboxRepository{}, &fakeCounterRepository{}, period.SemiMonthly{},
	).WithClock(releaseClock())

	_, err = orchestrator.Release(context.Background(), "admin-1", payroll.ReleaseRequest{
		EmployeeIDs: []string{empID.String()},
		PeriodStart: "2025-09-01",
		PeriodEnd:   "2025-09-15",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NotNil(t, updated)
	assert.Equal(t, pending.ID, updated.ID)
	assert.Equal(t, payroll.StatusReleased, updated.Status)
	assert.NotEmpty(t, updated.Snapshot)
}

// A failure on any employee in the batch must abort the whole release:
// entries and loan updates already staged for earlier employees ride the
// same transaction and roll back with it.
func TestReleaseRollsBackBatchOnMidBatchFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	first := uuid.New()
	second := uuid.New()
	attendanceRepo, deductionRepo, loanRepo, payrollRepo := goldenScenario(first)

	payrollRepo.hasReleasedOverlappingFn = func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
		return employeeID == second.String(), nil
	}

	created := 0
	payrollRepo.createFn = func(ctx context.Context, e *payroll.PayrollEntry) error {
		created++
		return nil
	}
	settled := 0
	loanRepo.updateFn = func(ctx context.Context, l *loan.Loan) error {
		settled++
		return nil
	}
	staged := 0
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			staged++
			return nil
		},
	}

	employeeRepo := &fakeEmployeeRepository{
		findSalaryBasisFn: func(ctx context.Context, ids []string) (map[string]employee.SalaryBasis, []string, error) {
			return map[string]employee.SalaryBasis{
				first.String():  goldenBasis(first),
				second.String(): goldenBasis(second),
			}, nil, nil
		},
	}

	engine := payroll.NewEngine(attendanceRepo, deductionRepo, loanRepo, payrollRepo).
		WithClock(releaseClock())
	orchestrator := payroll.NewReleaseOrchestrator(
		db, payrollRepo, engine, employeeRepo, loanRepo,
		&fakeSettingsService{current: settings.Defaults()},
		outbox, &fakeCounterRepository{}, period.SemiMonthly{},
	).WithClock(releaseClock())

	_, err = orchestrator.Release(context.Background(), "admin-1", payroll.ReleaseRequest{
		EmployeeIDs: []string{first.String(), second.String()},
		PeriodStart: "2025-09-01",
		PeriodEnd:   "2025-09-15",
	})
	assert.ErrorIs(t, err, payrollerrors.ErrPeriodAlreadyReleased)

	// The first employee's writes went to the tx-bound repositories, and
	// that transaction rolled back instead of committing.
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, settled)
	assert.Equal(t, 1, staged)
	assert.Equal(t, 1, payrollRepo.withTxCalls)
	assert.Equal(t, 1, loanRepo.withTxCalls)
	assert.Equal(t, 1, outbox.withTxCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
