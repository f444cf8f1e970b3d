package payroll_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/attendance"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/deduction"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/loan"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/messaging/kafka"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/payroll"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"

	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	findByEmployeeAndRangeFn func(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository { return f }
func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	return nil
}
func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepository) FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	if f.findByEmployeeAndRangeFn != nil {
		return f.findByEmployeeAndRangeFn(ctx, employeeID, start, end)
	}
	return nil, nil
}
func (f *fakeAttendanceRepository) FindAllByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	return nil
}

type fakeDeductionRepository struct {
	findRecordsByEmployeeFn func(ctx context.Context, employeeID string) ([]deduction.DeductionRecord, error)
}

func (f *fakeDeductionRepository) WithTx(tx *sql.Tx) deduction.Repository { return f }
func (f *fakeDeductionRepository) CreateType(ctx context.Context, t *deduction.DeductionType) error {
	return nil
}
func (f *fakeDeductionRepository) FindTypeByID(ctx context.Context, id string) (*deduction.DeductionType, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeDeductionRepository) FindTypeByName(ctx context.Context, name string) (*deduction.DeductionType, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeDeductionRepository) FindActiveTypes(ctx context.Context) ([]deduction.DeductionType, error) {
	return nil, nil
}
func (f *fakeDeductionRepository) UpdateType(ctx context.Context, t *deduction.DeductionType) error {
	return nil
}
func (f *fakeDeductionRepository) CreateRecord(ctx context.Context, r *deduction.DeductionRecord) error {
	return nil
}
func (f *fakeDeductionRepository) FindRecordsByEmployee(ctx context.Context, employeeID string) ([]deduction.DeductionRecord, error) {
	if f.findRecordsByEmployeeFn != nil {
		return f.findRecordsByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}
func (f *fakeDeductionRepository) HasRecordForDay(ctx context.Context, employeeID, typeID string, day time.Time) (bool, error) {
	return false, nil
}
func (f *fakeDeductionRepository) ArchiveRecord(ctx context.Context, id string) error { return nil }

type fakeLoanRepository struct {
	findActiveOverlappingFn func(ctx context.Context, employeeID string, start, end time.Time) ([]loan.Loan, error)
	updateFn                func(ctx context.Context, l *loan.Loan) error
	withTxCalls             int
}

func (f *fakeLoanRepository) WithTx(tx *sql.Tx) loan.Repository {
	f.withTxCalls++
	return f
}
func (f *fakeLoanRepository) Create(ctx context.Context, l *loan.Loan) error { return nil }
func (f *fakeLoanRepository) FindByID(ctx context.Context, id string) (*loan.Loan, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLoanRepository) FindByEmployee(ctx context.Context, employeeID string) ([]loan.Loan, error) {
	return nil, nil
}
func (f *fakeLoanRepository) FindActiveOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]loan.Loan, error) {
	if f.findActiveOverlappingFn != nil {
		return f.findActiveOverlappingFn(ctx, employeeID, start, end)
	}
	return nil, nil
}
func (f *fakeLoanRepository) Update(ctx context.Context, l *loan.Loan) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

type fakePayrollRepository struct {
	createFn                         func(ctx context.Context, e *payroll.PayrollEntry) error
	updateFn                         func(ctx context.Context, e *payroll.PayrollEntry) error
	findByIDFn                       func(ctx context.Context, id string) (*payroll.PayrollEntry, error)
	findAllFn                        func(ctx context.Context, status string) ([]payroll.PayrollEntry, error)
	findByEmployeeFn                 func(ctx context.Context, employeeID string) ([]payroll.PayrollEntry, error)
	hasReleasedOverlappingFn         func(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	findPendingByEmployeeAndPeriodFn func(ctx context.Context, employeeID string, start, end time.Time) (*payroll.PayrollEntry, error)
	findOverloadItemsFn              func(ctx context.Context, employeeID string, start, end time.Time) ([]payroll.OverloadItemRecord, error)
	archiveFn                        func(ctx context.Context, id string) error
	withTxCalls                      int
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	f.withTxCalls++
	return f
}
func (f *fakePayrollRepository) Create(ctx context.Context, e *payroll.PayrollEntry) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}
func (f *fakePayrollRepository) Update(ctx context.Context, e *payroll.PayrollEntry) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}
func (f *fakePayrollRepository) FindByID(ctx context.Context, id string) (*payroll.PayrollEntry, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePayrollRepository) FindAll(ctx context.Context, status string) ([]payroll.PayrollEntry, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, status)
	}
	return nil, nil
}
func (f *fakePayrollRepository) FindByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollEntry, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}
func (f *fakePayrollRepository) HasReleasedOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	if f.hasReleasedOverlappingFn != nil {
		return f.hasReleasedOverlappingFn(ctx, employeeID, start, end)
	}
	return false, nil
}
func (f *fakePayrollRepository) FindPendingByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) (*payroll.PayrollEntry, error) {
	if f.findPendingByEmployeeAndPeriodFn != nil {
		return f.findPendingByEmployeeAndPeriodFn(ctx, employeeID, start, end)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePayrollRepository) FindOverloadItems(ctx context.Context, employeeID string, start, end time.Time) ([]payroll.OverloadItemRecord, error) {
	if f.findOverloadItemsFn != nil {
		return f.findOverloadItemsFn(ctx, employeeID, start, end)
	}
	return nil, nil
}
func (f *fakePayrollRepository) Archive(ctx context.Context, id string) error {
	if f.archiveFn != nil {
		return f.archiveFn(ctx, id)
	}
	return nil
}

type fakeEmployeeRepository struct {
	findActiveFn      func(ctx context.Context) ([]employee.Employee, error)
	findSalaryBasisFn func(ctx context.Context, employeeIDs []string) (map[string]employee.SalaryBasis, []string, error)
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepository) FindActive(ctx context.Context) ([]employee.Employee, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx)
	}
	return nil, nil
}
func (f *fakeEmployeeRepository) FindSalaryBasis(ctx context.Context, employeeIDs []string) (map[string]employee.SalaryBasis, []string, error) {
	if f.findSalaryBasisFn != nil {
		return f.findSalaryBasisFn(ctx, employeeIDs)
	}
	return map[string]employee.SalaryBasis{}, nil, nil
}

type fakeSettingsService struct {
	current settings.AttendanceSettings
}

func (f *fakeSettingsService) Get(ctx context.Context) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}
func (f *fakeSettingsService) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	return settings.SettingsResponse{}, nil
}
func (f *fakeSettingsService) Current(ctx context.Context) (settings.AttendanceSettings, error) {
	return f.current, nil
}

type fakeOutboxRepository struct {
	createFn    func(ctx context.Context, event kafka.OutboxEvent) error
	withTxCalls int
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	f.withTxCalls++
	return f
}
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}
