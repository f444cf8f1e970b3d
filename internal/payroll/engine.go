package payroll

import (
	"context"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/attendance"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/deduction"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/loan"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"
)

// Engine computes one employee's breakdown for one period. Previews and
// releases run the exact same computation: attendance days are priced
// only up to today, while base pay pro-ration and loan payments use the
// full period span, so a preview taken mid-period already shows the
// figures a release would freeze.
type Engine struct {
	attendanceRepo attendance.Repository
	deductionRepo  deduction.Repository
	loanRepo       loan.Repository
	payrollRepo    Repository
	strategy       loan.Strategy
	now            func() time.Time
}

func NewEngine(
	attendanceRepo attendance.Repository,
	deductionRepo deduction.Repository,
	loanRepo loan.Repository,
	payrollRepo Repository,
) *Engine {
	return &Engine{
		attendanceRepo: attendanceRepo,
		deductionRepo:  deductionRepo,
		loanRepo:       loanRepo,
		payrollRepo:    payrollRepo,
		strategy:       loan.DefaultStrategy,
		now:            time.Now,
	}
}

// WithClock pins the clock for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) WithStrategy(s loan.Strategy) *Engine {
	e.strategy = s
	return e
}

// Compute builds the full breakdown for one employee over one span.
func (e *Engine) Compute(
	ctx context.Context,
	basis employee.SalaryBasis,
	span period.Span,
	cfg settings.AttendanceSettings,
) (Breakdown, error) {
	employeeID := basis.EmployeeID.String()
	capped := period.CapToToday(span, e.now())

	attRecords, err := e.attendanceRepo.FindByEmployeeAndRange(ctx, employeeID, capped.Start, capped.End)
	if err != nil {
		return Breakdown{}, err
	}
	days := e.priceAttendance(attRecords, basis, cfg)

	dedRecords, err := e.deductionRepo.FindRecordsByEmployee(ctx, employeeID)
	if err != nil {
		return Breakdown{}, err
	}

	activeLoans, err := e.loanRepo.FindActiveOverlapping(ctx, employeeID, span.Start, span.End)
	if err != nil {
		return Breakdown{}, err
	}

	overloads, err := e.payrollRepo.FindOverloadItems(ctx, employeeID, span.Start, span.End)
	if err != nil {
		return Breakdown{}, err
	}

	totals := Aggregate(days, dedRecords, activeLoans, span, e.strategy)
	return Assemble(employeeID, basis.FullName, span, basis.MonthlySalary, overloads, totals), nil
}

func (e *Engine) priceAttendance(
	records []attendance.Attendance,
	basis employee.SalaryBasis,
	cfg settings.AttendanceSettings,
) []deduction.DayDeduction {
	inWindow := cfg.TimeInWindow()
	outWindow := cfg.TimeOutWindow()

	days := make([]deduction.DayDeduction, 0, len(records))
	for _, rec := range records {
		day := rec.AttendanceDate
		priced, ok := deduction.ForDay(deduction.DayInput{
			Status:         rec.Status,
			TimeIn:         rec.TimeIn,
			TimeOut:        rec.TimeOut,
			ExpectedTimeIn: attendance.ExpectedTimeIn(day, inWindow),
			TimeOutStart:   outWindow.Start.At(day),
			MonthlySalary:  basis.MonthlySalary,
			WorkingDays:    cfg.WorkingDaysFor(day),
			EarlyOut:       cfg.EarlyOutPenalty,
		})
		if !ok {
			continue
		}
		priced.Date = day
		days = append(days, priced)
	}
	return days
}
