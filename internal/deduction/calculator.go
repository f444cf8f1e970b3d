package deduction

import (
	"fmt"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shift"

	"github.com/shopspring/decimal"
)

var (
	secondsPerHr  = decimal.NewFromInt(3600)
	halfDayFactor = decimal.NewFromFloat(0.5)
)

// DayInput is everything needed to price one classified attendance day.
type DayInput struct {
	Status         string
	TimeIn         *time.Time
	TimeOut        *time.Time
	ExpectedTimeIn time.Time // time-in window end + grace
	TimeOutStart   time.Time // start of the time-out window, for early-out
	MonthlySalary  decimal.Decimal
	WorkingDays    int // working days per month; <= 0 falls back to 22
	ShiftHours     int // <= 0 falls back to the standard 8
	EarlyOut       bool
}

// DayDeduction is one priced attendance day, ready for the breakdown.
type DayDeduction struct {
	Date        time.Time
	Status      string
	Description string
	Amount      decimal.Decimal
}

// DailyRate is monthlySalary / workingDays, the unit all attendance
// deductions derive from.
func DailyRate(monthlySalary decimal.Decimal, workingDays int) decimal.Decimal {
	if workingDays <= 0 {
		workingDays = period.DefaultWorkingDays
	}
	return monthlySalary.Div(decimal.NewFromInt(int64(workingDays)))
}

// ForDay prices a single classified day. PRESENT days and unknown statuses
// price to zero; every returned amount is non-negative and rounded to
// centavos.
func ForDay(in DayInput) (DayDeduction, bool) {
	shiftHours := in.ShiftHours
	if shiftHours <= 0 {
		shiftHours = shift.FullHours
	}
	dailyRate := DailyRate(in.MonthlySalary, in.WorkingDays)

	var amount decimal.Decimal
	var desc string

	switch in.Status {
	case shift.StatusLate:
		if in.TimeIn == nil {
			return DayDeduction{}, false
		}
		secondsLate := int64(in.TimeIn.Sub(in.ExpectedTimeIn).Seconds())
		if secondsLate < 0 {
			secondsLate = 0
		}
		amount = lateAmount(dailyRate, shiftHours, secondsLate)
		desc = fmt.Sprintf("Late by %d seconds", secondsLate)

	case shift.StatusAbsent:
		amount = dailyRate
		desc = "Absent (full day)"

	case shift.StatusPartial:
		if in.TimeIn == nil || in.TimeOut == nil {
			return DayDeduction{}, false
		}
		worked := decimal.NewFromFloat(in.TimeOut.Sub(*in.TimeIn).Hours())
		short := decimal.NewFromInt(int64(shiftHours)).Sub(worked)
		if short.IsNegative() {
			short = decimal.Zero
		}
		hourlyRate := dailyRate.Div(decimal.NewFromInt(int64(shiftHours)))
		amount = short.Mul(hourlyRate)
		desc = fmt.Sprintf("Partial day, short %s hours", short.Round(2))

	default:
		return DayDeduction{}, false
	}

	// Optional early time-out penalty, symmetric to the late rule.
	if in.EarlyOut && in.Status != shift.StatusPartial && in.TimeOut != nil && in.TimeOut.Before(in.TimeOutStart) {
		secondsEarly := int64(in.TimeOutStart.Sub(*in.TimeOut).Seconds())
		early := lateAmount(dailyRate, shiftHours, secondsEarly)
		amount = amount.Add(early)
		desc = fmt.Sprintf("%s; early out by %d seconds", desc, secondsEarly)
	}

	if amount.IsNegative() {
		amount = decimal.Zero
	}

	return DayDeduction{
		Status:      in.Status,
		Description: desc,
		Amount:      amount.Round(2),
	}, true
}

// lateAmount prices seconds of missed time at the per-second rate, capped
// at half a day's pay.
func lateAmount(dailyRate decimal.Decimal, shiftHours int, seconds int64) decimal.Decimal {
	if seconds <= 0 {
		return decimal.Zero
	}
	perSecond := dailyRate.
		Div(decimal.NewFromInt(int64(shiftHours))).
		Div(secondsPerHr)
	amount := perSecond.Mul(decimal.NewFromInt(seconds))

	ceiling := dailyRate.Mul(halfDayFactor)
	if amount.GreaterThan(ceiling) {
		return ceiling
	}
	return amount
}
