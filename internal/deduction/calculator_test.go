package deduction_test

import (
	"testing"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/attendance"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/deduction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var monthly = decimal.NewFromInt(20000)

func baseInput(status string) deduction.DayInput {
	return deduction.DayInput{
		Status:         status,
		ExpectedTimeIn: time.Date(2025, time.September, 1, 8, 1, 0, 0, time.UTC),
		TimeOutStart:   time.Date(2025, time.September, 1, 16, 0, 0, 0, time.UTC),
		MonthlySalary:  monthly,
		WorkingDays:    22,
		ShiftHours:     8,
	}
}

func TestDailyRate(t *testing.T) {
	rate := deduction.DailyRate(monthly, 22)
	assert.Equal(t, "909.09", rate.Round(2).String())
}

func TestDailyRateFallbackDivisor(t *testing.T) {
	withDefault := deduction.DailyRate(monthly, 0)
	with22 := deduction.DailyRate(monthly, 22)
	assert.True(t, withDefault.Equal(with22))
}

func TestForDayLateFiveMinutes(t *testing.T) {
	in := baseInput(attendance.StatusLate)
	timeIn := in.ExpectedTimeIn.Add(300 * time.Second)
	in.TimeIn = &timeIn

	d, ok := deduction.ForDay(in)
	assert.True(t, ok)
	assert.Equal(t, "9.47", d.Amount.String())
	assert.Equal(t, "Late by 300 seconds", d.Description)
}

func TestForDayLateOnTimePunchPricesZero(t *testing.T) {
	in := baseInput(attendance.StatusLate)
	timeIn := in.ExpectedTimeIn
	in.TimeIn = &timeIn

	d, ok := deduction.ForDay(in)
	assert.True(t, ok)
	assert.True(t, d.Amount.IsZero())
}

func TestForDayLateCappedAtHalfDay(t *testing.T) {
	in := baseInput(attendance.StatusLate)
	timeIn := in.ExpectedTimeIn.Add(7 * time.Hour)
	in.TimeIn = &timeIn

	d, ok := deduction.ForDay(in)
	assert.True(t, ok)
	assert.Equal(t, "454.55", d.Amount.String())
}

func TestForDayLateMonotonic(t *testing.T) {
	in := baseInput(attendance.StatusLate)

	prev := decimal.Zero
	for _, seconds := range []int{1, 60, 300, 1800, 3600} {
		timeIn := in.ExpectedTimeIn.Add(time.Duration(seconds) * time.Second)
		in.TimeIn = &timeIn

		d, ok := deduction.ForDay(in)
		assert.True(t, ok)
		assert.True(t, d.Amount.GreaterThanOrEqual(prev),
			"amount must not shrink as lateness grows")
		prev = d.Amount
	}
}

func TestForDayAbsent(t *testing.T) {
	d, ok := deduction.ForDay(baseInput(attendance.StatusAbsent))
	assert.True(t, ok)
	assert.Equal(t, "909.09", d.Amount.String())
	assert.Equal(t, "Absent (full day)", d.Description)
}

func TestForDayPartialTwoHoursShort(t *testing.T) {
	in := baseInput(attendance.StatusPartial)
	timeIn := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(6 * time.Hour)
	in.TimeIn = &timeIn
	in.TimeOut = &timeOut

	d, ok := deduction.ForDay(in)
	assert.True(t, ok)
	assert.Equal(t, "227.27", d.Amount.String())
}

func TestForDayPartialOverworkedPricesZero(t *testing.T) {
	in := baseInput(attendance.StatusPartial)
	timeIn := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	timeOut := timeIn.Add(9 * time.Hour)
	in.TimeIn = &timeIn
	in.TimeOut = &timeOut

	d, ok := deduction.ForDay(in)
	assert.True(t, ok)
	assert.True(t, d.Amount.IsZero())
}

func TestForDayPresentNotPriced(t *testing.T) {
	_, ok := deduction.ForDay(baseInput(attendance.StatusPresent))
	assert.False(t, ok)
}

func TestForDayEarlyOutAddsPenalty(t *testing.T) {
	in := baseInput(attendance.StatusLate)
	in.EarlyOut = true
	timeIn := in.ExpectedTimeIn.Add(300 * time.Second)
	timeOut := in.TimeOutStart.Add(-600 * time.Second)
	in.TimeIn = &timeIn
	in.TimeOut = &timeOut

	d, ok := deduction.ForDay(in)
	assert.True(t, ok)

	lateOnly := decimal.RequireFromString("9.47")
	assert.True(t, d.Amount.GreaterThan(lateOnly))
	assert.Contains(t, d.Description, "early out by 600 seconds")
}

func TestForDayEarlyOutDisabled(t *testing.T) {
	in := baseInput(attendance.StatusLate)
	in.EarlyOut = false
	timeIn := in.ExpectedTimeIn.Add(300 * time.Second)
	timeOut := in.TimeOutStart.Add(-600 * time.Second)
	in.TimeIn = &timeIn
	in.TimeOut = &timeOut

	d, ok := deduction.ForDay(in)
	assert.True(t, ok)
	assert.Equal(t, "9.47", d.Amount.String())
}

func TestResolveAmountPercentage(t *testing.T) {
	dt := deduction.DeductionType{
		Amount:       decimal.NewFromInt(5),
		IsPercentage: true,
	}
	assert.Equal(t, "1000.00", dt.ResolveAmount(monthly).StringFixed(2))
}

func TestResolveAmountFixed(t *testing.T) {
	dt := deduction.DeductionType{
		Amount: decimal.NewFromFloat(150.555),
	}
	assert.Equal(t, "150.56", dt.ResolveAmount(monthly).StringFixed(2))
}

func TestForDayNeverNegative(t *testing.T) {
	in := baseInput(attendance.StatusLate)
	timeIn := in.ExpectedTimeIn.Add(-2 * time.Hour)
	in.TimeIn = &timeIn

	d, ok := deduction.ForDay(in)
	assert.True(t, ok)
	assert.False(t, d.Amount.IsNegative())
}
