package payroll

import (
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"

	"github.com/shopspring/decimal"
)

// ProRatedBase converts a monthly salary to the period's base pay using
// calendar-day proportion: monthly * periodDays / daysInMonth.
func ProRatedBase(monthly decimal.Decimal, span period.Span) decimal.Decimal {
	days := decimal.NewFromInt(int64(span.Days()))
	inMonth := decimal.NewFromInt(int64(period.DaysInMonth(span.Start)))
	if inMonth.IsZero() {
		return decimal.Zero
	}
	return monthly.Mul(days).Div(inMonth).Round(2)
}

// Assemble produces the final breakdown from the pro-rated base, overload
// items, and the aggregated deduction buckets. Net pay is floored at zero;
// unrecovered deductions are not carried forward.
func Assemble(
	employeeID, employeeName string,
	span period.Span,
	monthly decimal.Decimal,
	overloads []OverloadItemRecord,
	totals DeductionTotals,
) Breakdown {
	basic := ProRatedBase(monthly, span)

	overloadItems := make([]OverloadItem, 0, len(overloads))
	overloadTotal := decimal.Zero
	for _, o := range overloads {
		amount := o.Amount.Round(2)
		overloadItems = append(overloadItems, OverloadItem{Name: o.Name, Amount: amount})
		overloadTotal = overloadTotal.Add(amount)
	}

	gross := basic.Add(overloadTotal)
	totalDeductions := totals.Total()

	net := gross.Sub(totalDeductions)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return Breakdown{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		PeriodStart:  span.Start.Format("2006-01-02"),
		PeriodEnd:    span.End.Format("2006-01-02"),

		MonthlySalary: monthly,
		BasicSalary:   basic,

		OverloadItems:            overloadItems,
		AttendanceDeductionItems: totals.AttendanceItems,
		StandingDeductionItems:   totals.StandingItems,
		LoanPaymentItems:         totals.LoanItems,

		GrossPay:                  gross,
		TotalAttendanceDeductions: totals.TotalAttendance,
		TotalStandingDeductions:   totals.TotalStanding,
		TotalLoanPayments:         totals.TotalLoans,
		TotalDeductions:           totalDeductions,
		NetPay:                    net,
	}
}
