package payroll

import (
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/deduction"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/loan"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"

	"github.com/shopspring/decimal"
)

// DeductionTotals is the per-employee accumulator of all three deduction
// buckets. Built by deterministic folds so the same inputs always produce
// the same breakdown.
type DeductionTotals struct {
	AttendanceItems []AttendanceDeductionItem
	StandingItems   []StandingDeductionItem
	LoanItems       []LoanPaymentItem

	TotalAttendance decimal.Decimal
	TotalStanding   decimal.Decimal
	TotalLoans      decimal.Decimal
}

func (t DeductionTotals) Total() decimal.Decimal {
	return t.TotalAttendance.Add(t.TotalStanding).Add(t.TotalLoans)
}

// FoldAttendance sums priced attendance days into the first bucket.
func FoldAttendance(days []deduction.DayDeduction) ([]AttendanceDeductionItem, decimal.Decimal) {
	items := make([]AttendanceDeductionItem, 0, len(days))
	total := decimal.Zero

	for _, d := range days {
		if d.Amount.IsZero() {
			continue
		}
		items = append(items, AttendanceDeductionItem{
			Date:        d.Date.Format("2006-01-02"),
			Status:      d.Status,
			Description: d.Description,
			Amount:      d.Amount,
		})
		total = total.Add(d.Amount)
	}
	return items, total
}

// FoldStanding selects persisted deduction records for the period.
// Mandatory types apply every period regardless of their applied-at date;
// optional types only when applied inside the period. Records carrying
// attendance-reserved type names are skipped: those days are priced live
// by FoldAttendance and must not count twice.
func FoldStanding(records []deduction.DeductionRecord, span period.Span) ([]StandingDeductionItem, decimal.Decimal) {
	items := make([]StandingDeductionItem, 0, len(records))
	total := decimal.Zero

	for _, r := range records {
		if r.Type == nil || deduction.AttendanceTypeNames[r.Type.Name] {
			continue
		}
		if !r.Type.IsMandatory && !span.Contains(r.AppliedAt) {
			continue
		}

		amount := r.Amount.Round(2)
		items = append(items, StandingDeductionItem{
			Name:      r.Type.Name,
			Mandatory: r.Type.IsMandatory,
			AppliedAt: r.AppliedAt.Format(time.RFC3339),
			Amount:    amount,
		})
		total = total.Add(amount)
	}
	return items, total
}

// FoldLoans prices one period's payment for each active overlapping loan.
// The remaining balance shown is what the balance will be once the
// release applies this payment.
func FoldLoans(loans []loan.Loan, periodDays int, strategy loan.Strategy) ([]LoanPaymentItem, decimal.Decimal) {
	items := make([]LoanPaymentItem, 0, len(loans))
	total := decimal.Zero

	for _, l := range loans {
		payment := loan.PaymentForPeriod(l, periodDays, strategy)
		if payment.IsZero() {
			continue
		}
		remaining, _ := loan.Apply(l, payment)
		items = append(items, LoanPaymentItem{
			LoanID:           l.ID.String(),
			Amount:           payment,
			RemainingBalance: remaining,
		})
		total = total.Add(payment)
	}
	return items, total
}

// Aggregate merges the three buckets into one accumulator.
func Aggregate(
	days []deduction.DayDeduction,
	records []deduction.DeductionRecord,
	loans []loan.Loan,
	span period.Span,
	strategy loan.Strategy,
) DeductionTotals {
	attendanceItems, attendanceTotal := FoldAttendance(days)
	standingItems, standingTotal := FoldStanding(records, span)
	loanItems, loanTotal := FoldLoans(loans, span.Days(), strategy)

	return DeductionTotals{
		AttendanceItems: attendanceItems,
		StandingItems:   standingItems,
		LoanItems:       loanItems,
		TotalAttendance: attendanceTotal,
		TotalStanding:   standingTotal,
		TotalLoans:      loanTotal,
	}
}
