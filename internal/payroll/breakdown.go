package payroll

import "github.com/shopspring/decimal"

// Breakdown is the auditable net-pay computation for one employee and one
// period. It is returned by live previews and frozen verbatim at release.
type Breakdown struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`

	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	BasicSalary   decimal.Decimal `json:"basic_salary"` // pro-rated for the period

	OverloadItems            []OverloadItem            `json:"overload_items"`
	AttendanceDeductionItems []AttendanceDeductionItem `json:"attendance_deduction_items"`
	StandingDeductionItems   []StandingDeductionItem   `json:"standing_deduction_items"`
	LoanPaymentItems         []LoanPaymentItem         `json:"loan_payment_items"`

	GrossPay                  decimal.Decimal `json:"gross_pay"`
	TotalAttendanceDeductions decimal.Decimal `json:"total_attendance_deductions"`
	TotalStandingDeductions   decimal.Decimal `json:"total_standing_deductions"`
	TotalLoanPayments         decimal.Decimal `json:"total_loan_payments"`
	TotalDeductions           decimal.Decimal `json:"total_deductions"`
	NetPay                    decimal.Decimal `json:"net_pay"`
}

type OverloadItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type AttendanceDeductionItem struct {
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type StandingDeductionItem struct {
	Name      string          `json:"name"`
	Mandatory bool            `json:"mandatory"`
	AppliedAt string          `json:"applied_at"`
	Amount    decimal.Decimal `json:"amount"`
}

type LoanPaymentItem struct {
	LoanID           string          `json:"loan_id"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"` // after this payment
}

// Zeroed returns an empty breakdown for graceful preview degradation:
// the caller still gets a renderable shape, every figure at zero.
func Zeroed(employeeID, periodStart, periodEnd string) Breakdown {
	return Breakdown{
		EmployeeID:               employeeID,
		PeriodStart:              periodStart,
		PeriodEnd:                periodEnd,
		OverloadItems:            []OverloadItem{},
		AttendanceDeductionItems: []AttendanceDeductionItem{},
		StandingDeductionItems:   []StandingDeductionItem{},
		LoanPaymentItems:         []LoanPaymentItem{},
	}
}
