package loan

type CreateLoanRequest struct {
	EmployeeID            string  `json:"employee_id" binding:"required,uuid"`
	Principal             float64 `json:"principal" binding:"required"`
	MonthlyPaymentPercent float64 `json:"monthly_payment_percent" binding:"required"`
	TermMonths            int     `json:"term_months" binding:"required,min=1"`
	StartDate             string  `json:"start_date" binding:"required"`
	EndDate               *string `json:"end_date"`
}

type LoanResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	Principal             string  `json:"principal"`
	MonthlyPaymentPercent string  `json:"monthly_payment_percent"`
	MonthlyPayment        string  `json:"monthly_payment"`
	TermMonths            int     `json:"term_months"`
	Balance               string  `json:"balance"`
	Status                string  `json:"status"`
	StartDate             string  `json:"start_date"`
	EndDate               *string `json:"end_date,omitempty"`
}
