package payroll

type PreviewRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
}

type ReleaseRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
}

type ListPayrollsRequest struct {
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id"`
}

type PayrollResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	RefNo           *string `json:"ref_no,omitempty"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
	BasicSalary     string  `json:"basic_salary"`
	OverloadPay     string  `json:"overload_pay"`
	TotalDeductions string  `json:"total_deductions"`
	NetPay          string  `json:"net_pay"`
	Status          string  `json:"status"`
	ReleasedAt      *string `json:"released_at,omitempty"`
}

type ReleaseResponse struct {
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	Released    []PayrollResponse `json:"released"`
}

func mapToResponse(e PayrollEntry) PayrollResponse {
	resp := PayrollResponse{
		ID:              e.ID.String(),
		EmployeeID:      e.EmployeeID.String(),
		RefNo:           e.RefNo,
		PeriodStart:     e.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       e.PeriodEnd.Format("2006-01-02"),
		BasicSalary:     e.BasicSalary.StringFixed(2),
		OverloadPay:     e.OverloadPay.StringFixed(2),
		TotalDeductions: e.TotalDeductions.StringFixed(2),
		NetPay:          e.NetPay.StringFixed(2),
		Status:          e.Status,
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.FullName
	}
	if e.ReleasedAt != nil {
		s := e.ReleasedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ReleasedAt = &s
	}
	return resp
}

func mapToListResponse(rows []PayrollEntry) []PayrollResponse {
	out := make([]PayrollResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, mapToResponse(e))
	}
	return out
}
