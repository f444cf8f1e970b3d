package attendance

type PunchInRequest struct {
	Notes *string `json:"notes"`
}

type PunchOutRequest struct {
	Notes *string `json:"notes"`
}

type ListAttendanceRequest struct {
	EmployeeID string `form:"employee_id"`
	Start      string `form:"start"`
	End        string `form:"end"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	AttendanceDate string  `json:"attendance_date"`
	TimeIn         *string `json:"time_in,omitempty"`
	TimeOut        *string `json:"time_out,omitempty"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
}
