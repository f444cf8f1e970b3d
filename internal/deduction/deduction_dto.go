package deduction

type CreateTypeRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount" binding:"required"`
	IsPercentage bool    `json:"is_percentage"`
	IsMandatory  bool    `json:"is_mandatory"`
}

type UpdateTypeRequest struct {
	Description  *string  `json:"description"`
	Amount       *float64 `json:"amount"`
	IsPercentage *bool    `json:"is_percentage"`
	IsMandatory  *bool    `json:"is_mandatory"`
	IsActive     *bool    `json:"is_active"`
}

type TypeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Amount       string `json:"amount"`
	IsPercentage bool   `json:"is_percentage"`
	IsMandatory  bool   `json:"is_mandatory"`
	IsActive     bool   `json:"is_active"`
}

type ApplyRecordRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	TypeID     string  `json:"type_id" binding:"required,uuid"`
	Notes      *string `json:"notes"`
}

type RecordResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	TypeID      string  `json:"type_id"`
	TypeName    string  `json:"type_name,omitempty"`
	IsMandatory bool    `json:"is_mandatory"`
	Amount      string  `json:"amount"`
	AppliedAt   string  `json:"applied_at"`
	Notes       *string `json:"notes,omitempty"`
}
