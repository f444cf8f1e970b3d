package settings

type UpdateSettingsRequest struct {
	TimeInStart      string `json:"time_in_start" binding:"required"`
	TimeInEnd        string `json:"time_in_end" binding:"required"`
	TimeOutStart     string `json:"time_out_start" binding:"required"`
	TimeOutEnd       string `json:"time_out_end" binding:"required"`
	AutoMarkAbsent   bool   `json:"auto_mark_absent"`
	EarlyOutPenalty  bool   `json:"early_out_penalty"`
	WorkingDays      string `json:"working_days" binding:"required"`
	WorkingDaysCount int    `json:"working_days_count" binding:"required,min=1,max=31"`
}

type SettingsResponse struct {
	TimeInStart      string `json:"time_in_start"`
	TimeInEnd        string `json:"time_in_end"`
	TimeOutStart     string `json:"time_out_start"`
	TimeOutEnd       string `json:"time_out_end"`
	AutoMarkAbsent   bool   `json:"auto_mark_absent"`
	EarlyOutPenalty  bool   `json:"early_out_penalty"`
	WorkingDays      string `json:"working_days"`
	WorkingDaysCount int    `json:"working_days_count"`
}
