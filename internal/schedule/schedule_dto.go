package schedule

type CreateScheduleRequest struct {
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
	ReleaseDate string `json:"release_date" binding:"required"`
}

type ScheduleResponse struct {
	ID          string `json:"id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	ReleaseDate string `json:"release_date"`
	IsActive    bool   `json:"is_active"`
}

func mapToResponse(s ReleaseSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:          s.ID.String(),
		PeriodStart: s.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   s.PeriodEnd.Format("2006-01-02"),
		ReleaseDate: s.ReleaseDate.Format("2006-01-02"),
		IsActive:    s.IsActive,
	}
}
