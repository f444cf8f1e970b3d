package attendance

import (
	"net/http"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/apperror"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// punch endpoints act on the authenticated employee, never a payload id.

func (h *Handler) PunchIn(c *gin.Context) {
	var req PunchInRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.PunchIn(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) PunchOut(c *gin.Context) {
	var req PunchOutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.PunchOut(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var req ListAttendanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	// Non-admins see only their own records.
	if c.GetString("role") != "admin" {
		req.EmployeeID = c.GetString("employee_id")
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
