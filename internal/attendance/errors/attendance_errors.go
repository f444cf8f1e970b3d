package attendanceerrors

import (
	"net/http"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrAlreadyPunchedIn = apperror.New(
		apperror.CodeConflict,
		"already punched in for today",
		http.StatusConflict,
	)
	ErrAlreadyPunchedOut = apperror.New(
		apperror.CodeConflict,
		"already punched out for today",
		http.StatusConflict,
	)
	ErrNoPunchIn = apperror.New(
		apperror.CodeInvalidState,
		"punch in not found for today",
		http.StatusBadRequest,
	)
	ErrOutsidePunchWindow = apperror.New(
		apperror.CodeInvalidState,
		"punch is outside the configured time window",
		http.StatusBadRequest,
	)
	ErrDayMarkedAbsent = apperror.New(
		apperror.CodeInvalidState,
		"day is already marked absent",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date range, expected start and end as YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
