package scheduleerrors

import (
	"net/http"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period_start must be before or equal period_end",
		http.StatusBadRequest,
	)
	ErrReleaseBeforePeriodEnd = apperror.New(
		apperror.CodeInvalidInput,
		"release_date must not be before period_end",
		http.StatusBadRequest,
	)
	ErrNoActiveSchedule = apperror.New(
		apperror.CodeNotFound,
		"no active release schedule",
		http.StatusNotFound,
	)
)
