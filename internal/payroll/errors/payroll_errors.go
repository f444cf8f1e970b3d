package payrollerrors

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
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll id",
		http.StatusBadRequest,
	)
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
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll entry not found",
		http.StatusNotFound,
	)
	ErrNoEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"no employees selected for release",
		http.StatusBadRequest,
	)
	ErrMissingSalaryBasis = apperror.New(
		apperror.CodeInvalidState,
		"one or more employees have no salary basis",
		http.StatusUnprocessableEntity,
	)
	ErrPeriodAlreadyReleased = apperror.New(
		apperror.CodeConflict,
		"a released payroll already overlaps this period",
		http.StatusConflict,
	)
	ErrNotReleased = apperror.New(
		apperror.CodeInvalidState,
		"payroll entry is not released",
		http.StatusBadRequest,
	)
	ErrAlreadyArchived = apperror.New(
		apperror.CodeInvalidState,
		"payroll entry is already archived",
		http.StatusBadRequest,
	)
	ErrNoSnapshot = apperror.New(
		apperror.CodeInvalidState,
		"payroll entry has no frozen breakdown",
		http.StatusConflict,
	)
)
