package deductionerrors

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
	ErrInvalidTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid deduction type id",
		http.StatusBadRequest,
	)
	ErrTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"deduction type not found",
		http.StatusNotFound,
	)
	ErrTypeInactive = apperror.New(
		apperror.CodeInvalidState,
		"deduction type is inactive",
		http.StatusBadRequest,
	)
	ErrReservedTypeName = apperror.New(
		apperror.CodeInvalidInput,
		"deduction type name is reserved for attendance deductions",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"deduction amount cannot be negative",
		http.StatusBadRequest,
	)
)
