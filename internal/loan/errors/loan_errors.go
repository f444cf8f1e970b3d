package loanerrors

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
	ErrInvalidLoanID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid loan id",
		http.StatusBadRequest,
	)
	ErrLoanNotFound = apperror.New(
		apperror.CodeNotFound,
		"loan not found",
		http.StatusNotFound,
	)
	ErrInvalidPrincipal = apperror.New(
		apperror.CodeInvalidInput,
		"loan principal must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidPercent = apperror.New(
		apperror.CodeInvalidInput,
		"monthly payment percent must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNotActive = apperror.New(
		apperror.CodeInvalidState,
		"loan is not active",
		http.StatusBadRequest,
	)
)
