package apperror

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP converts any error into a transport-level representation.
// Unknown errors collapse into a generic 500 so internals never leak.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return HTTPError{
			Status:  http.StatusNotFound,
			Code:    CodeNotFound,
			Message: ErrNotFound.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
