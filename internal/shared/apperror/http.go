package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the resolved HTTP view of any error.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP resolves an error to the status/code/message the handler should
// emit. An *AppError anywhere in the chain maps by its own fields; any
// other error becomes a 500 with the underlying message passed through.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: err.Error(),
	}
}
