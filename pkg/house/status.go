package house

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError carries the external status code an operation failure maps to.
// Validation failures never leave partial writes behind.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *StatusError {
	return &StatusError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(id string) *StatusError {
	return &StatusError{Code: http.StatusNotFound, Message: fmt.Sprintf("device with id: %s doesn't exist", id)}
}

func NewTypeMismatchError(format string, args ...any) *StatusError {
	return &StatusError{Code: http.StatusUnprocessableEntity, Message: fmt.Sprintf(format, args...)}
}

func NewUnavailableError(format string, args ...any) *StatusError {
	return &StatusError{Code: http.StatusServiceUnavailable, Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus maps an error to its external status code, 500 when the error
// carries none.
func HTTPStatus(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return http.StatusInternalServerError
}
