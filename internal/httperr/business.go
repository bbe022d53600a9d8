package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is a domain failure with a stable code clients can switch on.
type BusinessError struct {
	Code    string
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Status: http.StatusBadRequest}
}

func NewBusiness(status int, code, message string) error {
	return BusinessError{Code: code, Status: status, Message: message}
}

func ErrNotFound(code, message string) error {
	return NewBusiness(http.StatusNotFound, code, message)
}

func ErrConflict(code, message string) error {
	return NewBusiness(http.StatusConflict, code, message)
}

func ErrForbidden(code, message string) error {
	return NewBusiness(http.StatusForbidden, code, message)
}

func ErrUnauthorized(code, message string) error {
	return NewBusiness(http.StatusUnauthorized, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
