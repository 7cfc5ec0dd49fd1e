package authapi

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken = errors.New("authapi: response carries no token")
	ErrOpaqueToken  = errors.New("authapi: token is not a JWT")
)

// APIError is returned when the auth API answers with a status that is not a
// success for the called endpoint.
type APIError struct {
	StatusCode int
	Message    string // server supplied message, may be empty
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authapi: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("authapi: status %d", e.StatusCode)
}

// RejectionMessage returns the server supplied message of err when err is an
// *APIError carrying one.
func RejectionMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
