package failure

import (
	"errors"
	"net/http"
)

// Kind buckets an error for the console layer, which reacts to the bucket
// rather than to any one backend error format.
type Kind string

const (
	KindValidation      Kind = "Validation"
	KindConflict        Kind = "Conflict"
	KindNetworkOrServer Kind = "NetworkOrServer"
	KindNotFound        Kind = "NotFound"
)

// Failure is a wrapper for error messages, kinds and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var DeleteNotConfirmed = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "delete requires confirmed intent"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Validation returns a new Failure for input rejected before any network call.
func Validation(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// ValidationFromError returns a new Failure with message derived from an error interface.
func ValidationFromError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// Conflict returns a new Failure for uniqueness violations, whether detected
// by the client-side guard or reported by the backend.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// NotFound returns a new Failure for operations on an entity that is no longer present.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Upstream returns a new Failure for a non-2xx backend response that is not a conflict.
func Upstream(code int, msg string) error {
	return &Failure{
		Code:    code,
		Kind:    KindNetworkOrServer,
		Message: msg,
	}
}

// Transport returns a new Failure for requests that never produced a response
// (timeout, unreachable host, cancelled context).
func Transport(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadGateway,
			Kind:    KindNetworkOrServer,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KindOf returns the failure kind of an error interface. Errors that are not
// a Failure count as backend/network trouble.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindNetworkOrServer
}
