package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Entity validation failure codes, prefixed with the entity name, e.g. NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY
const (
	NotContainNeededProperty      = "NOT_CONTAIN_NEEDED_PROPERTY"
	NotMeetDataTypeSpecification  = "NOT_MEET_DATA_TYPE_SPECIFICATION"
	UsernameLimitChar             = "USERNAME_LIMIT_CHAR"
	UsernameContainRestrictedChar = "USERNAME_CONTAIN_RESTRICTED_CHARACTER"
)

// ValidationError is returned by entity constructors. Always a client fault.
type ValidationError struct {
	Entity string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Entity + "." + e.Reason
}

func Validation(entity, reason string) error {
	return &ValidationError{Entity: entity, Reason: reason}
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Forbidden(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func Unauthorized(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func Invariant(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// StatusCode reports the HTTP status an error should be answered with.
func StatusCode(err error) int {
	var withCode *ErrorWithStatusCode
	if errors.As(err, &withCode) {
		return withCode.StatusCode
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

func hasStatus(err error, code int) bool {
	var withCode *ErrorWithStatusCode
	return errors.As(err, &withCode) && withCode.StatusCode == code
}
