// Package errors defines the service errors returned by HTTP handlers and the
// status code each category maps to.
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a ServiceError
type Category int

const (
	// CategoryDataError is an invalid request: bad parameters or payload
	CategoryDataError Category = iota + 1
	// CategoryUnauthorized is a request without valid credentials
	CategoryUnauthorized
	// CategoryResourceNotFound is a request for a route or resource that does not exist
	CategoryResourceNotFound
	// CategoryNotSupported is a request with a method the route does not accept
	CategoryNotSupported
	// CategoryDependencyFailure is a failure of a data source or other upstream service
	CategoryDependencyFailure
	// CategoryGeneralError is an unexpected failure of the service itself
	CategoryGeneralError
)

var categoryNames = map[Category]string{
	CategoryDataError:         "CategoryDataError",
	CategoryUnauthorized:      "CategoryUnauthorized",
	CategoryResourceNotFound:  "CategoryResourceNotFound",
	CategoryNotSupported:      "CategoryNotSupported",
	CategoryDependencyFailure: "CategoryDependencyFailure",
	CategoryGeneralError:      "CategoryGeneralError",
}

var categoryStatus = map[Category]int{
	CategoryDataError:         http.StatusBadRequest,
	CategoryUnauthorized:      http.StatusUnauthorized,
	CategoryResourceNotFound:  http.StatusNotFound,
	CategoryNotSupported:      http.StatusMethodNotAllowed,
	CategoryDependencyFailure: http.StatusBadGateway,
	CategoryGeneralError:      http.StatusInternalServerError,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryGeneralError]
}

// ServiceError carries a message safe to show to the caller next to the
// underlying error, which is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is matches a target error with the same message, so package level sentinel
// errors can be compared with errors.Is.
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	if status, ok := categoryStatus[err.Category]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Is reports whether err is a ServiceError of the given category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback + message)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError wraps an unexpected failure. The caller only sees a generic message.
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Unexpected Service Error", "internal error: ")
}

// BadRequestError returns a CategoryDataError with the given message
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: ")
}

// UnAuthorizedError returns a CategoryUnauthorized error with the given message
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized: ")
}

// ResourceNotFoundError returns a CategoryResourceNotFound error with the given message
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "not found: ")
}

// NotSupportedError returns a CategoryNotSupported error with the given message
func NotSupportedError(err error, message string) error {
	return newError(CategoryNotSupported, err, message, "not supported: ")
}

// DependencyFailureError returns a CategoryDependencyFailure error with the given message
func DependencyFailureError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure: ")
}
