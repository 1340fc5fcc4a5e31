package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
)

// HTTPConvertible is implemented by every error in this package. The echo error
// handler looks for it before falling back to plain httperror values.
type HTTPConvertible interface {
	error
	ToHTTPError() *httperror.HTTPError
}

// ValidationError is returned when a request payload is malformed or misses a required field.
type ValidationError struct {
	Message string
	Err     error
}

func NewValidationError(err error) *ValidationError {
	return &ValidationError{Message: err.Error(), Err: err}
}

func NewValidationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) ToHTTPError() *httperror.HTTPError {
	return httperror.NewHTTPError(http.StatusBadRequest, e.Message)
}

// NotFoundError is returned when a referenced row does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
	Message  string
}

func NewNotFoundError(resource string, id int64) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func NewNotFoundErrorf(resource string, format string, args ...any) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) ToHTTPError() *httperror.HTTPError {
	herr := httperror.NewHTTPError(http.StatusNotFound, e.Message).AddMetaValue("resource", e.Resource)
	if e.ID != 0 {
		herr = herr.AddMetaValue("id", strconv.FormatInt(e.ID, 10))
	}
	return herr
}

// CompletionServiceError wraps a failure reported by the completion provider. The
// provider's message is surfaced to the caller as-is.
type CompletionServiceError struct {
	Message string
	Err     error
}

func NewCompletionServiceError(err error) *CompletionServiceError {
	return &CompletionServiceError{Message: err.Error(), Err: err}
}

func (e *CompletionServiceError) Error() string {
	return "completion service error: " + e.Message
}

func (e *CompletionServiceError) Unwrap() error {
	return e.Err
}

func (e *CompletionServiceError) ToHTTPError() *httperror.HTTPError {
	return httperror.NewHTTPError(http.StatusInternalServerError, e.Error())
}

// CompletionFormatError means the provider answered but the body did not match the requested shape.
type CompletionFormatError struct {
	Message string
	Err     error
}

func NewCompletionFormatError(err error) *CompletionFormatError {
	return &CompletionFormatError{Message: err.Error(), Err: err}
}

func (e *CompletionFormatError) Error() string {
	return "completion returned an invalid response: " + e.Message
}

func (e *CompletionFormatError) Unwrap() error {
	return e.Err
}

func (e *CompletionFormatError) ToHTTPError() *httperror.HTTPError {
	return httperror.NewHTTPError(http.StatusInternalServerError, e.Error())
}

// AsHTTPConvertible finds the first error in the chain that knows its HTTP shape.
func AsHTTPConvertible(err error) (HTTPConvertible, bool) {
	var target HTTPConvertible
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
