package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is not in a state that allows the requested change.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected failure in a lower layer.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a message and the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e.Err == nil {
		return ErrInternal
	}
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewValidationError returns an error matching ErrValidation.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// NewConflictError returns an error matching ErrConflict.
func NewConflictError(message string) error {
	return fmt.Errorf("%w: %s", ErrConflict, message)
}

// CategoryClassificationError is returned when a chart-of-account code has no
// registered offset category. Postings must abort on it.
type CategoryClassificationError struct {
	ChartOfAccountCode string
}

func (e *CategoryClassificationError) Error() string {
	return fmt.Sprintf("no offset category registered for chart of account code %q", e.ChartOfAccountCode)
}

func (e *CategoryClassificationError) Unwrap() error { return ErrValidation }

// PostingError is returned when a journal cannot be constructed.
type PostingError struct {
	Reason string
	Err    error
}

// NewPostingError builds a PostingError. err may be nil, in which case the
// error matches ErrValidation.
func NewPostingError(reason string, err error) *PostingError {
	return &PostingError{Reason: reason, Err: err}
}

func (e *PostingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("posting failed: %s: %v", e.Reason, e.Err)
	}
	return "posting failed: " + e.Reason
}

func (e *PostingError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// ReversalNotFoundError means the reference has no active line items.
// Callers treat it as a no-op.
type ReversalNotFoundError struct {
	ReferenceType string
	ReferenceID   string
}

func (e *ReversalNotFoundError) Error() string {
	return fmt.Sprintf("no active line items to reverse for %s/%s", e.ReferenceType, e.ReferenceID)
}

func (e *ReversalNotFoundError) Unwrap() error { return ErrNotFound }

// ExchangeRateUnavailableError is logged when the resolver falls back to a rate of 1.
type ExchangeRateUnavailableError struct {
	CurrencyCode string
	BaseCurrency string
}

func (e *ExchangeRateUnavailableError) Error() string {
	return fmt.Sprintf("no exchange rate configured for %s -> %s, using 1", e.CurrencyCode, e.BaseCurrency)
}

func (e *ExchangeRateUnavailableError) Unwrap() error { return ErrNotFound }

// IsReversalNotFound reports whether err is a benign "nothing to reverse" result.
func IsReversalNotFound(err error) bool {
	var target *ReversalNotFoundError
	return errors.As(err, &target)
}
