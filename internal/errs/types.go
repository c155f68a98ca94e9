package errs

import (
	"fmt"
	"time"
)

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

type UnauthorizedError struct {
	ErrorMessage
}

// IndexOutOfRangeError is returned when a positional package edit or delete
// does not address the record the caller read.
type IndexOutOfRangeError struct {
	ErrorMessage
	Category string
	Index    int
	Length   int
}

// PreconditionRequiredError is returned when a positional package edit or
// delete arrives without the etag of the record it means to change.
type PreconditionRequiredError struct {
	ErrorMessage
	Category string
	Index    int
}

// NetworkUnavailableError means the content store could not be reached or its
// client is in a disabled-network state.
type NetworkUnavailableError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *NetworkUnavailableError) Unwrap() error { return e.Err }

// WriteFailedError means the store rejected a write for a reason other than
// connectivity. Message carries the store's own message.
type WriteFailedError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *WriteFailedError) Unwrap() error { return e.Err }

type TimeoutError struct {
	ErrorMessage
	Operation string
}

type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
	Err       error
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewIndexOutOfRangeError(category string, index, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("index %d is out of range for %s (%d packages)", index, category, length)},
		Category:     category,
		Index:        index,
		Length:       length,
	}
}

// NewStaleIndexError reports that the record at index no longer matches the
// version the caller read.
func NewStaleIndexError(category string, index, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("package %d in %s has changed since it was read", index, category)},
		Category:     category,
		Index:        index,
		Length:       length,
	}
}

func NewPreconditionRequiredError(category string, index int) *PreconditionRequiredError {
	return &PreconditionRequiredError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("the etag of package %d in %s is required (If-Match)", index, category)},
		Category:     category,
		Index:        index,
	}
}

func NewNetworkUnavailableError(operation string, err error) *NetworkUnavailableError {
	return &NetworkUnavailableError{
		ErrorMessage: ErrorMessage{Message: "network error: please check your internet connection and try again"},
		Operation:    operation,
		Err:          err,
	}
}

func NewWriteFailedError(operation string, err error) *WriteFailedError {
	msg := "write failed"
	if err != nil {
		msg = err.Error()
	}
	return &WriteFailedError{
		ErrorMessage: ErrorMessage{Message: msg},
		Operation:    operation,
		Err:          err,
	}
}

// NewTimeoutError reports operation as timed out; after is omitted from the
// message when unknown (zero).
func NewTimeoutError(operation string, after time.Duration) *TimeoutError {
	msg := operation + " timed out"
	if after > 0 {
		msg = fmt.Sprintf("%s after %s", msg, after)
	}
	return &TimeoutError{
		ErrorMessage: ErrorMessage{Message: msg},
		Operation:    operation,
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewExternalServiceError(service, message string, transient bool, err error) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: message},
		Service:      service,
		Transient:    transient,
		Err:          err,
	}
}
