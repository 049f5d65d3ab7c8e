package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeMissingInput   ErrorType = "MISSING_INPUT"
	ErrTypeMalformedInput ErrorType = "MALFORMED_INPUT"
	ErrTypeWriteFailure   ErrorType = "WRITE_FAILURE"
	ErrTypeDegenerateData ErrorType = "DEGENERATE_DATA"
	ErrTypeInvalidInput   ErrorType = "INVALID_INPUT"
	ErrTypeInternal       ErrorType = "INTERNAL"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// IsType reports whether any error in err's chain is a DomainError of type t.
func IsType(err error, t ErrorType) bool {
	var de *DomainError
	if !stderrors.As(err, &de) {
		return false
	}
	return de.Type == t
}

func MissingInput(message string, err error) *DomainError {
	return New(ErrTypeMissingInput, message, err)
}

func MalformedInput(message string, err error) *DomainError {
	return New(ErrTypeMalformedInput, message, err)
}

func WriteFailure(message string, err error) *DomainError {
	return New(ErrTypeWriteFailure, message, err)
}

func DegenerateData(message string) *DomainError {
	return New(ErrTypeDegenerateData, message, nil)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}
