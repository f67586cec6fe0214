package cfn

import (
	"errors"
	"fmt"
)

// Error is a synthesis-time failure with a stable error code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeValidationFailed = "cfn.validation_failed"
	CodeRequiredMissing  = "cfn.required_missing"
	CodeUnsupported      = "cfn.unsupported"
	CodeLookupFailed     = "cfn.lookup_failed"
	CodeNotFound         = "cfn.not_found"
	CodeDuplicateID      = "cfn.duplicate_id"
)

// Errorf builds an *Error with a formatted message.
func Errorf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// HasCode reports whether err wraps an *Error with the given code.
func HasCode(err error, code string) bool {
	var cfnErr *Error
	if errors.As(err, &cfnErr) {
		return cfnErr.Code == code
	}
	return false
}

// Must panics with err when it is non-nil.
//
// Constructors use it to fail fast on precondition violations.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Try runs fn and returns the error it panicked with. Non-error panics propagate.
func Try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}
