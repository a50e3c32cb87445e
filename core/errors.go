package core

import (
	"github.com/pkg/errors"
)

// error kinds, match with errors.Is
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("value out of range")
	ErrLocked          = errors.New("gradebook is locked")
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("already exists")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err *ValidationError) Unwrap() error { return err.Err }

// FieldMessages returns the field errors keyed by field name.
func (err *ValidationError) FieldMessages() map[string]string {
	msgs := make(map[string]string, len(err.Fields))
	for _, fe := range err.Fields {
		msgs[fe.Field] = fe.Error
	}
	return msgs
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}

// NewNotFoundError reports an unknown `name` of the given kind (eg: "student"),
// suggesting the closest of `known` when one is similar enough.
func NewNotFoundError(kind, name string, known []string) error {
	err := errors.Wrapf(ErrNotFound, "%s %q", kind, name)
	if match := ClosestMatch(name, known); match != "" {
		err = errors.WithMessagef(err, "did you mean %q?", match)
	}
	return err
}
