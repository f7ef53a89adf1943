package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure. Every failure is local to the
// operation that raised it; nothing here is retried or escalated.
type Kind int

const (
	KindValidation Kind = iota + 1 // bad input shape or missing fields
	KindNotFound                   // unknown id reference
	KindPermission                 // role/verification gate failure
	KindRange                      // quantity outside product bounds
)

// Error is the application error carried across service boundaries.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ValidationError(format string, args ...any) *Error {
	return NewError(KindValidation, format, args...)
}

func NotFoundError(format string, args ...any) *Error {
	return NewError(KindNotFound, format, args...)
}

func PermissionError(format string, args ...any) *Error {
	return NewError(KindPermission, format, args...)
}

func RangeError(format string, args ...any) *Error {
	return NewError(KindRange, format, args...)
}

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsValidation(err error) bool { return kindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return kindOf(err) == KindNotFound }
func IsPermission(err error) bool { return kindOf(err) == KindPermission }
func IsRange(err error) bool      { return kindOf(err) == KindRange }
