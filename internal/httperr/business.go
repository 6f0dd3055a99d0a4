package httperr

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure. Each kind maps to one HTTP status.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindPrecondition Kind = "precondition_failed"
	KindConflict     Kind = "conflict"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]any
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// With returns a copy of e carrying an extra detail entry.
func (e BusinessError) With(key string, value any) BusinessError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

func newErr(kind Kind, code, message string) BusinessError {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

// ErrBusiness is a precondition failure identified only by its code.
func ErrBusiness(code string) error {
	return newErr(KindPrecondition, code, "")
}

func ErrValidation(code, message string) BusinessError {
	return newErr(KindValidation, code, message)
}

func ErrNotFound(code, message string) BusinessError {
	return newErr(KindNotFound, code, message)
}

func ErrForbidden(code, message string) BusinessError {
	return newErr(KindForbidden, code, message)
}

func ErrPrecondition(code, message string) BusinessError {
	return newErr(KindPrecondition, code, message)
}

func ErrConflict(code, message string) BusinessError {
	return newErr(KindConflict, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
