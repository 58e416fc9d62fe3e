package apperror

import (
	"errors"
	"fmt"
)

// Kind memetakan kegagalan domain ke satu kategori yang stabil.
type Kind string

const (
	ValidationFailed   Kind = "validation_failed"
	Forbidden          Kind = "forbidden"
	NotFound           Kind = "not_found"
	Conflict           Kind = "conflict"
	LimitExceeded      Kind = "limit_exceeded"
	PreconditionFailed Kind = "precondition_failed"
)

// FieldError menunjuk field input yang bermasalah.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewValidation membungkus kesalahan input per-field.
func NewValidation(msg string, fields ...FieldError) *Error {
	return &Error{Kind: ValidationFailed, Message: msg, Fields: fields}
}

// KindOf mengembalikan kategori error, atau "" jika bukan error domain
// (mis. kegagalan storage) sehingga caller menganggapnya error infrastruktur.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func FieldsOf(err error) []FieldError {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
