// Package apperr holds the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindUpstream
)

// Status maps a kind onto its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

type Option func(*Error)

func WithKind(kind Kind) Option {
	return func(e *Error) {
		e.Kind = kind
	}
}

func WithMessage(msg string) Option {
	return func(e *Error) {
		e.Msg = msg
	}
}

func WithError(err error) Option {
	return func(e *Error) {
		e.Err = err
	}
}

func New(opts ...Option) *Error {
	err := &Error{
		Kind: KindStore,
		Msg:  "internal server error",
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return New(WithKind(KindValidation), WithMessage(msg))
}

func Auth(msg string) *Error {
	return New(WithKind(KindAuth), WithMessage(msg))
}

func Forbidden(msg string) *Error {
	return New(WithKind(KindForbidden), WithMessage(msg))
}

func NotFound(msg string) *Error {
	return New(WithKind(KindNotFound), WithMessage(msg))
}

func Upstream(msg string, err error) *Error {
	return New(WithKind(KindUpstream), WithMessage(msg), WithError(err))
}

func Store(err error) *Error {
	return New(WithKind(KindStore), WithError(err))
}

// KindOf returns the kind of the first *Error in err's chain, KindStore
// for anything else.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Message returns the text safe to show a client. Store errors and
// unclassified errors collapse to a generic message.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindStore {
		return appErr.Msg
	}
	return "internal server error"
}
