// Package apperr is the service-layer error taxonomy. Services return these;
// pkg/resp maps them to HTTP exactly once at the boundary.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindStorage
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, kept for server-side logs only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Storage wraps a persistence failure. The cause is never shown to clients.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Msg: "something went wrong, please try again", Err: err}
}

// KindOf returns the kind of err, or KindStorage for anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
