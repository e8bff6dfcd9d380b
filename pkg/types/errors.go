package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound ErrKind = iota // missing key or value
	ErrKindAccess                  // the handle lacks the required access rights
	ErrKindType                    // requested decode doesn't match the value RegType
	ErrKindData                    // malformed data length for a fixed-width type
	ErrKindState                   // invalid operation for current state (e.g., closed handle)
	ErrKindOS                      // any other native status, carried as the underlying cause
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause, typically a syscall.Errno
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by kind, so errors.Is(err, ErrNotFound) holds for every
// ErrKindNotFound error regardless of message or wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels commonly returned by the binding layer.
var (
	// ErrNotFound indicates a missing key or value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrAccessDenied indicates insufficient access rights on the handle.
	ErrAccessDenied = &Error{Kind: ErrKindAccess, Msg: "access denied"}
	// ErrTypeMismatch indicates the requested decode doesn't match the stored type.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "registry value has different type"}
	// ErrInvalidData indicates a malformed byte length for a fixed-width type.
	ErrInvalidData = &Error{Kind: ErrKindData, Msg: "malformed value data"}
	// ErrClosed indicates an operation on a closed key handle.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "key handle is closed"}
)

// OSError wraps an untranslated native status code in the taxonomy.
func OSError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindOS, Msg: msg, Err: cause}
}

// Kind extracts the ErrKind from err, unwrapping as needed.
// The second result is false when err is not part of the taxonomy.
func Kind(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
