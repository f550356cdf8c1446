package apperror

import "fmt"

// Kind classifies an AppError for transport mapping.
type Kind int

const (
	// KindBadRequest: malformed identifiers, missing fields, duplicate
	// document or title on import, invalid archive. Recoverable at the
	// caller, never retried automatically.
	KindBadRequest Kind = iota
	// KindNotFound: unresolvable database or note reference.
	KindNotFound
	// KindPermissionDenied: cross-account mutation attempt. Surfaced
	// distinctly from NotFound.
	KindPermissionDenied
	// KindInternal: storage or other internal failure. Logged in full,
	// reported to the caller without detail.
	KindInternal
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func BadRequest(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func PermissionDenied(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindPermissionDenied, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps a storage or infrastructure error. The wrapped error is kept
// for logging; Message is what the caller sees.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error", Err: err}
}
