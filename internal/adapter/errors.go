package adapter

import "errors"

// Transport errors of the form store client. Status codes are mapped by
// mapHTTPError; callers match with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrStoreUnavailable covers transport failures, 429 and 502..504. These
	// are the only errors worth retrying.
	ErrStoreUnavailable = errors.New("form store unavailable")

	ErrInvalidAddress = errors.New("invalid adapter address")
)

// IsRetryable reports whether err is a transient store failure.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
