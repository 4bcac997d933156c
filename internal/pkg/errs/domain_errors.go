package errs

// Category sentinels. Domain errors are marked with one of these so the HTTP layer
// can classify them without importing every domain package.
var (
	ErrValidation   = New("validation failed")
	ErrNotFound     = New("not found")
	ErrConflict     = New("conflict")
	ErrUnauthorized = New("unauthorized")
	ErrForbidden    = New("forbidden")

	// ErrStorage marks persistence failures; their text is never shown to clients.
	ErrStorage   = New("storage failure")
	ErrDuplicate = New("duplicate entry")
)

func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func Conflict(msg string) error {
	return Mark(New(msg), ErrConflict)
}

func Unauthorized(msg string) error {
	return Mark(New(msg), ErrUnauthorized)
}

func Forbidden(msg string) error {
	return Mark(New(msg), ErrForbidden)
}
