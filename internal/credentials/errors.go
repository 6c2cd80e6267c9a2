package credentials

import (
	"github.com/go-faster/errors"
)

var (
	// ErrNotFound is returned when the credentials file does not exist.
	ErrNotFound = errors.New("credentials not found")
	// ErrParse is returned when the credentials file is not a JSON object.
	ErrParse = errors.New("credentials parse error")
	// ErrInvalidCredentials is returned when required fields are missing or rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// kindError ties a cause to one of the sentinel kinds above so that both
// match with errors.Is.
type kindError struct {
	kind error
	msg  string
	err  error
}

func (e *kindError) Error() string {
	if e.err == nil {
		return e.kind.Error() + ": " + e.msg
	}
	return e.kind.Error() + ": " + e.msg + ": " + e.err.Error()
}

func (e *kindError) Unwrap() []error {
	if e.err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.err}
}

func newKindError(kind error, msg string, cause error) error {
	return &kindError{kind: kind, msg: msg, err: cause}
}

// Invalid wraps cause as ErrInvalidCredentials. Callers outside this package
// use it when the SDK rejects a certificate or config.
func Invalid(msg string, cause error) error {
	return newKindError(ErrInvalidCredentials, msg, cause)
}
