package apperr

import (
	"errors"
	"log"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a caller-safe Message. Err is the cause; it is logged, never sent.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// Respond is the single place errors become HTTP responses. Only the typed
// message reaches the client; untyped errors become a bare 500.
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		if p, ok := FromPG(err); ok {
			ae = p
		} else {
			ae = Internal("Internal server error", err)
		}
	}
	if ae.Kind == KindInternal && ae.Err != nil {
		log.Printf("[http] %s %s: %s: %v", r.Method, r.URL.Path, ae.Message, ae.Err)
	}
	Write(w, r, Problem{Status: ae.Kind.Status(), Detail: ae.Message})
}
