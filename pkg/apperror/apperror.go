package apperror

import (
	"errors"
	"net/http"
)

// Kind identifies a class of failure surfaced to API clients.
type Kind string

const (
	KindInvalidMovieID     Kind = "InvalidMovieId"
	KindInvalidLimit       Kind = "InvalidLimit"
	KindInvalidOffset      Kind = "InvalidOffset"
	KindFilmNotFound       Kind = "FilmNotFound"
	KindGenreLookup        Kind = "GenreLookupError"
	KindCatalogUnavailable Kind = "CatalogUnavailable"
	KindReviewProvider     Kind = "ReviewProviderError"
	KindUnknownRoute       Kind = "UnknownRoute"
	KindInternal           Kind = "InternalError"
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindInvalidMovieID, KindInvalidLimit, KindInvalidOffset,
		KindFilmNotFound, KindGenreLookup:
		return http.StatusUnprocessableEntity
	case KindUnknownRoute:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, apperror.New(apperror.KindFilmNotFound, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf reports the kind carried by err, or KindInternal if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client facing message for err. Errors without a
// kind never leak their text.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
