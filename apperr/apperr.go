// Package apperr classifies failures so handlers can map them to HTTP
// status codes without inspecting error strings.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage failure")
)

func Validationf(format string, args ...interface{}) error {
	return wrap(ErrValidation, format, args...)
}

func NotFoundf(format string, args ...interface{}) error {
	return wrap(ErrNotFound, format, args...)
}

func Conflictf(format string, args ...interface{}) error {
	return wrap(ErrConflict, format, args...)
}

func Storagef(format string, args ...interface{}) error {
	return wrap(ErrStorage, format, args...)
}

func wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}

// Status maps an error to the HTTP status a handler should answer with.
// Unclassified errors are treated as internal.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrStorage):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
