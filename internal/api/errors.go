// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned by handlers. Every error response body is
// {"error": "<message>"}.
var (
	// ErrInvalidRequest maps to 400 Bad Request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternal maps to 500 Internal Server Error.
	ErrInternal = errors.New("internal error")
)

// Caller-facing messages for rejected recommendation requests.
const (
	msgMissingTitles = "Missing anime_titles in request body"
	msgTitlesArray   = "anime_titles must be a non-empty array"
)

// requestError carries the HTTP status and the caller-facing message for a
// failed request. Unwrap exposes the error kind so errors.Is works.
type requestError struct {
	kind    error
	status  int
	message string
	cause   error
}

func (e *requestError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *requestError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// invalidRequest builds a 400 error with the given message.
func invalidRequest(message string) error {
	return &requestError{kind: ErrInvalidRequest, status: http.StatusBadRequest, message: message}
}

// internalError builds a 500 error whose message is "Internal server error: <cause>".
func internalError(cause error) error {
	return &requestError{
		kind:    ErrInternal,
		status:  http.StatusInternalServerError,
		message: "Internal server error: " + cause.Error(),
		cause:   cause,
	}
}

// statusAndMessage resolves the response status and body message for err.
// Errors that did not come from invalidRequest or internalError are treated
// as internal.
func statusAndMessage(err error) (int, string) {
	var re *requestError
	if errors.As(err, &re) {
		return re.status, re.message
	}
	return http.StatusInternalServerError, "Internal server error: " + err.Error()
}
