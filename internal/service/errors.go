package service

import (
	"errors"
	"net/http"
)

// Kind classifies why a course could not be generated.
type Kind string

const (
	KindInvalidURL            Kind = "InvalidUrl"
	KindTranscriptUnavailable Kind = "TranscriptUnavailable"
	KindConfiguration         Kind = "ConfigurationError"
	KindGeneration            Kind = "GenerationError"
	KindMalformedResponse     Kind = "MalformedResponse"
	KindInternal              Kind = "InternalError"
)

// Error is a generation failure with a user facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// StatusCode maps err to the HTTP status the endpoint answers with.
// Malformed model output shares the generation failure status.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindInvalidURL, KindTranscriptUnavailable, KindConfiguration:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user facing text for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil || err.Error() == "" {
		return "Internal server error"
	}
	return err.Error()
}
