package adapter

import (
	"errors"
	"net/http"
	"strconv"
)

// Transport-level sentinel errors. mapHTTPError wraps each non-2xx response
// in a [ResponseError] whose Unwrap returns one of these, so callers can use
// errors.Is regardless of the message the server sent.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a non-2xx backend response. Message is the server's
// detail/error text, or "<Op> failed: <status>" when the body carried none.
type ResponseError struct {
	StatusCode int
	Message    string
	sentinel   error
}

// NewResponseError builds the error of a response with the given status,
// picking the sentinel that matches the status code.
func NewResponseError(statusCode int, message string) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode, Message: message}

	switch statusCode {
	case http.StatusBadRequest:
		respErr.sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.sentinel = ErrUnauthorized
	case http.StatusForbidden:
		respErr.sentinel = ErrForbidden
	case http.StatusNotFound:
		respErr.sentinel = ErrNotFound
	case http.StatusConflict:
		respErr.sentinel = ErrConflict
	case http.StatusBadGateway:
		respErr.sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.sentinel = ErrInternalServerError
	default:
		respErr.sentinel = ErrUnexpectedStatus
	}

	return respErr
}

func (e *ResponseError) Error() string {
	return e.sentinel.Error() + " (" + strconv.Itoa(e.StatusCode) + "): " + e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.sentinel
}

// Message returns the server supplied message of err when it wraps a
// [ResponseError], and err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return err.Error()
}
