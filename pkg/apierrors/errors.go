// Package apierrors defines the transport-facing error taxonomy. Services
// return these (or wrap sentinel errors into them at the boundary) so the
// HTTP layer can translate consistently without inspecting error strings.
package apierrors

import "net/http"

// Code identifies the error class carried to the client.
type Code string

const (
	CodeBadRequest      Code = "bad_request"
	CodeNotFound        Code = "not_found"
	CodePayloadTooLarge Code = "payload_too_large"
	CodeInternal        Code = "internal_error"
)

// Error is a coded error with a client-safe message.
type Error struct {
	Code    Code
	Message string
}

// New constructs a coded error.
func New(code Code, message string) Error {
	return Error{Code: code, Message: message}
}

func (e Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
