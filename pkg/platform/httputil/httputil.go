// Package httputil centralizes JSON response writing and error translation
// so every handler produces the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"sepalint/pkg/apierrors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates an error into the JSON error envelope. Internal
// errors omit the description so server details never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := apierrors.CodeInternal
	message := ""

	var coded apierrors.Error
	if errors.As(err, &coded) {
		code = coded.Code
		message = coded.Message
	}

	body := map[string]string{"error": string(code)}
	if message != "" && code != apierrors.CodeInternal {
		body["error_description"] = message
	}
	WriteJSON(w, apierrors.ToHTTPStatus(code), body)
}
