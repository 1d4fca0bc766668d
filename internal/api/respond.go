package api

import (
	"encoding/json"
	"net/http"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError maps structured error codes to HTTP status codes. Unknown
// errors are reported as internal without leaking their details.
func respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = errors.UserMessage(err)
	if code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
		body.Error.Message = "internal error"
	}
	respondJSON(w, statusFor(code), body)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidPrompt, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	case errors.ErrCodeNotFound, errors.ErrCodeImageNotFound, errors.ErrCodeKeyNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
