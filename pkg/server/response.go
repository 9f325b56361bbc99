package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/fontroute/pkg/errors"
)

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCodeOr(err, errors.ErrCodeInternal)
	writeJSON(w, statusFor(code), errorBody{Code: code, Message: errors.UserMessage(err)})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidFont,
		errors.ErrCodeInvalidTag, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFontNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRouteExists:
		return http.StatusConflict
	case errors.ErrCodeRouteCycle:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeCapacity:
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}
