package common

import (
	"encoding/json"
	"net/http"
	"time"

	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/domain"
	"airline-ops/seatcrew/internal/logging"
	"airline-ops/seatcrew/internal/models/dtos"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := dtos.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}

	writeJSON(w, initTime, code, response)
}

// RespondError sends a standardized JSON error response.
// The error text wins over message when err is non-nil.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	response := dtos.APIResponse{
		Success: false,
		Message: msg,
	}

	writeJSON(w, initTime, code, response)
}

// RespondDomainError maps the error taxonomy onto HTTP statuses.
// Internal errors are logged and replaced by a generic message.
func RespondDomainError(w http.ResponseWriter, r *http.Request, initTime time.Time, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(w, initTime, err, "", http.StatusBadRequest)
	case domain.IsNotFound(err):
		RespondError(w, initTime, err, "", http.StatusNotFound)
	case domain.IsConflict(err):
		RespondError(w, initTime, err, "", http.StatusConflict)
	default:
		logging.Error("Request failed",
			"request_id", RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err.Error(),
		)
		RespondError(w, initTime, nil, constants.MsgInternalError, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, initTime time.Time, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(constants.HeaderResponseTime, GetResponseTime(initTime))
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
