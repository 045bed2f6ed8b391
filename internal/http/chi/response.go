package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/httplog"
)

// errorResponse is the body of every non-2xx answer
type errorResponse struct {
	Detail any `json:"detail"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Not Found"})
}

func writeValidationError(w http.ResponseWriter, errs validationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: errs})
}

// writeServiceError maps notFound to 404; anything else is a store failure, logged and answered with 500
func writeServiceError(w http.ResponseWriter, r *http.Request, err, notFound error) {
	if errors.Is(err, notFound) {
		writeNotFound(w)
		return
	}
	logger := httplog.LogEntry(r.Context())
	logger.Error().Err(err).Msg("store operation failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
}

// writeRequestError answers a decoding or validation failure
func writeRequestError(w http.ResponseWriter, err error) {
	var errs validationErrors
	if errors.As(err, &errs) {
		writeValidationError(w, errs)
		return
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Detail: "Request body too large"})
		return
	}
	writeValidationError(w, validationErrors{{Field: "body", Message: err.Error()}})
}
