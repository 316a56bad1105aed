package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps an application error to an HTTP status and JSON body.
// Storage faults are reported as a generic 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	kind := apperror.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindPermission:
		status = http.StatusForbidden
	case apperror.KindNotFound:
		status = http.StatusNotFound
	}

	message := "internal server error"
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind != apperror.KindStorage {
		message = appErr.Message
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: message})
}

// decodeBody decodes the request body into v, rejecting unknown fields
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperror.Validation("invalid request body: %v", err)
	}
	return nil
}
