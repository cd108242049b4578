package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"planwise/internal/service"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     *apiError `json:"error,omitempty"`
}

func respondOK(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, data, nil)
}

func respondCreated(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusCreated, data, nil)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, nil, &apiError{Code: code, Message: message})
}

func respondJSON(w http.ResponseWriter, status int, data any, apiErr *apiError) {
	resp := envelope{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Data:      data,
		Error:     apiErr,
	}
	if apiErr != nil {
		resp.Status = "error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondServiceError maps engine sentinel errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTask):
		respondError(w, http.StatusBadRequest, "invalid_task", err.Error())
	case errors.Is(err, service.ErrInvalidDecision):
		respondError(w, http.StatusBadRequest, "invalid_decision", err.Error())
	case errors.Is(err, service.ErrInvalidScore):
		respondError(w, http.StatusBadRequest, "invalid_score", err.Error())
	case errors.Is(err, service.ErrModuleNotFound):
		respondError(w, http.StatusNotFound, "module_not_found", err.Error())
	case errors.Is(err, service.ErrModuleNotStarted):
		respondError(w, http.StatusConflict, "module_not_started", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
