package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/domain"
)

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
	Link    *string   `json:"error_link,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// DataResponse wraps successful payloads.
type DataResponse struct {
	BaseResponse
	Data interface{} `json:"data"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithErrorCode(w http.ResponseWriter, code int, message, errCode string) {
	respondWithJSON(w, code, ErrorResponse{Error: message, Code: &errCode})
}

func respondWithData(w http.ResponseWriter, code int, data interface{}) {
	respondWithJSON(w, code, DataResponse{BaseResponse: BaseResponse{Ok: true}, Data: data})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithServiceError maps facade errors onto HTTP statuses.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr  *domain.ValidationError
		authz *domain.AuthorizationError
	)

	switch {
	case errors.As(err, &verr):
		respondWithErrorCode(w, http.StatusBadRequest, verr.Error(), "invalid_input")
	case errors.As(err, &authz):
		respondWithErrorCode(w, statusForDeny(authz.Reason), authz.Error(), string(authz.Reason))
	case errors.Is(err, domain.ErrConflict):
		respondWithErrorCode(w, http.StatusConflict, err.Error(), "conflict")
	case errors.Is(err, domain.ErrNotFound):
		respondWithErrorCode(w, http.StatusNotFound, "Not found", "not_found")
	case errors.Is(err, domain.ErrBackend):
		slog.ErrorContext(r.Context(), "backend unavailable", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithErrorCode(w, http.StatusServiceUnavailable, "Service temporarily unavailable", "backend_unavailable")
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func statusForDeny(reason domain.DenyReason) int {
	switch reason {
	case domain.DenyUnauthenticated:
		return http.StatusUnauthorized
	case domain.DenyInvalidStateTransition:
		return http.StatusConflict
	default:
		return http.StatusForbidden
	}
}

// decodeJSON reads the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// uuidParam parses a chi URL parameter as a UUID.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
