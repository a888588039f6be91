package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// Request bodies are small JSON documents; anything larger is rejected.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string       `json:"error"`
	Field  string       `json:"field,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a JSON body into dst. An empty body is an error unless
// allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && allowEmpty:
		return nil
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "must not be empty")
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", "too large")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
}

// handleError translates a service error into an HTTP response. Unexpected
// errors are logged with the request context and hidden behind a 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		verr *domain.ValidationError
		cerr *domain.ConflictError
	)

	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed", Fields: make([]fieldError, 0, len(verr.Errors))}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &cerr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: cerr.Error(), Field: cerr.Field})
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(r.Context(), "dependency unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "service temporarily unavailable")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the response.
		w.WriteHeader(499)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func isUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
