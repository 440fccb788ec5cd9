package web

// errors.go maps computation failures onto HTTP responses.
//
// Malformed input and unresolved references are data problems, not
// server problems: they return 422 so a caller can tell "fix the
// datasets" apart from "the server broke". Everything else is a 500.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tmoller/salesreports/internal/dataset"
	"github.com/tmoller/salesreports/internal/logging"
	"github.com/tmoller/salesreports/internal/report"
)

// ErrorResponse is the JSON body for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusForError maps the report error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	var malformed *dataset.MalformedRecordError
	var unresolved *report.UnresolvedReferenceError
	if errors.As(err, &malformed) || errors.As(err, &unresolved) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// codeForError returns a machine-readable code for the error taxonomy.
func codeForError(err error) string {
	var malformed *dataset.MalformedRecordError
	if errors.As(err, &malformed) {
		return "malformed_record"
	}
	var unresolved *report.UnresolvedReferenceError
	if errors.As(err, &unresolved) {
		return "unresolved_reference"
	}
	return "internal"
}

// writeError logs the technical error and writes a JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
		Code:  codeForError(err),
	})
}

// writeJSON encodes v as JSON and writes it to w.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; log and move on.
		slog.Error("json encode error", "error", err)
	}
}
