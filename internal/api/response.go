package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
	"github.com/gyaneshwarpardhi/fintrack/internal/metrics"
)

const maxBodyBytes = 1 << 20

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStoreError maps a store error onto a status code. kind labels the
// rejection metric; an empty kind skips it.
func writeStoreError(w http.ResponseWriter, r *http.Request, kind string, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		reject(kind, "not_found")
		writeError(w, http.StatusNotFound, "Not found")
	case ledger.IsValidation(err):
		reject(kind, "validation")
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(r.Context(), "store failure", "path", r.URL.Path, "request_id", RequestID(r.Context()), "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func reject(kind, reason string) {
	if kind != "" {
		metrics.RequestsRejected.WithLabelValues(kind, reason).Inc()
	}
}

// pathID parses the {id} wildcard. A non-numeric id can match no record, so
// it is answered like any other unknown id.
func pathID(w http.ResponseWriter, r *http.Request, kind string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeStoreError(w, r, kind, fmt.Errorf("id %q: %w", r.PathValue("id"), ledger.ErrNotFound))
		return 0, false
	}
	return id, true
}

// decodeBody reads a single JSON value into v. An empty body decodes as {};
// anything after the first value is rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		err = dec.Decode(&json.RawMessage{})
		if errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return false
	}
	writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
	return false
}
