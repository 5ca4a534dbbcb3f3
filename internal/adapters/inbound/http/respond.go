package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ErrorCode classifies an API error.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
	UPSTREAMERROR ErrorCode = "UPSTREAM_ERROR"
)

// Error is the error detail returned by the API.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the error body returned by the API.
type ErrorResp struct {
	Error Error `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case BADREQUEST:
		statusCode = http.StatusBadRequest
	case NOTFOUND:
		statusCode = http.StatusNotFound
	case UPSTREAMERROR:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

// writeEvent writes a single Server-Sent Event and flushes it.
func writeEvent(w io.Writer, flusher http.Flusher, event string, data any) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\n", event)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "data: %s\n\n", string(dataBytes))
	if err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
