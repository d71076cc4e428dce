package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body for all non-2xx API responses.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse with the given status code and detail.
func WriteError(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, ErrorResponse{Detail: detail})
}
