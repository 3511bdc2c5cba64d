package httperr

import (
	"encoding/json"
	"net/http"
)

// Error kinds surfaced to clients alongside the HTTP status. Stable strings:
// clients branch on them.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindConflict   = "conflict"
	KindForbidden  = "forbidden"
	KindInternal   = "internal"
)

type Response struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func Write(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Error:   kind,
		Message: message,
	})
}
