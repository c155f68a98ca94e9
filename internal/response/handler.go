package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

type ResponseHandler interface {
	WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any)
	WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string)
	HandleError(w http.ResponseWriter, r *http.Request, err error)
}

// SuccessEnvelope wraps every successful payload. Data is omitted for
// writes that return nothing, such as deletes.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type responseHandler struct {
	Log *slog.Logger
}

func New(log *slog.Logger) *responseHandler {
	return &responseHandler{Log: log}
}

// logFor prefers the request logger so access and error lines share the
// request id.
func (h *responseHandler) logFor(r *http.Request) *slog.Logger {
	return logger.FromContextOr(r.Context(), h.Log)
}

func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(SuccessEnvelope{Success: true, Data: data}); err != nil {
		h.logFor(r).Error("failed to encode success response", "error", err)
	}
}
