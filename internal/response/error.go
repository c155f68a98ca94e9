package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/travel-admin/internal/errs"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := h.logFor(r)
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := h.logFor(r)

	var (
		notFound     *errs.NotFoundError
		validation   *errs.ValidationError
		unauthorized *errs.UnauthorizedError
		outOfRange   *errs.IndexOutOfRangeError
		network      *errs.NetworkUnavailableError
		writeFailed  *errs.WriteFailedError
		timeout      *errs.TimeoutError
		database     *errs.DatabaseError
		external     *errs.ExternalServiceError
		precondition *errs.PreconditionRequiredError
	)

	switch {
	case errors.As(err, &validation):
		log.Warn("validation failed", "error", validation.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", validation.Message)

	case errors.As(err, &unauthorized):
		log.Warn("unauthorized", "error", unauthorized.Message)
		h.WriteError(w, r, http.StatusUnauthorized, "unauthorized", unauthorized.Message)

	case errors.As(err, &notFound):
		log.Warn("resource not found", "error", notFound.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", notFound.Message)

	case errors.As(err, &outOfRange):
		log.Warn("package index out of range",
			"category", outOfRange.Category,
			"index", outOfRange.Index,
			"length", outOfRange.Length)
		h.WriteError(w, r, http.StatusNotFound, "index_out_of_range", outOfRange.Message)

	case errors.As(err, &precondition):
		log.Warn("package write without etag",
			"category", precondition.Category,
			"index", precondition.Index)
		h.WriteError(w, r, http.StatusPreconditionRequired, "precondition_required", precondition.Message)

	case errors.As(err, &network):
		log.Error("content store unreachable", "operation", network.Operation, "error", network.Err)
		h.WriteError(w, r, http.StatusServiceUnavailable, "network_unavailable", network.Message)

	case errors.As(err, &writeFailed):
		log.Error("write failed", "operation", writeFailed.Operation, "error", writeFailed.Message)
		h.WriteError(w, r, http.StatusBadGateway, "write_failed", writeFailed.Message)

	case errors.As(err, &timeout):
		log.Error("operation timed out", "operation", timeout.Operation)
		h.WriteError(w, r, http.StatusGatewayTimeout, "timeout", timeout.Message)

	case errors.As(err, &database):
		log.Error("database error",
			"operation", database.Operation,
			"error", database.Message,
			"cause", database.Err)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	case errors.As(err, &external):
		level := slog.LevelError
		if external.Transient {
			level = slog.LevelWarn
		}
		log.Log(r.Context(), level, "external service error",
			"service", external.Service,
			"transient", external.Transient,
			"error", external.Message)

		status := http.StatusBadGateway
		if external.Transient {
			status = http.StatusServiceUnavailable
		}
		h.WriteError(w, r, status, "service_unavailable", external.Message)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
