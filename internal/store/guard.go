package store

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

// guard re-enables the store's network path before a write. It is advisory:
// a failure is logged and the write goes ahead.
type guard struct {
	docs Documents
}

func newGuard(docs Documents) *guard {
	return &guard{docs: docs}
}

func (g *guard) Ensure(ctx context.Context) {
	if err := g.docs.EnableNetwork(ctx); err != nil {
		logger.FromContext(ctx).Warn("enable network failed, continuing with write", "error", err)
	}
}

// ClassifyWriteError turns a store write error into Timeout for an expired
// deadline, NetworkUnavailable when it indicates an offline client or
// unreachable backend, and WriteFailed carrying the store's message otherwise.
func ClassifyWriteError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var (
		netErr     *errs.NetworkUnavailableError
		writeErr   *errs.WriteFailedError
		timeoutErr *errs.TimeoutError
	)
	if errors.As(err, &netErr) || errors.As(err, &writeErr) || errors.As(err, &timeoutErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || status.Code(err) == codes.DeadlineExceeded {
		return errs.NewTimeoutError(operation, 0)
	}
	if isOffline(err) {
		return errs.NewNetworkUnavailableError(operation, err)
	}
	return errs.NewWriteFailedError(operation, err)
}

func isOffline(err error) bool {
	if errors.Is(err, errOffline) || strings.Contains(strings.ToLower(err.Error()), "offline") {
		return true
	}
	if status.Code(err) == codes.Unavailable {
		return true
	}
	return mongo.IsNetworkError(err)
}

// isPermissionDenied matches both grpc status and message text, the way
// security-rule rejections surface.
func isPermissionDenied(err error) bool {
	if status.Code(err) == codes.PermissionDenied {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "permission")
}
