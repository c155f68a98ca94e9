package identityclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/errs"
)

const serviceName = "identity"

// Adapter talks to Firebase Authentication: password sign-in goes through the
// Identity Toolkit REST API with the project's web API key, account changes
// through the Admin SDK.
type Adapter struct {
	toolkit *identitytoolkit.Service
	auth    *auth.Client
}

// NewAdapter builds the sign-in client. opts are appended after the API key,
// so tests can point it at a local endpoint.
func NewAdapter(ctx context.Context, authClient *auth.Client, apiKey string, opts ...option.ClientOption) (*Adapter, error) {
	if apiKey == "" && len(opts) == 0 {
		return nil, errors.New("identity: web API key is required")
	}
	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}
	return &Adapter{toolkit: svc, auth: authClient}, nil
}

func (a *Adapter) SignInWithPassword(ctx context.Context, email, password string) (dto.SignInResult, error) {
	resp, err := a.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return dto.SignInResult{}, signInError(err)
	}
	return dto.SignInResult{
		UID:          resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (a *Adapter) RevokeSessions(ctx context.Context, uid string) error {
	if err := a.auth.RevokeRefreshTokens(ctx, uid); err != nil {
		return accountError("failed to sign out", err)
	}
	return nil
}

func (a *Adapter) UpdatePassword(ctx context.Context, uid, password string) error {
	if _, err := a.auth.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Password(password)); err != nil {
		return accountError("failed to update password", err)
	}
	return nil
}

// signInError maps Identity Toolkit failures. Bad credentials in any of their
// spellings become UnauthorizedError without saying which part was wrong.
func signInError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return errs.NewExternalServiceError(serviceName, "identity provider unreachable", true, err)
	}

	reason := strings.ToUpper(apiErr.Message)
	switch {
	case strings.Contains(reason, "TOO_MANY_ATTEMPTS"):
		return errs.NewExternalServiceError(serviceName, "too many sign-in attempts, try again later", true, err)
	case strings.Contains(reason, "USER_DISABLED"):
		return errs.NewUnauthorizedError("this account has been disabled")
	case apiErr.Code == http.StatusBadRequest:
		return errs.NewUnauthorizedError("invalid email or password")
	case apiErr.Code >= http.StatusInternalServerError:
		return errs.NewExternalServiceError(serviceName, "identity provider unavailable", true, err)
	default:
		return errs.NewExternalServiceError(serviceName, "sign-in failed", false, err)
	}
}

func accountError(msg string, err error) error {
	if auth.IsUserNotFound(err) {
		return errs.NewNotFoundError("user not found")
	}
	return errs.NewExternalServiceError(serviceName, msg, false, err)
}
