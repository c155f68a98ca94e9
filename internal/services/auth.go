package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

type identityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (dto.SignInResult, error)
	RevokeSessions(ctx context.Context, uid string) error
	UpdatePassword(ctx context.Context, uid, password string) error
}

type authService struct {
	identity identityProvider
	validate *validator.Validate
	now      func() time.Time
}

func NewAuthService(identity identityProvider, validate *validator.Validate) *authService {
	return &authService{identity: identity, validate: validate, now: time.Now}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (models.Session, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(s.validate, req); err != nil {
		return models.Session{}, err
	}

	res, err := s.identity.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return models.Session{}, err
	}

	logger.FromContext(ctx).Info("admin signed in", "uid", res.UID)
	return models.Session{
		UID:          res.UID,
		Email:        res.Email,
		IDToken:      res.IDToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    s.now().Add(time.Duration(res.ExpiresIn) * time.Second).UTC(),
	}, nil
}

// Logout revokes every refresh token of uid so no session of that admin can
// be renewed.
func (s *authService) Logout(ctx context.Context, uid string) error {
	if err := s.identity.RevokeSessions(ctx, uid); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("admin signed out")
	return nil
}

// ChangePassword re-checks the current password before setting the new one.
func (s *authService) ChangePassword(ctx context.Context, uid, email string, req dto.ChangePasswordRequest) error {
	if err := validateStruct(s.validate, req); err != nil {
		return err
	}
	if email == "" {
		return errs.NewValidationError("account has no email address")
	}

	if _, err := s.identity.SignInWithPassword(ctx, email, req.CurrentPassword); err != nil {
		var unauthorized *errs.UnauthorizedError
		if errors.As(err, &unauthorized) {
			return errs.NewValidationError("current password is incorrect")
		}
		return err
	}

	if err := s.identity.UpdatePassword(ctx, uid, req.NewPassword); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("admin password changed")
	return nil
}
