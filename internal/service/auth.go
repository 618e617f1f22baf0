package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/model"
	"algonest_webclient/internal/validation"

	"github.com/google/uuid"
)

var disabledPattern = regexp.MustCompile(`(?i)suspended|disabled`)

// IsAccountDisabled reports whether a login failure is a suspended or
// disabled account, for which the login screen offers a support route.
func IsAccountDisabled(err error) bool {
	return err != nil && disabledPattern.MatchString(gateway.Message(err))
}

type SessionStore interface {
	Login(ctx context.Context, token, userID string) (*model.Session, error)
	Logout(ctx context.Context, id uuid.UUID) error
}

type AuthService struct {
	backend  AuthBackend
	sessions SessionStore
}

func NewAuthService(backend AuthBackend, sessions SessionStore) *AuthService {
	return &AuthService{backend: backend, sessions: sessions}
}

func (s *AuthService) Signup(ctx context.Context, form validation.SignupForm) (string, error) {
	if err := form.Validate().Err(); err != nil {
		return "", err
	}

	res, err := s.backend.Register(ctx, model.Registration{
		Name:         strings.TrimSpace(form.FullName),
		PhoneNumber:  form.PhoneNumber(),
		Email:        strings.TrimSpace(form.Email),
		Password:     form.Password,
		ReferralCode: form.ReferralCode(),
	})
	if err != nil {
		return "", err
	}

	return messageOr(res, "Registration successful! Redirecting..."), nil
}

func (s *AuthService) Login(ctx context.Context, form validation.LoginForm) (*model.Session, error) {
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	res, err := s.backend.Login(ctx, model.Credentials{
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Login(ctx, res.Token, res.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, id uuid.UUID) error {
	return s.sessions.Logout(ctx, id)
}

func (s *AuthService) ForgotPassword(ctx context.Context, form validation.ForgotPasswordForm) (string, error) {
	if err := form.Validate().Err(); err != nil {
		return "", err
	}

	res, err := s.backend.GenerateResetKey(ctx, strings.TrimSpace(form.Email))
	if err != nil {
		return "", err
	}

	return messageOr(res, "Password reset instructions have been sent to your email."), nil
}

func (s *AuthService) ResetPassword(ctx context.Context, form validation.ResetPasswordForm) (string, error) {
	if err := form.Validate().Err(); err != nil {
		return "", err
	}

	res, err := s.backend.ResetPassword(ctx, form.Key, form.Password)
	if err != nil {
		return "", err
	}

	return messageOr(res, "Password reset successfully!"), nil
}

// ChangePassword updates the password and ends the session so the user
// signs in again with the new one.
func (s *AuthService) ChangePassword(ctx context.Context, sessionID uuid.UUID, form validation.ChangePasswordForm) (string, error) {
	if err := form.Validate().Err(); err != nil {
		return "", err
	}

	res, err := s.backend.ChangePassword(ctx, form.CurrentPassword, form.NewPassword)
	if err != nil {
		return "", err
	}

	if err = s.sessions.Logout(ctx, sessionID); err != nil {
		return "", fmt.Errorf("failed to end session: %w", err)
	}

	return messageOr(res, "Password changed successfully! Redirecting to login..."), nil
}

func (s *AuthService) ResendVerification(ctx context.Context) (string, error) {
	res, err := s.backend.ResendVerification(ctx)
	if err != nil {
		return "", err
	}
	return messageOr(res, "Verification email sent successfully."), nil
}
