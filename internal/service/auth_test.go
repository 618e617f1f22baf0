package service

import (
	"context"
	"errors"
	"testing"

	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/model"
	"algonest_webclient/internal/service/mocks"
	"algonest_webclient/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup(t *testing.T) {
	form := validation.SignupForm{
		FullName:        " Ada Obi ",
		CountryCode:     "NG",
		Phone:           "8012345678",
		Email:           "ada@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		InvitationCode:  "REF42",
		AgreeToTerms:    true,
	}

	tests := []struct {
		name          string
		form          func() validation.SignupForm
		mockSetup     func(b *mocks.MockAuthBackend)
		expectedMsg   string
		expectedError string
		noCall        bool
	}{
		{
			name: "Registered",
			form: func() validation.SignupForm { return form },
			mockSetup: func(b *mocks.MockAuthBackend) {
				b.On("Register", mock.Anything, mock.MatchedBy(func(r model.Registration) bool {
					return r.Name == "Ada Obi" && r.PhoneNumber == "+2348012345678" &&
						r.ReferralCode != nil && *r.ReferralCode == "REF42"
				})).Return(&gateway.Result{}, nil)
			},
			expectedMsg: "Registration successful! Redirecting...",
		},
		{
			name: "Password mismatch never reaches the backend",
			form: func() validation.SignupForm {
				f := form
				f.ConfirmPassword = "other"
				return f
			},
			mockSetup:     func(b *mocks.MockAuthBackend) {},
			expectedError: "confirm_password: Passwords don't match.",
			noCall:        true,
		},
		{
			name: "Server error verbatim",
			form: func() validation.SignupForm { return form },
			mockSetup: func(b *mocks.MockAuthBackend) {
				b.On("Register", mock.Anything, mock.Anything).
					Return(nil, &gateway.APIError{Status: 409, Message: "Email already exists"})
			},
			expectedError: "Email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mocks.MockAuthBackend{}
			tt.mockSetup(backend)
			s := NewAuthService(backend, &mocks.MockSessionStore{})

			msg, err := s.Signup(context.Background(), tt.form())
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedMsg, msg)
			}
			if tt.noCall {
				backend.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			}
			backend.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	backend := &mocks.MockAuthBackend{}
	sessions := &mocks.MockSessionStore{}
	s := NewAuthService(backend, sessions)

	sess := &model.Session{ID: uuid.New(), AuthToken: "tok", UserID: "9"}
	backend.On("Login", mock.Anything, model.Credentials{Email: "a@b.co", Password: "secret1"}).
		Return(&model.AuthResult{Token: "tok", UserID: "9"}, nil)
	sessions.On("Login", mock.Anything, "tok", "9").Return(sess, nil)

	got, err := s.Login(context.Background(), validation.LoginForm{Email: " a@b.co ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	_, err = s.Login(context.Background(), validation.LoginForm{Email: "bad"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Email address is invalid.", verrs["email"])
}

func TestIsAccountDisabled(t *testing.T) {
	assert.True(t, IsAccountDisabled(&gateway.APIError{Message: "Your account has been suspended"}))
	assert.True(t, IsAccountDisabled(&gateway.APIError{Message: "Account DISABLED"}))
	assert.False(t, IsAccountDisabled(&gateway.APIError{Message: "Invalid credentials"}))
	assert.False(t, IsAccountDisabled(nil))
}

func TestAuthService_ChangePasswordEndsSession(t *testing.T) {
	backend := &mocks.MockAuthBackend{}
	sessions := &mocks.MockSessionStore{}
	s := NewAuthService(backend, sessions)
	id := uuid.New()

	backend.On("ChangePassword", mock.Anything, "old-pass", "new-pass").Return(&gateway.Result{}, nil)
	sessions.On("Logout", mock.Anything, id).Return(nil)

	msg, err := s.ChangePassword(context.Background(), id, validation.ChangePasswordForm{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
		ConfirmPassword: "new-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Password changed successfully! Redirecting to login...", msg)
	sessions.AssertExpectations(t)
}

func TestAuthService_ChangePasswordFailureKeepsSession(t *testing.T) {
	backend := &mocks.MockAuthBackend{}
	sessions := &mocks.MockSessionStore{}
	s := NewAuthService(backend, sessions)

	backend.On("ChangePassword", mock.Anything, "old-pass", "new-pass").
		Return(nil, &gateway.APIError{Message: "Current password is incorrect"})

	_, err := s.ChangePassword(context.Background(), uuid.New(), validation.ChangePasswordForm{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
		ConfirmPassword: "new-pass",
	})
	assert.EqualError(t, err, "Current password is incorrect")
	sessions.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}

func TestAuthService_ResetFlows(t *testing.T) {
	backend := &mocks.MockAuthBackend{}
	s := NewAuthService(backend, &mocks.MockSessionStore{})

	backend.On("GenerateResetKey", mock.Anything, "a@b.co").Return(&gateway.Result{Message: "Check your inbox"}, nil)
	msg, err := s.ForgotPassword(context.Background(), validation.ForgotPasswordForm{Email: "a@b.co"})
	require.NoError(t, err)
	assert.Equal(t, "Check your inbox", msg)

	backend.On("ResetPassword", mock.Anything, "key-1", "secret1").Return(&gateway.Result{}, nil)
	msg, err = s.ResetPassword(context.Background(), validation.ResetPasswordForm{Key: "key-1", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Password reset successfully!", msg)

	backend.On("ResendVerification", mock.Anything).Return(nil, errors.New("boom")).Once()
	_, err = s.ResendVerification(context.Background())
	assert.Error(t, err)
}
