package gateway

import (
	"context"
	"net/http"

	"algonest_webclient/internal/model"
)

type authResponse struct {
	Token  string   `json:"token"`
	UserID model.ID `json:"user_id"`
}

func (c *Client) Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error) {
	var out authResponse
	_, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/user_auth",
		body:     creds,
		fallback: "Login failed",
	}, &out)
	if err != nil {
		return nil, err
	}

	if out.Token == "" {
		return nil, ErrInvalidResponse
	}

	return &model.AuthResult{Token: out.Token, UserID: out.UserID.String()}, nil
}

func (c *Client) Register(ctx context.Context, reg model.Registration) (*Result, error) {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/register",
		body:     reg,
		fallback: "Signup failed",
	}, nil)
}

func (c *Client) GenerateResetKey(ctx context.Context, email string) (*Result, error) {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/generate_reset_key",
		body:     map[string]string{"email": email},
		fallback: "Failed to send reset link",
	}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, key, newPassword string) (*Result, error) {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/reset_password",
		body:     map[string]string{"key": key, "new_password": newPassword},
		fallback: "Failed to reset password",
	}, nil)
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) (*Result, error) {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/change_password",
		body:     map[string]string{"old_password": oldPassword, "new_password": newPassword},
		auth:     true,
		fallback: "Password change failed",
	}, nil)
}

func (c *Client) ResendVerification(ctx context.Context) (*Result, error) {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/resend_verification",
		fallback: "Failed to resend email.",
	}, nil)
}

func (c *Client) SubmitReport(ctx context.Context, report model.SupportReport) (*Result, error) {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/submit_report",
		body:     report,
		fallback: "Failed to submit report",
	}, nil)
}
