package api

import (
	"net/http"

	"algonest_webclient/internal/middleware"
	"algonest_webclient/internal/model"
	"algonest_webclient/internal/screen"
	"algonest_webclient/internal/service"
	"algonest_webclient/internal/validation"
	"algonest_webclient/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type authRoutes struct {
	*handler
}

func NewAuthRoutes(g *gin.RouterGroup, h *handler) {
	r := &authRoutes{handler: h}
	{
		g.GET("/signup", r.signupPage)
		g.POST("/signup", r.signup)
		g.GET("/login", r.loginPage)
		g.POST("/login", r.login)
		g.GET("/forgot-password", r.forgotPasswordPage)
		g.POST("/forgot-password", r.forgotPassword)
		g.GET("/reset-password/:key", r.resetPasswordPage)
		g.POST("/reset-password/:key", r.resetPassword)
		g.GET("/verify-email", r.verifyEmailPage)
		g.POST("/verify-email/resend", r.resendVerification)
		g.GET("/terms", r.termsPage)
	}
}

func staticPage(name string, form any) page {
	return page{Screen: name, Snapshot: screen.Snapshot{State: screen.StateIdle}, Form: form}
}

// bindForm decodes and validates the request into form. Field failures are
// answered with 422 and the per-field messages.
func (h *handler) bindForm(c *gin.Context, form any) bool {
	err := c.ShouldBind(form)
	if err == nil {
		return true
	}

	if errs, ok := validation.FromError(err); ok {
		h.renderError(c, errs)
		return false
	}

	logger.Logger().Info("failed to bind form", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	return false
}

func (r *authRoutes) signupPage(c *gin.Context) {
	c.JSON(http.StatusOK, staticPage("signup", gin.H{
		"invitation_code": c.Query("ref"),
		"country_code":    validation.DefaultCountry().Code,
		"countries":       validation.Countries(),
	}))
}

func (r *authRoutes) signup(c *gin.Context) {
	var form validation.SignupForm
	if !r.bindForm(c, &form) {
		return
	}

	msg, err := r.svc.Signup(c.Request.Context(), form)
	if err != nil {
		r.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome{Status: msg, StatusType: model.AlertSuccess, Redirect: middleware.LoginPath})
}

func (r *authRoutes) loginPage(c *gin.Context) {
	c.JSON(http.StatusOK, staticPage("login", gin.H{
		"next": middleware.SafeNext(c.Query("next")),
	}))
}

type loginRequest struct {
	validation.LoginForm
	Next string `form:"next" json:"next"`
}

func (r *authRoutes) login(c *gin.Context) {
	log := logger.Logger()

	var req loginRequest
	if !r.bindForm(c, &req) {
		return
	}
	if req.Next == "" {
		req.Next = c.Query("next")
	}

	s, err := r.svc.Login(c.Request.Context(), req.LoginForm)
	if err != nil {
		if service.IsAccountDisabled(err) {
			msg, _ := Describe(err)
			c.JSON(statusFor(err), gin.H{
				"error":            msg,
				"account_disabled": true,
				"support":          "/customer-service",
			})
			return
		}
		r.renderError(c, err)
		return
	}

	r.auth.SetCookie(c, s)
	log.Info("user logged in", zap.String("user_id", s.UserID))

	c.JSON(http.StatusOK, outcome{Redirect: middleware.SafeNext(req.Next)})
}

func (r *authRoutes) forgotPasswordPage(c *gin.Context) {
	c.JSON(http.StatusOK, staticPage("forgot-password", nil))
}

func (r *authRoutes) forgotPassword(c *gin.Context) {
	var form validation.ForgotPasswordForm
	if !r.bindForm(c, &form) {
		return
	}

	msg, err := r.svc.ForgotPassword(c.Request.Context(), form)
	if err != nil {
		r.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome{Status: msg, StatusType: model.AlertSuccess})
}

func (r *authRoutes) resetPasswordPage(c *gin.Context) {
	c.JSON(http.StatusOK, staticPage("reset-password", gin.H{"key": c.Param("key")}))
}

func (r *authRoutes) resetPassword(c *gin.Context) {
	form := validation.ResetPasswordForm{Key: c.Param("key")}
	if !r.bindForm(c, &form) {
		return
	}

	msg, err := r.svc.ResetPassword(c.Request.Context(), form)
	if err != nil {
		r.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome{Status: msg, StatusType: model.AlertSuccess, Redirect: middleware.LoginPath})
}

// verifyEmailPage has no backend status endpoint to consult, so the
// verification state is reported as unknown and the resend flow is offered.
func (r *authRoutes) verifyEmailPage(c *gin.Context) {
	c.JSON(http.StatusOK, staticPage("verify-email", gin.H{
		"verified": nil,
		"message":  "Please check your email for a verification link.",
		"resend":   "/verify-email/resend",
	}))
}

func (r *authRoutes) resendVerification(c *gin.Context) {
	msg, err := r.svc.ResendVerification(c.Request.Context())
	if err != nil {
		r.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome{Status: msg, StatusType: model.AlertSuccess})
}

func (r *authRoutes) termsPage(c *gin.Context) {
	c.JSON(http.StatusOK, staticPage("terms", gin.H{"back": "/signup"}))
}
