package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"algonest_webclient/internal/model"
	"algonest_webclient/internal/session"
	"algonest_webclient/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionKey = "session"
	LoginPath  = "/login"
)

type SessionResolver interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Session, error)
}

type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge int
}

type Authorization struct {
	sessions SessionResolver
	cookie   CookieConfig
}

func NewAuthorization(sessions SessionResolver, cookie CookieConfig) *Authorization {
	if cookie.Name == "" {
		cookie.Name = session.DefaultCookieName
	}
	return &Authorization{
		sessions: sessions,
		cookie:   cookie,
	}
}

// RequireSession resolves the session cookie and binds the session to the
// request context. Requests without a live session are sent to the login
// screen with the originating route as next.
func (a *Authorization) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		raw, err := c.Cookie(a.cookie.Name)
		if err != nil || raw == "" {
			a.Deny(c)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			log.Info("malformed session cookie", zap.String("path", c.Request.URL.Path))
			a.Deny(c)
			return
		}

		s, err := a.sessions.Get(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) && !errors.Is(err, session.ErrSessionExpired) {
				log.Error("failed to resolve session", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			a.Deny(c)
			return
		}

		c.Set(sessionKey, s)
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), s))
		c.Next()
	}
}

// Deny clears the session cookie and navigates to the login screen. Page
// loads are redirected; other requests get 401 with the redirect target.
func (a *Authorization) Deny(c *gin.Context) {
	a.ClearCookie(c)

	target := LoginRedirect(c.Request.URL.RequestURI())
	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusSeeOther, target)
		c.Abort()
		return
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Session expired. Please login again.",
		"redirect": target,
	})
}

func (a *Authorization) SetCookie(c *gin.Context, s *model.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cookie.Name, s.ID.String(), a.cookie.MaxAge, "/", "", a.cookie.Secure, true)
}

func (a *Authorization) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cookie.Name, "", -1, "/", "", a.cookie.Secure, true)
}

// Session returns the session bound by RequireSession.
func Session(c *gin.Context) (*model.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*model.Session)
	return s, ok
}

// LoginRedirect builds the login URL that returns to next after sign in.
func LoginRedirect(next string) string {
	if next == "" || next == LoginPath {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(next)
}

// SafeNext keeps post-login redirects on this site.
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/dashboard"
	}
	if u, err := url.Parse(next); err != nil || u.Host != "" {
		return "/dashboard"
	}
	return next
}
