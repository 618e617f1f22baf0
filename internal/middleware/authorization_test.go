package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"algonest_webclient/internal/model"
	"algonest_webclient/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver map[uuid.UUID]*model.Session

func (r stubResolver) Get(_ context.Context, id uuid.UUID) (*model.Session, error) {
	s, ok := r[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return s, nil
}

func newRouter(a *Authorization) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(a.RequireSession())
	handler := func(c *gin.Context) {
		s, ok := session.FromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": s.AuthToken})
	}
	r.GET("/bots", handler)
	r.POST("/bots/purchase", handler)
	return r
}

func TestRequireSession(t *testing.T) {
	id := uuid.New()
	a := NewAuthorization(stubResolver{id: {ID: id, AuthToken: "tok"}}, CookieConfig{Name: "sid"})
	r := newRouter(a)

	tests := []struct {
		name         string
		method       string
		path         string
		cookie       string
		wantStatus   int
		wantLocation string
	}{
		{name: "Live session", method: http.MethodGet, path: "/bots", cookie: id.String(), wantStatus: http.StatusOK},
		{name: "No cookie on page load", method: http.MethodGet, path: "/bots", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Fbots"},
		{name: "Unknown session", method: http.MethodGet, path: "/bots?x=1", cookie: uuid.NewString(), wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Fbots%3Fx%3D1"},
		{name: "Malformed cookie", method: http.MethodGet, path: "/bots", cookie: "garbage", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Fbots"},
		{name: "Form post without session", method: http.MethodPost, path: "/bots/purchase", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sid", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
			if tt.wantStatus != http.StatusOK {
				require.NotEmpty(t, w.Result().Cookies())
				assert.Equal(t, "sid", w.Result().Cookies()[0].Name)
				assert.True(t, w.Result().Cookies()[0].MaxAge < 0)
			}
		})
	}
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/bots", SafeNext("/bots"))
	assert.Equal(t, "/learn-more/3?x=1", SafeNext("/learn-more/3?x=1"))
	assert.Equal(t, "/dashboard", SafeNext(""))
	assert.Equal(t, "/dashboard", SafeNext("https://evil.example"))
	assert.Equal(t, "/dashboard", SafeNext("//evil.example"))
	assert.Equal(t, "/dashboard", SafeNext("bots"))
}

func TestLoginRedirect(t *testing.T) {
	assert.Equal(t, "/login", LoginRedirect(""))
	assert.Equal(t, "/login", LoginRedirect("/login"))
	assert.Equal(t, "/login?next=%2Fwallet", LoginRedirect("/wallet"))
}
