package api

import (
	"net/http"
	"time"

	"algonest_webclient/internal/alert"
	"algonest_webclient/internal/middleware"
	"algonest_webclient/internal/model"
	"algonest_webclient/internal/screen"
	"algonest_webclient/internal/service"
	"algonest_webclient/internal/validation"
	"algonest_webclient/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

type Deps struct {
	Service *service.Service
	Auth    *middleware.Authorization
	Screens *screen.Registry
	Alerts  *alert.Hub
	CORS    CORSConfig
}

type handler struct {
	svc     *service.Service
	auth    *middleware.Authorization
	screens *screen.Registry
	alerts  *alert.Hub
}

func NewRouter(d Deps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v); err != nil {
			logger.Logger().Error("failed to register form rules", zap.Error(err))
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(d.CORS)))

	h := &handler{
		svc:     d.Service,
		auth:    d.Auth,
		screens: d.Screens,
		alerts:  d.Alerts,
	}

	public := router.Group("/")
	NewAuthRoutes(public, h)
	NewSupportRoutes(public, h)

	private := router.Group("/")
	private.Use(d.Auth.RequireSession())
	NewAccountRoutes(private, h)
	NewBotRoutes(private, h)
	NewFundsRoutes(private, h)
	NewAlertRoutes(private, h)
	private.POST("/screens/:screen/retry", h.retry)
	private.POST("/logout", h.logout)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return router
}

func corsConfig(cfg CORSConfig) cors.Config {
	config := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 0 {
		config.AllowOriginFunc = func(string) bool { return true }
	} else {
		config.AllowOrigins = cfg.AllowOrigins
	}
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
	}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour
	return config
}

func (h *handler) session(c *gin.Context) *model.Session {
	s, _ := middleware.Session(c)
	return s
}

func (h *handler) machine(c *gin.Context, name string) *screen.Machine {
	s := h.session(c)
	if s == nil {
		return screen.NewMachine(name, 0, Describe)
	}
	return h.screens.Machine(s.ID, name)
}

// submit runs fn on the screen's machine and mirrors the outcome to the
// session's alert streams.
func (h *handler) submit(c *gin.Context, name string, fn screen.SubmitFunc) (screen.Snapshot, error) {
	m := h.machine(c, name)
	s := h.session(c)
	if s == nil {
		defer m.Close()
	}

	snap, err := m.Submit(c.Request.Context(), fn)

	if s != nil && h.alerts != nil && snap.Status != "" {
		h.alerts.Publish(s.ID, snap.StatusType, snap.Status)
	}

	return snap, err
}

// retryable screens, keyed by the name used in /screens/:screen/retry.
var retryable = map[string]struct{}{
	"dashboard":          {},
	"account":            {},
	"bots":               {},
	"learn-more":         {},
	"active-bots":        {},
	"active-bot-details": {},
	"wallet":             {},
	"withdraw":           {},
	"referrals":          {},
	"transactions":       {},
}

func (h *handler) retry(c *gin.Context) {
	name := c.Param("screen")
	if _, ok := retryable[name]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown screen"})
		return
	}

	snap, err := h.machine(c, name).Retry(c.Request.Context())
	h.renderPage(c, name, snap, err)
}

func (h *handler) logout(c *gin.Context) {
	s := h.session(c)
	if s != nil {
		if err := h.svc.Logout(c.Request.Context(), s.ID); err != nil {
			h.renderError(c, err)
			return
		}
	}

	h.auth.ClearCookie(c)
	c.JSON(http.StatusOK, outcome{Redirect: middleware.LoginPath})
}

func sessionID(s *model.Session) uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.ID
}
