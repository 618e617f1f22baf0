package api

import (
	"errors"
	"net/http"

	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/model"
	"algonest_webclient/internal/nav"
	"algonest_webclient/internal/screen"
	"algonest_webclient/internal/service"
	"algonest_webclient/internal/validation"
	"algonest_webclient/internal/wallet"
	"algonest_webclient/internal/withdrawal"
	"algonest_webclient/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

// page is the view model of a screen.
type page struct {
	Screen string   `json:"screen"`
	Nav    *nav.Bar `json:"nav,omitempty"`
	screen.Snapshot
	Form any `json:"form,omitempty"`
}

// outcome is the reply to a form submission.
type outcome struct {
	Status     string            `json:"status,omitempty"`
	StatusType model.AlertType   `json:"status_type,omitempty"`
	Error      string            `json:"error,omitempty"`
	Errors     validation.Errors `json:"errors,omitempty"`
	Retryable  bool              `json:"retryable,omitempty"`
	Redirect   string            `json:"redirect,omitempty"`
	Data       any               `json:"data,omitempty"`
}

// Describe turns any error reaching a screen into user text.
func Describe(err error) (string, bool) {
	var (
		verrs validation.Errors
		check *withdrawal.CheckError
		fe    *wallet.FormatError
	)
	switch {
	case errors.As(err, &verrs):
		return "Please correct the highlighted fields.", false
	case errors.As(err, &check):
		return check.Message, false
	case errors.As(err, &fe):
		return fe.Error(), false
	case errors.Is(err, wallet.ErrAddressRequired), errors.Is(err, wallet.ErrInvalidSelection):
		return err.Error(), false
	case errors.Is(err, service.ErrMissingID):
		return "Not found.", false
	case errors.Is(err, screen.ErrBusy):
		return "Please wait, your request is being processed.", false
	default:
		return gateway.Message(err), gateway.Retryable(err)
	}
}

func statusFor(err error) int {
	var (
		verrs  validation.Errors
		check  *withdrawal.CheckError
		apiErr *gateway.APIError
	)
	switch {
	case errors.As(err, &verrs), errors.As(err, &check):
		return http.StatusUnprocessableEntity
	case errors.Is(err, gateway.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &apiErr):
		if apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError {
			return apiErr.Status
		}
		if apiErr.Status >= http.StatusInternalServerError {
			return http.StatusBadGateway
		}
		return http.StatusBadRequest
	case errors.Is(err, gateway.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, gateway.ErrNetwork), errors.Is(err, gateway.ErrInvalidResponse):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrMissingID):
		return http.StatusNotFound
	case errors.Is(err, screen.ErrBusy), errors.Is(err, screen.ErrSuperseded), errors.Is(err, screen.ErrClosed):
		return http.StatusConflict
	case errors.Is(err, screen.ErrNothingToRetry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) renderPage(c *gin.Context, name string, snap screen.Snapshot, err error) {
	if errors.Is(err, gateway.ErrUnauthorized) {
		h.auth.Deny(c)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
		if errors.Is(err, screen.ErrSuperseded) {
			// A newer load for this screen is in flight; its reply carries the data.
			logger.Logger().Debug("screen load superseded", zap.String("screen", name))
		} else if status >= http.StatusInternalServerError {
			logger.Logger().Warn("screen load failed", zap.String("screen", name), zap.Error(err))
		}
	}

	bar := nav.For(c.Request.URL.Path)
	c.JSON(status, page{Screen: name, Nav: &bar, Snapshot: snap})
}

func (h *handler) renderOutcome(c *gin.Context, snap screen.Snapshot, err error) {
	if errors.Is(err, gateway.ErrUnauthorized) {
		h.auth.Deny(c)
		return
	}

	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome{
		Status:     snap.Status,
		StatusType: snap.StatusType,
		Data:       snap.Data,
	})
}

func (h *handler) renderError(c *gin.Context, err error) {
	if errors.Is(err, gateway.ErrUnauthorized) {
		h.auth.Deny(c)
		return
	}

	msg, retryable := Describe(err)
	out := outcome{Error: msg, Retryable: retryable, StatusType: model.AlertError}

	var (
		verrs validation.Errors
		check *withdrawal.CheckError
	)
	if errors.As(err, &verrs) {
		out.Errors = verrs
	}
	if errors.As(err, &check) {
		out.StatusType = check.Type
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Logger().Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}

	c.JSON(status, out)
}

func navFor(c *gin.Context) nav.Bar {
	return nav.For(c.Request.URL.Path)
}
