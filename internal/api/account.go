package api

import (
	"context"
	"net/http"

	"algonest_webclient/internal/middleware"
	"algonest_webclient/internal/model"
	"algonest_webclient/internal/validation"

	"github.com/gin-gonic/gin"
)

type accountRoutes struct {
	*handler
}

func NewAccountRoutes(g *gin.RouterGroup, h *handler) {
	r := &accountRoutes{handler: h}
	{
		g.GET("/dashboard", r.dashboard)
		g.GET("/account", r.account)
		g.GET("/change-password", r.changePasswordPage)
		g.POST("/change-password", r.changePassword)
		g.GET("/referrals", r.referrals)
		g.GET("/transactions", r.transactions)
	}
}

func (r *accountRoutes) dashboard(c *gin.Context) {
	snap, err := r.machine(c, "dashboard").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.Dashboard(ctx)
	})
	r.renderPage(c, "dashboard", snap, err)
}

func (r *accountRoutes) account(c *gin.Context) {
	snap, err := r.machine(c, "account").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.Profile(ctx)
	})
	r.renderPage(c, "account", snap, err)
}

func (r *accountRoutes) changePasswordPage(c *gin.Context) {
	bar := navFor(c)
	p := staticPage("change-password", nil)
	p.Nav = &bar
	c.JSON(http.StatusOK, p)
}

// changePassword ends the session on success, so it bypasses the screen
// machine that the session teardown closes.
func (r *accountRoutes) changePassword(c *gin.Context) {
	var form validation.ChangePasswordForm
	if !r.bindForm(c, &form) {
		return
	}

	msg, err := r.svc.ChangePassword(c.Request.Context(), sessionID(r.session(c)), form)
	if err != nil {
		r.renderError(c, err)
		return
	}

	r.auth.ClearCookie(c)
	c.JSON(http.StatusOK, outcome{
		Status:     msg,
		StatusType: model.AlertSuccess,
		Redirect:   middleware.LoginPath,
	})
}

func (r *accountRoutes) referrals(c *gin.Context) {
	snap, err := r.machine(c, "referrals").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.Referrals(ctx)
	})
	r.renderPage(c, "referrals", snap, err)
}

func (r *accountRoutes) transactions(c *gin.Context) {
	status := model.TransactionStatus(c.Query("status"))
	snap, err := r.machine(c, "transactions").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.Transactions(ctx, status)
	})
	r.renderPage(c, "transactions", snap, err)
}
