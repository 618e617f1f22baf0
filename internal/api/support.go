package api

import (
	"context"
	"net/http"

	"algonest_webclient/internal/validation"

	"github.com/gin-gonic/gin"
)

type supportRoutes struct {
	*handler
}

func NewSupportRoutes(g *gin.RouterGroup, h *handler) {
	r := &supportRoutes{handler: h}
	{
		g.GET("/customer-service", r.page)
		g.POST("/customer-service", r.submitReport)
	}
}

func (r *supportRoutes) page(c *gin.Context) {
	c.JSON(http.StatusOK, staticPage("customer-service", nil))
}

func (r *supportRoutes) submitReport(c *gin.Context) {
	var form validation.SupportReportForm
	if !r.bindForm(c, &form) {
		return
	}

	snap, err := r.submit(c, "customer-service", func(ctx context.Context) (string, error) {
		return r.svc.SubmitReport(ctx, form)
	})
	r.renderOutcome(c, snap, err)
}
