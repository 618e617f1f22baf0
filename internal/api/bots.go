package api

import (
	"context"

	"github.com/gin-gonic/gin"
)

type botRoutes struct {
	*handler
}

func NewBotRoutes(g *gin.RouterGroup, h *handler) {
	r := &botRoutes{handler: h}
	{
		g.GET("/bots", r.bots)
		g.GET("/learn-more/:id", r.botDetails)
		g.POST("/learn-more/:id/purchase", r.purchase)
		g.GET("/active-bots", r.activeBots)
		g.GET("/active-bot-details/:id", r.activeBotDetails)
	}
}

func (r *botRoutes) bots(c *gin.Context) {
	snap, err := r.machine(c, "bots").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.Bots(ctx)
	})
	r.renderPage(c, "bots", snap, err)
}

func (r *botRoutes) botDetails(c *gin.Context) {
	id := c.Param("id")
	snap, err := r.machine(c, "learn-more").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.BotDetails(ctx, id)
	})
	r.renderPage(c, "learn-more", snap, err)
}

func (r *botRoutes) purchase(c *gin.Context) {
	id := c.Param("id")
	snap, err := r.submit(c, "learn-more", func(ctx context.Context) (string, error) {
		return r.svc.PurchaseBot(ctx, id)
	})
	r.renderOutcome(c, snap, err)
}

func (r *botRoutes) activeBots(c *gin.Context) {
	snap, err := r.machine(c, "active-bots").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.ActiveBots(ctx)
	})
	r.renderPage(c, "active-bots", snap, err)
}

func (r *botRoutes) activeBotDetails(c *gin.Context) {
	id := c.Param("id")
	snap, err := r.machine(c, "active-bot-details").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.ActiveBotDetails(ctx, id)
	})
	r.renderPage(c, "active-bot-details", snap, err)
}
