package gateway

import (
	"context"
	"net/http"
	"net/url"

	"algonest_webclient/internal/model"
)

func (c *Client) Bots(ctx context.Context) ([]model.Bot, error) {
	var out []model.Bot
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/bots",
		auth:     true,
		field:    "data",
		required: true,
		fallback: "Unexpected response format.",
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Bot{}
	}
	return out, nil
}

func (c *Client) BotDetails(ctx context.Context, id string) (*model.BotDetails, error) {
	var out model.BotDetails
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/bot_details",
		query:    url.Values{"id": {id}},
		auth:     true,
		field:    "bot_details",
		required: true,
		fallback: "Bot details not found.",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PurchaseBot buys the bot and returns the server's confirmation text.
func (c *Client) PurchaseBot(ctx context.Context, id string) (string, error) {
	res, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/purchase_bot",
		body:     map[string]string{"bot_id": id},
		auth:     true,
		fallback: "Investment failed",
	}, nil)
	if err != nil {
		return "", err
	}
	if res.Message == "" {
		return "Investment successful!", nil
	}
	return res.Message, nil
}

func (c *Client) ActiveBots(ctx context.Context) ([]model.ActiveBotSubscription, error) {
	var out []model.ActiveBotSubscription
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/active_bots",
		auth:     true,
		field:    "active_bots",
		fallback: "Failed to fetch active bots. Please try again later.",
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.ActiveBotSubscription{}
	}
	return out, nil
}

func (c *Client) ActiveBotDetails(ctx context.Context, id string) (*model.ActiveBotSubscription, error) {
	var out model.ActiveBotSubscription
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/active_bot_details",
		query:    url.Values{"id": {id}},
		auth:     true,
		field:    "bot_details",
		required: true,
		fallback: "Bot not found.",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
