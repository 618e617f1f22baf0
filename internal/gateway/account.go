package gateway

import (
	"context"
	"net/http"

	"algonest_webclient/internal/model"
)

func (c *Client) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var out model.Dashboard
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/dashboard",
		auth:     true,
		field:    "data",
		required: true,
		fallback: "Failed to fetch dashboard data",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profile(ctx context.Context) (*model.Profile, error) {
	var out model.Profile
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/profile",
		auth:     true,
		field:    "data",
		required: true,
		fallback: "Failed to load profile data",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Referrals(ctx context.Context) (*model.ReferralSummary, error) {
	var out model.ReferralSummary
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/referrals",
		auth:     true,
		field:    "data",
		required: true,
		fallback: "Failed to fetch referral data. Please try again later.",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Transactions(ctx context.Context) (*model.TransactionHistory, error) {
	var out model.TransactionHistory
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/transactions",
		auth:     true,
		field:    "transactions",
		fallback: "Failed to fetch transactions.",
	}, &out)
	if err != nil {
		return nil, err
	}

	if out.Deposits == nil {
		out.Deposits = []model.Transaction{}
	}
	if out.Withdrawals == nil {
		out.Withdrawals = []model.Transaction{}
	}
	for i := range out.Deposits {
		out.Deposits[i].Status = out.Deposits[i].Status.Normalize()
	}
	for i := range out.Withdrawals {
		out.Withdrawals[i].Status = out.Withdrawals[i].Status.Normalize()
	}

	return &out, nil
}
