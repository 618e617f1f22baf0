package service

import (
	"context"
	"net/url"
	"strings"

	"algonest_webclient/internal/model"
)

type ReferralConfig struct {
	LinkBase string `mapstructure:"linkBase"`
}

type ReferralView struct {
	*model.ReferralSummary
	Link string `json:"referral_link"`
}

type ReferralService struct {
	backend  ReferralBackend
	linkBase string
}

func NewReferralService(backend ReferralBackend, cfg ReferralConfig) *ReferralService {
	return &ReferralService{backend: backend, linkBase: strings.TrimRight(cfg.LinkBase, "/")}
}

func (s *ReferralService) Referrals(ctx context.Context) (*ReferralView, error) {
	summary, err := s.backend.Referrals(ctx)
	if err != nil {
		return nil, err
	}
	if summary.EarningsData == nil {
		summary.EarningsData = []map[string]any{}
	}

	return &ReferralView{ReferralSummary: summary, Link: s.Link(summary.ReferralCode)}, nil
}

// Link builds the signup URL that pre-fills the invitation code.
func (s *ReferralService) Link(code string) string {
	if code == "" {
		return ""
	}
	return s.linkBase + "/signup?ref=" + url.QueryEscape(code)
}
