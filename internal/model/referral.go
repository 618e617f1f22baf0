package model

type ReferralSummary struct {
	ReferralCode          string           `json:"referral_code"`
	TotalReferred         int              `json:"total_referred"`
	DepositorsCount       int              `json:"depositors_count"`
	TotalReferralEarnings Amount           `json:"total_referral_earnings"`
	EarningsData          []map[string]any `json:"earnings_data"`
	IsEligible            bool             `json:"is_eligible"`
}
