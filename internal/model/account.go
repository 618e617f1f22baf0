package model

type ChartData struct {
	Labels   []string `json:"labels"`
	Datasets struct {
		Data []Amount `json:"data"`
	} `json:"datasets"`
}

type Dashboard struct {
	TotalBalance        Amount     `json:"total_balance"`
	MainBalance         Amount     `json:"main_balance"`
	ReferralCommissions Amount     `json:"referral_commissions"`
	ActiveBots          int        `json:"active_bots"`
	Announcement        string     `json:"announcement,omitempty"`
	GraphData           any        `json:"graph_data,omitempty"`
	ChartData           *ChartData `json:"chart_data,omitempty"`
}

type Profile struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	PhoneNumber         string `json:"phone_number"`
	ReferredBy          string `json:"referred_by"`
	DateJoined          string `json:"date_joined"`
	LastLogin           string `json:"last_login"`
	Bots                int    `json:"bots"`
	BotInvestment       Amount `json:"bot_investment"`
	TotalEarnings       Amount `json:"total_earnings"`
	TotalReferralIncome Amount `json:"total_referral_income"`
	WelcomeBonus        Amount `json:"welcome_bonus"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	Token  string
	UserID string
}

type Registration struct {
	Name         string  `json:"name"`
	PhoneNumber  string  `json:"phone_number"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	ReferralCode *string `json:"referral_code"`
}

type SupportReport struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}
