package model

type Bot struct {
	ID               ID     `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Price            Amount `json:"price"`
	PotentialReturn  Amount `json:"potential_return"`
	Days             int    `json:"days"`
	TargetedProfit   Amount `json:"targeted_profit"`
	ShortDescription string `json:"short_description,omitempty"`
}

type BotDetails struct {
	Bot
	FullDescription    string `json:"full_description,omitempty"`
	HowItWorks         string `json:"how_it_works,omitempty"`
	InvestmentDuration int    `json:"investment_duration,omitempty"`
	Investment         Amount `json:"investment,omitempty"`
}

type ActiveBotSubscription struct {
	ID              ID     `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	StatusClass     string `json:"status_class,omitempty"`
	Progress        Amount `json:"progress"`
	DaysCompleted   int    `json:"days_completed"`
	DaysRemaining   int    `json:"days_remaining"`
	OriginalDays    int    `json:"original_days,omitempty"`
	NetProfit       Amount `json:"net_profit"`
	Price           Amount `json:"price,omitempty"`
	PurchaseDate    string `json:"purchase_date"`
	ExpiryDate      string `json:"expiry_date"`
	FullDescription string `json:"full_description,omitempty"`
}
