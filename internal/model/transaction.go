package model

import "strings"

type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
	TransactionRejected TransactionStatus = "rejected"
)

// Normalize lowercases the status and maps anything unrecognised to pending.
func (s TransactionStatus) Normalize() TransactionStatus {
	switch v := TransactionStatus(strings.ToLower(strings.TrimSpace(string(s)))); v {
	case TransactionApproved, TransactionRejected:
		return v
	default:
		return TransactionPending
	}
}

type Transaction struct {
	Amount        Amount            `json:"amount"`
	Status        TransactionStatus `json:"status"`
	TransactionID string            `json:"transaction_id"`
	PaymentMethod string            `json:"payment_method"`
	Timestamp     string            `json:"timestamp"`
}

type TransactionHistory struct {
	Deposits    []Transaction `json:"deposits"`
	Withdrawals []Transaction `json:"withdrawals"`
}
