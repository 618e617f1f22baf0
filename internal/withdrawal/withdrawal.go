package withdrawal

import (
	"fmt"
	"math"

	"algonest_webclient/internal/model"

	"github.com/shopspring/decimal"
)

const (
	DefaultFeeRate = 0.10
	DefaultMinimum = 3.0
)

// Policy mirrors the backend's withdrawal fee and minimum. It only drives the
// preview; the backend applies the real fee.
type Policy struct {
	FeeRate float64 `mapstructure:"feeRate"`
	Minimum float64 `mapstructure:"minimum"`
}

var DefaultPolicy = Policy{FeeRate: DefaultFeeRate, Minimum: DefaultMinimum}

// CheckError blocks a submission before it reaches the backend. Type is the
// alert class the screen shows it with.
type CheckError struct {
	Type    model.AlertType
	Message string
}

func (e *CheckError) Error() string {
	return e.Message
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p Policy) normalized() Policy {
	if !finite(p.FeeRate) || p.FeeRate < 0 || p.FeeRate >= 1 {
		p.FeeRate = DefaultFeeRate
	}
	if !finite(p.Minimum) || p.Minimum <= 0 {
		p.Minimum = DefaultMinimum
	}
	return p
}

// Preview returns the amount the user receives after the fee, with two
// decimals. Amounts below the minimum or not finite preview as "0.00".
func (p Policy) Preview(amount float64) string {
	p = p.normalized()
	if !finite(amount) {
		return "0.00"
	}

	a := decimal.NewFromFloat(amount)
	if a.LessThan(decimal.NewFromFloat(p.Minimum)) {
		return "0.00"
	}

	keep := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(p.FeeRate))
	return a.Mul(keep).Round(2).StringFixed(2)
}

// Fee returns the fee portion of amount with two decimals.
func (p Policy) Fee(amount float64) string {
	p = p.normalized()
	if !finite(amount) {
		return "0.00"
	}

	a := decimal.NewFromFloat(amount)
	if a.LessThan(decimal.NewFromFloat(p.Minimum)) {
		return "0.00"
	}
	return a.Mul(decimal.NewFromFloat(p.FeeRate)).Round(2).StringFixed(2)
}

// Check rejects amounts below the minimum or above balance.
func (p Policy) Check(amount, balance float64) error {
	p = p.normalized()
	if !finite(amount) {
		return &CheckError{Type: model.AlertError, Message: "Please enter a valid amount."}
	}
	if !finite(balance) {
		return &CheckError{Type: model.AlertError, Message: "Your available balance could not be read."}
	}

	a := decimal.NewFromFloat(amount)
	if a.LessThan(decimal.NewFromFloat(p.Minimum)) {
		return &CheckError{Type: model.AlertWarning, Message: fmt.Sprintf("The minimum withdrawal amount is $%s.", decimal.NewFromFloat(p.Minimum).String())}
	}

	b := decimal.NewFromFloat(balance)
	if a.GreaterThan(b) {
		return &CheckError{Type: model.AlertError, Message: fmt.Sprintf("Insufficient balance. Your available balance is $%s", b.StringFixed(2))}
	}

	return nil
}
