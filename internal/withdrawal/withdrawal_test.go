package withdrawal

import (
	"math"
	"testing"

	"algonest_webclient/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Preview(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "0.00"},
		{amount: 2.99, want: "0.00"},
		{amount: 3, want: "2.70"},
		{amount: 100, want: "90.00"},
		{amount: 10.55, want: "9.50"},
		{amount: 1234.56, want: "1111.10"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultPolicy.Preview(tt.amount), "amount %v", tt.amount)
	}
}

func TestPolicy_PreviewCustom(t *testing.T) {
	p := Policy{FeeRate: 0.05, Minimum: 10}
	assert.Equal(t, "0.00", p.Preview(9.99))
	assert.Equal(t, "9.50", p.Preview(10))
	assert.Equal(t, "0.50", p.Fee(10))

	assert.Equal(t, "90.00", Policy{}.Preview(100))
}

func TestPolicy_Check(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		balance float64
		want    string
		kind    model.AlertType
	}{
		{name: "Below minimum", amount: 2, balance: 100, want: "The minimum withdrawal amount is $3.", kind: model.AlertWarning},
		{name: "Above balance", amount: 50, balance: 20.5, want: "Insufficient balance. Your available balance is $20.50", kind: model.AlertError},
		{name: "Whole balance", amount: 20.5, balance: 20.5},
		{name: "Within balance", amount: 10, balance: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultPolicy.Check(tt.amount, tt.balance)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var ce *CheckError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.want, ce.Message)
			assert.Equal(t, tt.kind, ce.Type)
		})
	}
}

func TestPolicy_NonFiniteAmounts(t *testing.T) {
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, "0.00", DefaultPolicy.Preview(amount))
		assert.Equal(t, "0.00", DefaultPolicy.Fee(amount))

		var ce *CheckError
		require.ErrorAs(t, DefaultPolicy.Check(amount, 100), &ce)
		assert.Equal(t, "Please enter a valid amount.", ce.Message)
		assert.Equal(t, model.AlertError, ce.Type)
	}

	var ce *CheckError
	require.ErrorAs(t, DefaultPolicy.Check(10, math.NaN()), &ce)
	assert.Equal(t, model.AlertError, ce.Type)

	assert.Equal(t, "90.00", Policy{FeeRate: math.NaN(), Minimum: math.Inf(1)}.Preview(100))
}
