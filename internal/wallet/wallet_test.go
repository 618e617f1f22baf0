package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func newDefaultValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator(Config{})
	require.NoError(t, err)
	return v
}

func TestValidate(t *testing.T) {
	v := newDefaultValidator(t)

	tests := []struct {
		name     string
		coin     string
		address  string
		wantErr  error
		wantText string
	}{
		{name: "TRON valid", coin: "TRX/USDT", address: "TUdb2PtkoDAKFiSZExwgG6i2gAX1Lz2hf7"},
		{name: "TRON asset valid", coin: "TRX/TRON", address: "TUdb2PtkoDAKFiSZExwgG6i2gAX1Lz2hf7"},
		{name: "Solana valid", coin: "SOL/USDT", address: "HSoycY7wwXo2Y6ZfaWp4hriDgASUWCgGroGMmBZBKtBq"},
		{name: "TON valid", coin: "TON/TON", address: "UQCURJpI9cYd_0dm9Bbgwqjt19aSR08uWMv0Um5sILCLtdxu"},
		{name: "TON 95 chars", coin: "TON/USDT", address: strings.Repeat("a", 95)},
		{name: "Empty", coin: "TRX/USDT", address: "   ", wantErr: ErrAddressRequired, wantText: "Wallet address is required"},
		{name: "Unknown coin", coin: "BTC/BTC", address: "abc", wantErr: ErrInvalidSelection, wantText: "Invalid coin selection"},
		{name: "TRON without T", coin: "TRX/USDT", address: "AUdb2PtkoDAKFiSZExwgG6i2gAX1Lz2hf7", wantText: "Invalid TRX address. T... (34 chars starting with T)"},
		{name: "TRON with zero", coin: "TRX/USDT", address: "TUdb2PtkoDAKFiSZExwgG6i2gAX1Lz2hf0", wantText: "Invalid TRX address. T... (34 chars starting with T)"},
		{name: "Solana too short", coin: "SOL/SOLANA", address: strings.Repeat("a", 31), wantText: "Invalid SOL address. ... (32-44 base58 chars)"},
		{name: "TON 50 chars", coin: "TON/TON", address: strings.Repeat("a", 50), wantText: "Invalid TON address. EQ... or UQ... (48/95 chars)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.coin, tt.address)
			if tt.wantText == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantText, err.Error())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var fe *FormatError
				assert.ErrorAs(t, err, &fe)
			}
		})
	}
}

func TestValidate_TronShape(t *testing.T) {
	v := newDefaultValidator(t)

	for n := 30; n <= 38; n++ {
		body := strings.Repeat(string(base58[n%len(base58)]), n-1)
		addr := "T" + body
		err := v.Validate("TRX/USDT", addr)
		if n == 34 {
			assert.NoError(t, err, "length %d", n)
		} else {
			assert.Error(t, err, "length %d", n)
		}
	}

	for _, c := range "0OIl" {
		addr := "T" + strings.Repeat("a", 32) + string(c)
		assert.Error(t, v.Validate("TRX/USDT", addr), "char %q", c)
	}
}

func TestValidate_SolanaLengths(t *testing.T) {
	v := newDefaultValidator(t)

	for n := 28; n <= 48; n++ {
		err := v.Validate("SOL/USDT", strings.Repeat("z", n))
		if n >= 32 && n <= 44 {
			assert.NoError(t, err, "length %d", n)
		} else {
			assert.Error(t, err, "length %d", n)
		}
	}
}

func TestValidate_TonLengths(t *testing.T) {
	v := newDefaultValidator(t)

	for n := 1; n <= 100; n++ {
		err := v.Validate("TON/TON", strings.Repeat("-", n))
		if n == 48 || n == 95 {
			assert.NoError(t, err, "length %d", n)
		} else {
			assert.Error(t, err, "length %d", n)
		}
	}
}

func TestNewValidator_Overrides(t *testing.T) {
	v, err := NewValidator(Config{
		Rules:    map[string]string{"btc/btc": `^bc1[a-z0-9]{8,}$`},
		Networks: map[string]NetworkInfo{"BTC": {Name: "Bitcoin", Example: "bc1..."}},
	})
	require.NoError(t, err)

	assert.NoError(t, v.Validate("BTC/BTC", "bc1qxyz12345"))
	assert.EqualError(t, v.Validate("BTC/BTC", "1abc"), "Invalid BTC address. bc1...")
	assert.NoError(t, v.Validate("TRX/USDT", "TUdb2PtkoDAKFiSZExwgG6i2gAX1Lz2hf7"))

	_, err = NewValidator(Config{Rules: map[string]string{"X/Y": "("}})
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	v := newDefaultValidator(t)
	opts := v.Options()

	require.Len(t, opts, 6)
	assert.Equal(t, "SOL/SOLANA", opts[0].CoinName)
	assert.Equal(t, "SOLANA (Solana Network)", opts[0].Label)

	info, ok := v.Network("TRX")
	require.True(t, ok)
	assert.Equal(t, "TRON Network", info.Name)
}
