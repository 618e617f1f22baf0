package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActive(t *testing.T) {
	tests := map[string]string{
		"/dashboard":            "home",
		"/bots":                 "bots",
		"/active-bots":          "bots",
		"/active-bot-details/3": "",
		"/wallet":               "wallet",
		"/transactions":         "transactions",
		"/account":              "account",
		"/recharge":             "",
		"/":                     "",
	}

	for path, want := range tests {
		assert.Equal(t, want, Active(path), path)
	}
}

func TestFor(t *testing.T) {
	b := For("/wallet")
	assert.Equal(t, "wallet", b.Active)
	assert.Len(t, b.Items, 5)
	assert.Equal(t, "Txn's", b.Items[3].Label)
	assert.Equal(t, "/transactions", b.Items[3].Path)

	b.Items[0].Label = "changed"
	assert.Equal(t, "Home", For("/").Items[0].Label)
}
