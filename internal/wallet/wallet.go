package wallet

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	ErrAddressRequired  = errors.New("Wallet address is required")
	ErrInvalidSelection = errors.New("Invalid coin selection")
)

// FormatError reports an address that does not match its network's shape.
type FormatError struct {
	Network string
	Example string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Invalid %s address. %s", e.Network, e.Example)
}

type NetworkInfo struct {
	Name    string `mapstructure:"name" json:"name"`
	Example string `mapstructure:"example" json:"example"`
}

// Config maps "<NETWORK>/<ASSET>" coin names to address patterns and
// networks to their display info.
type Config struct {
	Rules    map[string]string      `mapstructure:"rules"`
	Networks map[string]NetworkInfo `mapstructure:"networks"`
}

var DefaultConfig = Config{
	Rules: map[string]string{
		"TON/USDT":   `^(?:[a-zA-Z0-9_-]{48}|[a-zA-Z0-9_-]{95})$`,
		"TON/TON":    `^(?:[a-zA-Z0-9_-]{48}|[a-zA-Z0-9_-]{95})$`,
		"TRX/USDT":   `^T[1-9A-HJ-NP-Za-km-z]{33}$`,
		"TRX/TRON":   `^T[1-9A-HJ-NP-Za-km-z]{33}$`,
		"SOL/USDT":   `^[1-9A-HJ-NP-Za-km-z]{32,44}$`,
		"SOL/SOLANA": `^[1-9A-HJ-NP-Za-km-z]{32,44}$`,
	},
	Networks: map[string]NetworkInfo{
		"TON": {Name: "The Open Network", Example: "EQ... or UQ... (48/95 chars)"},
		"TRX": {Name: "TRON Network", Example: "T... (34 chars starting with T)"},
		"SOL": {Name: "Solana Network", Example: "... (32-44 base58 chars)"},
	},
}

type Option struct {
	CoinName string `json:"coin_name"`
	Network  string `json:"network"`
	Asset    string `json:"asset"`
	Label    string `json:"label"`
	Example  string `json:"example"`
}

type Validator struct {
	rules    map[string]*regexp.Regexp
	networks map[string]NetworkInfo
}

// NewValidator compiles cfg. Keys missing from cfg fall back to DefaultConfig.
func NewValidator(cfg Config) (*Validator, error) {
	v := &Validator{
		rules:    make(map[string]*regexp.Regexp),
		networks: make(map[string]NetworkInfo),
	}

	patterns := make(map[string]string, len(DefaultConfig.Rules))
	for k, p := range DefaultConfig.Rules {
		patterns[k] = p
	}
	for k, p := range cfg.Rules {
		patterns[strings.ToUpper(k)] = p
	}

	for k, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid address pattern for %s: %w", k, err)
		}
		v.rules[k] = re
	}

	for k, n := range DefaultConfig.Networks {
		v.networks[k] = n
	}
	for k, n := range cfg.Networks {
		v.networks[strings.ToUpper(k)] = n
	}

	return v, nil
}

// Validate checks address against the rule for coinName. It never touches
// the network and only proves the shape of the address.
func (v *Validator) Validate(coinName, address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressRequired
	}

	re, ok := v.rules[coinName]
	if !ok {
		return ErrInvalidSelection
	}

	if !re.MatchString(address) {
		network, _, _ := strings.Cut(coinName, "/")
		return &FormatError{Network: network, Example: v.networks[network].Example}
	}

	return nil
}

func (v *Validator) Network(network string) (NetworkInfo, bool) {
	n, ok := v.networks[network]
	return n, ok
}

func (v *Validator) Options() []Option {
	opts := make([]Option, 0, len(v.rules))
	for coin := range v.rules {
		network, asset, _ := strings.Cut(coin, "/")
		info := v.networks[network]
		label := asset
		if info.Name != "" {
			label = fmt.Sprintf("%s (%s)", asset, info.Name)
		}
		opts = append(opts, Option{
			CoinName: coin,
			Network:  network,
			Asset:    asset,
			Label:    label,
			Example:  info.Example,
		})
	}

	sort.Slice(opts, func(i, j int) bool {
		return opts[i].CoinName < opts[j].CoinName
	})

	return opts
}
