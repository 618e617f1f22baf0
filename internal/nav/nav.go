package nav

import "strings"

type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Bar struct {
	Items        []Item `json:"items"`
	QuickActions []Item `json:"quick_actions"`
	Active       string `json:"active,omitempty"`
}

var items = []Item{
	{ID: "home", Label: "Home", Path: "/dashboard"},
	{ID: "bots", Label: "Bots", Path: "/bots"},
	{ID: "wallet", Label: "Wallet", Path: "/wallet"},
	{ID: "transactions", Label: "Txn's", Path: "/transactions"},
	{ID: "account", Label: "Account", Path: "/account"},
}

var quickActions = []Item{
	{ID: "quick-deposit", Label: "Quick Deposit", Path: "/recharge"},
	{ID: "new-bot", Label: "New Bot", Path: "/bots"},
}

// matchers are checked in order, so "/active-bots" is the bots tab.
var matchers = []struct {
	fragment string
	id       string
}{
	{"dashboard", "home"},
	{"bots", "bots"},
	{"wallet", "wallet"},
	{"transactions", "transactions"},
	{"account", "account"},
}

// Active returns the tab id highlighted for path, or "" when none applies.
func Active(path string) string {
	for _, m := range matchers {
		if strings.Contains(path, m.fragment) {
			return m.id
		}
	}
	return ""
}

func For(path string) Bar {
	b := Bar{
		Items:        make([]Item, len(items)),
		QuickActions: make([]Item, len(quickActions)),
		Active:       Active(path),
	}
	copy(b.Items, items)
	copy(b.QuickActions, quickActions)
	return b
}
