package thrifthunter

import (
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SaleRecord is one completed sale in the history ledger.
// New sales are prepended, so the history reads newest first.
type SaleRecord struct {
	Date   string          `json:"Date"`
	Item   string          `json:"Item"`
	Profit decimal.Decimal `json:"Profit"`
	Source string          `json:"Source"`
}

// InventoryItem is an item bought but not yet sold.
type InventoryItem struct {
	Date     string          `json:"Date"`
	Item     string          `json:"Item"`
	Cost     decimal.Decimal `json:"Cost"`
	Expected decimal.Decimal `json:"Expected"`
	Source   string          `json:"Source"`
}

// WatchItem is a supply link the user keeps an eye on. Name is the identity
// key: watch items are removed by name.
type WatchItem struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Goals holds the profit target for each goal period. A state always carries
// all three targets.
type Goals struct {
	Weekly  decimal.Decimal `json:"Weekly"`
	Monthly decimal.Decimal `json:"Monthly"`
	Yearly  decimal.Decimal `json:"Yearly"`
}

// For returns the target for a goal period. Lifetime has no goal and yields zero.
func (g Goals) For(p Period) decimal.Decimal {
	switch p {
	case Weekly:
		return g.Weekly
	case Monthly:
		return g.Monthly
	case Yearly:
		return g.Yearly
	default:
		return decimal.Zero
	}
}

// AppState is the whole persisted session record. It is loaded once at
// startup, mutated in memory by commands, and fully rewritten to disk after
// every mutation.
type AppState struct {
	History      []SaleRecord    `json:"history"`
	Inventory    []InventoryItem `json:"inventory"`
	Watchlist    []WatchItem     `json:"watchlist"`
	ItemsScanned int             `json:"items_scanned"`
	Theme        string          `json:"theme"`
	Username     string          `json:"username"`
	StoreName    string          `json:"store_name"`
	Region       string          `json:"region"`
	IsPro        bool            `json:"is_pro"`
	Goals        Goals           `json:"goals"`
	TaxMode      bool            `json:"tax_mode"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Sources      []string        `json:"sources"`
}

// DefaultState returns a fresh state with every field at its documented
// default. Loading a missing or corrupt state file yields exactly this.
func DefaultState() AppState {
	return AppState{
		History:      []SaleRecord{},
		Inventory:    []InventoryItem{},
		Watchlist:    []WatchItem{},
		ItemsScanned: 0,
		Theme:        "dark",
		Username:     "Reseller",
		StoreName:    "My Store",
		Region:       DefaultRegionKey,
		IsPro:        false,
		Goals: Goals{
			Weekly:  decimal.NewFromInt(250),
			Monthly: decimal.NewFromInt(1000),
			Yearly:  decimal.NewFromInt(12000),
		},
		TaxMode: false,
		TaxRate: decimal.NewFromInt(25),
		Sources: []string{"Goodwill", "Value Village", "Bins", "FB Marketplace", "Other"},
	}
}
