package thrifthunter

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// stateFile mirrors AppState with pointer fields so that an absent key can be
// told apart from an explicit zero. Every field defaults independently, which
// means adding a field to AppState never needs a migration step: older files
// simply miss the key and get the default.
type stateFile struct {
	History      *[]SaleRecord    `json:"history"`
	Inventory    *[]InventoryItem `json:"inventory"`
	Watchlist    *[]WatchItem     `json:"watchlist"`
	ItemsScanned *int             `json:"items_scanned"`
	Theme        *string          `json:"theme"`
	Username     *string          `json:"username"`
	StoreName    *string          `json:"store_name"`
	Region       *string          `json:"region"`
	IsPro        *bool            `json:"is_pro"`
	Goals        *Goals           `json:"goals"`
	TaxMode      *bool            `json:"tax_mode"`
	TaxRate      *decimal.Decimal `json:"tax_rate"`
	Sources      *[]string        `json:"sources"`
}

// DecodeState parses a raw state document, applying the documented default
// for every missing key.
func DecodeState(data []byte) (AppState, error) {
	state := DefaultState()

	var f stateFile
	if err := json.Unmarshal(data, &f); err != nil {
		return state, err
	}

	if f.History != nil {
		state.History = *f.History
	}
	if f.Inventory != nil {
		state.Inventory = *f.Inventory
	}
	if f.Watchlist != nil {
		state.Watchlist = *f.Watchlist
	}
	if f.ItemsScanned != nil {
		state.ItemsScanned = *f.ItemsScanned
	}
	if f.Theme != nil {
		state.Theme = *f.Theme
	}
	if f.Username != nil {
		state.Username = *f.Username
	}
	if f.StoreName != nil {
		state.StoreName = *f.StoreName
	}
	if f.Region != nil {
		state.Region = *f.Region
	}
	if f.IsPro != nil {
		state.IsPro = *f.IsPro
	}
	if f.Goals != nil {
		state.Goals = *f.Goals
	}
	if f.TaxMode != nil {
		state.TaxMode = *f.TaxMode
	}
	if f.TaxRate != nil {
		state.TaxRate = *f.TaxRate
	}
	if f.Sources != nil {
		state.Sources = *f.Sources
	}
	return state, nil
}

// EncodeState serializes the whole record in a stable, human-readable form.
func EncodeState(state AppState) ([]byte, error) {
	decimal.MarshalJSONWithoutQuotes = true
	return json.MarshalIndent(state, "", "  ")
}
