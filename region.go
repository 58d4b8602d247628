package thrifthunter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Region is a market/locale profile: currency, marketplace domains, a default
// shipping cost and the trending brands shown in the ticker. Read-only
// reference data, keyed by display name.
type Region struct {
	Name            string
	CurrencyCode    string // ISO 4217, drives display formatting
	Symbol          string
	Ebay            string
	Posh            string
	DefaultShipping decimal.Decimal
	Trends          []string
}

// DefaultRegionKey is the fallback for unknown or missing region keys.
const DefaultRegionKey = "Canada 🇨🇦"

// regionOrder preserves the display order of the region table.
var regionOrder = []string{
	"Canada 🇨🇦",
	"USA 🇺🇸",
	"UK 🇬🇧",
	"Europe 🇪🇺",
	"Australia 🇦🇺",
}

var regions = map[string]Region{
	"Canada 🇨🇦": {
		Name:            "Canada 🇨🇦",
		CurrencyCode:    "CAD",
		Symbol:          "$",
		Ebay:            "ebay.ca",
		Posh:            "poshmark.ca",
		DefaultShipping: decimal.NewFromInt(15),
		Trends:          []string{"Roots", "Arc'teryx", "Lululemon"},
	},
	"USA 🇺🇸": {
		Name:            "USA 🇺🇸",
		CurrencyCode:    "USD",
		Symbol:          "$",
		Ebay:            "ebay.com",
		Posh:            "poshmark.com",
		DefaultShipping: decimal.NewFromInt(8),
		Trends:          []string{"Carhartt", "Patagonia", "Nike"},
	},
	"UK 🇬🇧": {
		Name:            "UK 🇬🇧",
		CurrencyCode:    "GBP",
		Symbol:          "£",
		Ebay:            "ebay.co.uk",
		Posh:            "poshmark.co.uk",
		DefaultShipping: decimal.NewFromFloat(4.5),
		Trends:          []string{"Barbour", "Dr. Martens", "Stone Island"},
	},
	"Europe 🇪🇺": {
		Name:            "Europe 🇪🇺",
		CurrencyCode:    "EUR",
		Symbol:          "€",
		Ebay:            "ebay.de",
		Posh:            "vinted.com",
		DefaultShipping: decimal.NewFromInt(6),
		Trends:          []string{"Adidas", "Puma", "Le Creuset"},
	},
	"Australia 🇦🇺": {
		Name:            "Australia 🇦🇺",
		CurrencyCode:    "AUD",
		Symbol:          "$",
		Ebay:            "ebay.com.au",
		Posh:            "poshmark.com.au",
		DefaultShipping: decimal.NewFromInt(12),
		Trends:          []string{"R.M. Williams", "Spell & Gypsy", "AFL Gear"},
	},
}

// LookupRegion resolves a region key, falling back to the default region for
// unknown or empty keys. It never fails: the invariant is that a session
// always has a valid region.
func LookupRegion(key string) Region {
	if r, ok := regions[key]; ok {
		return r
	}
	return regions[DefaultRegionKey]
}

// KnownRegion reports whether key names an entry of the region table.
func KnownRegion(key string) bool {
	_, ok := regions[key]
	return ok
}

// RegionKeys returns the region table keys in display order.
func RegionKeys() []string {
	keys := make([]string, len(regionOrder))
	copy(keys, regionOrder)
	return keys
}

// Format renders an amount in the region's currency, e.g. "£4.50".
func (r Region) Format(amount decimal.Decimal) string {
	return M(amount, r.CurrencyCode).String()
}

// EbaySearchURL builds the marketplace search link for a term. With soldOnly,
// the query is restricted to sold and completed listings, which is what a
// reseller compares prices against.
func (r Region) EbaySearchURL(term string, soldOnly bool) string {
	q := strings.ReplaceAll(strings.TrimSpace(term), " ", "+")
	addr := fmt.Sprintf("https://www.%s/sch/i.html?_nkw=%s&_sacat=0", r.Ebay, q)
	if soldOnly {
		addr += "&LH_Sold=1&LH_Complete=1"
	}
	return addr
}

// PoshSearchURL builds the secondary marketplace search link for a term.
func (r Region) PoshSearchURL(term string) string {
	q := strings.ReplaceAll(strings.TrimSpace(term), " ", "+")
	return fmt.Sprintf("https://%s/search?query=%s", r.Posh, q)
}

// LensSearchURL builds a reverse image search link for a term.
func LensSearchURL(term string) string {
	return "https://www.google.com/search?tbm=isch&q=" + url.QueryEscape(strings.TrimSpace(term))
}
