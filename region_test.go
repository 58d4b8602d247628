package thrifthunter

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLookupRegion(t *testing.T) {
	tests := []struct {
		key          string
		wantCurrency string
	}{
		{"Canada 🇨🇦", "CAD"},
		{"USA 🇺🇸", "USD"},
		{"UK 🇬🇧", "GBP"},
		{"Europe 🇪🇺", "EUR"},
		{"Australia 🇦🇺", "AUD"},
		{"", "CAD"},         // empty falls back to the default region
		{"Atlantis", "CAD"}, // so does anything unknown
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := LookupRegion(tt.key); got.CurrencyCode != tt.wantCurrency {
				t.Errorf("LookupRegion(%q).CurrencyCode = %q, want %q", tt.key, got.CurrencyCode, tt.wantCurrency)
			}
		})
	}
}

func TestRegionKeys(t *testing.T) {
	keys := RegionKeys()
	if len(keys) != 5 {
		t.Fatalf("len(RegionKeys()) = %d, want 5", len(keys))
	}
	if keys[0] != DefaultRegionKey {
		t.Errorf("first key = %q, want the default region", keys[0])
	}
	for _, key := range keys {
		if !KnownRegion(key) {
			t.Errorf("key %q not in the table", key)
		}
	}
}

func TestRegion_Format(t *testing.T) {
	uk := LookupRegion("UK 🇬🇧")
	if got := uk.Format(decimal.NewFromFloat(4.5)); got != "£4.50" {
		t.Errorf("Format(4.5) = %q, want £4.50", got)
	}
	ca := LookupRegion("Canada 🇨🇦")
	if got := ca.Format(decimal.NewFromInt(15)); got != "$15.00" {
		t.Errorf("Format(15) = %q, want $15.00", got)
	}
}

func TestSearchURLs(t *testing.T) {
	usa := LookupRegion("USA 🇺🇸")

	got := usa.EbaySearchURL("nike hoodie", false)
	want := "https://www.ebay.com/sch/i.html?_nkw=nike+hoodie&_sacat=0"
	if got != want {
		t.Errorf("EbaySearchURL = %q, want %q", got, want)
	}

	sold := usa.EbaySearchURL("nike hoodie", true)
	if !strings.HasSuffix(sold, "&LH_Sold=1&LH_Complete=1") {
		t.Errorf("sold-only URL missing filter: %q", sold)
	}

	if got := usa.PoshSearchURL("nike hoodie"); got != "https://poshmark.com/search?query=nike+hoodie" {
		t.Errorf("PoshSearchURL = %q", got)
	}

	if got := LensSearchURL("nike hoodie"); got != "https://www.google.com/search?tbm=isch&q=nike+hoodie" {
		t.Errorf("LensSearchURL = %q", got)
	}
}
