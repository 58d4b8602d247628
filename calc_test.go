package thrifthunter

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNetProfit(t *testing.T) {
	d := decimal.NewFromFloat
	tests := []struct {
		name                 string
		cost, sell, shipping float64
		want                 string
	}{
		{"typical flip", 5, 45, 15, "19.15"},
		{"free item", 0, 20, 0, "17.4"},
		{"loss", 30, 20, 5, "-17.6"},
		{"all zero", 0, 0, 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetProfit(d(tt.cost), d(tt.sell), d(tt.shipping))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("NetProfit(%v, %v, %v) = %s, want %s", tt.cost, tt.sell, tt.shipping, got, tt.want)
			}
		})
	}
}

func TestOfferProfit(t *testing.T) {
	d := decimal.NewFromFloat
	tests := []struct {
		name       string
		buy, offer float64
		want       string
	}{
		{"double up", 10, 20, "6"},
		{"lowball", 10, 12, "-0.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OfferProfit(d(tt.buy), d(tt.offer))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("OfferProfit(%v, %v) = %s, want %s", tt.buy, tt.offer, got, tt.want)
			}
		})
	}
}

func TestBulkCostPerItem(t *testing.T) {
	tests := []struct {
		name  string
		total string
		items int
		want  string
	}{
		{"even split", "50", 10, "5"},
		{"uneven split", "10", 3, "3.3333333333333333"},
		{"zero items", "50", 0, "0"},
		{"negative items", "50", -3, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BulkCostPerItem(decimal.RequireFromString(tt.total), tt.items)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("BulkCostPerItem(%s, %d) = %s, want %s", tt.total, tt.items, got, tt.want)
			}
		})
	}
}
