package thrifthunter

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{"19.15", "USD", "$19.15"},
		{"4.5", "GBP", "£4.50"},
		{"15", "CAD", "$15.00"},
		{"0", "USD", "$0.00"},
		{"-17.6", "USD", "-$17.60"},
	}
	for _, tt := range tests {
		t.Run(tt.value+" "+tt.currency, func(t *testing.T) {
			m := M(decimal.RequireFromString(tt.value), tt.currency)
			if got := m.String(); got != tt.want {
				t.Errorf("M(%s, %s).String() = %q, want %q", tt.value, tt.currency, got, tt.want)
			}
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"19.15", "+$19.15"},
		{"-17.6", "-$17.60"},
		{"0", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			m := M(decimal.RequireFromString(tt.value), "USD")
			if got := m.SignedString(); got != tt.want {
				t.Errorf("SignedString() = %q, want %q", got, tt.want)
			}
		})
	}
}
