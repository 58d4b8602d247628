package thrifthunter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fixtureHistory is a ledger spanning a week, a month, a year and a prior
// year, plus one entry with a broken date.
func fixtureHistory() []SaleRecord {
	d := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	return []SaleRecord{
		{Date: "2024-06-12", Item: "Hoodie", Profit: d(10), Source: "Bins"},
		{Date: "2024-06-01", Item: "Jacket", Profit: d(5), Source: "Goodwill"},
		{Date: "2024-03-01", Item: "Boots", Profit: d(7), Source: "Other"},
		{Date: "2023-12-31", Item: "Mug", Profit: d(3), Source: "Other"},
		{Date: "not-a-date", Item: "Mystery", Profit: d(100), Source: "Other"},
	}
}

func TestPeriodProfit(t *testing.T) {
	// 2024-06-15 is a Saturday; the week window opens Monday 2024-06-10.
	now := NewDate(2024, time.June, 15)

	tests := []struct {
		period Period
		want   int64
	}{
		{Weekly, 10},
		{Monthly, 15},
		{Yearly, 22},
		{Lifetime, 125}, // unfiltered, the unparsable entry counts too
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			got := PeriodProfit(fixtureHistory(), tt.period, now)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("PeriodProfit(%v) = %s, want %d", tt.period, got, tt.want)
			}
		})
	}
}

func TestPeriodProfit_Empty(t *testing.T) {
	for _, p := range []Period{Lifetime, Weekly, Monthly, Yearly} {
		if got := PeriodProfit(nil, p, Today()); !got.IsZero() {
			t.Errorf("PeriodProfit(empty, %v) = %s, want 0", p, got)
		}
	}
}

func TestPeriodProfit_WeekBoundary(t *testing.T) {
	history := []SaleRecord{
		{Date: "2024-06-10", Profit: decimal.NewFromInt(1)}, // the Monday itself
		{Date: "2024-06-09", Profit: decimal.NewFromInt(2)}, // the Sunday before
	}
	now := NewDate(2024, time.June, 15)
	got := PeriodProfit(history, Weekly, now)
	if !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Weekly profit = %s, want 1 (Monday in, Sunday out)", got)
	}
}

func TestTaxAdjusted(t *testing.T) {
	tests := []struct {
		name              string
		gross, rate       int64
		wantNet, wantHeld int64
	}{
		{"quarter", 100, 25, 75, 25},
		{"zero rate", 100, 0, 100, 0},
		{"zero gross", 0, 25, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := TaxAdjusted(decimal.NewFromInt(tt.gross), decimal.NewFromInt(tt.rate))
			if !view.Net.Equal(decimal.NewFromInt(tt.wantNet)) {
				t.Errorf("Net = %s, want %d", view.Net, tt.wantNet)
			}
			if !view.Held.Equal(decimal.NewFromInt(tt.wantHeld)) {
				t.Errorf("Held = %s, want %d", view.Held, tt.wantHeld)
			}
			if !view.Gross.Equal(decimal.NewFromInt(tt.gross)) {
				t.Errorf("Gross = %s, want %d", view.Gross, tt.gross)
			}
		})
	}
}

func TestGoalProgress(t *testing.T) {
	d := decimal.NewFromInt
	tests := []struct {
		name           string
		profit, target decimal.Decimal
		want           float64
	}{
		{"halfway", d(125), d(250), 0.5},
		{"overshoot clamps", d(300), d(250), 1},
		{"negative profit clamps", d(-10), d(250), 0},
		{"zero target", d(100), d(0), 0},
		{"negative target", d(100), d(-5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalProgress(tt.profit, tt.target); got != tt.want {
				t.Errorf("GoalProgress(%s, %s) = %v, want %v", tt.profit, tt.target, got, tt.want)
			}
		})
	}
}
