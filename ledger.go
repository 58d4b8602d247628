package thrifthunter

import (
	"github.com/shopspring/decimal"
)

// This file implements the ledger engine: profit aggregation over reporting
// windows. Windows are always computed relative to the caller's "now" on
// every invocation. The ledger is single-user scale, so recomputing beats
// caching aggregates that could go stale across a week or month boundary.

// PeriodProfit sums the profit of history entries falling inside the given
// period window relative to now.
//
//   - Lifetime sums every entry, unfiltered.
//   - Weekly sums entries on or after the most recent Monday.
//   - Monthly sums entries in now's month and year.
//   - Yearly sums entries in now's year.
//
// Entries whose date does not parse are excluded from the filtered windows
// (they still count toward Lifetime, which ignores dates entirely).
func PeriodProfit(history []SaleRecord, period Period, now Date) decimal.Decimal {
	total := decimal.Zero
	if period == Lifetime {
		for _, rec := range history {
			total = total.Add(rec.Profit)
		}
		return total
	}

	weekStart := now.StartOf(Weekly)
	for _, rec := range history {
		on, err := ParseDate(rec.Date)
		if err != nil {
			continue
		}
		switch period {
		case Weekly:
			if !on.Before(weekStart) {
				total = total.Add(rec.Profit)
			}
		case Monthly:
			if on.Month() == now.Month() && on.Year() == now.Year() {
				total = total.Add(rec.Profit)
			}
		case Yearly:
			if on.Year() == now.Year() {
				total = total.Add(rec.Profit)
			}
		}
	}
	return total
}

// TaxView is the tax-adjusted reading of a gross profit figure. It is a
// Pro-only view: the command layer must not expose it when is_pro is false.
type TaxView struct {
	Gross decimal.Decimal
	Net   decimal.Decimal
	Held  decimal.Decimal
}

// TaxAdjusted splits a gross profit into net and the buffer held for taxes,
// at the given percentage rate.
func TaxAdjusted(gross decimal.Decimal, ratePercent decimal.Decimal) TaxView {
	held := gross.Mul(ratePercent.Div(decimal.NewFromInt(100)))
	return TaxView{Gross: gross, Net: gross.Sub(held), Held: held}
}

// GoalProgress returns the completion ratio of profit against target,
// clamped to [0, 1]. A non-positive target reads as no progress.
func GoalProgress(profit, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}
	ratio, _ := profit.Div(target).Float64()
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
