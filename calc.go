package thrifthunter

import (
	"github.com/shopspring/decimal"
)

// Fee rates are fixed percentages modelling marketplace commission. They are
// deliberately not parameters of one generic function: a marketplace sale and
// a buyer offer are different domain operations that happen to share shape.
var (
	saleFeeRate  = decimal.NewFromFloat(0.13)
	offerFeeRate = decimal.NewFromFloat(0.20)
)

// NetProfit computes the net profit of a marketplace sale:
// sell - cost - shipping - sell*13%.
//
// Pure arithmetic, no bounds validation: inputs are assumed non-negative by
// the calling layer's input clamps.
func NetProfit(cost, sell, shipping decimal.Decimal) decimal.Decimal {
	return sell.Sub(cost).Sub(shipping).Sub(sell.Mul(saleFeeRate))
}

// OfferProfit computes the profit of accepting an incoming buyer offer:
// offer - buy - offer*20%.
func OfferProfit(buy, offer decimal.Decimal) decimal.Decimal {
	return offer.Sub(buy).Sub(offer.Mul(offerFeeRate))
}

// BulkCostPerItem spreads a lot's total cost across its item count.
// A non-positive count yields zero rather than a division error.
func BulkCostPerItem(totalCost decimal.Decimal, items int) decimal.Decimal {
	if items <= 0 {
		return decimal.Zero
	}
	return totalCost.Div(decimal.NewFromInt(int64(items)))
}
