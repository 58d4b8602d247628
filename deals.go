package thrifthunter

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
)

// Cosmetic dashboard content: the news ticker and the weekly supply deals.
// Both are deterministic functions of the date so that the same week always
// shows the same rotation.

// SupplyDeal is one promoted supply item with its affiliate link.
type SupplyDeal struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
	Deal string `json:"deal"`
	Link string `json:"link"`
}

var supplyDeals = []SupplyDeal{
	{Icon: "📦", Name: "Poly Mailers", Deal: "20% Off", Link: AffiliateLinks["poly_mailers"]},
	{Icon: "🏷️", Name: "Thermal Labels", Deal: "Bulk Pack", Link: AffiliateLinks["thermal_printer"]},
	{Icon: "⚖️", Name: "Scale", Deal: "Pro Accuracy", Link: AffiliateLinks["scale"]},
	{Icon: "💡", Name: "Ring Light", Deal: "Photo Kit", Link: AffiliateLinks["ring_light"]},
	{Icon: "🧼", Name: "Goo Gone", Deal: "Cleaner", Link: AffiliateLinks["goo_gone"]},
	{Icon: "📦", Name: "HD Tape", Deal: "6 Pack", Link: AffiliateLinks["tape"]},
}

// WeeklyDeals picks four supply deals for the week containing now. The pick
// is seeded by the ISO week number, so it rotates weekly but stays stable
// within a week.
func WeeklyDeals(now Date) []SupplyDeal {
	_, week := now.ISOWeek()
	r := rand.New(rand.NewSource(int64(week)))
	picks := make([]SupplyDeal, 0, 4)
	for _, i := range r.Perm(len(supplyDeals))[:4] {
		picks = append(picks, supplyDeals[i])
	}
	return picks
}

// NewsTicker returns the scrolling ticker lines for the dashboard. The
// highlighted trend rotates with the ISO week instead of being random.
func NewsTicker(now Date, region Region) []string {
	_, week := now.ISOWeek()
	trend := region.Trends[week%len(region.Trends)]
	return []string{
		"🔴 LIVE: Market Activity HIGH",
		fmt.Sprintf("🔥 BOLO: %s selling fast in %s", trend, region.Name),
		"⚡ SUPPLY: Thermal Printers 15% off (See Supply Drop)",
		fmt.Sprintf("💰 WIN: User just flipped a jacket for %s profit", region.Format(decimal.NewFromInt(120))),
	}
}
