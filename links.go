package thrifthunter

// Static outbound links surfaced by the presentation layers. These are
// output artifacts, not consumed APIs.

// PaymentLinks are the checkout pages for the Pro plans.
var PaymentLinks = map[string]string{
	"monthly":  "https://thrifthunter.gumroad.com/l/entml",
	"lifetime": "https://thrifthunter.gumroad.com/l/klwkxa",
}

// AffiliateLinks are the supply search links promoted in the Supply Drop view.
var AffiliateLinks = map[string]string{
	"poly_mailers":    "https://www.amazon.com/s?k=poly+mailers+10x13",
	"thermal_printer": "https://www.amazon.com/s?k=thermal+label+printer",
	"scale":           "https://www.amazon.com/s?k=shipping+scale",
	"tape":            "https://www.amazon.com/s?k=heavy+duty+shipping+tape",
	"ring_light":      "https://www.amazon.com/s?k=ring+light",
	"goo_gone":        "https://www.amazon.com/s?k=goo+gone",
}
