package thrifthunter

import (
	"log"
	"net/http"
	"net/url"
	"strings"
)

// LicenseVerifyURL is the remote licensing service endpoint.
const LicenseVerifyURL = "https://api.gumroad.com/v2/licenses/verify"

// productPermalinks are the purchasable plans a key may belong to. A key is
// valid as soon as any one of them verifies it.
var productPermalinks = []string{"entml", "klwkxa"}

// adminKeys are the local override codes that unlock Pro without a network call.
var adminKeys = map[string]struct{}{
	"ADMIN": {},
	"MONEY": {},
	"91F4A7BD-58954FF8-8B73AB40-DE4AFCF2": {},
}

// Verification reasons surfaced to the user.
const (
	ReasonDevMode  = "Dev Mode Active"
	ReasonVerified = "License Verified"
	ReasonInvalid  = "Invalid Key or Expired Subscription"
)

// Verifier validates a license key against admin override codes or the remote
// licensing service. It has no persistence side effect: the caller flips
// is_pro on success.
type Verifier struct {
	Endpoint   string
	Client     *http.Client
	Permalinks []string
}

// NewVerifier returns a verifier against the production licensing service.
func NewVerifier() *Verifier {
	return &Verifier{
		Endpoint:   LicenseVerifyURL,
		Client:     http.DefaultClient,
		Permalinks: productPermalinks,
	}
}

// licenseResponse is the subset of the licensing service's reply we act on.
type licenseResponse struct {
	Success  bool `json:"success"`
	Purchase struct {
		Refunded bool `json:"refunded"`
	} `json:"purchase"`
}

// Verify checks a raw license key and returns whether it unlocks Pro along
// with the user-facing reason.
//
// Each plan is tried in turn; a request error skips to the next plan instead
// of aborting. Note that this treats a transient outage the same as a
// legitimate "not found" for that plan, so an outage across all plans reads
// as an invalid key. That matches the reference behavior and is deliberate.
func (v *Verifier) Verify(rawKey string) (valid bool, reason string) {
	key := strings.TrimSpace(rawKey)

	if _, ok := adminKeys[key]; ok {
		return true, ReasonDevMode
	}

	for _, permalink := range v.Permalinks {
		form := url.Values{
			"product_permalink": {permalink},
			"license_key":       {key},
		}
		var resp licenseResponse
		if err := jwpost(v.Client, v.Endpoint, form, &resp); err != nil {
			log.Printf("license check against plan %q failed: %v", permalink, err)
			continue
		}
		// A cancelled subscription still reports success until the end of
		// its period; the remote success flag is the sole criterion
		// alongside the refund check.
		if resp.Success && !resp.Purchase.Refunded {
			return true, ReasonVerified
		}
	}
	return false, ReasonInvalid
}
