package thrifthunter

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// licenseServer fakes the licensing service. Keys listed in valid verify on
// the named plan; everything else gets a failure reply.
func licenseServer(t *testing.T, calls *int, valid map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if err := r.ParseForm(); err != nil {
			t.Errorf("bad form: %v", err)
		}
		key := r.FormValue("license_key")
		plan := r.FormValue("product_permalink")
		if valid[key] == plan {
			fmt.Fprint(w, `{"success": true, "purchase": {"refunded": false}}`)
			return
		}
		fmt.Fprint(w, `{"success": false}`)
	}))
}

func TestVerify_AdminKeyOffline(t *testing.T) {
	calls := 0
	srv := licenseServer(t, &calls, nil)
	defer srv.Close()
	v := &Verifier{Endpoint: srv.URL, Client: srv.Client(), Permalinks: productPermalinks}

	for _, key := range []string{"ADMIN", "MONEY", "91F4A7BD-58954FF8-8B73AB40-DE4AFCF2", "  ADMIN  "} {
		t.Run(key, func(t *testing.T) {
			valid, reason := v.Verify(key)
			if !valid || reason != ReasonDevMode {
				t.Errorf("Verify(%q) = %v, %q; want true, %q", key, valid, reason, ReasonDevMode)
			}
		})
	}
	if calls != 0 {
		t.Errorf("admin keys must not hit the network, saw %d calls", calls)
	}
}

func TestVerify_SecondPlanMatches(t *testing.T) {
	calls := 0
	srv := licenseServer(t, &calls, map[string]string{"KEY-1": "klwkxa"})
	defer srv.Close()
	v := &Verifier{Endpoint: srv.URL, Client: srv.Client(), Permalinks: []string{"entml", "klwkxa"}}

	valid, reason := v.Verify("KEY-1")
	if !valid || reason != ReasonVerified {
		t.Errorf("Verify = %v, %q; want true, %q", valid, reason, ReasonVerified)
	}
	if calls != 2 {
		t.Errorf("expected the first plan to miss and the second to match, saw %d calls", calls)
	}
}

func TestVerify_ShortCircuitsOnFirstMatch(t *testing.T) {
	calls := 0
	srv := licenseServer(t, &calls, map[string]string{"KEY-1": "entml"})
	defer srv.Close()
	v := &Verifier{Endpoint: srv.URL, Client: srv.Client(), Permalinks: []string{"entml", "klwkxa"}}

	if valid, _ := v.Verify("KEY-1"); !valid {
		t.Fatal("Verify = false, want true")
	}
	if calls != 1 {
		t.Errorf("a first-plan match must not try the second, saw %d calls", calls)
	}
}

func TestVerify_InvalidKey(t *testing.T) {
	calls := 0
	srv := licenseServer(t, &calls, nil)
	defer srv.Close()
	v := &Verifier{Endpoint: srv.URL, Client: srv.Client(), Permalinks: productPermalinks}

	valid, reason := v.Verify("NOPE")
	if valid || reason != ReasonInvalid {
		t.Errorf("Verify = %v, %q; want false, %q", valid, reason, ReasonInvalid)
	}
	if calls != len(productPermalinks) {
		t.Errorf("an unknown key must exhaust every plan, saw %d calls", calls)
	}
}

func TestVerify_RefundedPurchase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "purchase": {"refunded": true}}`)
	}))
	defer srv.Close()
	v := &Verifier{Endpoint: srv.URL, Client: srv.Client(), Permalinks: []string{"entml"}}

	if valid, reason := v.Verify("REFUNDED"); valid || reason != ReasonInvalid {
		t.Errorf("a refunded purchase must not verify, got %v, %q", valid, reason)
	}
}

// A plan whose check errors out is skipped, not fatal: the next plan can
// still verify the key.
func TestVerify_BrokenPlanSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("product_permalink") == "entml" {
			fmt.Fprint(w, "<html>gateway error</html>")
			return
		}
		fmt.Fprint(w, `{"success": true, "purchase": {"refunded": false}}`)
	}))
	defer srv.Close()
	v := &Verifier{Endpoint: srv.URL, Client: srv.Client(), Permalinks: []string{"entml", "klwkxa"}}

	if valid, reason := v.Verify("KEY-1"); !valid || reason != ReasonVerified {
		t.Errorf("Verify = %v, %q; want true, %q", valid, reason, ReasonVerified)
	}
}
