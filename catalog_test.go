package thrifthunter

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const catalogDoc = `{
  "blacklist": [{"brand": "Burberry", "reason": "heavy counterfeiting"}],
  "vault": {
    "Canada 🇨🇦": [{"item": "Roots sweats", "target": "thrift"}],
    "USA 🇺🇸": [{"item": "Carhartt jacket", "target": "bins"}]
  }
}`

func testCache(srv *httptest.Server, now *time.Time) *CatalogCache {
	c := NewCatalogCache()
	c.URL = srv.URL
	c.Client = srv.Client()
	c.now = func() time.Time { return *now }
	return c
}

func TestCatalogCache_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, catalogDoc)
	}))
	defer srv.Close()
	now := time.Now()
	c := testCache(srv, &now)

	catalog, degraded := c.Get()
	if degraded != "" {
		t.Fatalf("degraded: %s", degraded)
	}
	if len(catalog.Blacklist) != 1 || catalog.Blacklist[0]["brand"] != "Burberry" {
		t.Errorf("blacklist = %v", catalog.Blacklist)
	}
	if deals := catalog.VaultFor("USA 🇺🇸"); len(deals) != 1 || deals[0]["item"] != "Carhartt jacket" {
		t.Errorf("vault = %v", deals)
	}
	// An unknown region key reads the default region's vault.
	if deals := catalog.VaultFor("Mars"); len(deals) != 1 || deals[0]["item"] != "Roots sweats" {
		t.Errorf("fallback vault = %v", deals)
	}
}

func TestCatalogCache_TTL(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, catalogDoc)
	}))
	defer srv.Close()
	now := time.Now()
	c := testCache(srv, &now)

	c.Get()
	c.Get()
	if calls != 1 {
		t.Fatalf("two reads inside the window made %d network calls, want 1", calls)
	}

	now = now.Add(c.TTL + time.Second)
	c.Get()
	if calls != 2 {
		t.Errorf("a read past the window made %d total calls, want 2", calls)
	}
}

func TestCatalogCache_DegradedCachedForWindow(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()
	now := time.Now()
	c := testCache(srv, &now)

	catalog, degraded := c.Get()
	if degraded == "" {
		t.Fatal("a failed fetch must report a degraded reason")
	}
	if len(catalog.Blacklist) != 0 || len(catalog.Vault) != 0 {
		t.Errorf("degraded catalog must be empty, got %+v", catalog)
	}

	// The empty result holds for the whole window; no hammering a down remote.
	if _, degraded := c.Get(); degraded == "" {
		t.Error("second read inside the window lost the degraded reason")
	}
	if calls != 1 {
		t.Errorf("degraded result was not cached, saw %d calls", calls)
	}
}

func TestCatalogCache_MissingCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"notice": "maintenance"}`)
	}))
	defer srv.Close()
	now := time.Now()
	c := testCache(srv, &now)

	catalog, degraded := c.Get()
	if degraded != "" {
		t.Errorf("absent collections are a clean empty result, got degraded %q", degraded)
	}
	if len(catalog.Blacklist) != 0 || len(catalog.Vault) != 0 {
		t.Errorf("catalog = %+v, want empty", catalog)
	}
}

func TestCatalogCache_MalformedRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"blacklist": [{"brand": "Burberry"}, "stray string", 42]}`)
	}))
	defer srv.Close()
	now := time.Now()
	c := testCache(srv, &now)

	catalog, _ := c.Get()
	if len(catalog.Blacklist) != 1 {
		t.Errorf("non-object entries must be skipped, got %v", catalog.Blacklist)
	}
}
