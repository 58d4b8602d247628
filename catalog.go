package thrifthunter

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// CatalogURL is the remote dataset carrying the brand blacklist and the
// regional deal vault.
const CatalogURL = "https://raw.githubusercontent.com/FocusOS-dev/Thrift-Hunter/main/database.json"

// catalogTTL is how long a fetched catalog (including an empty degraded one)
// is served before the next network call.
const catalogTTL = 600 * time.Second

// Catalog is the remotely-sourced reference data. Records are free-form
// objects: the remote side adds and drops columns without notice, so no
// schema is imposed here.
type Catalog struct {
	Blacklist []map[string]any
	Vault     map[string][]map[string]any
}

func emptyCatalog() Catalog {
	return Catalog{
		Blacklist: []map[string]any{},
		Vault:     map[string][]map[string]any{},
	}
}

// VaultFor returns the vault entries for a region key, falling back to the
// default region when the key has no entry.
func (c Catalog) VaultFor(regionKey string) []map[string]any {
	if deals, ok := c.Vault[regionKey]; ok {
		return deals
	}
	return c.Vault[DefaultRegionKey]
}

// CatalogCache fetches the catalog at most once per TTL window. Any failure
// (network, status, parse) degrades to an empty catalog for the whole window
// rather than propagating an error: the dashboard must never crash or stall
// on remote reference data.
type CatalogCache struct {
	URL    string
	Client *http.Client
	TTL    time.Duration

	now func() time.Time // injectable clock

	mu      sync.Mutex
	cached  Catalog
	reason  string
	fetched time.Time
}

// NewCatalogCache returns a cache against the production catalog URL.
func NewCatalogCache() *CatalogCache {
	return &CatalogCache{
		URL:    CatalogURL,
		Client: http.DefaultClient,
		TTL:    catalogTTL,
		now:    time.Now,
	}
}

// Get returns the current catalog. Within the TTL window the cached value is
// returned without a network call. The degraded reason is "" for a clean
// fetch, and explains the fallback when the empty catalog was substituted.
func (c *CatalogCache) Get() (Catalog, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.fetched.IsZero() && now.Sub(c.fetched) < c.TTL {
		return c.cached, c.reason
	}

	c.cached, c.reason = c.fetch()
	c.fetched = now
	if c.reason != "" {
		log.Printf("catalog fetch degraded: %s", c.reason)
	}
	return c.cached, c.reason
}

func (c *CatalogCache) fetch() (Catalog, string) {
	var jobj any
	if err := jwget(c.Client, c.URL, &jobj); err != nil {
		return emptyCatalog(), err.Error()
	}

	catalog := emptyCatalog()
	// The sub-collections are optional: an absent key is a clean empty
	// result, not a degraded one.
	if jval, err := jsonpath.Get("$.blacklist", jobj); err == nil {
		catalog.Blacklist = toRecords(jval)
	}
	if jval, err := jsonpath.Get("$.vault", jobj); err == nil {
		catalog.Vault = toVault(jval)
	}
	return catalog, ""
}

// toRecords coerces a decoded JSON list into record maps, skipping entries of
// any other shape.
func toRecords(v any) []map[string]any {
	records := []map[string]any{}
	list, ok := v.([]any)
	if !ok {
		return records
	}
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}

// toVault coerces a decoded JSON mapping of region key to record list.
func toVault(v any) map[string][]map[string]any {
	vault := map[string][]map[string]any{}
	m, ok := v.(map[string]any)
	if !ok {
		return vault
	}
	for key, entries := range m {
		vault[key] = toRecords(entries)
	}
	return vault
}
