package thrifthunter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "titan.json"))
}

func TestStore_FirstRun(t *testing.T) {
	store := tempStore(t)
	state, degraded := store.Load()
	if degraded != "" {
		t.Errorf("a missing file is a clean first run, got degraded reason %q", degraded)
	}
	if state.Theme != "dark" || state.Username != "Reseller" || state.Region != DefaultRegionKey {
		t.Errorf("first run did not yield defaults: %+v", state)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store := tempStore(t)
	state := DefaultState()
	state.Username = "Pat"
	state.History = []SaleRecord{{Date: "2024-06-12", Item: "Hoodie", Profit: decimal.NewFromFloat(19.15), Source: "Bins"}}

	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, degraded := store.Load()
	if degraded != "" {
		t.Fatalf("Load degraded: %s", degraded)
	}
	if back.Username != "Pat" || len(back.History) != 1 {
		t.Errorf("Load = %+v", back)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	store := tempStore(t)
	if err := os.WriteFile(store.Path(), []byte("{ not json"), 0644); err != nil {
		t.Fatal(err)
	}
	state, degraded := store.Load()
	if degraded == "" {
		t.Error("corrupt file must report a degraded reason")
	}
	if state.Username != "Reseller" {
		t.Errorf("corrupt file must fall back to defaults, got %+v", state)
	}
}

func TestStore_Reset(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(DefaultState()); err != nil {
		t.Fatal(err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Errorf("Reset left the file behind: %v", err)
	}
	// A second reset against a missing file is fine.
	if err := store.Reset(); err != nil {
		t.Errorf("Reset on missing file: %v", err)
	}
}
