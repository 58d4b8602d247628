package thrifthunter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrProRequired is returned by mutations gated behind a verified license.
var ErrProRequired = errors.New("pro feature, license required")

// ErrWatchExists is returned when adding a watch item whose name is taken.
var ErrWatchExists = errors.New("watch item with that name already exists")

// Session owns the in-memory AppState for the lifetime of the process and is
// the single command layer through which it mutates. Every mutating call
// rewrites the whole state file before returning, so the disk always holds
// the last completed action.
type Session struct {
	store *Store

	// State is the current session record. Presentation layers read it
	// freely but must mutate only through Session methods.
	State AppState

	// Degraded is non-empty when the state file was present but unusable
	// and the session started from defaults.
	Degraded string
}

// OpenSession loads (or defaults) the state from the store.
func OpenSession(store *Store) *Session {
	state, degraded := store.Load()
	return &Session{store: store, State: state, Degraded: degraded}
}

// Region resolves the session's region, always to a valid table entry.
func (s *Session) Region() Region { return LookupRegion(s.State.Region) }

// save persists the whole record after a completed mutation.
func (s *Session) save() error { return s.store.Save(s.State) }

// RecordSale prepends a completed sale to the history and bumps the scan
// counter. The history stays newest-first.
func (s *Session) RecordSale(item, source string, profit decimal.Decimal) error {
	if item == "" {
		item = "Item"
	}
	rec := SaleRecord{Date: Today().String(), Item: item, Profit: profit, Source: source}
	s.State.History = append([]SaleRecord{rec}, s.State.History...)
	s.State.ItemsScanned++
	return s.save()
}

// AddInventory records an item bought but not yet sold.
func (s *Session) AddInventory(item, source string, cost, expected decimal.Decimal) error {
	if item == "" {
		item = "Item"
	}
	s.State.Inventory = append(s.State.Inventory, InventoryItem{
		Date:     Today().String(),
		Item:     item,
		Cost:     cost,
		Expected: expected,
		Source:   source,
	})
	s.State.ItemsScanned++
	return s.save()
}

// AddWatch appends a watch item. Names are the identity key and must be unique.
func (s *Session) AddWatch(name, link string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("watch item needs a name")
	}
	for _, w := range s.State.Watchlist {
		if w.Name == name {
			return ErrWatchExists
		}
	}
	s.State.Watchlist = append(s.State.Watchlist, WatchItem{Name: name, Link: link})
	return s.save()
}

// RemoveWatch deletes a watch item by name. It reports whether anything was removed.
func (s *Session) RemoveWatch(name string) (bool, error) {
	for i, w := range s.State.Watchlist {
		if w.Name == name {
			s.State.Watchlist = append(s.State.Watchlist[:i], s.State.Watchlist[i+1:]...)
			return true, s.save()
		}
	}
	return false, nil
}

// SetGoals replaces the three period targets.
func (s *Session) SetGoals(weekly, monthly, yearly decimal.Decimal) error {
	s.State.Goals = Goals{Weekly: weekly, Monthly: monthly, Yearly: yearly}
	return s.save()
}

// SetRegion switches the market profile. Unknown keys are rejected so the
// stored region always resolves to a table entry.
func (s *Session) SetRegion(key string) error {
	if !KnownRegion(key) {
		return fmt.Errorf("unknown region %q", key)
	}
	s.State.Region = key
	return s.save()
}

// SetTheme flips between the dark and light themes.
func (s *Session) SetTheme(theme string) error {
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.State.Theme = theme
	return s.save()
}

// SetUsername updates the display name.
func (s *Session) SetUsername(name string) error {
	s.State.Username = name
	return s.save()
}

// SetStoreName updates the store display name.
func (s *Session) SetStoreName(name string) error {
	s.State.StoreName = name
	return s.save()
}

// AddSource appends a new acquisition source label, once.
func (s *Session) AddSource(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("source needs a label")
	}
	for _, src := range s.State.Sources {
		if src == label {
			return nil
		}
	}
	s.State.Sources = append(s.State.Sources, label)
	return s.save()
}

// SetTax configures the tax buffer. Pro only; the rate is clamped to [0, 50].
func (s *Session) SetTax(enabled bool, ratePercent decimal.Decimal) error {
	if !s.State.IsPro {
		return ErrProRequired
	}
	if ratePercent.IsNegative() {
		ratePercent = decimal.Zero
	}
	if max := decimal.NewFromInt(50); ratePercent.GreaterThan(max) {
		ratePercent = max
	}
	s.State.TaxMode = enabled
	s.State.TaxRate = ratePercent
	return s.save()
}

// Activate verifies a license key and, on success, unlocks Pro and persists
// immediately. The reason string is always suitable to show the user.
func (s *Session) Activate(v *Verifier, key string) (valid bool, reason string, err error) {
	valid, reason = v.Verify(key)
	if !valid {
		return false, reason, nil
	}
	s.State.IsPro = true
	return true, reason, s.save()
}

// Reset clears the in-memory state back to defaults and deletes the backing file.
func (s *Session) Reset() error {
	s.State = DefaultState()
	s.Degraded = ""
	return s.store.Reset()
}
