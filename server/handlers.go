package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	thrifthunter "github.com/focusos/thrifthunter"
)

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.session.State)
}

func (s *Server) getRegions(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"regions": thrifthunter.RegionKeys(),
		"current": s.session.Region().Name,
	})
}

// profitReport is the dashboard's headline figures for one period.
type profitReport struct {
	Period   string          `json:"period"`
	Profit   decimal.Decimal `json:"profit"`
	Display  string          `json:"display"`
	Goal     decimal.Decimal `json:"goal"`
	Progress float64         `json:"progress"`
	Tax      *taxReport      `json:"tax,omitempty"`
}

type taxReport struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
	Held  decimal.Decimal `json:"held"`
}

func (s *Server) getProfitReport(w http.ResponseWriter, r *http.Request) {
	period := thrifthunter.ParsePeriod(r.URL.Query().Get("period"))
	state := s.session.State
	region := s.session.Region()

	profit := thrifthunter.PeriodProfit(state.History, period, thrifthunter.Today())
	report := profitReport{
		Period:   period.String(),
		Profit:   profit,
		Display:  region.Format(profit),
		Goal:     state.Goals.For(period),
		Progress: thrifthunter.GoalProgress(profit, state.Goals.For(period)),
	}
	// The tax-adjusted view is Pro-only.
	if state.IsPro && state.TaxMode {
		view := thrifthunter.TaxAdjusted(profit, state.TaxRate)
		report.Tax = &taxReport{Gross: view.Gross, Net: view.Net, Held: view.Held}
	}
	respond(w, http.StatusOK, report)
}

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, degraded := s.catalog.Get()
	respond(w, http.StatusOK, map[string]any{
		"blacklist": catalog.Blacklist,
		"degraded":  degraded,
	})
}

func (s *Server) getDeals(w http.ResponseWriter, r *http.Request) {
	today := thrifthunter.Today()
	respond(w, http.StatusOK, map[string]any{
		"deals":  thrifthunter.WeeklyDeals(today),
		"ticker": thrifthunter.NewsTicker(today, s.session.Region()),
	})
}

func (s *Server) getSearchLinks(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}
	soldOnly, _ := strconv.ParseBool(r.URL.Query().Get("sold"))
	region := s.session.Region()
	respond(w, http.StatusOK, map[string]string{
		"ebay": region.EbaySearchURL(term, soldOnly),
		"posh": region.PoshSearchURL(term),
		"lens": thrifthunter.LensSearchURL(term),
	})
}

func (s *Server) getVault(w http.ResponseWriter, r *http.Request) {
	if !s.session.State.IsPro {
		respond(w, http.StatusPaymentRequired, map[string]string{"error": thrifthunter.ErrProRequired.Error()})
		return
	}
	catalog, degraded := s.catalog.Get()
	respond(w, http.StatusOK, map[string]any{
		"vault":    catalog.VaultFor(s.session.State.Region),
		"degraded": degraded,
	})
}

type saleRequest struct {
	Item     string  `json:"item"`
	Source   string  `json:"source"`
	Cost     float64 `json:"cost"`
	Sell     float64 `json:"sell"`
	Shipping float64 `json:"shipping"`
}

func (s *Server) postSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	profit := thrifthunter.NetProfit(
		decimal.NewFromFloat(req.Cost),
		decimal.NewFromFloat(req.Sell),
		decimal.NewFromFloat(req.Shipping),
	)
	if err := s.session.RecordSale(req.Item, req.Source, profit); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respond(w, http.StatusCreated, map[string]any{
		"profit":  profit,
		"display": s.session.Region().Format(profit),
	})
}

type inventoryRequest struct {
	Item     string  `json:"item"`
	Source   string  `json:"source"`
	Cost     float64 `json:"cost"`
	Expected float64 `json:"expected"`
}

func (s *Server) postInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	err := s.session.AddInventory(req.Item, req.Source,
		decimal.NewFromFloat(req.Cost), decimal.NewFromFloat(req.Expected))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respond(w, http.StatusCreated, s.session.State.Inventory[len(s.session.State.Inventory)-1])
}

func (s *Server) postWatch(w http.ResponseWriter, r *http.Request) {
	var req thrifthunter.WatchItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.session.AddWatch(req.Name, req.Link); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, thrifthunter.ErrWatchExists) {
			status = http.StatusConflict
		}
		respondError(w, status, err)
		return
	}
	respond(w, http.StatusCreated, req)
}

func (s *Server) deleteWatch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	removed, err := s.session.RemoveWatch(name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	if !removed {
		respond(w, http.StatusNotFound, map[string]string{"error": "no watch item named " + name})
		return
	}
	respond(w, http.StatusNoContent, nil)
}

type goalsRequest struct {
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

func (s *Server) postGoals(w http.ResponseWriter, r *http.Request) {
	var req goalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	err := s.session.SetGoals(
		decimal.NewFromFloat(req.Weekly),
		decimal.NewFromFloat(req.Monthly),
		decimal.NewFromFloat(req.Yearly),
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respond(w, http.StatusOK, s.session.State.Goals)
}

// settingsRequest carries partial profile updates; absent fields are untouched.
type settingsRequest struct {
	Username  *string `json:"username"`
	StoreName *string `json:"store_name"`
	Theme     *string `json:"theme"`
	Region    *string `json:"region"`
	Source    *string `json:"source"`
}

func (s *Server) postSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	apply := func(err error) bool {
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return false
		}
		return true
	}
	if req.Username != nil && !apply(s.session.SetUsername(*req.Username)) {
		return
	}
	if req.StoreName != nil && !apply(s.session.SetStoreName(*req.StoreName)) {
		return
	}
	if req.Theme != nil && !apply(s.session.SetTheme(*req.Theme)) {
		return
	}
	if req.Region != nil && !apply(s.session.SetRegion(*req.Region)) {
		return
	}
	if req.Source != nil && !apply(s.session.AddSource(*req.Source)) {
		return
	}
	respond(w, http.StatusOK, s.session.State)
}

type taxRequest struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate"`
}

func (s *Server) postTax(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.session.SetTax(req.Enabled, decimal.NewFromFloat(req.Rate)); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, thrifthunter.ErrProRequired) {
			status = http.StatusPaymentRequired
		}
		respondError(w, status, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{
		"tax_mode": s.session.State.TaxMode,
		"tax_rate": s.session.State.TaxRate,
	})
}

type activateRequest struct {
	Key string `json:"key"`
}

func (s *Server) postActivate(w http.ResponseWriter, r *http.Request) {
	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	valid, reason, err := s.session.Activate(s.verifier, req.Key)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
	}
	respond(w, status, map[string]any{"valid": valid, "reason": reason})
}

func (s *Server) postReset(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Reset(); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respond(w, http.StatusOK, s.session.State)
}
