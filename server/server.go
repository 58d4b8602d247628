// Package server exposes the dashboard core over HTTP for web front ends.
// It is a thin presentation layer: every handler reads or mutates the
// session through its command methods, so persistence and Pro gating stay in
// one place.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	thrifthunter "github.com/focusos/thrifthunter"
)

// Server wires the session, catalog cache and license verifier behind a router.
type Server struct {
	session  *thrifthunter.Session
	catalog  *thrifthunter.CatalogCache
	verifier *thrifthunter.Verifier
}

// New returns a server over the given collaborators.
func New(session *thrifthunter.Session, catalog *thrifthunter.CatalogCache, verifier *thrifthunter.Verifier) *Server {
	return &Server{session: session, catalog: catalog, verifier: verifier}
}

// Router builds the API routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.getState)
		r.Get("/regions", s.getRegions)
		r.Get("/reports/profit", s.getProfitReport)
		r.Get("/catalog", s.getCatalog)
		r.Get("/deals", s.getDeals)
		r.Get("/search", s.getSearchLinks)
		r.Get("/vault", s.getVault)

		r.Post("/sales", s.postSale)
		r.Post("/inventory", s.postInventory)
		r.Post("/watchlist", s.postWatch)
		r.Delete("/watchlist/{name}", s.deleteWatch)
		r.Post("/goals", s.postGoals)
		r.Post("/settings", s.postSettings)
		r.Post("/tax", s.postTax)
		r.Post("/license/activate", s.postActivate)
		r.Post("/reset", s.postReset)
	})
	return r
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	respond(w, status, map[string]string{"error": err.Error()})
}
