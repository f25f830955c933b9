package api

import (
	"net/http"
	"route-directions-service/internal/api/handlers"
	"route-directions-service/internal/ports"
	"route-directions-service/internal/services"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	DefaultFormatter string
	NormalizeTurns   bool
	// Optional. Nil disables caching of rendered directions.
	Cache ports.DirectionsCache
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(catalog ports.SegmentCatalog, store ports.RouteSessionStore, cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	renderer := services.Renderer{Cache: cfg.Cache}

	healthHandler := &handlers.HealthHandler{Catalog: catalog}
	segHandler := &handlers.SegmentHandler{Catalog: catalog}
	dirHandler := &handlers.DirectionsHandler{
		Catalog:          catalog,
		DefaultFormatter: cfg.DefaultFormatter,
		NormalizeTurns:   cfg.NormalizeTurns,
		Renderer:         renderer,
	}
	sessHandler := &handlers.SessionHandler{
		Catalog:          catalog,
		Store:            store,
		DefaultFormatter: cfg.DefaultFormatter,
		NormalizeTurns:   cfg.NormalizeTurns,
		Renderer:         renderer,
	}

	r.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)
	r.HandleFunc("/segments", segHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/segments/{id}", segHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/directions", dirHandler.Plan).Methods(http.MethodPost)
	r.HandleFunc("/sessions", sessHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}", sessHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}/segments", sessHandler.AddSegment).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/directions", sessHandler.Directions).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}/geojson", sessHandler.GeoJSON).Methods(http.MethodGet)

	return requestLogger(r)
}
