package handlers

import (
	"net/http"
	"route-directions-service/internal/api/dto"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/ports"
	"route-directions-service/internal/services"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// SessionHandler lets a client build a route one selected segment at a time.
type SessionHandler struct {
	Catalog          ports.SegmentCatalog
	Store            ports.RouteSessionStore
	DefaultFormatter string
	NormalizeTurns   bool
	Renderer         services.Renderer
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SegmentRefRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s, err := services.StartSession(r.Context(), h.Catalog, h.Store, services.SegmentRef{
		SegmentID: req.SegmentID,
		Reversed:  req.Reversed,
	})
	if err != nil {
		writeServiceError(w, r, "start session", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toSession(s))
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	s, err := h.Store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get session", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toSession(s))
}

// AddSegment appends one catalog segment to the session's route.
func (h *SessionHandler) AddSegment(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req dto.SegmentRefRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s, err := services.ExtendSession(r.Context(), h.Catalog, h.Store, id, services.SegmentRef{
		SegmentID: req.SegmentID,
		Reversed:  req.Reversed,
	})
	if err != nil {
		writeServiceError(w, r, "extend session", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toSession(s))
}

// Directions renders the session's route. Query: formatter, heading, normalize.
func (h *SessionHandler) Directions(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	formatter := strings.TrimSpace(q.Get("formatter"))
	if formatter == "" {
		formatter = h.DefaultFormatter
	}

	var heading *float64
	if raw := q.Get("heading"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || !validHeading(v) {
			writeError(w, r, http.StatusBadRequest, "heading must be a number in [0, 360)")
			return
		}
		heading = &v
	}

	normalize := h.NormalizeTurns
	if raw := q.Get("normalize"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "normalize must be a boolean")
			return
		}
		normalize = v
	}

	res, err := h.Renderer.SessionDirections(r.Context(), h.Store, id, formatter, normalize, heading)
	if err != nil {
		writeServiceError(w, r, "session directions", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toDirections(res))
}

// GeoJSON returns the session's route as a FeatureCollection.
func (h *SessionHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	s, err := h.Store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "session geojson", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toGeoJSON(s.Route))
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "session id must be a UUID")
		return uuid.UUID{}, false
	}
	return id, true
}

func toSession(s *domain.RouteSession) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID: s.ID.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Route:     toRoute(s.Route),
	}
}
